// Package travel: functional configuration for Matrix construction.
//
// Design goals (mirrored across the module):
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts validation and is covered by tests.
//   - Options state is unexported; public APIs consume ...Option.

package travel

// DefaultEpsilon is the non-negative tolerance used by the diagonal and
// symmetry checks. It is a structural tolerance, independent from any
// solver acceptance epsilon.
const DefaultEpsilon = 1e-9

// options carries the resolved construction policy.
type options struct {
	eps       float64  // structural tolerance for diagonal/symmetry checks
	symmetric bool     // enforce a_ij == a_ji within eps
	allowInf  bool     // permit +Inf off-diagonal as "unreachable"
	names     []string // optional display names, len == N when set
}

// Option mutates the construction policy.
type Option func(*options)

// WithEpsilon overrides the structural tolerance. Non-positive values
// fall back to DefaultEpsilon; this is a policy knob, not user data, so
// we normalize rather than error.
func WithEpsilon(eps float64) Option {
	return func(o *options) {
		if eps > 0 {
			o.eps = eps
		}
	}
}

// WithSymmetric enforces symmetry of the cost table within eps.
func WithSymmetric() Option {
	return func(o *options) { o.symmetric = true }
}

// WithInfiniteCosts permits +Inf off-diagonal entries to represent
// unreachable pairs. NaN and -Inf remain rejected.
func WithInfiniteCosts() Option {
	return func(o *options) { o.allowInf = true }
}

// WithNames attaches display names, one per location. Validated during
// construction: len(names) == N, non-empty, unique.
func WithNames(names []string) Option {
	return func(o *options) { o.names = names }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{eps: DefaultEpsilon}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
