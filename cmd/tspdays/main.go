// Command tspdays plans a multi-day traveling-salesman itinerary.
//
// It reads a JSON instance (name, optional location names, dense cost
// matrix), solves it for the requested number of days and budgets, and
// writes the itinerary as JSON to stdout or a file:
//
//	tspdays -input trip.json -days 3 -budget 8 -anchor origin -origin 0
//
// All knobs can also come from a YAML file via -config; explicitly set
// flags win over the file. The command exits non-zero when the
// configuration is invalid or no itinerary exists; it never retries or
// loosens constraints on its own.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jmarca/tsp-multiple-days/multiday"
	"github.com/jmarca/tsp-multiple-days/routing"
	"github.com/jmarca/tsp-multiple-days/travel"
)

const (
	anchorFree      = "free"
	anchorOrigin    = "origin"
	anchorRoundTrip = "roundtrip"

	strategyCheapestArc       = "cheapest-arc"
	strategyCheapestInsertion = "cheapest-insertion"
)

// options is the merged knob set: flag defaults, then the YAML config
// file, then explicitly set flags.
type options struct {
	Input         string    `yaml:"input"`
	Output        string    `yaml:"output"`
	Days          int       `yaml:"days"`
	Budget        float64   `yaml:"budget"`
	Budgets       []float64 `yaml:"budgets"`
	Anchor        string    `yaml:"anchor"`
	Origin        int       `yaml:"origin"`
	TimeLimitSec  float64   `yaml:"timelimit"`
	Strategy      string    `yaml:"strategy"`
	NoLocalSearch bool      `yaml:"no_local_search"`
	Seed          int64     `yaml:"seed"`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("tspdays: ")

	if err := run(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run() error {
	var (
		opts = options{
			Days:     1,
			Budget:   0,
			Anchor:   anchorFree,
			Strategy: strategyCheapestArc,
		}
		budgets ArrayFloatFlags
		cfgPath string
	)

	flag.StringVar(&opts.Input, "input", "", "path to the JSON instance (required)")
	flag.StringVar(&opts.Output, "output", "", "path to the JSON output; stdout when empty")
	flag.IntVar(&opts.Days, "days", opts.Days, "number of consecutive travel days")
	flag.Float64Var(&opts.Budget, "budget", opts.Budget, "uniform per-day cost budget")
	flag.Var(&budgets, "budgets", "per-day budget, repeat once per day (overrides -budget)")
	flag.StringVar(&opts.Anchor, "anchor", opts.Anchor, "anchor mode: free, origin or roundtrip")
	flag.IntVar(&opts.Origin, "origin", 0, "home location index for the anchored modes")
	flag.Float64Var(&opts.TimeLimitSec, "timelimit", 0, "soft time limit in seconds; 0 = unlimited")
	flag.StringVar(&opts.Strategy, "strategy", opts.Strategy, "first solution strategy: cheapest-arc or cheapest-insertion")
	flag.BoolVar(&opts.NoLocalSearch, "no-local-search", false, "skip the local-search improvement phase")
	flag.Int64Var(&opts.Seed, "seed", 0, "search seed; 0 = fixed default stream")
	flag.StringVar(&cfgPath, "config", "", "YAML file with the same knobs; set flags win")
	flag.Parse()

	if len(budgets) > 0 {
		opts.Budgets = budgets
	}
	if cfgPath != "" {
		if err := mergeConfigFile(cfgPath, &opts); err != nil {
			return err
		}
	}
	if opts.Input == "" {
		return errors.New("missing -input (or input: in the config file)")
	}

	inst, mat, err := loadInstance(opts.Input)
	if err != nil {
		return err
	}

	cfg := multiday.Config{
		Days:    opts.Days,
		Budget:  opts.Budget,
		Budgets: opts.Budgets,
		Origin:  opts.Origin,
	}
	switch opts.Anchor {
	case anchorFree:
		cfg.Anchor = multiday.FreeStartFreeEnd
	case anchorOrigin:
		cfg.Anchor = multiday.FixedOrigin
	case anchorRoundTrip:
		cfg.Anchor = multiday.FixedOriginAndReturn
	default:
		return fmt.Errorf("unknown anchor mode %q", opts.Anchor)
	}

	model, err := multiday.NewModel(mat, cfg)
	if err != nil {
		return err
	}

	params := routing.DefaultSearchParams()
	params.Seed = opts.Seed
	params.TimeLimit = time.Duration(opts.TimeLimitSec * float64(time.Second))
	switch opts.Strategy {
	case strategyCheapestArc:
		params.FirstSolution = routing.PathCheapestArc
	case strategyCheapestInsertion:
		params.FirstSolution = routing.CheapestInsertion
	default:
		return fmt.Errorf("unknown strategy %q", opts.Strategy)
	}
	if opts.NoLocalSearch {
		params.Metaheuristic = routing.NoMetaheuristic
	}

	started := time.Now()
	it, err := model.Solve(params)
	if err != nil {
		return err
	}
	elapsed := time.Since(started)

	sol := Solution{
		Name:      inst.Name,
		Comment:   inst.Comment,
		ID:        it.ID,
		Days:      make([]DayPlan, len(it.Days)),
		TotalCost: it.TotalCost,
		SolveMS:   elapsed.Milliseconds(),
		System:    sysInfo(),
	}
	for i, day := range it.Days {
		dp := DayPlan{Day: day.Index, Stops: day.Locations, Cost: day.Cost}
		if len(inst.Locations) > 0 {
			dp.Names = make([]string, len(day.Locations))
			for j, loc := range day.Locations {
				dp.Names[j] = mat.Name(loc)
			}
		}
		sol.Days[i] = dp
	}

	return writeSolution(opts.Output, &sol)
}

// mergeConfigFile overlays the YAML file onto opts, then restores every
// flag the user set explicitly on the command line.
func mergeConfigFile(path string, opts *options) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	merged := *opts
	if err = yaml.Unmarshal(raw, &merged); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["input"] {
		merged.Input = opts.Input
	}
	if set["output"] {
		merged.Output = opts.Output
	}
	if set["days"] {
		merged.Days = opts.Days
	}
	if set["budget"] {
		merged.Budget = opts.Budget
	}
	if set["budgets"] {
		merged.Budgets = opts.Budgets
	}
	if set["anchor"] {
		merged.Anchor = opts.Anchor
	}
	if set["origin"] {
		merged.Origin = opts.Origin
	}
	if set["timelimit"] {
		merged.TimeLimitSec = opts.TimeLimitSec
	}
	if set["strategy"] {
		merged.Strategy = opts.Strategy
	}
	if set["no-local-search"] {
		merged.NoLocalSearch = opts.NoLocalSearch
	}
	if set["seed"] {
		merged.Seed = opts.Seed
	}
	*opts = merged

	return nil
}

// loadInstance reads and validates the JSON instance, returning it
// together with the cost matrix built from it.
func loadInstance(path string) (*Instance, *travel.Matrix, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var inst Instance
	if err = json.Unmarshal(raw, &inst); err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	var mopts []travel.Option
	if len(inst.Locations) > 0 {
		mopts = append(mopts, travel.WithNames(inst.Locations))
	}
	mat, err := travel.NewMatrix(inst.Costs, mopts...)
	if err != nil {
		return nil, nil, fmt.Errorf("instance %s: %w", path, err)
	}

	return &inst, mat, nil
}

// writeSolution emits the solution JSON to path, or stdout when path
// is empty.
func writeSolution(path string, sol *Solution) error {
	out, err := json.MarshalIndent(sol, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')
	if path == "" {
		_, err = os.Stdout.Write(out)

		return err
	}

	return os.WriteFile(path, out, 0o644)
}
