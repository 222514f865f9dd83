package main

import (
	"fmt"
	"strconv"
)

// ArrayFloatFlags collects a repeatable float flag, one value per use:
// -budgets 4 -budgets 6.5 yields [4 6.5].
type ArrayFloatFlags []float64

func (i *ArrayFloatFlags) String() string {
	return fmt.Sprintf("%v", *i)
}

func (i *ArrayFloatFlags) Set(value string) error {
	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return err
	}
	*i = append(*i, val)

	return nil
}
