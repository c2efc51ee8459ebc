package exercise

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrInputOutOfRange is returned for inputs an exercise cannot answer in
// int64 or in reasonable memory
var ErrInputOutOfRange = errors.New("input out of range")

// MaxSequenceLength caps the sequences 0-N and N-0 build
const MaxSequenceLength = 1_000_000

// Func is a single-argument exercise returning its printed outputs
type Func func(n int64) []int64

// registry maps a target stem to its reference implementation.
// Keys match the exercise file names (without extension).
var registry = map[string]Func{
	"0-N":         CountUp,
	"N-0":         CountDown,
	"factorial":   Factorial,
	"fibonacci":   Fibonacci,
	"squared":     Squared,
	"times-table": TimesTable,
}

// inputRange holds the inclusive input bounds of each exercise
var inputRange = map[string]struct{ min, max int64 }{
	"0-N":         {math.MinInt64, MaxSequenceLength},
	"N-0":         {math.MinInt64, MaxSequenceLength},
	"factorial":   {math.MinInt64, 20},
	"fibonacci":   {math.MinInt64, 92},
	"squared":     {math.MinInt64, MaxSequenceLength},
	"times-table": {math.MinInt64 / TimesTableSize, math.MaxInt64 / TimesTableSize},
}

// CheckInput reports whether n is a valid input for the named exercise.
// Unknown names are not checked.
func CheckInput(name string, n int64) error {
	r, ok := inputRange[name]
	if !ok {
		return nil
	}
	if n < r.min || n > r.max {
		return fmt.Errorf("%s(%d): allowed up to %d: %w", name, n, r.max, ErrInputOutOfRange)
	}
	return nil
}

// Lookup returns the exercise registered under name
func Lookup(name string) (Func, bool) {
	fn, ok := registry[name]
	return fn, ok
}

// Names returns the registered exercise names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
