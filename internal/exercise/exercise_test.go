package exercise

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExercises(t *testing.T) {
	tests := []struct {
		name string
		fn   Func
		in   int64
		want []int64
	}{
		{"count up", CountUp, 3, []int64{0, 1, 2, 3}},
		{"count up zero", CountUp, 0, []int64{0}},
		{"count up negative", CountUp, -1, []int64{}},
		{"count down", CountDown, 3, []int64{3, 2, 1, 0}},
		{"count down negative", CountDown, -1, []int64{}},
		{"factorial", Factorial, 4, []int64{24}},
		{"factorial ten", Factorial, 10, []int64{3628800}},
		{"factorial one", Factorial, 1, []int64{1}},
		{"factorial negative", Factorial, -1, []int64{1}},
		{"fibonacci", Fibonacci, 8, []int64{0, 1, 1, 2, 3, 5, 8, 13, 21}},
		{"fibonacci zero", Fibonacci, 0, []int64{0}},
		{"fibonacci one", Fibonacci, 1, []int64{0, 1}},
		{"fibonacci negative", Fibonacci, -3, []int64{}},
		{"squared", Squared, 5, []int64{55}},
		{"squared two", Squared, 2, []int64{5}},
		{"squared zero", Squared, 0, []int64{0, 1}},
		{"squared one", Squared, 1, []int64{0, 1}},
		{"squared negative", Squared, -2, []int64{0}},
		{"times table", TimesTable, 6, []int64{6, 12, 18, 24, 30, 36, 42, 48, 54, 60, 66, 72}},
		{"times table negative", TimesTable, -1, []int64{-1, -2, -3, -4, -5, -6, -7, -8, -9, -10, -11, -12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.in))
		})
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		fn, ok := Lookup(name)
		assert.True(t, ok, name)
		assert.NotNil(t, fn, name)
	}

	_, ok := Lookup("missing")
	assert.False(t, ok)
	assert.Equal(t, []string{"0-N", "N-0", "factorial", "fibonacci", "squared", "times-table"}, Names())
}

func TestCheckInput(t *testing.T) {
	tests := []struct {
		name    string
		n       int64
		wantErr bool
	}{
		{"factorial", 20, false},
		{"factorial", 21, true},
		{"factorial", -1, false},
		{"fibonacci", 92, false},
		{"fibonacci", 93, true},
		{"0-N", MaxSequenceLength, false},
		{"0-N", math.MaxInt64, true},
		{"N-0", MaxSequenceLength + 1, true},
		{"squared", 1 << 40, true},
		{"times-table", math.MaxInt64, true},
		{"times-table", math.MinInt64, true},
		{"times-table", -1, false},
		{"unknown", math.MaxInt64, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s(%d)", tt.name, tt.n), func(t *testing.T) {
			err := CheckInput(tt.name, tt.n)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInputOutOfRange)
				return
			}
			assert.NoError(t, err)
		})
	}
}
