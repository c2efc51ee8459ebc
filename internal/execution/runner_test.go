package execution

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exrun/internal/domain"
	"exrun/internal/exercise"
	"exrun/internal/fixtures"
)

// stubTarget returns canned outputs keyed by the first input
type stubTarget struct {
	outputs map[int64][]int64
	err     error
	panics  bool
	calls   int
}

func (s *stubTarget) Call(_ context.Context, inputs []int64) ([]int64, error) {
	s.calls++
	if s.panics {
		panic("boom")
	}
	if s.err != nil {
		return nil, s.err
	}
	key := inputs[0]
	inputs[0] = 999 // must not leak back into the fixture
	return s.outputs[key], nil
}

func (s *stubTarget) String() string { return "stub" }

func TestRunner_BuiltinSuitesPass(t *testing.T) {
	suites, err := fixtures.Suites()
	require.NoError(t, err)

	runner := NewRunner()
	for _, suite := range suites {
		t.Run(suite.Name, func(t *testing.T) {
			fn, ok := exercise.Lookup(suite.Name)
			require.True(t, ok)

			result := runner.Run(context.Background(), FuncTarget{Name: suite.Name, Fn: fn}, suite)
			require.NoError(t, result.Error)
			require.Len(t, result.Cases, len(suite.Cases))
			for _, c := range result.Cases {
				assert.True(t, c.Passed, "case %d: %s", c.Index, c.Message)
				assert.Empty(t, c.Message)
			}
			assert.True(t, result.Success())
		})
	}
}

func TestRunner_FailuresDoNotAbortSuite(t *testing.T) {
	suite := domain.Suite{
		Target: "factorial",
		Cases: []domain.TestCase{
			{Inputs: []int64{4}, Outputs: []int64{24}},
			{Inputs: []int64{-1}, Outputs: []int64{1}, Message: "negative input"},
			{Inputs: []int64{1}, Outputs: []int64{1}},
		},
	}
	// Wrong on purpose: returns n for every input
	identity := FuncTarget{Name: "identity", Fn: func(n int64) []int64 { return []int64{n} }}

	result := NewRunner().Run(context.Background(), identity, suite)

	require.Len(t, result.Cases, 3)
	assert.False(t, result.Cases[0].Passed)
	assert.Contains(t, result.Cases[0].Message, "expected [24], got [4]")

	assert.False(t, result.Cases[1].Passed)
	assert.Equal(t, "negative input", result.Cases[1].Message, "fixture message is used verbatim")

	assert.True(t, result.Cases[2].Passed)
	assert.False(t, result.Success())

	passed, failed := result.Counts()
	assert.Equal(t, 1, passed)
	assert.Equal(t, 2, failed)
}

func TestRunner_TargetErrorsAndPanics(t *testing.T) {
	suite := domain.Suite{
		Target: "x",
		Cases: []domain.TestCase{
			{Inputs: []int64{1}, Outputs: []int64{1}},
			{Inputs: []int64{2}, Outputs: []int64{2}, Message: "custom"},
		},
	}

	t.Run("error", func(t *testing.T) {
		target := &stubTarget{err: errors.New("exit status 1")}
		result := NewRunner().Run(context.Background(), target, suite)
		require.Len(t, result.Cases, 2)
		assert.Equal(t, 2, target.calls)
		assert.EqualError(t, result.Cases[0].Error, "exit status 1")
		assert.Equal(t, "exit status 1", result.Cases[0].Message)
		assert.Equal(t, "custom", result.Cases[1].Message)
	})

	t.Run("panic", func(t *testing.T) {
		target := &stubTarget{panics: true}
		result := NewRunner().Run(context.Background(), target, suite)
		require.Len(t, result.Cases, 2)
		assert.ErrorContains(t, result.Cases[0].Error, "stub panicked: boom")
		assert.False(t, result.Success())
	})

	t.Run("inputs are copied", func(t *testing.T) {
		target := &stubTarget{outputs: map[int64][]int64{1: {1}, 2: {2}}}
		result := NewRunner().Run(context.Background(), target, suite)
		assert.True(t, result.Success())
		assert.Equal(t, []int64{1}, suite.Cases[0].Inputs)
	})
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	suite := domain.Suite{Target: "x", Cases: []domain.TestCase{{Inputs: []int64{1}, Outputs: []int64{1}}}}
	result := NewRunner().Run(ctx, &stubTarget{}, suite)

	assert.ErrorIs(t, result.Error, context.Canceled)
	assert.Empty(t, result.Cases)
}

func TestRunner_Arity(t *testing.T) {
	suite := domain.Suite{Target: "factorial", Cases: []domain.TestCase{{Inputs: []int64{1, 2}, Outputs: []int64{1}}}}
	result := NewRunner().Run(context.Background(), FuncTarget{Name: "factorial", Fn: exercise.Factorial}, suite)

	require.Len(t, result.Cases, 1)
	assert.ErrorIs(t, result.Cases[0].Error, ErrArity)
}

func TestRunner_InputOutOfRange(t *testing.T) {
	suite := domain.Suite{Target: "0-N", Cases: []domain.TestCase{
		{Inputs: []int64{math.MaxInt64}, Outputs: []int64{0}, Message: "too big"},
		{Inputs: []int64{2}, Outputs: []int64{0, 1, 2}},
	}}
	result := NewRunner().Run(context.Background(), FuncTarget{Name: "0-N", Fn: exercise.CountUp}, suite)

	require.Len(t, result.Cases, 2)
	assert.ErrorIs(t, result.Cases[0].Error, exercise.ErrInputOutOfRange)
	assert.Equal(t, "too big", result.Cases[0].Message)
	assert.True(t, result.Cases[1].Passed)
}
