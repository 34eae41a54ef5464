package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	assert.Equal(t, 5.0, Add(2, 3))
	assert.Equal(t, 6.0, Multiply(2, 3))

	q, err := Divide(10, 4)
	require.NoError(t, err)
	assert.Equal(t, 2.5, q)

	_, err = Divide(1, 0)
	assert.Error(t, err)
}

func TestAverage(t *testing.T) {
	avg, err := Average([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2.5, avg)

	_, err = Average(nil)
	assert.Error(t, err)
}

func TestEvalExpression(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"2 + 3", 5},
		{"10 * 5 - 3", 47},
		{"(1 + 2) * 4", 12},
		{"7.5 / 2.5", 3},
	}
	for _, tt := range tests {
		got, err := EvalExpression(tt.expr)
		require.NoError(t, err, tt.expr)
		assert.InDelta(t, tt.want, got, 1e-9, tt.expr)
	}

	t.Run("invalid expressions", func(t *testing.T) {
		for _, expr := range []string{"", "2 +", `os.Exit(1)`, `"not a number"`} {
			_, err := EvalExpression(expr)
			assert.Error(t, err, "expected %q to fail", expr)
		}
	})
}

func TestSimulateProcess(t *testing.T) {
	sim, err := SimulateProcess(3, 100, 0.1)
	require.NoError(t, err)
	assert.Equal(t, 3, sim.Steps)
	require.Len(t, sim.Values, 3)
	assert.Equal(t, 100.0, sim.Values[0])
	assert.InDelta(t, 110, sim.Values[1], 1e-9)
	assert.InDelta(t, 121, sim.FinalValue, 1e-9)
	assert.InDelta(t, 21, sim.TotalGrowth, 1e-9)

	t.Run("single step returns only the initial value", func(t *testing.T) {
		sim, err := SimulateProcess(1, 50, 0.5)
		require.NoError(t, err)
		assert.Equal(t, []float64{50}, sim.Values)
		assert.Zero(t, sim.TotalGrowth)
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := SimulateProcess(0, 100, 0.1)
		assert.Error(t, err)
		_, err = SimulateProcess(5, 0, 0.1)
		assert.Error(t, err)
	})
}
