package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeData(t *testing.T) {
	stats, err := AnalyzeData([]float64{4, 1, 3, 2})
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Count)
	assert.Equal(t, 10.0, stats.Sum)
	assert.Equal(t, 2.5, stats.Mean)
	assert.Equal(t, 2.5, stats.Median)
	assert.Equal(t, 1.0, stats.Min)
	assert.Equal(t, 4.0, stats.Max)
	assert.Equal(t, 3.0, stats.Range)

	t.Run("odd-length median", func(t *testing.T) {
		stats, err := AnalyzeData([]float64{9, 1, 5})
		require.NoError(t, err)
		assert.Equal(t, 5.0, stats.Median)
	})

	t.Run("empty series", func(t *testing.T) {
		_, err := AnalyzeData(nil)
		assert.Error(t, err)
	})
}

func TestFindPatterns(t *testing.T) {
	t.Run("increasing series", func(t *testing.T) {
		p, err := FindPatterns([]float64{1, 3, 6})
		require.NoError(t, err)
		assert.Equal(t, []float64{2, 3}, p.Differences)
		assert.Equal(t, 2.5, p.AvgDifference)
		assert.True(t, p.Increasing)
		assert.False(t, p.Decreasing)
	})

	t.Run("mixed series is neither", func(t *testing.T) {
		p, err := FindPatterns([]float64{1, 3, 2})
		require.NoError(t, err)
		assert.False(t, p.Increasing)
		assert.False(t, p.Decreasing)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := FindPatterns([]float64{1})
		assert.Error(t, err)
	})
}

func TestPredictTrend(t *testing.T) {
	t.Run("perfect line", func(t *testing.T) {
		trend, err := PredictTrend([]float64{10, 20, 30, 40})
		require.NoError(t, err)
		assert.Equal(t, "upward", trend.Direction)
		assert.InDelta(t, 10, trend.Slope, 1e-9)
		assert.InDelta(t, 10, trend.Intercept, 1e-9)
		require.Len(t, trend.Predictions, 3)
		assert.InDelta(t, 50, trend.Predictions[0], 1e-9)
		assert.InDelta(t, 60, trend.Predictions[1], 1e-9)
		assert.InDelta(t, 70, trend.Predictions[2], 1e-9)
	})

	t.Run("downward trend", func(t *testing.T) {
		trend, err := PredictTrend([]float64{30, 20, 10})
		require.NoError(t, err)
		assert.Equal(t, "downward", trend.Direction)
		assert.InDelta(t, -10, trend.Slope, 1e-9)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := PredictTrend([]float64{1})
		assert.Error(t, err)
	})
}
