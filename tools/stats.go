package tools

import (
	"errors"
	"sort"
)

// Stats summarizes a numeric series.
type Stats struct {
	Count  int     `json:"count"`
	Sum    float64 `json:"sum"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Range  float64 `json:"range"`
}

// AnalyzeData computes summary statistics for a numeric series.
func AnalyzeData(data []float64) (*Stats, error) {
	if len(data) == 0 {
		return nil, errors.New("cannot analyze empty data")
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	n := len(data)
	sum := 0.0
	for _, v := range data {
		sum += v
	}

	var median float64
	if n%2 == 1 {
		median = sorted[n/2]
	} else {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return &Stats{
		Count:  n,
		Sum:    sum,
		Mean:   sum / float64(n),
		Median: median,
		Min:    sorted[0],
		Max:    sorted[n-1],
		Range:  sorted[n-1] - sorted[0],
	}, nil
}

// Patterns describes the step-to-step structure of a series.
type Patterns struct {
	Differences   []float64 `json:"differences"`
	AvgDifference float64   `json:"avg_difference"`
	Increasing    bool      `json:"is_increasing"`
	Decreasing    bool      `json:"is_decreasing"`
}

// FindPatterns computes consecutive differences and monotonicity.
func FindPatterns(data []float64) (*Patterns, error) {
	if len(data) < 2 {
		return nil, errors.New("need at least 2 data points")
	}

	diffs := make([]float64, len(data)-1)
	sum := 0.0
	increasing, decreasing := true, true
	for i := range diffs {
		d := data[i+1] - data[i]
		diffs[i] = d
		sum += d
		if d < 0 {
			increasing = false
		}
		if d > 0 {
			decreasing = false
		}
	}

	return &Patterns{
		Differences:   diffs,
		AvgDifference: sum / float64(len(diffs)),
		Increasing:    increasing,
		Decreasing:    decreasing,
	}, nil
}

// Trend is a linear extrapolation of a historical series.
type Trend struct {
	Direction   string    `json:"trend"`
	Slope       float64   `json:"slope"`
	Intercept   float64   `json:"intercept"`
	Predictions []float64 `json:"next_3_predictions"`
}

// PredictTrend fits a least-squares line through the series, indexed by
// position, and predicts the next three values.
func PredictTrend(historical []float64) (*Trend, error) {
	if len(historical) < 2 {
		return nil, errors.New("need at least 2 data points")
	}

	n := float64(len(historical))
	var xSum, ySum, xySum, x2Sum float64
	for i, y := range historical {
		x := float64(i)
		xSum += x
		ySum += y
		xySum += x * y
		x2Sum += x * x
	}

	slope := (n*xySum - xSum*ySum) / (n*x2Sum - xSum*xSum)
	intercept := (ySum - slope*xSum) / n

	predictions := make([]float64, 3)
	for i := range predictions {
		predictions[i] = intercept + slope*(n+float64(i))
	}

	direction := "downward"
	if slope > 0 {
		direction = "upward"
	}

	return &Trend{
		Direction:   direction,
		Slope:       slope,
		Intercept:   intercept,
		Predictions: predictions,
	}, nil
}
