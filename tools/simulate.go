package tools

import "errors"

// Simulation holds the trajectory of a compound-growth process.
type Simulation struct {
	Steps        int       `json:"steps"`
	InitialValue float64   `json:"initial_value"`
	GrowthRate   float64   `json:"growth_rate"`
	FinalValue   float64   `json:"final_value"`
	Values       []float64 `json:"values"`
	TotalGrowth  float64   `json:"total_growth"`
}

// SimulateProcess runs a compound-growth process for the given number of
// steps: each step multiplies the previous value by (1 + growthRate).
// TotalGrowth is the percentage change from the initial value.
func SimulateProcess(steps int, initialValue, growthRate float64) (*Simulation, error) {
	if steps < 1 {
		return nil, errors.New("need at least 1 simulation step")
	}
	if initialValue == 0 {
		return nil, errors.New("initial value must be non-zero")
	}

	values := make([]float64, steps)
	values[0] = initialValue
	for i := 1; i < steps; i++ {
		values[i] = values[i-1] * (1 + growthRate)
	}

	final := values[steps-1]
	return &Simulation{
		Steps:        steps,
		InitialValue: initialValue,
		GrowthRate:   growthRate,
		FinalValue:   final,
		Values:       values,
		TotalGrowth:  (final - initialValue) / initialValue * 100,
	}, nil
}
