package tools

import (
	"errors"
	"fmt"
	"go/constant"
	"go/token"
	"go/types"
)

// Add returns a + b.
func Add(a, b float64) float64 {
	return a + b
}

// Multiply returns a * b.
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns a / b, rejecting a zero divisor.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, errors.New("cannot divide by zero")
	}
	return a / b, nil
}

// Average returns the arithmetic mean of numbers.
func Average(numbers []float64) (float64, error) {
	if len(numbers) == 0 {
		return 0, errors.New("cannot calculate average of empty list")
	}
	sum := 0.0
	for _, n := range numbers {
		sum += n
	}
	return sum / float64(len(numbers)), nil
}

// EvalExpression evaluates a constant arithmetic expression such as
// "2 + 3*4" or "(10 - 4) / 2". Only constant expressions are accepted;
// identifiers and function calls are rejected by the type checker.
func EvalExpression(expression string) (float64, error) {
	tv, err := types.Eval(token.NewFileSet(), nil, token.NoPos, expression)
	if err != nil {
		return 0, fmt.Errorf("invalid expression: %w", err)
	}
	if tv.Value == nil {
		return 0, fmt.Errorf("invalid expression: %q is not a constant expression", expression)
	}
	v := constant.ToFloat(tv.Value)
	if v.Kind() != constant.Float && v.Kind() != constant.Int {
		return 0, fmt.Errorf("invalid expression: %q is not numeric", expression)
	}
	f, _ := constant.Float64Val(v)
	return f, nil
}
