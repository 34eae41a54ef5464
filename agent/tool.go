package agent

import (
	"fmt"
	"reflect"
	"time"

	"github.com/roundtable-dev/roundtable/internal/observability"
)

// ParamType is a shallow type tag for a declared tool parameter. Validation
// checks arguments against these tags; it is not full type-checking.
type ParamType string

const (
	ParamNumber ParamType = "number"
	ParamString ParamType = "string"
	ParamBool   ParamType = "bool"
	ParamList   ParamType = "list"
	ParamMap    ParamType = "map"
	ParamAny    ParamType = "any"
)

// Args holds named arguments for a tool invocation.
type Args map[string]any

// Tool is a named, described, invocable capability with a declared parameter
// shape. Tools are stateless across invocations; any state a callable needs
// lives in the caller's arguments. A Tool has no internal mutable state after
// construction and is safe for concurrent use.
type Tool struct {
	// Name is unique within a single agent's registry. The same name may be
	// registered by different agents; there is no cross-agent namespace.
	Name string

	// Description is shown in catalogs and registry snapshots.
	Description string

	// Params maps each declared parameter name to its expected type tag.
	// Every declared parameter is required.
	Params map[string]ParamType

	// Fn is the bound callable. It receives validated (and for numbers,
	// normalized) arguments and returns a serializable value or an error.
	Fn func(Args) (any, error)
}

// Invoke validates args against the declared parameters and executes the
// callable. Missing parameters or failed coercion yield an ArgumentError
// without invoking the callable. A callable that returns an error or panics
// yields an ExecutionError; failures never propagate out of Invoke.
func (t *Tool) Invoke(args Args) (result any, err error) {
	start := time.Now()
	defer func() {
		status := "success"
		if err != nil {
			status = "error"
		}
		observability.RecordToolCall(t.Name, status, time.Since(start))
	}()

	validated, err := t.validate(args)
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &ExecutionError{Tool: t.Name, Cause: fmt.Errorf("panic: %v", r)}
		}
	}()

	out, callErr := t.Fn(validated)
	if callErr != nil {
		return nil, &ExecutionError{Tool: t.Name, Cause: callErr}
	}
	return out, nil
}

// validate checks every declared parameter and returns a copy of args with
// numeric values normalized to float64. Undeclared extra arguments pass
// through untouched.
func (t *Tool) validate(args Args) (Args, error) {
	validated := make(Args, len(args))
	for k, v := range args {
		validated[k] = v
	}

	for name, typ := range t.Params {
		v, ok := args[name]
		if !ok {
			return nil, &ArgumentError{Tool: t.Name, Param: name, Reason: "missing"}
		}

		switch typ {
		case ParamNumber:
			f, ok := toFloat(v)
			if !ok {
				return nil, &ArgumentError{
					Tool: t.Name, Param: name,
					Reason: fmt.Sprintf("expected number, got %T", v),
				}
			}
			validated[name] = f
		case ParamString:
			if _, ok := v.(string); !ok {
				return nil, &ArgumentError{
					Tool: t.Name, Param: name,
					Reason: fmt.Sprintf("expected string, got %T", v),
				}
			}
		case ParamBool:
			if _, ok := v.(bool); !ok {
				return nil, &ArgumentError{
					Tool: t.Name, Param: name,
					Reason: fmt.Sprintf("expected bool, got %T", v),
				}
			}
		case ParamList:
			k := reflect.ValueOf(v).Kind()
			if k != reflect.Slice && k != reflect.Array {
				return nil, &ArgumentError{
					Tool: t.Name, Param: name,
					Reason: fmt.Sprintf("expected list, got %T", v),
				}
			}
		case ParamMap:
			if reflect.ValueOf(v).Kind() != reflect.Map {
				return nil, &ArgumentError{
					Tool: t.Name, Param: name,
					Reason: fmt.Sprintf("expected map, got %T", v),
				}
			}
		case ParamAny:
			// anything goes
		default:
			return nil, &ArgumentError{
				Tool: t.Name, Param: name,
				Reason: fmt.Sprintf("unknown parameter type tag %q", typ),
			}
		}
	}

	return validated, nil
}

// toFloat coerces any Go numeric kind to float64. Coercion for numbers is
// permissive; all other tags are strict.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// Floats coerces a list argument to []float64, accepting any slice of
// numeric values. Tool callables use this to unpack ParamList arguments that
// carry numeric series.
func Floats(v any) ([]float64, error) {
	switch s := v.(type) {
	case []float64:
		return s, nil
	case []any:
		out := make([]float64, len(s))
		for i, e := range s {
			f, ok := toFloat(e)
			if !ok {
				return nil, fmt.Errorf("element %d: expected number, got %T", i, e)
			}
			out[i] = f
		}
		return out, nil
	case []int:
		out := make([]float64, len(s))
		for i, e := range s {
			out[i] = float64(e)
		}
		return out, nil
	}
	return nil, fmt.Errorf("expected numeric list, got %T", v)
}

// Strings coerces a list argument to []string.
func Strings(v any) ([]string, error) {
	switch s := v.(type) {
	case []string:
		return s, nil
	case []any:
		out := make([]string, len(s))
		for i, e := range s {
			str, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("element %d: expected string, got %T", i, e)
			}
			out[i] = str
		}
		return out, nil
	}
	return nil, fmt.Errorf("expected string list, got %T", v)
}
