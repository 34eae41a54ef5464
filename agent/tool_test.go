package agent

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addTool() *Tool {
	return &Tool{
		Name:        "add",
		Description: "Adds two numbers",
		Params:      map[string]ParamType{"x": ParamNumber, "y": ParamNumber},
		Fn: func(args Args) (any, error) {
			return args["x"].(float64) + args["y"].(float64), nil
		},
	}
}

func TestToolInvoke(t *testing.T) {
	t.Run("valid arguments", func(t *testing.T) {
		result, err := addTool().Invoke(Args{"x": 2, "y": 3})
		require.NoError(t, err)
		assert.Equal(t, 5.0, result)
	})

	t.Run("missing argument", func(t *testing.T) {
		_, err := addTool().Invoke(Args{"x": 2})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrToolArgument)

		var argErr *ArgumentError
		require.True(t, errors.As(err, &argErr))
		assert.Equal(t, "add", argErr.Tool)
		assert.Equal(t, "y", argErr.Param)
	})

	t.Run("wrong argument type", func(t *testing.T) {
		_, err := addTool().Invoke(Args{"x": 2, "y": "a"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrToolArgument)
	})

	t.Run("numbers are normalized to float64", func(t *testing.T) {
		var got any
		tool := &Tool{
			Name:   "probe",
			Params: map[string]ParamType{"n": ParamNumber},
			Fn: func(args Args) (any, error) {
				got = args["n"]
				return nil, nil
			},
		}
		_, err := tool.Invoke(Args{"n": int64(7)})
		require.NoError(t, err)
		assert.Equal(t, 7.0, got)
	})

	t.Run("function error wraps ErrToolExecution", func(t *testing.T) {
		tool := &Tool{
			Name:   "boom",
			Params: map[string]ParamType{},
			Fn: func(args Args) (any, error) {
				return nil, errors.New("no result")
			},
		}
		_, err := tool.Invoke(Args{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrToolExecution)
	})

	t.Run("panic is recovered into an execution error", func(t *testing.T) {
		tool := &Tool{
			Name:   "panicky",
			Params: map[string]ParamType{},
			Fn: func(args Args) (any, error) {
				panic("unexpected")
			},
		}
		_, err := tool.Invoke(Args{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrToolExecution)
	})

	t.Run("list and string params", func(t *testing.T) {
		tool := &Tool{
			Name:   "typed",
			Params: map[string]ParamType{"items": ParamList, "label": ParamString},
			Fn: func(args Args) (any, error) {
				return args["label"], nil
			},
		}
		result, err := tool.Invoke(Args{"items": []any{1, 2}, "label": "ok"})
		require.NoError(t, err)
		assert.Equal(t, "ok", result)

		_, err = tool.Invoke(Args{"items": "not a list", "label": "ok"})
		assert.ErrorIs(t, err, ErrToolArgument)
	})
}

func TestFloats(t *testing.T) {
	values, err := Floats([]any{1, 2.5, int64(3)})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, 3}, values)

	_, err = Floats([]any{1, "two"})
	assert.Error(t, err)

	_, err = Floats("not a list")
	assert.Error(t, err)
}

func TestStrings(t *testing.T) {
	values, err := Strings([]any{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, values)

	_, err = Strings([]any{"a", 1})
	assert.Error(t, err)
}
