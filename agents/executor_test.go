package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roundtable-dev/roundtable/agent"
	"github.com/roundtable-dev/roundtable/tools"
)

func TestExecutorCalculate(t *testing.T) {
	mgr := agent.NewManager()
	executor := NewExecutor("Executor")
	require.NoError(t, mgr.Register(executor))

	reply := askAndDispatch(t, mgr, executor, map[string]any{
		"type":       "calculate",
		"expression": "2 + 3 * 4",
	})
	require.Equal(t, agent.TypeResponse, reply.Type)
	assert.Equal(t, 14.0, reply.Data["result"])
}

func TestExecutorSimulate(t *testing.T) {
	mgr := agent.NewManager()
	executor := NewExecutor("Executor")
	require.NoError(t, mgr.Register(executor))

	reply := askAndDispatch(t, mgr, executor, map[string]any{
		"type":          "simulate",
		"steps":         4,
		"initial_value": 100,
		"growth_rate":   0.5,
	})
	require.Equal(t, agent.TypeResponse, reply.Type)

	sim, ok := reply.Data["result"].(*tools.Simulation)
	require.True(t, ok)
	assert.Equal(t, 4, sim.Steps)
	assert.InDelta(t, 337.5, sim.FinalValue, 1e-9)
}

func TestExecutorBadExpression(t *testing.T) {
	mgr := agent.NewManager()
	executor := NewExecutor("Executor")
	require.NoError(t, mgr.Register(executor))

	reply := askAndDispatch(t, mgr, executor, map[string]any{
		"type":       "calculate",
		"expression": "2 +",
	})
	assert.Equal(t, agent.TypeError, reply.Type)
	assert.Contains(t, reply.Data, "error")
}
