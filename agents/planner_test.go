package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roundtable-dev/roundtable/agent"
	"github.com/roundtable-dev/roundtable/tools"
)

func TestPlannerBreakdown(t *testing.T) {
	mgr := agent.NewManager()
	planner := NewPlanner("Planner")
	require.NoError(t, mgr.Register(planner))

	reply := askAndDispatch(t, mgr, planner, map[string]any{
		"type":         "breakdown",
		"task":         "Organize the launch",
		"num_subtasks": 4,
	})
	require.Equal(t, agent.TypeResponse, reply.Type)

	breakdown, ok := reply.Data["result"].(*tools.Breakdown)
	require.True(t, ok)
	assert.Equal(t, "Organize the launch", breakdown.OriginalTask)
	assert.Equal(t, 4, breakdown.TotalSubtasks)
}

func TestPlannerPrioritize(t *testing.T) {
	mgr := agent.NewManager()
	planner := NewPlanner("Planner")
	require.NoError(t, mgr.Register(planner))

	reply := askAndDispatch(t, mgr, planner, map[string]any{
		"type":  "prioritize",
		"tasks": []any{"low priority chore", "critical hotfix"},
	})
	require.Equal(t, agent.TypeResponse, reply.Type)

	prioritized, ok := reply.Data["result"].(*tools.Prioritized)
	require.True(t, ok)
	assert.Equal(t, "critical hotfix", prioritized.Tasks[0].Task)
}

func TestPlannerDefaultsToBreakdown(t *testing.T) {
	mgr := agent.NewManager()
	planner := NewPlanner("Planner")
	require.NoError(t, mgr.Register(planner))

	reply := askAndDispatch(t, mgr, planner, map[string]any{
		"task": "Untyped planning request",
	})
	require.Equal(t, agent.TypeResponse, reply.Type)

	breakdown, ok := reply.Data["result"].(*tools.Breakdown)
	require.True(t, ok)
	assert.Equal(t, 3, breakdown.TotalSubtasks, "num_subtasks defaults to 3")
}

func TestPlannerUnknownType(t *testing.T) {
	mgr := agent.NewManager()
	planner := NewPlanner("Planner")
	require.NoError(t, mgr.Register(planner))

	reply := askAndDispatch(t, mgr, planner, map[string]any{"type": "gantt"})
	assert.Equal(t, agent.TypeError, reply.Type)
}
