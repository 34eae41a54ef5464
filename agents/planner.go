package agents

import (
	"context"
	"fmt"

	"github.com/roundtable-dev/roundtable/agent"
	"github.com/roundtable-dev/roundtable/tools"
)

// RolePlanner is the role name for the task planning agent.
const RolePlanner = "planner"

func init() {
	agent.RegisterRole(RolePlanner, func(def agent.Def, _ *agent.Manager) (*agent.Agent, error) {
		return NewPlanner(defName(def, "Planner")), nil
	})
}

// NewPlanner creates the task planning agent. It answers QUERY messages with
// a planning type under "type": "breakdown" (the default; payload "task" and
// optional "num_subtasks") or "prioritize" (payload "tasks").
func NewPlanner(name string) *agent.Agent {
	return agent.New(name, "Task Planning and Prioritization",
		agent.WithTools(
			tools.BreakDownTaskTool(),
			tools.PrioritizeTasksTool(),
		),
		agent.WithHandler(agent.HandlerFunc(handlePlanningQuery)),
	)
}

func handlePlanningQuery(ctx context.Context, a *agent.Agent, msg *agent.Message) (*agent.Message, error) {
	if msg.Type != agent.TypeQuery {
		return nil, nil
	}

	var (
		result any
		err    error
	)
	switch planningType := stringField(msg.Data, "type", "breakdown"); planningType {
	case "breakdown":
		result, err = a.UseTool("break_down_task", agent.Args{
			"task_description": stringField(msg.Data, "task", ""),
			"num_subtasks":     numberField(msg.Data, "num_subtasks", 3),
		})
	case "prioritize":
		tasks := listField(msg.Data, "tasks")
		result, err = a.UseTool("prioritize_tasks", agent.Args{"tasks": tasks})
	default:
		return a.Reply(msg, agent.TypeError,
			fmt.Sprintf("unknown planning type: %s", planningType), nil)
	}

	if err != nil {
		return a.Reply(msg, agent.TypeError,
			fmt.Sprintf("planning error: %v", err),
			map[string]any{"error": err.Error()})
	}

	return a.Reply(msg, agent.TypeResponse, "Planning complete",
		map[string]any{"result": result})
}
