package agents

import (
	"context"
	"fmt"

	"github.com/roundtable-dev/roundtable/agent"
	"github.com/roundtable-dev/roundtable/tools"
)

// RoleExecutor is the role name for the calculation and simulation agent.
const RoleExecutor = "executor"

func init() {
	agent.RegisterRole(RoleExecutor, func(def agent.Def, _ *agent.Manager) (*agent.Agent, error) {
		return NewExecutor(defName(def, "Executor")), nil
	})
}

// NewExecutor creates the execution agent. It answers QUERY messages with an
// execution type under "type": "calculate" (the default; payload
// "expression") or "simulate" (payload "steps", "initial_value",
// "growth_rate").
func NewExecutor(name string) *agent.Agent {
	return agent.New(name, "Task Execution and Calculation",
		agent.WithTools(
			tools.CalculateExpressionTool(),
			tools.SimulateProcessTool(),
		),
		agent.WithHandler(agent.HandlerFunc(handleExecutionQuery)),
	)
}

func handleExecutionQuery(ctx context.Context, a *agent.Agent, msg *agent.Message) (*agent.Message, error) {
	if msg.Type != agent.TypeQuery {
		return nil, nil
	}

	var (
		result any
		err    error
	)
	switch executionType := stringField(msg.Data, "type", "calculate"); executionType {
	case "calculate":
		result, err = a.UseTool("calculate_expression", agent.Args{
			"expression": stringField(msg.Data, "expression", ""),
		})
	case "simulate":
		result, err = a.UseTool("simulate_process", agent.Args{
			"steps":         numberField(msg.Data, "steps", 10),
			"initial_value": numberField(msg.Data, "initial_value", 1.0),
			"growth_rate":   numberField(msg.Data, "growth_rate", 0.1),
		})
	default:
		return a.Reply(msg, agent.TypeError,
			fmt.Sprintf("unknown execution type: %s", executionType), nil)
	}

	if err != nil {
		return a.Reply(msg, agent.TypeError,
			fmt.Sprintf("execution error: %v", err),
			map[string]any{"error": err.Error()})
	}

	return a.Reply(msg, agent.TypeResponse, "Execution complete",
		map[string]any{"result": result})
}
