package agents

import (
	"context"
	"fmt"
	"sync"

	"github.com/roundtable-dev/roundtable/agent"
)

// RoleCoordinator is the role name for the workflow coordination agent.
const RoleCoordinator = "coordinator"

func init() {
	agent.RegisterRole(RoleCoordinator, func(def agent.Def, _ *agent.Manager) (*agent.Agent, error) {
		a, _ := NewCoordinator(defName(def, "Coordinator"))
		return a, nil
	})
}

// Workflow tracks one delegated task batch.
type Workflow struct {
	ID        string           `json:"id"`
	Tasks     []map[string]any `json:"tasks"`
	Status    string           `json:"status"`
	Delegated []string         `json:"delegated_to"`
}

// Coordinator is the handler behind the coordination agent. It keeps the
// active workflows so callers can inspect delegation state after a run.
type Coordinator struct {
	mu        sync.Mutex
	workflows map[string]*Workflow
}

// NewCoordinator creates the coordination agent and returns the handler for
// workflow introspection. The agent answers QUERY messages carrying a
// "workflow_id" and a "tasks" list; each task is delegated to the planner,
// executor, or analyzer by its "type" field, with the task's fields passed
// through as the delegated payload. The reply summarizes the workflow.
func NewCoordinator(name string) (*agent.Agent, *Coordinator) {
	c := &Coordinator{workflows: make(map[string]*Workflow)}
	a := agent.New(name, "Inter-Agent Coordination", agent.WithHandler(c))
	return a, c
}

// Handle implements agent.Handler.
func (c *Coordinator) Handle(ctx context.Context, a *agent.Agent, msg *agent.Message) (*agent.Message, error) {
	if msg.Type != agent.TypeQuery {
		return nil, nil
	}

	workflowID := stringField(msg.Data, "workflow_id", "workflow_1")
	rawTasks := listField(msg.Data, "tasks")

	wf := &Workflow{ID: workflowID, Status: "coordinating"}
	for _, raw := range rawTasks {
		task, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		wf.Tasks = append(wf.Tasks, task)

		payload := map[string]any{"workflow_id": workflowID}
		for k, v := range task {
			payload[k] = v
		}

		target := delegationTarget(stringField(task, "type", "full"))
		if _, err := a.Send(target, agent.TypeQuery,
			fmt.Sprintf("Task for workflow %s", workflowID), payload,
		); err != nil {
			// Delegation to a missing agent is surfaced through the
			// manager's undeliverable log; the workflow records the attempt.
			wf.Status = "partial"
			continue
		}
		wf.Delegated = append(wf.Delegated, target)
	}

	c.mu.Lock()
	c.workflows[workflowID] = wf
	c.mu.Unlock()

	return a.Reply(msg, agent.TypeResponse,
		fmt.Sprintf("Workflow %s initialized", workflowID),
		map[string]any{"workflow_id": workflowID, "task_count": len(wf.Tasks)})
}

// WorkflowStatus returns the recorded state of a workflow, or nil when the
// ID is unknown.
func (c *Coordinator) WorkflowStatus(workflowID string) *Workflow {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.workflows[workflowID]
}

// delegationTarget maps a task type to the conventional agent name. Types
// the planner and executor understand go to them; anything else is treated
// as an analysis task.
func delegationTarget(taskType string) string {
	switch taskType {
	case "breakdown", "prioritize":
		return "Planner"
	case "calculate", "simulate":
		return "Executor"
	default:
		return "Analyzer"
	}
}
