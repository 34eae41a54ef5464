package agent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/roundtable-dev/roundtable/internal/observability"
)

// Termination reports why ExecuteAgents stopped.
type Termination string

const (
	// TerminatedByQuiescence means a completed round left no agent with
	// pending work.
	TerminatedByQuiescence Termination = "quiescence"

	// TerminatedByBudget means the round budget was exhausted while traffic
	// was still flowing.
	TerminatedByBudget Termination = "budget"
)

// Report carries the execution statistics returned by ExecuteAgents.
type Report struct {
	// Rounds is the number of rounds actually run.
	Rounds int

	// MessagesRouted is the number of messages routed during the call,
	// including ERROR replies synthesized for handler failures.
	MessagesRouted int64

	// TerminatedBy records whether the loop stopped by quiescence or by
	// exhausting the round budget.
	TerminatedBy Termination
}

// AgentInfo is a read-only summary of one registered agent, consumed by
// visualization and export collaborators.
type AgentInfo struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Role       string   `json:"role"`
	Status     Status   `json:"status"`
	Tools      []string `json:"tools"`
	QueueDepth int      `json:"queue_depth"`
	MemorySize int      `json:"memory_size"`
}

// Manager owns the agent registry, the global ordered message history, the
// undeliverable log, and the sequence counter. Agents never mutate these
// directly; all delivery goes through Route. There is no implicit global
// manager: construct one per run and pass it to every agent that routes.
type Manager struct {
	mu            sync.RWMutex
	agents        map[string]*Agent
	order         []string // registration order, defines round-robin order
	history       []*Message
	undeliverable []*Message
	seq           int64

	tracer trace.Tracer
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{
		agents: make(map[string]*Agent),
		tracer: otel.Tracer("github.com/roundtable-dev/roundtable/agent"),
	}
}

// Register binds the agent's name in the registry and binds the manager to
// the agent for routing. A taken name fails with DuplicateAgentError and
// leaves the registry unchanged.
func (m *Manager) Register(a *Agent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := a.Name()
	if _, exists := m.agents[name]; exists {
		return &DuplicateAgentError{Name: name}
	}

	m.agents[name] = a
	m.order = append(m.order, name)
	a.bind(m)
	return nil
}

// Get retrieves a registered agent by name.
func (m *Manager) Get(name string) (*Agent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, exists := m.agents[name]
	if !exists {
		return nil, &UnknownReceiverError{Receiver: name}
	}
	return a, nil
}

// List returns all registered agent names in registration order.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, len(m.order))
	copy(names, m.order)
	return names
}

// Route delivers a message: it assigns the next sequence number, appends the
// message to the global history, and enqueues it at the tail of the
// receiver's queue. An unregistered receiver fails with UnknownReceiverError;
// the message is recorded in the undeliverable log for observability but
// never enters history and is not enqueued anywhere.
func (m *Manager) Route(msg *Message) error {
	m.mu.Lock()

	receiver, exists := m.agents[msg.Receiver]
	if !exists {
		m.undeliverable = append(m.undeliverable, msg)
		m.mu.Unlock()
		observability.RecordUndeliverable(string(msg.Type))
		return &UnknownReceiverError{Receiver: msg.Receiver}
	}

	m.seq++
	msg.Sequence = m.seq
	m.history = append(m.history, msg)
	m.mu.Unlock()

	receiver.enqueue(msg)
	observability.RecordRouted(string(msg.Type))
	return nil
}

// ExecuteAgents drives all registered agents in bounded rounds. One round
// gives every agent exactly one DispatchNext, in registration order, so no
// agent can monopolize a round with replies to itself. The loop stops when a
// completed round leaves every queue empty (quiescence) or when
// maxIterations rounds have run (budget), whichever comes first.
//
// A handler failure inside a round is converted into an ERROR-typed message
// addressed back to the offending message's sender and never aborts the
// round; the loop itself only ever returns statistics.
func (m *Manager) ExecuteAgents(ctx context.Context, maxIterations int) Report {
	ctx, span := m.tracer.Start(ctx, "manager.execute_agents",
		trace.WithAttributes(attribute.Int("roundtable.max_iterations", maxIterations)))
	defer span.End()

	startSeq := m.currentSeq()
	report := Report{TerminatedBy: TerminatedByBudget}

	for report.Rounds < maxIterations {
		report.Rounds++
		m.runRound(ctx, report.Rounds)
		if !m.anyPending() {
			report.TerminatedBy = TerminatedByQuiescence
			break
		}
	}

	report.MessagesRouted = m.currentSeq() - startSeq
	span.SetAttributes(
		attribute.Int("roundtable.rounds", report.Rounds),
		attribute.Int64("roundtable.messages_routed", report.MessagesRouted),
		attribute.String("roundtable.terminated_by", string(report.TerminatedBy)),
	)
	return report
}

// runRound gives every registered agent one dispatch opportunity.
func (m *Manager) runRound(ctx context.Context, round int) {
	ctx, span := m.tracer.Start(ctx, "manager.round",
		trace.WithAttributes(attribute.Int("roundtable.round", round)))
	defer span.End()

	start := time.Now()
	for _, a := range m.roster() {
		_, err := a.DispatchNext(ctx)
		if err == nil {
			continue
		}

		var he *HandlerError
		if errors.As(err, &he) {
			m.routeErrorReply(he)
			continue
		}
		// Reply routing failures are already captured in the undeliverable
		// log by Route; nothing further to do here.
	}
	observability.RecordRound(time.Since(start))
}

// routeErrorReply converts a handler failure into an ERROR-typed message
// addressed to the offending message's sender. When that sender is unknown
// or unregistered, Route records the reply in the undeliverable log, which
// is the "unrouted failure" path.
func (m *Manager) routeErrorReply(he *HandlerError) {
	reply, err := NewMessage(he.Agent, he.Msg.Sender, TypeError,
		fmt.Sprintf("handler failed: %v", he.Err))
	if err != nil {
		return
	}
	reply.ParentID = he.Msg.ID
	reply.Data = map[string]any{"error": he.Err.Error()}

	// Best effort: an unregistered sender leaves the reply in the
	// undeliverable log.
	_ = m.Route(reply)
	observability.RecordHandlerFailure(he.Agent)
}

// roster snapshots the agents in registration order.
func (m *Manager) roster() []*Agent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	agents := make([]*Agent, 0, len(m.order))
	for _, name := range m.order {
		agents = append(agents, m.agents[name])
	}
	return agents
}

// anyPending reports whether any registered agent still has queued work.
func (m *Manager) anyPending() bool {
	for _, a := range m.roster() {
		if a.QueueDepth() > 0 {
			return true
		}
	}
	return false
}

func (m *Manager) currentSeq() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.seq
}

// History returns the global message history in sequence order. The returned
// slice is a copy; the messages themselves are shared and must be treated as
// read-only.
func (m *Manager) History() []*Message {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Message, len(m.history))
	copy(out, m.history)
	return out
}

// Undeliverable returns the messages that failed routing because their
// receiver was not registered. They carry no sequence number and are not
// part of history.
func (m *Manager) Undeliverable() []*Message {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Message, len(m.undeliverable))
	copy(out, m.undeliverable)
	return out
}

// Snapshot returns a read-only summary of every registered agent, keyed by
// name. Visualization and export collaborators consume this view; it has no
// write access back into the manager's state.
func (m *Manager) Snapshot() map[string]AgentInfo {
	m.mu.RLock()
	order := make([]string, len(m.order))
	copy(order, m.order)
	agents := make(map[string]*Agent, len(m.agents))
	for name, a := range m.agents {
		agents[name] = a
	}
	m.mu.RUnlock()

	out := make(map[string]AgentInfo, len(order))
	for _, name := range order {
		a := agents[name]
		out[name] = AgentInfo{
			ID:         a.ID(),
			Name:       a.Name(),
			Role:       a.Role(),
			Status:     a.Status(),
			Tools:      a.Tools(),
			QueueDepth: a.QueueDepth(),
			MemorySize: len(a.Memory()),
		}
	}
	return out
}
