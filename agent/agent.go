package agent

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/roundtable-dev/roundtable/internal/observability"
)

// Status describes whether an agent is currently handling a message.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusProcessing Status = "processing"
)

// Handler is the polymorphic per-role message handler. Each role implements
// the single capability: consume one message, optionally produce one reply.
// Returning a nil reply means the message was consumed with no response.
// The handler runs to completion before the scheduler considers the next
// agent; it must not block on I/O.
type Handler interface {
	Handle(ctx context.Context, a *Agent, msg *Message) (*Message, error)
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(ctx context.Context, a *Agent, msg *Message) (*Message, error)

func (f HandlerFunc) Handle(ctx context.Context, a *Agent, msg *Message) (*Message, error) {
	return f(ctx, a, msg)
}

// State is the mutable record of an agent's identity and status. Memory and
// the tool inventory are held on the Agent itself and exposed through
// accessors.
type State struct {
	ID     string
	Name   string
	Role   string
	Status Status
}

// Agent is a named, stateful actor. It owns its inbound FIFO queue, its tool
// registry, and its memory; no other agent or the manager mutates them
// directly. Messages reach the queue only through Manager.Route.
type Agent struct {
	mu      sync.Mutex
	state   State
	queue   []*Message
	tools   map[string]*Tool
	memory  []*Message
	handler Handler
	mgr     *Manager
}

// Option configures an Agent at construction time.
type Option func(*Agent)

// WithHandler sets the agent's message handler. Without one the agent's
// behavior is "consume, no reply".
func WithHandler(h Handler) Option {
	return func(a *Agent) { a.handler = h }
}

// WithTools registers tools at construction time.
func WithTools(tools ...*Tool) Option {
	return func(a *Agent) {
		for _, t := range tools {
			a.tools[t.Name] = t
		}
	}
}

// New creates an agent with the given name and role. The name is the routing
// address and must be unique within the manager it is registered with.
func New(name, role string, opts ...Option) *Agent {
	a := &Agent{
		state: State{
			ID:     uuid.New().String(),
			Name:   name,
			Role:   role,
			Status: StatusIdle,
		},
		tools: make(map[string]*Tool),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name returns the agent's routing address.
func (a *Agent) Name() string {
	return a.state.Name
}

// Role returns the agent's free-text role label.
func (a *Agent) Role() string {
	return a.state.Role
}

// ID returns the agent's unique identifier.
func (a *Agent) ID() string {
	return a.state.ID
}

// Status reports whether the agent is idle or handling a message.
func (a *Agent) Status() Status {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.Status
}

// RegisterTool inserts a tool into the registry. Re-registering an existing
// name overwrites it; tool hot-swapping is allowed.
func (a *Agent) RegisterTool(t *Tool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.tools[t.Name] = t
}

// Tools returns the sorted names of the registered tools.
func (a *Agent) Tools() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	names := make([]string, 0, len(a.tools))
	for name := range a.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UseTool looks up a tool by name and delegates to its Invoke. An absent
// name fails with UnknownToolError and leaves the agent unmodified.
func (a *Agent) UseTool(name string, args Args) (any, error) {
	a.mu.Lock()
	t, ok := a.tools[name]
	a.mu.Unlock()
	if !ok {
		return nil, &UnknownToolError{Agent: a.state.Name, Tool: name}
	}
	return t.Invoke(args)
}

// Send constructs a message with this agent as sender and hands it to the
// bound manager for routing. On success the sent message is appended to the
// agent's memory. Fails with ErrNoManager when the agent was never
// registered with a manager.
func (a *Agent) Send(receiver string, typ MessageType, content string, data map[string]any) (*Message, error) {
	a.mu.Lock()
	mgr := a.mgr
	a.mu.Unlock()
	if mgr == nil {
		return nil, ErrNoManager
	}

	msg, err := NewMessage(a.state.Name, receiver, typ, content)
	if err != nil {
		return nil, err
	}
	msg.Data = data

	if err := mgr.Route(msg); err != nil {
		return nil, err
	}
	a.remember(msg)
	return msg, nil
}

// Reply constructs a message answering to, with this agent as sender and the
// original sender as receiver, carrying to's ID as ParentID. The reply is
// not routed; handlers return it and the dispatch step routes it.
func (a *Agent) Reply(to *Message, typ MessageType, content string, data map[string]any) (*Message, error) {
	msg, err := NewMessage(a.state.Name, to.Sender, typ, content)
	if err != nil {
		return nil, err
	}
	msg.Data = data
	msg.ParentID = to.ID
	return msg, nil
}

// DispatchNext pops at most one message from the inbound queue (oldest
// first) and runs it through the handler. An empty queue is a no-op
// reporting no activity. The popped message is appended to memory; a
// produced reply is routed through the manager and appended to memory as
// well. The returned bool reports whether any activity occurred, which the
// scheduler uses to detect quiescence.
//
// A handler failure is returned as a *HandlerError carrying the offending
// message; the manager's loop converts it into an ERROR-typed reply instead
// of aborting the round.
func (a *Agent) DispatchNext(ctx context.Context) (bool, error) {
	a.mu.Lock()
	if len(a.queue) == 0 {
		a.mu.Unlock()
		return false, nil
	}
	msg := a.queue[0]
	a.queue = a.queue[1:]
	handler := a.handler
	mgr := a.mgr
	a.state.Status = StatusProcessing
	a.mu.Unlock()

	start := time.Now()
	defer func() {
		a.mu.Lock()
		a.state.Status = StatusIdle
		a.mu.Unlock()
		observability.RecordDispatch(a.state.Name, time.Since(start))
	}()

	a.remember(msg)

	if handler == nil {
		return true, nil
	}

	reply, err := a.handle(ctx, handler, msg)
	if err != nil {
		return true, &HandlerError{Agent: a.state.Name, Msg: msg, Err: err}
	}
	if reply == nil {
		return true, nil
	}

	if reply.Sender == "" {
		reply.Sender = a.state.Name
	}
	if mgr == nil {
		return true, ErrNoManager
	}
	if err := mgr.Route(reply); err != nil {
		return true, err
	}
	a.remember(reply)
	return true, nil
}

// handle invokes the handler with panic recovery so a misbehaving handler is
// reported like any other handler failure.
func (a *Agent) handle(ctx context.Context, h Handler, msg *Message) (reply *Message, err error) {
	defer func() {
		if r := recover(); r != nil {
			reply = nil
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return h.Handle(ctx, a, msg)
}

// Memory returns a copy of the agent's append-only message memory: every
// message the agent has sent or consumed, in order.
func (a *Agent) Memory() []*Message {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]*Message, len(a.memory))
	copy(out, a.memory)
	return out
}

// QueueDepth returns the number of pending inbound messages.
func (a *Agent) QueueDepth() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.queue)
}

func (a *Agent) remember(msg *Message) {
	a.mu.Lock()
	a.memory = append(a.memory, msg)
	a.mu.Unlock()
}

// enqueue appends a routed message to the tail of the inbound queue. Only
// Manager.Route calls this.
func (a *Agent) enqueue(msg *Message) {
	a.mu.Lock()
	a.queue = append(a.queue, msg)
	a.mu.Unlock()
}

// bind attaches the agent to its manager. Only Manager.Register calls this.
func (a *Agent) bind(m *Manager) {
	a.mu.Lock()
	a.mgr = m
	a.mu.Unlock()
}
