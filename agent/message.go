package agent

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MessageType identifies the kind of communication between two agents.
type MessageType string

const (
	TypeRequest  MessageType = "request"
	TypeResponse MessageType = "response"
	TypeTask     MessageType = "task"
	TypeResult   MessageType = "result"
	TypeError    MessageType = "error"
	TypeQuery    MessageType = "query"
)

// Valid reports whether t is one of the six recognized message types.
func (t MessageType) Valid() bool {
	switch t {
	case TypeRequest, TypeResponse, TypeTask, TypeResult, TypeError, TypeQuery:
		return true
	}
	return false
}

// Message is an immutable unit of communication between two named agents.
// A message is constructed once by its sender and never mutated afterwards;
// the only field written later is Sequence, assigned exactly once by the
// Manager at routing time. Equality is by ID.
type Message struct {
	// ID uniquely identifies the message, assigned at construction.
	ID string

	// Sender and Receiver are agent names (routing addresses).
	Sender   string
	Receiver string

	// Type is one of the six message kinds.
	Type MessageType

	// Content is a human-readable description of the message.
	Content string

	// Data is an opaque structured payload; may be nil.
	Data map[string]any

	// ParentID optionally references a causally prior message, used to trace
	// a response back to its request. The reference is advisory: the parent
	// may be external or pruned, so no existence check is performed.
	ParentID string

	// Sequence is the global history position, assigned by the Manager when
	// the message is routed. Zero until routed.
	Sequence int64

	// CreatedAt is the construction timestamp.
	CreatedAt time.Time
}

// NewMessage constructs a message between two named agents. The ID and
// timestamp are assigned here; Sequence is assigned later by the Manager.
// Constructing with an unrecognized type fails with InvalidMessageTypeError.
func NewMessage(sender, receiver string, typ MessageType, content string) (*Message, error) {
	if !typ.Valid() {
		return nil, &InvalidMessageTypeError{Type: typ}
	}
	return &Message{
		ID:        uuid.New().String(),
		Sender:    sender,
		Receiver:  receiver,
		Type:      typ,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// WithData attaches a structured payload and returns the message for
// chaining. Only valid before the message is routed.
func (m *Message) WithData(data map[string]any) *Message {
	m.Data = data
	return m
}

// WithParent records the causally prior message ID and returns the message
// for chaining. Only valid before the message is routed.
func (m *Message) WithParent(parentID string) *Message {
	m.ParentID = parentID
	return m
}

// Equal reports whether two messages are the same message. Identity is by ID.
func (m *Message) Equal(other *Message) bool {
	return other != nil && m.ID == other.ID
}

// String returns a compact representation for debugging.
func (m *Message) String() string {
	return fmt.Sprintf("Message{ID:%s, %s -> %s, Type:%s, Seq:%d}",
		m.ID, m.Sender, m.Receiver, m.Type, m.Sequence)
}
