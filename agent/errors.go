package agent

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMessageType is returned when a message is constructed with an
	// unrecognized message type.
	ErrInvalidMessageType = errors.New("invalid message type")

	// ErrDuplicateAgent is returned when registering an agent whose name is
	// already taken within the manager.
	ErrDuplicateAgent = errors.New("agent already registered")

	// ErrUnknownReceiver is returned when routing a message to a name that is
	// not registered with the manager.
	ErrUnknownReceiver = errors.New("unknown receiver")

	// ErrUnknownTool is returned when invoking a tool name that is not in the
	// agent's registry.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrToolArgument is returned when tool arguments fail shallow validation
	// against the declared parameter tags.
	ErrToolArgument = errors.New("tool argument error")

	// ErrToolExecution is returned when a tool callable fails or panics during
	// execution.
	ErrToolExecution = errors.New("tool execution error")

	// ErrNoManager is returned when an agent sends a message without being
	// bound to a manager.
	ErrNoManager = errors.New("agent not bound to a manager")
)

// InvalidMessageTypeError reports an unrecognized message type.
type InvalidMessageTypeError struct {
	Type MessageType
}

func (e *InvalidMessageTypeError) Error() string {
	return fmt.Sprintf("invalid message type %q", string(e.Type))
}

// Unwrap returns the base error for errors.Is compatibility.
func (e *InvalidMessageTypeError) Unwrap() error {
	return ErrInvalidMessageType
}

// DuplicateAgentError reports a name collision during registration.
type DuplicateAgentError struct {
	Name string
}

func (e *DuplicateAgentError) Error() string {
	return fmt.Sprintf("agent %q already registered", e.Name)
}

func (e *DuplicateAgentError) Unwrap() error {
	return ErrDuplicateAgent
}

// UnknownReceiverError reports a message routed to an unregistered name.
type UnknownReceiverError struct {
	Receiver string
}

func (e *UnknownReceiverError) Error() string {
	return fmt.Sprintf("unknown receiver %q", e.Receiver)
}

func (e *UnknownReceiverError) Unwrap() error {
	return ErrUnknownReceiver
}

// UnknownToolError reports an invocation of a tool name that is not in the
// agent's registry.
type UnknownToolError struct {
	Agent string
	Tool  string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("tool %q not found in %s's registry", e.Tool, e.Agent)
}

func (e *UnknownToolError) Unwrap() error {
	return ErrUnknownTool
}

// ArgumentError reports a tool argument that failed validation against the
// declared parameter tags. The callable is never invoked when validation
// fails.
type ArgumentError struct {
	Tool   string
	Param  string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("tool %q argument %q: %s", e.Tool, e.Param, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return ErrToolArgument
}

// ExecutionError reports a failure inside a tool callable. Cause carries the
// underlying error; panics are converted into errors before wrapping.
type ExecutionError struct {
	Tool  string
	Cause error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("tool %q execution failed: %v", e.Tool, e.Cause)
}

func (e *ExecutionError) Unwrap() error {
	return ErrToolExecution
}

// HandlerError reports a handler failure during dispatch. The manager's
// execution loop converts these into ERROR-typed replies addressed to the
// offending message's sender; they never abort a round.
type HandlerError struct {
	Agent string
	Msg   *Message
	Err   error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("agent %q handler failed on message %s: %v", e.Agent, e.Msg.ID, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}
