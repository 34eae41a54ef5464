package graph

import (
	"errors"
	"fmt"
)

// ErrUnknownNode is returned when an edge references a node that was never
// added to the graph.
var ErrUnknownNode = errors.New("unknown graph node")

// UnknownNodeError provides the offending node ID.
type UnknownNodeError struct {
	ID string
}

// Error returns a human-readable description of the missing node.
func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("unknown graph node %q", e.ID)
}

// Unwrap returns the base error for errors.Is compatibility.
func (e *UnknownNodeError) Unwrap() error {
	return ErrUnknownNode
}
