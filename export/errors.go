package export

import (
	"errors"
	"fmt"

	"github.com/c360studio/graphol/diagram"
)

// Sentinel errors for diagram translation failures. Callers match them
// with errors.Is to distinguish structural problems from everything else.
var (
	// ErrMissingOperand indicates a constructor node with fewer input
	// operands than its OWL counterpart requires.
	ErrMissingOperand = errors.New("missing operand")

	// ErrTooManyOperands indicates a constructor node with more input
	// operands than its OWL counterpart admits.
	ErrTooManyOperands = errors.New("too many operands")

	// ErrUnsupportedOperand indicates an operand whose identity or kind
	// has no meaning for the constructor it feeds.
	ErrUnsupportedOperand = errors.New("unsupported operand")

	// ErrMissingCardinality indicates a cardinality restriction with
	// neither a minimum nor a maximum bound.
	ErrMissingCardinality = errors.New("missing cardinality")

	// ErrDisconnectedFacet indicates a facet node that is not attached
	// to any datatype restriction.
	ErrDisconnectedFacet = errors.New("disconnected facet")

	// ErrMalformed indicates an assertion edge whose endpoints do not
	// form any recognized axiom shape.
	ErrMalformed = errors.New("malformed diagram")
)

// DiagramError ties a translation failure to the diagram element that
// caused it, so callers can surface the offending node or edge.
type DiagramError struct {
	ElementID string
	Reason    string
	Err       error
}

func (e *DiagramError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("element %s: %s: %v", e.ElementID, e.Reason, e.Err)
	}
	return fmt.Sprintf("element %s: %v", e.ElementID, e.Err)
}

func (e *DiagramError) Unwrap() error {
	return e.Err
}

// nodeError wraps a sentinel with the node it occurred on.
func nodeError(n *diagram.Node, err error, reason string) error {
	return &DiagramError{ElementID: n.ID, Reason: reason, Err: err}
}

// edgeError wraps a sentinel with the edge it occurred on.
func edgeError(e *diagram.Edge, err error, reason string) error {
	return &DiagramError{ElementID: e.ID, Reason: reason, Err: err}
}
