package client

import (
	"fmt"

	"go.hashgraph.tech/core/ops"
	"go.hashgraph.tech/core/types"
)

// A State is a stage in the lifecycle of a submitted transaction.
type State uint8

// Execution states, in order. The three terminal states are mutually
// exclusive.
const (
	StateUnvalidated State = iota
	StateValidated
	StateEnveloped
	StateDispatched
	StateSucceeded
	StatePrecheckFailed
	StateExecutionFailed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateUnvalidated:
		return "unvalidated"
	case StateValidated:
		return "validated"
	case StateEnveloped:
		return "enveloped"
	case StateDispatched:
		return "dispatched"
	case StateSucceeded:
		return "succeeded"
	case StatePrecheckFailed:
		return "precheck failed"
	case StateExecutionFailed:
		return "execution failed"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// Terminal reports whether s is a final state.
func (s State) Terminal() bool { return s >= StateSucceeded }

// An Execution records the progress of one transaction through the client.
type Execution struct {
	Tag           ops.Tag
	State         State
	TransactionID types.TransactionID
	// Node is the account of the node that accepted the transaction.
	Node types.Address
	// Hash is the SHA-384 hash of the signed transaction.
	Hash    []byte
	Receipt *types.Receipt
	Err     error
}

// advance moves e to s. It panics if s precedes the current state or if e
// has already reached a terminal state.
func (e *Execution) advance(s State) {
	if s <= e.State || e.State.Terminal() {
		panic(fmt.Sprintf("illegal transition from %v to %v", e.State, s))
	}
	e.State = s
}

// fail moves e to the terminal state s, recording err.
func (e *Execution) fail(s State, err error) error {
	e.advance(s)
	e.Err = err
	return err
}
