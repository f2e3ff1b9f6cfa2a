package types

import (
	"errors"
	"fmt"

	"go.hashgraph.tech/core/wire"
)

// An ErrorKind classifies a failure.
type ErrorKind uint8

// Error kinds.
const (
	ErrorKindMissingRequiredField ErrorKind = iota + 1
	ErrorKindOutOfRangeValue
	ErrorKindConflictingOrBlankUpdate
	ErrorKindUnsupportedOperationVariant
	ErrorKindProtocolMismatch
	ErrorKindNetworkPrecheckFailure
	ErrorKindTransactionExecutionFailure
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindMissingRequiredField:
		return "missing required field"
	case ErrorKindOutOfRangeValue:
		return "out of range value"
	case ErrorKindConflictingOrBlankUpdate:
		return "conflicting or blank update"
	case ErrorKindUnsupportedOperationVariant:
		return "unsupported operation variant"
	case ErrorKindProtocolMismatch:
		return "protocol mismatch"
	case ErrorKindNetworkPrecheckFailure:
		return "network precheck failure"
	case ErrorKindTransactionExecutionFailure:
		return "transaction execution failure"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// Status is a precheck or post-consensus status code.
type Status = wire.ResponseCode

// An Error pairs a human-readable message with the kind of failure.
type Error struct {
	Kind    ErrorKind
	Message string
}

var (
	// ErrMissingRequiredField matches any error of kind
	// ErrorKindMissingRequiredField.
	ErrMissingRequiredField = &Error{Kind: ErrorKindMissingRequiredField}
	// ErrOutOfRangeValue matches any error of kind ErrorKindOutOfRangeValue.
	ErrOutOfRangeValue = &Error{Kind: ErrorKindOutOfRangeValue}
	// ErrConflictingOrBlankUpdate matches any error of kind
	// ErrorKindConflictingOrBlankUpdate.
	ErrConflictingOrBlankUpdate = &Error{Kind: ErrorKindConflictingOrBlankUpdate}
	// ErrUnsupportedOperationVariant matches any error of kind
	// ErrorKindUnsupportedOperationVariant.
	ErrUnsupportedOperationVariant = &Error{Kind: ErrorKindUnsupportedOperationVariant}
	// ErrProtocolMismatch matches any error of kind ErrorKindProtocolMismatch.
	// It is fatal to the call and must not be retried.
	ErrProtocolMismatch = &Error{Kind: ErrorKindProtocolMismatch}
	// ErrNetworkPrecheckFailure matches any *PrecheckError.
	ErrNetworkPrecheckFailure = &Error{Kind: ErrorKindNetworkPrecheckFailure}
	// ErrTransactionExecutionFailure matches any *ExecutionError.
	ErrTransactionExecutionFailure = &Error{Kind: ErrorKindTransactionExecutionFailure}
)

// Error implements error.
func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%v (%v)", e.Message, e.Kind)
}

// Is returns true if the target is an Error of the same kind whose message
// is either empty or equal to the receiver's.
func (e *Error) Is(target error) bool {
	te, ok := target.(*Error)
	return ok && e.Kind == te.Kind && (te.Message == "" || te.Message == e.Message)
}

// NewError returns a new Error with the given kind and formatted message.
func NewError(kind ErrorKind, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err. If err is not one of this package's error
// types, KindOf returns 0.
func KindOf(err error) ErrorKind {
	var pe *PrecheckError
	var xe *ExecutionError
	if e := new(Error); errors.As(err, &e) {
		return e.Kind
	} else if errors.As(err, &pe) {
		return ErrorKindNetworkPrecheckFailure
	} else if errors.As(err, &xe) {
		return ErrorKindTransactionExecutionFailure
	}
	return 0
}

// A PrecheckError is returned when a node rejects a request before
// executing it.
type PrecheckError struct {
	TransactionID TransactionID
	Status        Status
	// Cost is the quoted cost of a rejected query, if any.
	Cost Hbar
}

// Error implements error.
func (e *PrecheckError) Error() string {
	if e.TransactionID.IsZero() {
		return fmt.Sprintf("precheck failed with status %v", e.Status)
	}
	return fmt.Sprintf("transaction %v failed precheck with status %v", e.TransactionID, e.Status)
}

// Is implements errors.Is.
func (e *PrecheckError) Is(target error) bool {
	return target == ErrNetworkPrecheckFailure
}

// An ExecutionError is returned when the network executed a transaction but
// reported a non-success status.
type ExecutionError struct {
	TransactionID TransactionID
	Status        Status
	Message       string
}

// Error implements error.
func (e *ExecutionError) Error() string {
	return e.Message
}

// Is implements errors.Is.
func (e *ExecutionError) Is(target error) bool {
	return target == ErrTransactionExecutionFailure
}

func errMissing(format string, args ...any) error {
	return NewError(ErrorKindMissingRequiredField, format, args...)
}

func errRange(format string, args ...any) error {
	return NewError(ErrorKindOutOfRangeValue, format, args...)
}

func errConflict(format string, args ...any) error {
	return NewError(ErrorKindConflictingOrBlankUpdate, format, args...)
}

func errUnsupported(format string, args ...any) error {
	return NewError(ErrorKindUnsupportedOperationVariant, format, args...)
}

func errProtocol(format string, args ...any) error {
	return NewError(ErrorKindProtocolMismatch, format, args...)
}
