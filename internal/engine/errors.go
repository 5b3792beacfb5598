package engine

import "fmt"

// ErrorKind is the closed taxonomy of failures submit_action can return.
// Every non-fatal failure is one of these; InvariantViolation is the one
// fatal kind and is raised by panicking rather than returned, per the
// crash-loud policy.
type ErrorKind string

const (
	IllegalTimingError          ErrorKind = "ILLEGAL_TIMING"
	NotYourPriorityError        ErrorKind = "NOT_YOUR_PRIORITY"
	CannotPayCostError          ErrorKind = "CANNOT_PAY_COST"
	InvalidTargetError          ErrorKind = "INVALID_TARGET"
	PendingDecisionPreemptsError ErrorKind = "PENDING_DECISION_PREEMPTS"
	UnknownObjectError           ErrorKind = "UNKNOWN_OBJECT"
	GameOverError                ErrorKind = "GAME_OVER"
	InsufficientResourceError    ErrorKind = "INSUFFICIENT_RESOURCE"
)

// Error is the value returned on ActionResult.Error for any non-fatal
// validation or resolution failure. It never indicates a mutated state;
// every Error-returning path in this package leaves the game unchanged.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// InvariantViolation is raised by panic(invariant(...)) when the engine
// detects state corruption it cannot safely continue past. Recovering
// from this panic is a bug in the caller, not a supported flow.
type InvariantViolation struct {
	Message string
}

func (e InvariantViolation) Error() string {
	return "invariant violation: " + e.Message
}

func invariant(format string, args ...any) InvariantViolation {
	return InvariantViolation{Message: fmt.Sprintf(format, args...)}
}
