package nruntime

import "fmt"

type ErrorKind int

const (
	DivisionByZero ErrorKind = iota
	UndefinedBehavior
)

// RuntimeError is fatal to the run: no statement after the failing one
// executes.
type RuntimeError struct {
	Kind    ErrorKind
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

func divisionByZero() error {
	return &RuntimeError{Kind: DivisionByZero, Message: "division by zero"}
}

func undefined(format string, args ...interface{}) error {
	return &RuntimeError{Kind: UndefinedBehavior, Message: fmt.Sprintf(format, args...)}
}
