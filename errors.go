package scheme

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax   = errors.New("syntax error")
	ErrRuntime  = errors.New("runtime error")
	ErrInternal = errors.New("internal error")

	ErrInvalidSymbol = errors.New("invalid symbol text")
	ErrNoToken       = errors.New("no token buffered")
)

// SyntaxError reports a malformed token stream or tree shape.
type SyntaxError struct {
	Msg string
	// Incomplete is set when the input ended inside an open list or after a
	// quote, i.e. more input could still make it valid.
	Incomplete bool
	Err        error
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("syntax error: %s: %v", e.Msg, e.Err)
	}
	return "syntax error: " + e.Msg
}

func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }
func (e *SyntaxError) Unwrap() error        { return e.Err }

func syntaxErrorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...)}
}

func incompleteErrorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...), Incomplete: true}
}

// IsIncomplete reports whether err is a syntax error caused only by the
// input ending too early.
func IsIncomplete(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se) && se.Incomplete
}

type Reason int

const (
	ReasonUnbound Reason = iota + 1
	ReasonNotCallable
	ReasonMissingArgument
	ReasonArgumentCount
	ReasonArgumentType
	ReasonMalformedArguments
	ReasonIndex
	ReasonDivisionByZero
	ReasonOverflow
	ReasonDepth
)

func (r Reason) String() string {
	switch r {
	case ReasonUnbound:
		return "unbound operator"
	case ReasonNotCallable:
		return "not callable"
	case ReasonMissingArgument:
		return "missing argument"
	case ReasonArgumentCount:
		return "wrong argument count"
	case ReasonArgumentType:
		return "wrong argument type"
	case ReasonMalformedArguments:
		return "malformed argument list"
	case ReasonIndex:
		return "index out of range"
	case ReasonDivisionByZero:
		return "division by zero"
	case ReasonOverflow:
		return "integer overflow"
	case ReasonDepth:
		return "nesting too deep"
	}
	return "unknown"
}

// RuntimeError reports a well-formed tree that cannot be evaluated.
type RuntimeError struct {
	Reason Reason
	Form   string
	Msg    string
}

func (e *RuntimeError) Error() string {
	if e.Form != "" {
		return fmt.Sprintf("runtime error: %s: %s: %s", e.Form, e.Reason, e.Msg)
	}
	return fmt.Sprintf("runtime error: %s: %s", e.Reason, e.Msg)
}

func (e *RuntimeError) Is(target error) bool { return target == ErrRuntime }

func runtimeErrorf(reason Reason, form string, format string, args ...any) *RuntimeError {
	return &RuntimeError{Reason: reason, Form: form, Msg: fmt.Sprintf(format, args...)}
}

// InternalError reports a broken invariant inside this package. It is never
// caused by bad input alone.
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string { return "internal error: " + e.Msg }

func (e *InternalError) Is(target error) bool { return target == ErrInternal }
