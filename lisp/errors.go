package lisp

import "fmt"

// ErrorKind classifies reader and evaluator errors so callers can
// distinguish them without parsing messages.
type ErrorKind int

const (
	UnterminatedList ErrorKind = iota
	UnterminatedString
	BadNumber
	UnboundSymbol
	ArityError
	TypeError
	NotCallable
	DivisionByZero
)

func (k ErrorKind) String() string {
	switch k {
	case UnterminatedList:
		return "UnterminatedList"
	case UnterminatedString:
		return "UnterminatedString"
	case BadNumber:
		return "BadNumber"
	case UnboundSymbol:
		return "UnboundSymbol"
	case ArityError:
		return "ArityError"
	case TypeError:
		return "TypeError"
	case NotCallable:
		return "NotCallable"
	case DivisionByZero:
		return "DivisionByZero"
	}
	return "UnknownError"
}

// Error is any error produced by Read or Eval. An error aborts the current
// form only; the environment and the surrounding read loop are unaffected.
type Error struct {
	Kind ErrorKind
	msg  string
}

func (e *Error) Error() string { return e.msg }

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}
