package interp

import "fmt"

// ErrorKind is the closed taxonomy of fatal interpreter errors (spec.md §6/§7).
type ErrorKind int

const (
	// SyntaxError covers parser failure and unrecognized statement heads.
	SyntaxError ErrorKind = iota
	// TypeError covers type mismatches: unknown class, wrong operand
	// type, non-bool conditions, return-type mismatch, assignment from
	// NOTHING, duplicate class names.
	TypeError
	// NameError covers unresolved names: unknown method/variable/field,
	// duplicate definitions, arity mismatches, and (per the documented
	// quirk in spec.md §9) parameter-value type mismatches.
	NameError
	// FaultError covers runtime faults such as a null-receiver method call.
	FaultError
)

// String renders the kind using the exact spellings spec.md §6 requires.
func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "SYNTAX_ERROR"
	case TypeError:
		return "TYPE_ERROR"
	case NameError:
		return "NAME_ERROR"
	case FaultError:
		return "FAULT_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// InterpreterError is the single error type the core ever raises. Every
// error is fatal and, where the originating token carries one, records a
// line number (spec.md §7: "All errors are fatal and carry a line number
// when the originating token has one"). Per spec.md §7, errors are
// reported at the call site: the line passed in is the caller's line,
// not the callee's definition site.
type InterpreterError struct {
	Kind    ErrorKind
	Message string
	Line    int
}

// Error implements the error interface.
func (e *InterpreterError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s (line %d)", e.Kind, e.Message, e.Line)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newError(kind ErrorKind, line int, format string, args ...any) error {
	return &InterpreterError{Kind: kind, Message: fmt.Sprintf(format, args...), Line: line}
}
