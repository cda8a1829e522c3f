// Package cerr defines the fatal and recoverable error kinds produced by the
// automaton and language packages.
package cerr

import "fmt"

// Kind identifies one of the error kinds named in the design.
type Kind int

const (
	NoApplicableRule Kind = iota
	DPDAStuck
	TypeClash
	UndefinedVariable
	ParseError
	Misuse
)

func (k Kind) String() string {
	switch k {
	case NoApplicableRule:
		return "no-applicable-rule"
	case DPDAStuck:
		return "dpda-stuck"
	case TypeClash:
		return "type-clash"
	case UndefinedVariable:
		return "undefined-variable"
	case ParseError:
		return "parse-error"
	case Misuse:
		return "misuse"
	default:
		return "unknown-error"
	}
}

// Error is a typed error carrying one of the Kind values above plus a
// human-readable message. Callers that need to distinguish error kinds
// should use errors.As to recover the Kind rather than matching on
// Error() text.
type Error struct {
	Kind Kind
	msg  string
	wrap error
}

func (e *Error) Error() string {
	if e.wrap != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.msg, e.wrap)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

func (e *Error) Unwrap() error {
	return e.wrap
}

// Is allows errors.Is(err, cerr.ErrNoApplicableRule) style checks by
// comparing kinds; see the Err* sentinels below for the values to compare
// against.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New creates a new Error of the given kind with a formatted message.
func New(k Kind, format string, a ...interface{}) *Error {
	return &Error{Kind: k, msg: fmt.Sprintf(format, a...)}
}

// Wrap creates a new Error of the given kind that wraps another error.
func Wrap(k Kind, wrapped error, format string, a ...interface{}) *Error {
	return &Error{Kind: k, msg: fmt.Sprintf(format, a...), wrap: wrapped}
}

// Sentinel values usable with errors.Is; they carry no message of their own
// and exist purely so that (*Error).Is has something kind-comparable to
// match against.
var (
	ErrNoApplicableRule  = &Error{Kind: NoApplicableRule, msg: "sentinel"}
	ErrDPDAStuck         = &Error{Kind: DPDAStuck, msg: "sentinel"}
	ErrTypeClash         = &Error{Kind: TypeClash, msg: "sentinel"}
	ErrUndefinedVariable = &Error{Kind: UndefinedVariable, msg: "sentinel"}
	ErrParseError        = &Error{Kind: ParseError, msg: "sentinel"}
	ErrMisuse            = &Error{Kind: Misuse, msg: "sentinel"}
)

// Panic panics with an Error of the given kind. Used for the fatal kinds
// (no-applicable-rule, dpda-stuck, type-clash, undefined-variable, misuse)
// per spec: propagation is immediate, there is no recovery within the core.
func Panic(k Kind, format string, a ...interface{}) {
	panic(New(k, format, a...))
}
