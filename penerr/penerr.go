// Package penerr defines the error taxonomy shared by the Pen, the
// Renderer, and the serialisation envelope (spec §7): InvalidArgument,
// InvalidPick, IntegrityViolation, and OperationCancelled. Each is a
// distinct, comparable Kind so callers can branch with errors.Is/As
// instead of string matching.
package penerr

import "fmt"

// Kind classifies an Error.
type Kind int

const (
	// InvalidArgument covers a nil/zero required argument, a negative
	// window size, an out-of-range seed position, or an unsupported
	// comparison-relation tag.
	InvalidArgument Kind = iota
	// InvalidPick means a Picker returned a value outside its declared
	// range.
	InvalidPick
	// IntegrityViolation means a deserialised envelope is missing
	// fields or is otherwise self-inconsistent.
	IntegrityViolation
	// OperationCancelled covers only the asynchronous tokeniser
	// boundary; the core Renderer never returns this kind.
	OperationCancelled
)

// String names the kind.
func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid-argument"
	case InvalidPick:
		return "invalid-pick"
	case IntegrityViolation:
		return "integrity-violation"
	case OperationCancelled:
		return "operation-cancelled"
	default:
		return "unknown"
	}
}

// Error is a taxonomy-tagged error. It wraps an optional underlying
// cause so errors.Unwrap keeps working.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same Kind, so callers
// can write errors.Is(err, penerr.New(penerr.InvalidPick, "")) —
// more idiomatically, errors.Is(err, penerr.ErrInvalidPick) using one
// of the sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New builds an Error of the given kind.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error of the given kind around an existing error.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// Sentinels usable with errors.Is to test kind only (their Msg is
// ignored by Is).
var (
	ErrInvalidArgument    = &Error{Kind: InvalidArgument}
	ErrInvalidPick        = &Error{Kind: InvalidPick}
	ErrIntegrityViolation = &Error{Kind: IntegrityViolation}
	ErrOperationCancelled = &Error{Kind: OperationCancelled}
)
