package types

import "errors"

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindUnknown             ErrKind = iota
	ErrKindOutOfMemory                 // allocator refused the request
	ErrKindInvalidArgument             // malformed or contradictory input
	ErrKindDestTooSmall                // destination cannot hold the source
	ErrKindShortBuffer                 // not enough bytes to read or write
	ErrKindListExceededMaxSize         // size arithmetic would overflow
	ErrKindOutOfBounds                 // index past the live elements
	ErrKindFixedCapacity               // static storage cannot grow or shrink
)

var kindNames = [...]string{
	ErrKindUnknown:             "unknown",
	ErrKindOutOfMemory:         "out of memory",
	ErrKindInvalidArgument:     "invalid argument",
	ErrKindDestTooSmall:        "destination too small",
	ErrKindShortBuffer:         "short buffer",
	ErrKindListExceededMaxSize: "list exceeded max size",
	ErrKindOutOfBounds:         "index out of bounds",
	ErrKindFixedCapacity:       "fixed capacity exceeded",
}

func (k ErrKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so a contextual error built with
// New still satisfies errors.Is against the sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// New returns an error of the given kind with a caller-specific message.
func New(kind ErrKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// KindOf returns the kind of the first *Error in err's chain, or
// ErrKindUnknown when there is none.
func KindOf(err error) ErrKind {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Kind
	}
	return ErrKindUnknown
}

// Sentinels returned (usually wrapped with context) by the containers.
var (
	// ErrOutOfMemory indicates the allocator could not satisfy a request.
	ErrOutOfMemory = &Error{Kind: ErrKindOutOfMemory, Msg: "out of memory"}
	// ErrInvalidArgument indicates a nil or contradictory argument.
	ErrInvalidArgument = &Error{Kind: ErrKindInvalidArgument, Msg: "invalid argument"}
	// ErrDestTooSmall indicates an append would exceed the destination capacity.
	ErrDestTooSmall = &Error{Kind: ErrKindDestTooSmall, Msg: "destination too small"}
	// ErrShortBuffer indicates a read or write ran past the available bytes.
	ErrShortBuffer = &Error{Kind: ErrKindShortBuffer, Msg: "short buffer"}
	// ErrListExceededMaxSize indicates growth would overflow size arithmetic.
	ErrListExceededMaxSize = &Error{Kind: ErrKindListExceededMaxSize, Msg: "list exceeded max size"}
	// ErrOutOfBounds indicates an index at or past the list length.
	ErrOutOfBounds = &Error{Kind: ErrKindOutOfBounds, Msg: "index out of bounds"}
	// ErrFixedCapacity indicates a static list is full or cannot be resized.
	ErrFixedCapacity = &Error{Kind: ErrKindFixedCapacity, Msg: "fixed capacity exceeded"}
)
