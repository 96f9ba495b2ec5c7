package errors

import (
	stderrors "errors"
	"strings"
)

// Kind categorizes the contract violation
type Kind string

const (
	KindAlreadyTaken Kind = "already_taken"  // second take through a consumed handle
	KindUseAfterTake Kind = "use_after_take" // borrow or drop of a consumed container
	KindDoubleFree   Kind = "double_free"    // shell block freed twice
	KindForeignBlock Kind = "foreign_block"  // block freed on an allocator that did not issue it
	KindClosed       Kind = "closed"         // operation on a closed allocator
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Op     string
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Kind))
	b.WriteByte(']')

	if e.Op != "" {
		b.WriteByte(' ')
		b.WriteString(e.Op)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches another *Error with the same Kind. Op and Detail are
// intentionally ignored so tests can match categories.
func (e *Error) Is(target error) bool {
	var te *Error
	if stderrors.As(target, &te) {
		return e.Kind == te.Kind
	}
	return false
}

// New constructs an Error with the given kind and operation.
func New(kind Kind, op string) *Error {
	return &Error{Kind: kind, Op: op}
}

// AlreadyTaken reports a second take through the same consumed handle.
func AlreadyTaken(op, detail string) *Error {
	return &Error{Kind: KindAlreadyTaken, Op: op, Detail: detail}
}

// UseAfterTake reports access to a container whose payload was moved out.
func UseAfterTake(op, detail string) *Error {
	return &Error{Kind: KindUseAfterTake, Op: op, Detail: detail}
}

// DoubleFree reports a shell block freed twice.
func DoubleFree(op, detail string) *Error {
	return &Error{Kind: KindDoubleFree, Op: op, Detail: detail}
}

// ForeignBlock reports a block returned to an allocator that never issued it.
func ForeignBlock(op, detail string) *Error {
	return &Error{Kind: KindForeignBlock, Op: op, Detail: detail}
}

// Closed reports an operation on a closed allocator.
func Closed(op string) *Error {
	return &Error{Kind: KindClosed, Op: op}
}

// IsKind reports whether err is (or wraps) an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
