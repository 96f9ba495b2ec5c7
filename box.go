package take

import (
	"github.com/wippyai/take/alloc"
	"github.com/wippyai/take/errors"
)

// handle states, shared by Box and Vec
type state uint8

const (
	stateLive state = iota
	stateTaken
	stateDropped
)

// Box is an exclusive heap box: sole owner of one payload plus the shell's
// size/alignment bookkeeping. Taking or dropping consumes the handle.
type Box[T any] struct {
	payload ManuallyDrop[T]
	a       alloc.Allocator
	block   alloc.Block
	state   state
}

// NewBox allocates a box for v using the default arena.
func NewBox[T any](v T) *Box[T] {
	return NewBoxIn(v, alloc.Default)
}

// NewBoxIn allocates a box for v using the given allocator.
func NewBoxIn[T any](v T, a alloc.Allocator) *Box[T] {
	return &Box[T]{
		payload: Suppress(v),
		a:       a,
		block:   a.Alloc(alloc.LayoutOf[T]()),
	}
}

// Get returns a pointer to the payload for borrowed access.
func (b *Box[T]) Get() *T {
	if b.state != stateLive {
		panic(errors.UseAfterTake("take.Box.Get", "box already consumed"))
	}
	return b.payload.Get()
}

// Take consumes the box and returns its payload. The shell block is freed;
// the payload's Drop does not run.
func (b *Box[T]) Take() T {
	return TakeWith(b, ToOwned[T])
}

// Drop destroys the box normally: the payload's Drop runs (when defined),
// then the shell block is freed. Consumes the handle.
func (b *Box[T]) Drop() {
	if b.state != stateLive {
		panic(errors.UseAfterTake("take.Box.Drop", "box already consumed"))
	}
	b.state = stateDropped
	runDrop(b.payload.value)
	b.a.Free(b.block)
}

// takeBegin implements Source. The backing storage is reinterpreted as a
// suppressed wrapper around the same payload; the shell is disarmed before
// any extraction function runs.
func (b *Box[T]) takeBegin() *ManuallyDrop[T] {
	if b.state != stateLive {
		panic(errors.AlreadyTaken("take.Box", "box already consumed"))
	}
	b.state = stateTaken
	return &b.payload
}

// takeEnd implements Source: frees the shell block with the layout it was
// allocated with. The payload's Drop is never invoked here.
func (b *Box[T]) takeEnd() {
	b.a.Free(b.block)
}
