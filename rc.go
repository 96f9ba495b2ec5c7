package take

import (
	"github.com/wippyai/take/alloc"
	"github.com/wippyai/take/errors"
)

// Rc is a single-threaded reference-counted shared box. Clone adds an
// owner; each owner's handle is consumed by exactly one Drop or take. The
// payload and shell are destroyed when the last owner goes.
//
// Taking through one of several owners duplicates the payload first
// (copy-on-take) so sibling owners keep observing the original. Taking
// through the sole owner moves the payload out directly with no duplication.
type Rc[T any] struct {
	cell     *rcCell[T]
	dup      *ManuallyDrop[T]
	consumed bool
}

// rcCell is the shared allocation: payload, count and shell bookkeeping.
type rcCell[T any] struct {
	payload ManuallyDrop[T]
	a       alloc.Allocator
	block   alloc.Block
	strong  int
}

// NewRc allocates a shared box for v with one owner, using the default
// arena.
func NewRc[T any](v T) *Rc[T] {
	return NewRcIn(v, alloc.Default)
}

// NewRcIn allocates a shared box for v using the given allocator.
func NewRcIn[T any](v T, a alloc.Allocator) *Rc[T] {
	return &Rc[T]{
		cell: &rcCell[T]{
			payload: Suppress(v),
			a:       a,
			block:   a.Alloc(alloc.LayoutOf[T]()),
			strong:  1,
		},
	}
}

// Clone adds an owner and returns its handle.
func (r *Rc[T]) Clone() *Rc[T] {
	if r.consumed {
		panic(errors.UseAfterTake("take.Rc.Clone", "handle already consumed"))
	}
	r.cell.strong++
	return &Rc[T]{cell: r.cell}
}

// StrongCount returns the current number of owners.
func (r *Rc[T]) StrongCount() int {
	return r.cell.strong
}

// Get returns a pointer to the shared payload for borrowed access.
// Mutating through it is visible to all owners.
func (r *Rc[T]) Get() *T {
	if r.consumed {
		panic(errors.UseAfterTake("take.Rc.Get", "handle already consumed"))
	}
	return r.cell.payload.Get()
}

// Take consumes this handle and returns an owned payload: the original when
// this was the sole owner, a duplicate otherwise.
func (r *Rc[T]) Take() T {
	return TakeWith(r, ToOwned[T])
}

// Drop releases this handle's ownership. When it was the last one, the
// payload's Drop runs and the shell block is freed.
func (r *Rc[T]) Drop() {
	if r.consumed {
		panic(errors.UseAfterTake("take.Rc.Drop", "handle already consumed"))
	}
	r.consumed = true
	r.cell.strong--
	if r.cell.strong == 0 {
		runDrop(r.cell.payload.value)
		r.cell.a.Free(r.cell.block)
	}
}

// takeBegin implements Source. Sole owner: the shared payload itself is the
// view and the count drops to zero. Shared: the payload is duplicated
// (Cloner when implemented, plain copy otherwise) into a fresh suppressed
// holder, and this handle's reference is released so siblings are
// unaffected.
func (r *Rc[T]) takeBegin() *ManuallyDrop[T] {
	if r.consumed {
		panic(errors.AlreadyTaken("take.Rc", "handle already consumed"))
	}
	r.consumed = true

	if r.cell.strong == 1 {
		r.cell.strong = 0
		return &r.cell.payload
	}

	r.cell.strong--
	dup := Suppress(clonePayload(r.cell.payload.value))
	r.dup = &dup
	return r.dup
}

// takeEnd implements Source. Only the unique path owns the shared
// allocation at this point; the duplicate path released its reference in
// takeBegin and frees nothing.
func (r *Rc[T]) takeEnd() {
	if r.dup == nil {
		r.cell.a.Free(r.cell.block)
	}
}
