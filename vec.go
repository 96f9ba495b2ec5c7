package take

import (
	"github.com/wippyai/take/alloc"
	"github.com/wippyai/take/errors"
)

// Vec is a growable sequence: sole owner of a contiguous run of elements
// plus the backing buffer's bookkeeping. Destroying a Vec runs Drop on each
// live element; taking moves the whole run out with no element Drop at all.
type Vec[T any] struct {
	elems []T
	a     alloc.Allocator
	block alloc.Block
	state state
}

// NewVec creates an empty sequence with the given capacity, using the
// default arena.
func NewVec[T any](capacity int) *Vec[T] {
	return NewVecIn[T](capacity, alloc.Default)
}

// NewVecIn creates an empty sequence with the given capacity and allocator.
func NewVecIn[T any](capacity int, a alloc.Allocator) *Vec[T] {
	return &Vec[T]{
		elems: make([]T, 0, capacity),
		a:     a,
		block: a.Alloc(alloc.LayoutOfSlice[T](capacity)),
	}
}

// VecOf creates a sequence holding the given elements.
func VecOf[T any](items ...T) *Vec[T] {
	v := NewVec[T](len(items))
	v.elems = v.elems[:len(items)]
	copy(v.elems, items)
	return v
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int {
	return len(v.elems)
}

// Cap returns the capacity of the backing buffer.
func (v *Vec[T]) Cap() int {
	return cap(v.elems)
}

// At returns a pointer to the i'th element for in-place access.
func (v *Vec[T]) At(i int) *T {
	if v.state != stateLive {
		panic(errors.UseAfterTake("take.Vec.At", "sequence already consumed"))
	}
	return &v.elems[i]
}

// Push appends an element, growing the backing buffer when full. Growth
// frees the old buffer's block and allocates a new one; elements are moved
// by representation, so no Drop runs.
func (v *Vec[T]) Push(x T) {
	if v.state != stateLive {
		panic(errors.UseAfterTake("take.Vec.Push", "sequence already consumed"))
	}
	if len(v.elems) == cap(v.elems) {
		v.grow()
	}
	v.elems = append(v.elems, x)
}

func (v *Vec[T]) grow() {
	newCap := cap(v.elems) * 2
	if newCap < 4 {
		newCap = 4
	}
	next := make([]T, len(v.elems), newCap)
	copy(next, v.elems)
	v.elems = next

	v.a.Free(v.block)
	v.block = v.a.Alloc(alloc.LayoutOfSlice[T](newCap))
}

// Take consumes the sequence and returns an independently owned sequence
// holding the same elements in order. No element Drop runs.
func (v *Vec[T]) Take() *Vec[T] {
	return TakeVecWith(v, func(view RawSlice[T]) *Vec[T] {
		return view.ToOwnedIn(v.a)
	})
}

// Drop destroys the sequence normally: Drop runs on each live element in
// order, then the backing buffer's block is freed. Consumes the handle.
func (v *Vec[T]) Drop() {
	if v.state != stateLive {
		panic(errors.UseAfterTake("take.Vec.Drop", "sequence already consumed"))
	}
	v.state = stateDropped
	for i := range v.elems {
		runDrop(v.elems[i])
	}
	v.a.Free(v.block)
}

// TakeVecWith consumes v and calls f with a destructor-suppressed view of
// its element run. The sequence's logical length is zeroed before f runs,
// so a panic inside f unwinds through a sequence that destroys nothing.
// The backing buffer's block is freed after f returns either way.
func TakeVecWith[T, R any](v *Vec[T], f func(RawSlice[T]) R) R {
	if v.state != stateLive {
		panic(errors.AlreadyTaken("take.Vec", "sequence already consumed"))
	}
	v.state = stateTaken

	run := v.elems
	v.elems = v.elems[:0]
	defer v.a.Free(v.block)
	return f(RawSlice[T]{items: run})
}
