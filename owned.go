package take

import "github.com/wippyai/take/alloc"

// ToOwned reads an owned value out of a destructor-suppressed view. This is
// the sized degenerate of owned conversion: the value's representation is
// read directly out of the wrapper.
//
// Single use: the view holds moved-from data afterwards and must not be
// read as valid again.
func ToOwned[T any](view *ManuallyDrop[T]) T {
	return view.Take()
}

// RawSlice is a destructor-suppressed view of a contiguous run of elements.
// TakeVecWith hands one to the extraction function; elements accessed
// through it will never have Drop run by this library.
type RawSlice[T any] struct {
	items []T
}

// Len returns the number of elements in the run.
func (s RawSlice[T]) Len() int {
	return len(s.items)
}

// At returns a pointer to the i'th element for in-place access.
func (s RawSlice[T]) At(i int) *T {
	return &s.items[i]
}

// ToOwned converts the run into an independently owned Vec by copying each
// element's representation. No per-element Drop runs during the copy. The
// source view holds moved-from data afterwards; the run's backing storage
// remains whoever owned it before.
//
// Single use per view, as with ToOwned.
func (s RawSlice[T]) ToOwned() *Vec[T] {
	return s.ToOwnedIn(alloc.Default)
}

// ToOwnedIn is ToOwned with an explicit allocator for the new Vec's
// backing-buffer bookkeeping.
func (s RawSlice[T]) ToOwnedIn(a alloc.Allocator) *Vec[T] {
	out := NewVecIn[T](len(s.items), a)
	out.elems = out.elems[:len(s.items)]
	copy(out.elems, s.items)
	return out
}
