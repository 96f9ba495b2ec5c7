// Package alloc provides the shell allocation substrate for the take library.
//
// Containers in this library separate the payload (the value being owned)
// from the shell (the container's own backing storage). Go's collector owns
// the actual memory, so what an Allocator tracks is the shell's size and
// alignment bookkeeping — enough to make "the shell was freed exactly once,
// with the layout it was allocated with" an observable, testable fact.
//
// # Layout and Blocks
//
// A Layout describes size and alignment for a type or a run of elements:
//
//	l := alloc.LayoutOf[uint64]()       // {Size: 8, Align: 8}
//	r := alloc.LayoutOfSlice[byte](32)  // {Size: 32, Align: 1}
//
// Alloc issues an opaque Block for a layout; Free returns it:
//
//	b := a.Alloc(l)
//	defer a.Free(b)
//
// # Contract violations
//
// Freeing a block twice, freeing a block the arena never issued, or
// allocating from a closed arena are programmer errors. The Arena panics
// with a structured *errors.Error so tests can assert the category.
//
// # Observation
//
// Observers receive alloc/free events, and Stats exposes running totals.
// The default logger is a no-op; install one with SetLogger for debug
// traces of every alloc and free.
package alloc
