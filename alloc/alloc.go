package alloc

import "unsafe"

// Layout describes the size and alignment of a shell allocation.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// LayoutOf returns the layout of a single value of type T.
func LayoutOf[T any]() Layout {
	var zero T
	return Layout{
		Size:  unsafe.Sizeof(zero),
		Align: unsafe.Alignof(zero),
	}
}

// LayoutOfSlice returns the layout of a contiguous run of n elements of type T.
func LayoutOfSlice[T any](n int) Layout {
	var zero T
	return Layout{
		Size:  unsafe.Sizeof(zero) * uintptr(n),
		Align: unsafe.Alignof(zero),
	}
}

// Block is an opaque handle to a live shell allocation.
// The zero Block is invalid.
type Block struct {
	id     uint32
	layout Layout
}

// Valid reports whether the block refers to an issued allocation.
func (b Block) Valid() bool {
	return b.id != 0
}

// Layout returns the layout the block was allocated with.
func (b Block) Layout() Layout {
	return b.layout
}

// Allocator issues and reclaims shell allocation bookkeeping.
type Allocator interface {
	// Alloc records a live allocation for the given layout.
	Alloc(layout Layout) Block

	// Free reclaims a block. Freeing the same block twice is a
	// contract violation.
	Free(block Block)
}

// Stats holds running allocation totals for an Arena.
type Stats struct {
	Allocs     uint64
	Frees      uint64
	LiveBlocks int
	LiveBytes  uintptr
}

// Event types for allocation lifecycle notifications.
type EventType uint8

const (
	EventAlloc EventType = iota
	EventFree
)

// Event represents an allocation lifecycle event.
type Event struct {
	Block Block
	Type  EventType
}

// Observer receives notifications about allocation lifecycle events.
type Observer interface {
	OnAllocEvent(Event)
}

// Default is the arena used by containers constructed without an
// explicit allocator.
var Default = NewArena()
