// Package take provides ownership-transfer primitives: operations that move
// a payload out of an owning container so the caller becomes the owner, the
// container's shell storage is released, and the payload's destructor never
// runs during the extraction.
//
// Go's collector reclaims memory, but it does not run destructors. Values
// that hold external resources implement Dropper, and containers in this
// package run Drop exactly once — on normal container destruction, or on the
// extracted value when its new owner eventually drops it. A take is the third
// mode between "destroy container and value together" and "copy the value
// first": move the value out, destroy only the shell.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	take/              Root package with contracts, ManuallyDrop, Box, Rc and Vec
//	├── alloc/         Shell allocation bookkeeping (Layout, Allocator, Arena)
//	├── errors/        Structured contract-violation errors
//	├── taketest/      Drop/clone recording harness for tests
//	├── testbed/       End-to-end scenario tests
//	└── cmd/           take-inspect interactive TUI
//
// # Quick Start
//
// Move a value out of an exclusive heap box:
//
//	b := take.NewBox(conn)   // conn implements Dropper
//	c := b.Take()            // shell freed, conn's Drop not run
//	defer c.Drop()           // exactly one Drop, by the new owner
//
// Extract through a closure when the result is not the payload itself:
//
//	n := take.TakeWith(b, func(view *take.ManuallyDrop[Conn]) int {
//	    return view.Get().Fd()
//	})
//
// Take a sequence without destroying its elements:
//
//	v := take.VecOf(t1, t2, t3)
//	owned := v.Take()        // 3 elements, zero Drops fired
//
// # The three contracts
//
// Owned-Conversion turns a destructor-suppressed view into an independently
// owned value: ToOwned for sized values, RawSlice.ToOwned for runs of
// elements. Container-Take consumes a container and releases its shell with
// the payload destructor suppressed: the Take methods and TakeWith. The
// take relation generalizes both so generic code can take a T from any
// Source[T] — including a plain value via TakeValue — without knowing the
// container kind.
//
// # Single-use handles
//
// Every container handle is consumed by its take or Drop. Go has no
// move-only types, so reuse of a consumed handle is checked at runtime:
// the operation panics with a structured *errors.Error rather than
// corrupting ownership state.
//
// # Thread Safety
//
// Containers are single-owner-at-a-time and NOT safe for concurrent use.
// Rc is a single-threaded reference count; sharing across goroutines is
// out of scope by design.
package take
