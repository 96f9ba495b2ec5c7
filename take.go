package take

// Dropper is optionally implemented by payload values that need cleanup.
// Containers invoke Drop where a destructor would run: on normal container
// destruction, and per element when a Vec is destroyed.
type Dropper interface {
	Drop()
}

// Cloner is optionally implemented by payload values that need deep
// duplication. Rc's shared take path uses it; values without it are
// duplicated by plain copy.
type Cloner[T any] interface {
	Clone() T
}

// Source is the take relation: "this handle can yield ownership of a T".
// It is implemented by *Box[T], *Rc[T] and *ManuallyDrop[T]; Vec is the
// unsized case and has its own pair of operations. The protocol methods are
// unexported because the ordering obligations (suppress before extract,
// release shell after) cannot be upheld by outside implementations.
type Source[T any] interface {
	// takeBegin consumes the handle and returns a destructor-suppressed
	// view of the payload.
	takeBegin() *ManuallyDrop[T]

	// takeEnd releases the shell storage. Runs even if the caller's
	// extraction function panics.
	takeEnd()
}

// TakeWith consumes src and calls f with a destructor-suppressed view of
// the payload. The shell storage is released after f returns, without the
// payload's Drop running. The view must not be used after f returns.
//
// Destructor suppression happens before f is invoked, so a panic inside f
// unwinds through an already-disarmed shell: the shell is still released
// and no double destruction can occur.
func TakeWith[T, R any](src Source[T], f func(*ManuallyDrop[T]) R) R {
	view := src.takeBegin()
	defer src.takeEnd()
	return f(view)
}

// Take consumes src and returns its payload. Equivalent to TakeWith with
// ToOwned.
func Take[T any](src Source[T]) T {
	return TakeWith(src, ToOwned[T])
}

// TakeValue wraps an already-owned value in the take relation and returns
// it. It exists so generic code can treat plain values and containers
// uniformly.
func TakeValue[T any](v T) T {
	return TakeValueWith(v, ToOwned[T])
}

// TakeValueWith wraps v in a destructor-suppressed holder and calls f.
// No shell exists, so nothing is deallocated.
func TakeValueWith[T, R any](v T, f func(*ManuallyDrop[T]) R) R {
	m := Suppress(v)
	return f(&m)
}

// runDrop invokes the payload destructor when the value defines one.
func runDrop(v any) {
	if d, ok := v.(Dropper); ok {
		d.Drop()
	}
}

// clonePayload duplicates a payload for the shared-ownership take path.
func clonePayload[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}
