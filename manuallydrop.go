package take

// ManuallyDrop holds a value with its destructor suppressed: nothing in
// this library will call Drop on the inner value through the wrapper. It is
// both the explicit-ownership container kind (construct one to opt out of
// automatic cleanup) and the view type every take operation stages its
// payload through.
//
// The wrapper defines no Drop of its own. Dropping the inner value, if ever
// needed, is the holder's explicit responsibility via Get.
type ManuallyDrop[T any] struct {
	value T
}

// Suppress wraps a value, disabling automatic destructor invocation.
func Suppress[T any](v T) ManuallyDrop[T] {
	return ManuallyDrop[T]{value: v}
}

// Get returns a pointer to the inner value for in-place access.
func (m *ManuallyDrop[T]) Get() *T {
	return &m.value
}

// Take reads the inner value out, consuming the wrapper. The slot is
// zeroed; the wrapper must not be read as valid afterwards. Calling Take
// twice on the same wrapper returns the zero value the second time —
// single use is a safety contract on the caller, as with any moved-from
// view in this package.
func (m *ManuallyDrop[T]) Take() T {
	var zero T
	v := m.value
	m.value = zero
	return v
}

// takeBegin implements Source. The wrapper is already suppressed, so the
// view is the wrapper itself.
func (m *ManuallyDrop[T]) takeBegin() *ManuallyDrop[T] {
	return m
}

// takeEnd implements Source. No shell exists; nothing to release.
func (m *ManuallyDrop[T]) takeEnd() {}
