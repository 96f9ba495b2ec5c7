// Package errors provides structured error types for the take library.
//
// Take operations themselves define no recoverable errors: an extraction
// either completes or the caller's own extraction function fails. What this
// package describes are contract violations — a second take through a
// consumed handle, a double free on the shell allocator — which the library
// reports by panicking with an *Error rather than leaving the behavior
// undefined.
//
// Errors carry an Op (the operation that detected the violation) and a Kind
// (the violation category):
//
//	err := errors.AlreadyTaken("take.Box", "payload moved out by earlier TakeWith")
//
// All errors implement the standard error interface and support errors.Is
// matching by Kind:
//
//	if errors.IsKind(err, errors.KindAlreadyTaken) { ... }
package errors
