package parsec

// Result is the outcome of running a parser: either a failure, or a
// tree plus the position of the first unconsumed element.  Exactly one
// arm is populated.
//
// Go has no sum types and methods cannot introduce type parameters,
// so the type-changing map/bind operations live as free functions
// (MapResult, BindResult) instead of methods.
type Result[T any] struct {
	tree    T
	next    Position
	failure *Failure
}

// Succeed builds the success arm: a tree plus the next position.
func Succeed[T any](tree T, next Position) Result[T] {
	return Result[T]{tree: tree, next: next}
}

// Failed builds the failure arm.
func Failed[T any](f *Failure) Result[T] {
	return Result[T]{failure: f}
}

// Failed reports whether r is the failure arm.
func (r Result[T]) Failed() bool { return r.failure != nil }

// Tree returns the parsed tree; the zero value on failure.
func (r Result[T]) Tree() T { return r.tree }

// Next returns the position of the first unconsumed element.
func (r Result[T]) Next() Position { return r.next }

// Err returns the failure, or nil on success.
func (r Result[T]) Err() *Failure { return r.failure }

// MapResult applies f to the tree of a successful result, leaving the
// position untouched.  Failures pass through unchanged and f is never
// called.
func MapResult[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.failure != nil {
		return Failed[U](r.failure)
	}
	return Succeed(f(r.tree), r.next)
}

// BindResult sequences: on success it asks f for the parser of what
// follows and runs it over input at the result's next position.
// Failures pass through unchanged and f is never called.
func BindResult[E, T, U any](r Result[T], input []E, f func(T) Parser[E, U]) Result[U] {
	if r.failure != nil {
		return Failed[U](r.failure)
	}
	return f(r.tree)(input, r.next)
}
