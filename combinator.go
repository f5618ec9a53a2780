package parsec

// Map applies f to p's tree on success.  Failures pass through
// untouched and f is never called.
func Map[E, T, U any](p Parser[E, T], f func(T) U) Parser[E, U] {
	return func(input []E, pos Position) Result[U] {
		return MapResult(p(input, pos), f)
	}
}

// Bind runs p and, on success, feeds its tree to f to pick the parser
// for what follows.  This is the sequencing primitive every composite
// grammar reduces to.
func Bind[E, T, U any](p Parser[E, T], f func(T) Parser[E, U]) Parser[E, U] {
	return func(input []E, pos Position) Result[U] {
		return BindResult(p(input, pos), input, f)
	}
}

// Pure succeeds with v without consuming anything.
func Pure[E, T any](v T) Parser[E, T] {
	return func(input []E, pos Position) Result[T] {
		return Succeed(v, pos)
	}
}

// Epsilon succeeds with the zero value without consuming anything.
func Epsilon[E, T any]() Parser[E, T] {
	var zero T
	return Pure[E](zero)
}

// Pair holds the trees of two sequenced parsers.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Then runs p and then q, pairing their trees.
func Then[E, A, B any](p Parser[E, A], q Parser[E, B]) Parser[E, Pair[A, B]] {
	return Bind(p, func(a A) Parser[E, Pair[A, B]] {
		return Map(q, func(b B) Pair[A, B] { return Pair[A, B]{First: a, Second: b} })
	})
}

// Choice tries each option in order and returns the first success.
// Every attempt starts from the original position: a failed branch's
// partial consumption is discarded whole before the next option runs.
// When all options fail, their failures are merged into one composite
// failure in attempt order.
func Choice[E, T any](options ...Parser[E, T]) Parser[E, T] {
	return func(input []E, pos Position) Result[T] {
		causes := make([]*Failure, 0, len(options))
		for _, option := range options {
			r := option(input, pos)
			if !r.Failed() {
				return r
			}
			causes = append(causes, r.Err())
		}
		if len(causes) == 1 {
			return Failed[T](causes[0])
		}
		return Failed[T](MergeFailures("no alternative matched", pos, causes...))
	}
}

// ZeroOrMore runs p until it fails, collecting every tree.  It never
// fails; an immediate mismatch yields an empty slice at the original
// position.
func ZeroOrMore[E, T any](p Parser[E, T]) Parser[E, []T] {
	return func(input []E, pos Position) Result[[]T] {
		var output []T
		for {
			r := p(input, pos)
			if r.Failed() {
				return Succeed(output, pos)
			}
			if r.Next().Equal(pos) {
				// a zero-width success would repeat forever
				return Succeed(append(output, r.Tree()), r.Next())
			}
			output = append(output, r.Tree())
			pos = r.Next()
		}
	}
}

// OneOrMore matches p once and then as many more times as it can.
func OneOrMore[E, T any](p Parser[E, T]) Parser[E, []T] {
	return Bind(p, func(head T) Parser[E, []T] {
		return Map(ZeroOrMore(p), func(tail []T) []T {
			return append([]T{head}, tail...)
		})
	})
}

// Optional tries p, succeeding with the zero value and consuming
// nothing when p fails.
func Optional[E, T any](p Parser[E, T]) Parser[E, T] {
	return Choice(p, Epsilon[E, T]())
}

// SepBy parses one or more items separated by sep, keeping only the
// item trees.
func SepBy[E, T, S any](item Parser[E, T], sep Parser[E, S]) Parser[E, []T] {
	rest := ZeroOrMore(Map(Then(sep, item), func(p Pair[S, T]) T { return p.Second }))
	return Bind(item, func(head T) Parser[E, []T] {
		return Map(rest, func(tail []T) []T { return append([]T{head}, tail...) })
	})
}

// And succeeds iff p succeeds here, consuming nothing either way
// (positive lookahead).
func And[E, T any](p Parser[E, T]) Parser[E, struct{}] {
	return func(input []E, pos Position) Result[struct{}] {
		if r := p(input, pos); r.Failed() {
			return Failed[struct{}](r.Err())
		}
		return Succeed(struct{}{}, pos)
	}
}

// Not succeeds iff p fails here, consuming nothing either way
// (negative lookahead).
func Not[E, T any](p Parser[E, T]) Parser[E, struct{}] {
	return func(input []E, pos Position) Result[struct{}] {
		if r := p(input, pos); !r.Failed() {
			return Failed[struct{}](NewFailure("unexpected match", pos))
		}
		return Succeed(struct{}{}, pos)
	}
}
