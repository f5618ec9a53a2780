package parsec

import (
	"cmp"
	"fmt"
)

// Parser consumes elements of input starting at pos and produces
// either a tree of type T plus the next position, or a failure.
// Parsers are pure: the input is borrowed read-only, positions are
// values, and the same (input, pos) pair always yields the same
// outcome.  Independent parses may run concurrently.
type Parser[E, T any] func(input []E, pos Position) Result[T]

const endOfInput = "unexpected end of input"

// Fail builds a parser that never succeeds, reporting reason at
// whatever position it is invoked with.
func Fail[E, T any](reason string) Parser[E, T] {
	return func(input []E, pos Position) Result[T] {
		return Failed[T](NewFailure(reason, pos))
	}
}

// Any consumes exactly one element, whatever it is.
func Any[E any]() Parser[E, E] {
	return func(input []E, pos Position) Result[E] {
		if pos.Cursor >= len(input) {
			return Failed[E](NewFailure(endOfInput, pos))
		}
		e := input[pos.Cursor]
		return Succeed(e, AdvanceOne(pos, e))
	}
}

// Expect consumes one element iff it equals want.
func Expect[E comparable](want E) Parser[E, E] {
	return func(input []E, pos Position) Result[E] {
		if pos.Cursor >= len(input) {
			return Failed[E](NewFailure(endOfInput, pos))
		}
		if e := input[pos.Cursor]; e == want {
			return Succeed(e, AdvanceOne(pos, e))
		}
		return Failed[E](NewFailure(fmt.Sprintf("expected `%v`", want), pos))
	}
}

// ExpectSeq consumes len(want) contiguous elements iff they equal
// want element-wise, yielding want as the tree.  A tail shorter than
// want is an ordinary failure, not a fault.  The position advances
// element-wise so line/column stay exact across newlines.
func ExpectSeq[E comparable](want []E) Parser[E, []E] {
	return func(input []E, pos Position) Result[[]E] {
		next := pos
		for _, w := range want {
			if next.Cursor >= len(input) || input[next.Cursor] != w {
				return Failed[[]E](NewFailure(fmt.Sprintf("expected `%v`", want), pos))
			}
			next = AdvanceOne(next, w)
		}
		return Succeed(want, next)
	}
}

// ExpectRange consumes one element iff it lies within [lo, hi],
// inclusive on both ends.
func ExpectRange[E cmp.Ordered](lo, hi E) Parser[E, E] {
	return func(input []E, pos Position) Result[E] {
		if pos.Cursor >= len(input) {
			return Failed[E](NewFailure(endOfInput, pos))
		}
		if e := input[pos.Cursor]; lo <= e && e <= hi {
			return Succeed(e, AdvanceOne(pos, e))
		}
		return Failed[E](NewFailure(fmt.Sprintf("expected element in range `%v-%v`", lo, hi), pos))
	}
}

// Satisfy consumes one element iff pred holds for it, moving the
// position with the supplied advance rule.  desc names the
// expectation in failures.
func Satisfy[E any](desc string, pred func(E) bool, advance AdvanceFunc[E]) Parser[E, E] {
	return func(input []E, pos Position) Result[E] {
		if pos.Cursor >= len(input) {
			return Failed[E](NewFailure(endOfInput, pos))
		}
		if e := input[pos.Cursor]; pred(e) {
			return Succeed(e, advance(pos, e))
		}
		return Failed[E](NewFailure("expected "+desc, pos))
	}
}
