// Package parsec is a small parser-combinator engine over slices of
// arbitrary elements: runes, bytes, tokens, anything.  Terminal
// parsers consume zero or more elements, combinators compose them
// into grammars, and Parse drives a grammar over a whole input.
//
// Parsers are pure functions over an immutable input and an immutable
// position, so independent Parse calls can run in parallel.  There is
// no memoization of parse results: alternatives with shared prefixes
// re-scan from scratch.  Recursion depth follows grammar nesting, and
// a left-recursive grammar built with Defer will recurse until the
// stack runs out; keeping grammars right-recursive is the caller's
// job.
package parsec

// Parse runs p over the whole input.  Success requires the entire
// input to be consumed: a parse that stops short is reported as a
// failure at the stopping position.  Only the top level is held to
// that policy; sub-parsers never are.
func Parse[E, T any](p Parser[E, T], input []E) (T, error) {
	r := p(input, Start())
	if r.Failed() {
		var zero T
		return zero, r.Err()
	}
	if r.Next().Cursor != len(input) {
		var zero T
		return zero, NewFailure("input not fully consumed", r.Next())
	}
	return r.Tree(), nil
}

// ParseString is Parse over the runes of s.
func ParseString[T any](p Parser[rune, T], s string) (T, error) {
	return Parse(p, []rune(s))
}
