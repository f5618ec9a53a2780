package parsec

import "sync"

// Defer returns a parser that builds its underlying parser on first
// use and caches it for the lifetime of the returned value.  It
// exists so a rule can refer to itself, directly or through a cycle
// of rules, while the grammar value graph is still being constructed:
// Go evaluates eagerly, so the recursive reference must hide behind a
// closure or building the grammar would recurse forever.
//
// build runs exactly once per Defer value, even when first
// invocations race.  Only construction is cached; running the cached
// parser twice at the same position re-executes it in full.
func Defer[E, T any](build func() Parser[E, T]) Parser[E, T] {
	var (
		once sync.Once
		p    Parser[E, T]
	)
	return func(input []E, pos Position) Result[T] {
		once.Do(func() { p = build() })
		return p(input, pos)
	}
}
