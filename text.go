package parsec

import "fmt"

// Rune-stream sugar.  Everything here is a thin layer over the
// generic terminals, specialized so failure messages print characters
// instead of code points.

// Literal matches the runes of lit contiguously, yielding lit itself.
func Literal(lit string) Parser[rune, string] {
	want := []rune(lit)
	return func(input []rune, pos Position) Result[string] {
		r := ExpectSeq(want)(input, pos)
		if r.Failed() {
			return Failed[string](NewFailure(fmt.Sprintf("expected `%s`", lit), pos))
		}
		return Succeed(lit, r.Next())
	}
}

// Rune matches exactly r.
func Rune(r rune) Parser[rune, rune] {
	desc := fmt.Sprintf("`%c`", r)
	return Satisfy(desc, func(c rune) bool { return c == r }, AdvanceOne[rune])
}

// RuneRange matches any rune within [lo, hi], inclusive.
func RuneRange(lo, hi rune) Parser[rune, rune] {
	desc := fmt.Sprintf("`%c-%c`", lo, hi)
	return Satisfy(desc, func(c rune) bool { return lo <= c && c <= hi }, AdvanceOne[rune])
}

// OneOf matches any rune present in set.
func OneOf(set string) Parser[rune, rune] {
	members := make(map[rune]struct{}, len(set))
	for _, r := range set {
		members[r] = struct{}{}
	}
	desc := fmt.Sprintf("one of `%s`", set)
	return Satisfy(desc, func(c rune) bool {
		_, ok := members[c]
		return ok
	}, AdvanceOne[rune])
}

// Digit matches a decimal digit.
func Digit() Parser[rune, rune] {
	return RuneRange('0', '9')
}

// Whitespace consumes zero or more spacing runes and discards them.
func Whitespace() Parser[rune, struct{}] {
	spacing := OneOf(" \t\r\n")
	return func(input []rune, pos Position) Result[struct{}] {
		for {
			r := spacing(input, pos)
			if r.Failed() {
				return Succeed(struct{}{}, pos)
			}
			pos = r.Next()
		}
	}
}

// Text converts a rune-slice tree into its string.
func Text(p Parser[rune, []rune]) Parser[rune, string] {
	return Map(p, func(rs []rune) string { return string(rs) })
}
