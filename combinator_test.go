package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapParser(t *testing.T) {
	double := Map(Digit(), func(r rune) int { return 2 * int(r-'0') })
	r := double([]rune("4"), Start())
	require.False(t, r.Failed())
	assert.Equal(t, 8, r.Tree())
	assert.Equal(t, 1, r.Next().Cursor)
}

func TestMapSkipsFnOnFailure(t *testing.T) {
	called := false
	p := Map(Digit(), func(r rune) rune {
		called = true
		return r
	})
	r := p([]rune("x"), Start())
	assert.True(t, r.Failed())
	assert.False(t, called)
}

func TestBindSequencing(t *testing.T) {
	// the parser picked for the tail depends on the head's tree
	repeated := Bind(Any[rune](), func(head rune) Parser[rune, rune] {
		return Expect(head)
	})

	ok := repeated([]rune("aa"), Start())
	require.False(t, ok.Failed())
	assert.Equal(t, 'a', ok.Tree())
	assert.Equal(t, 2, ok.Next().Cursor)

	miss := repeated([]rune("ab"), Start())
	require.True(t, miss.Failed())
	assert.Equal(t, 1, miss.Err().Pos.Cursor)
}

func TestThen(t *testing.T) {
	p := Then(Rune('a'), Rune('b'))
	r := p([]rune("ab"), Start())
	require.False(t, r.Failed())
	assert.Equal(t, Pair[rune, rune]{First: 'a', Second: 'b'}, r.Tree())
}

func TestChoiceFirstSuccessWins(t *testing.T) {
	p := Choice(Literal("aa"), Literal("ab"), Literal("a"))
	r := p([]rune("ab"), Start())
	require.False(t, r.Failed())
	assert.Equal(t, "ab", r.Tree())
	assert.Equal(t, 2, r.Next().Cursor)
}

func TestChoiceBacktracksFully(t *testing.T) {
	// the first branch consumes two runes before failing; the second
	// must still start from the original position
	var secondStart Position
	probe := func(input []rune, pos Position) Result[string] {
		secondStart = pos
		return Literal("ax")(input, pos)
	}
	p := Choice(Literal("ab"), Parser[rune, string](probe))

	start := Start()
	r := p([]rune("ax"), start)
	require.False(t, r.Failed())
	assert.Equal(t, start, secondStart)
}

func TestChoiceCompositeFailure(t *testing.T) {
	p := Choice(Literal("foo"), Literal("bar"), Literal("baz"))
	r := p([]rune("qux"), Start())
	require.True(t, r.Failed())

	f := r.Err()
	assert.Equal(t, "no alternative matched", f.Reason)
	assert.Equal(t, 0, f.Pos.Cursor)
	require.Len(t, f.Causes, 3)
	assert.Equal(t, "expected `foo`", f.Causes[0].Reason)
	assert.Equal(t, "expected `bar`", f.Causes[1].Reason)
	assert.Equal(t, "expected `baz`", f.Causes[2].Reason)
}

func TestChoiceSingleBranchFailureStaysLeaf(t *testing.T) {
	r := Choice(Literal("foo"))([]rune("bar"), Start())
	require.True(t, r.Failed())
	assert.Empty(t, r.Err().Causes)
}

func TestZeroOrMore(t *testing.T) {
	for _, test := range []struct {
		Name       string
		Input      string
		Expected   string
		NextCursor int
	}{
		{Name: "No match is empty success", Input: "xyz", Expected: "", NextCursor: 0},
		{Name: "Collects until mismatch", Input: "aaab", Expected: "aaa", NextCursor: 3},
		{Name: "Consumes whole input", Input: "aa", Expected: "aa", NextCursor: 2},
	} {
		t.Run(test.Name, func(t *testing.T) {
			r := ZeroOrMore(Rune('a'))([]rune(test.Input), Start())
			require.False(t, r.Failed())
			assert.Equal(t, test.Expected, string(r.Tree()))
			assert.Equal(t, test.NextCursor, r.Next().Cursor)
		})
	}
}

func TestZeroOrMoreStopsOnZeroWidthSuccess(t *testing.T) {
	r := ZeroOrMore(Epsilon[rune, rune]())([]rune("aaa"), Start())
	require.False(t, r.Failed())
	assert.Len(t, r.Tree(), 1)
	assert.Equal(t, 0, r.Next().Cursor)
}

func TestOneOrMore(t *testing.T) {
	p := OneOrMore(Digit())

	ok := p([]rune("42x"), Start())
	require.False(t, ok.Failed())
	assert.Equal(t, "42", string(ok.Tree()))

	miss := p([]rune("x42"), Start())
	require.True(t, miss.Failed())
}

func TestOptionalZeroWidthSuccess(t *testing.T) {
	start := Start()
	r := Optional(Rune('a'))([]rune("b"), start)
	require.False(t, r.Failed())
	assert.Equal(t, rune(0), r.Tree())
	// zero-width success is legal but never goes backward
	assert.Equal(t, start, r.Next())
}

func TestSepBy(t *testing.T) {
	p := SepBy(OneOrMore(Digit()), Rune(','))

	r := p([]rune("1,22,333"), Start())
	require.False(t, r.Failed())
	require.Len(t, r.Tree(), 3)
	assert.Equal(t, "333", string(r.Tree()[2]))

	single := p([]rune("7"), Start())
	require.False(t, single.Failed())
	assert.Len(t, single.Tree(), 1)
}

func TestAndPredicate(t *testing.T) {
	start := Start()
	ok := And(Literal("ab"))([]rune("ab"), start)
	require.False(t, ok.Failed())
	assert.Equal(t, start, ok.Next())

	miss := And(Literal("ab"))([]rune("ax"), start)
	require.True(t, miss.Failed())
}

func TestNotPredicate(t *testing.T) {
	start := Start()
	ok := Not(Literal("ab"))([]rune("ax"), start)
	require.False(t, ok.Failed())
	assert.Equal(t, start, ok.Next())

	miss := Not(Literal("ab"))([]rune("ab"), start)
	require.True(t, miss.Failed())
}

func TestParserDeterminism(t *testing.T) {
	input := []rune("aabb")
	p := Then(OneOrMore(Rune('a')), OneOrMore(Rune('b')))

	first := p(input, Start())
	second := p(input, Start())
	require.False(t, first.Failed())
	assert.Equal(t, first.Tree(), second.Tree())
	assert.Equal(t, first.Next(), second.Next())
}
