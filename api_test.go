package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConsumesWholeInput(t *testing.T) {
	tree, err := Parse(ExpectSeq([]rune("abc")), []rune("abc"))
	require.NoError(t, err)
	assert.Equal(t, []rune("abc"), tree)
}

func TestParseReportsLeftoverInput(t *testing.T) {
	// the sub-parse succeeds but stops at 'd'
	_, err := Parse(ExpectSeq([]rune("abc")), []rune("abcdef"))
	require.Error(t, err)

	var failure *Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, "input not fully consumed", failure.Reason)
	assert.Equal(t, 3, failure.Pos.Cursor)
	assert.Empty(t, failure.Causes)
}

func TestParsePropagatesFailure(t *testing.T) {
	_, err := Parse(Expect('x'), []rune("abc"))
	require.Error(t, err)

	var failure *Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, 0, failure.Pos.Cursor)
}

func TestParseEmptyInput(t *testing.T) {
	// zero-width grammar over empty input is a complete parse
	tree, err := Parse(Epsilon[rune, string](), []rune(""))
	require.NoError(t, err)
	assert.Equal(t, "", tree)
}

func TestParseString(t *testing.T) {
	tree, err := ParseString(Literal("héllo"), "héllo")
	require.NoError(t, err)
	assert.Equal(t, "héllo", tree)
}

func TestParseFailurePositionTracksLines(t *testing.T) {
	line := Then(Literal("ab\n"), Literal("cd"))
	_, err := ParseString(line, "ab\ncx")
	require.Error(t, err)

	var failure *Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, 2, failure.Pos.Line)
	assert.Equal(t, 1, failure.Pos.Column)
}
