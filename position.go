package parsec

import "fmt"

// Position is an immutable cursor into the input plus line/column
// metadata derived from the elements consumed so far.  Cursor is the
// source of truth: two positions point at the same place iff their
// cursors are equal.  Line and Column are 1-based.
type Position struct {
	Cursor int
	Line   int
	Column int
}

// Start returns the position at the beginning of any input.
func Start() Position {
	return Position{Cursor: 0, Line: 1, Column: 1}
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Equal reports whether p and o point at the same input offset.
func (p Position) Equal(o Position) bool { return p.Cursor == o.Cursor }

// Before reports whether p points at an earlier offset than o.
func (p Position) Before(o Position) bool { return p.Cursor < o.Cursor }

// Advance moves the cursor forward by n elements, clamped to limit.
// Never a fault: an out-of-range request stops at limit.  Only Column
// is bumped here; consumers that care about exact line numbers must
// advance element-wise with AdvanceOne.
func (p Position) Advance(n, limit int) Position {
	if p.Cursor+n > limit {
		n = limit - p.Cursor
	}
	if n < 0 {
		n = 0
	}
	p.Cursor += n
	p.Column += n
	return p
}

// AdvanceFunc is the rule used to move past one consumed element.
// Text streams want newline bookkeeping; opaque token streams usually
// advance column-wise only.
type AdvanceFunc[E any] func(pos Position, consumed E) Position

// AdvanceOne moves past a single consumed element.  A rune or byte
// '\n' starts a new line and resets the column; any other element
// moves one column to the right.
func AdvanceOne[E any](pos Position, consumed E) Position {
	pos.Cursor++
	if isLineBreak(consumed) {
		pos.Line++
		pos.Column = 1
		return pos
	}
	pos.Column++
	return pos
}

func isLineBreak[E any](e E) bool {
	switch v := any(e).(type) {
	case rune:
		return v == '\n'
	case byte:
		return v == '\n'
	}
	return false
}
