package parsec

import (
	"fmt"
	"strings"
)

// Failure describes why a parse did not succeed.  A leaf failure has
// no Causes; a composite failure carries the failure of every
// alternative that was attempted, in attempt order.  Failures are
// ordinary values: returned, never thrown, never mutated after
// construction.
type Failure struct {
	Reason string
	Pos    Position
	Causes []*Failure
}

// NewFailure builds a childless failure.
func NewFailure(reason string, pos Position) *Failure {
	return &Failure{Reason: reason, Pos: pos}
}

// MergeFailures combines the failures of two or more attempted
// branches into one composite failure, preserving attempt order.
func MergeFailures(reason string, pos Position, causes ...*Failure) *Failure {
	return &Failure{Reason: reason, Pos: pos, Causes: causes}
}

// Error renders the failure on one line.  Composite failures list
// their causes between brackets, in attempt order.
func (f *Failure) Error() string {
	if len(f.Causes) == 0 {
		return fmt.Sprintf("%s @ %s", f.Reason, f.Pos)
	}
	var s strings.Builder
	fmt.Fprintf(&s, "%s @ %s [", f.Reason, f.Pos)
	for i, cause := range f.Causes {
		if i > 0 {
			s.WriteString("; ")
		}
		s.WriteString(cause.Error())
	}
	s.WriteString("]")
	return s.String()
}

// Pretty renders the failure tree with box-drawing connectors, one
// reason per line annotated with its position.  The traversal is
// pre-order and always terminates: failures form a tree, never a
// cycle.
func (f *Failure) Pretty() string {
	p := &failurePrinter{output: &strings.Builder{}}
	p.visit(f)
	return p.output.String()
}

type failurePrinter struct {
	padStr []string
	output *strings.Builder
}

func (p *failurePrinter) visit(f *Failure) {
	fmt.Fprintf(p.output, "%s (%s)", f.Reason, f.Pos)
	for i, cause := range f.Causes {
		p.output.WriteString("\n")
		if i == len(f.Causes)-1 {
			p.pwrite("└── ")
			p.indent("    ")
		} else {
			p.pwrite("├── ")
			p.indent("│   ")
		}
		p.visit(cause)
		p.unindent()
	}
}

func (p *failurePrinter) indent(s string) { p.padStr = append(p.padStr, s) }

func (p *failurePrinter) unindent() { p.padStr = p.padStr[:len(p.padStr)-1] }

func (p *failurePrinter) pwrite(s string) {
	for _, pad := range p.padStr {
		p.output.WriteString(pad)
	}
	p.output.WriteString(s)
}
