// Package diag is the diagnostic record used by every later stage of the
// front end: the scanner, the parser's abort path, the control-flow
// analyzer and the type checker all accumulate values of this type rather
// than throwing across stage boundaries.
package diag

import (
	"fmt"
	"io"

	"github.com/nomisfailla/arctic/internal/source"
)

// Kind classifies a Diagnostic by the stage that raised it, following the
// four kinds spec.md §7 calls out as externally observable (Internal is
// reserved for violated invariants and should never reach a user).
type Kind int

const (
	Lexical Kind = iota
	Syntactic
	Semantic
	Internal
)

func (k Kind) String() string {
	switch k {
	case Lexical:
		return "lexical"
	case Syntactic:
		return "syntactic"
	case Semantic:
		return "semantic"
	case Internal:
		return "internal"
	default:
		return "unknown"
	}
}

// Diagnostic is a message tied to a file reference and a position.
type Diagnostic struct {
	Kind     Kind
	Message  string
	File     string
	Position source.Position
}

func New(kind Kind, file string, pos source.Position, format string, args ...any) Diagnostic {
	return Diagnostic{
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
		File:     file,
		Position: pos,
	}
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("error: %s at %d:%d", d.Message, d.Position.Line, d.Position.Column)
}

// Render writes the diagnostic in the on-disk format specified by
// spec.md §6: the message and position on one line, followed by the
// offending source line prefixed with its line number.
func Render(w io.Writer, d Diagnostic, buf *source.Buffer) {
	fmt.Fprintf(w, "%s\n", d)
	if buf == nil {
		return
	}
	fmt.Fprintf(w, "%d | %s\n", d.Position.Line, buf.Line(d.Position.Line))
}

// List is the accumulator every stage returns alongside its result.
type List []Diagnostic

func (l *List) Add(d Diagnostic) {
	*l = append(*l, d)
}

func (l List) HasErrors() bool {
	return len(l) > 0
}

func (l List) RenderAll(w io.Writer, buf *source.Buffer) {
	for _, d := range l {
		Render(w, d, buf)
	}
}
