// Package errors holds the typed error values the parser panics with on
// its single abort path, following the teacher's errors/errors.go. These
// are distinct from diag.Diagnostic: they are the payload carried by a
// panic, recovered once at the top of parser.ParseModule and converted into
// exactly one diagnostic.
package errors

import (
	"fmt"
	"strings"

	"github.com/nomisfailla/arctic/internal/source"
	"github.com/nomisfailla/arctic/internal/token"
)

type UnexpectedToken struct {
	Expected token.Kind
	Got      token.Token
}

func (e UnexpectedToken) Error() string {
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Got.Kind)
}

func (e UnexpectedToken) Position() source.Position {
	return e.Got.Pos
}

type UnexpectedTokenOneOf struct {
	Expected []token.Kind
	Got      token.Token
}

func (e UnexpectedTokenOneOf) Error() string {
	var names []string
	for _, k := range e.Expected {
		names = append(names, k.String())
	}
	return fmt.Sprintf("expected one of {%s}, got %s", strings.Join(names, ", "), e.Got.Kind)
}

func (e UnexpectedTokenOneOf) Position() source.Position {
	return e.Got.Pos
}

// NameAlreadyTaken is raised by declaration-level parsing when a struct
// field or function argument name repeats within the same declaration.
type NameAlreadyTaken struct {
	Name string
	Pos  source.Position
}

func (e NameAlreadyTaken) Error() string {
	return fmt.Sprintf("name %q already taken", e.Name)
}

func (e NameAlreadyTaken) Position() source.Position {
	return e.Pos
}

// Positioned is implemented by every error in this package so the
// parser's single recover site can attach a position to the diagnostic
// it builds, without needing a type switch per error kind.
type Positioned interface {
	error
	Position() source.Position
}
