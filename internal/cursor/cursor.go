// Package cursor implements the byte-level lookahead cursor the scanner
// is built on, factored out of the teacher's Lexer so that position
// tracking has a single owner.
package cursor

import "github.com/nomisfailla/arctic/internal/source"

// sentinel is returned by Peek when the requested offset is out of
// range; it is not a byte the identifier/digit predicates ever match.
const sentinel byte = 0

// Cursor holds the buffer, a byte index and the current position. It
// does not classify bytes itself; that is the scanner's job.
type Cursor struct {
	buf []byte
	idx int
	pos source.Position
}

func New(buf []byte) *Cursor {
	return &Cursor{buf: buf, pos: source.Position{Line: 1, Column: 1}}
}

// Peek returns the byte at idx+offset, or the sentinel if that is past
// the end of the buffer.
func (c *Cursor) Peek(offset int) byte {
	i := c.idx + offset
	if i < 0 || i >= len(c.buf) {
		return sentinel
	}
	return c.buf[i]
}

// AtEnd reports whether the cursor has consumed the whole buffer.
func (c *Cursor) AtEnd() bool {
	return c.idx >= len(c.buf)
}

// Position returns the cursor's current (line, column).
func (c *Cursor) Position() source.Position {
	return c.pos
}

// Next consumes one byte and advances the position, resetting the column
// and incrementing the line on '\n'.
func (c *Cursor) Next() byte {
	b := c.Peek(0)
	c.idx++
	if b == '\n' {
		c.pos.Line++
		c.pos.Column = 1
	} else {
		c.pos.Column++
	}
	return b
}
