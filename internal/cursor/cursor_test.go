package cursor

import "testing"

func TestPeekPastEndReturnsSentinel(t *testing.T) {
	c := New([]byte("ab"))
	if c.Peek(5) != sentinel {
		t.Fatalf("Peek past end = %q, want sentinel", c.Peek(5))
	}
}

func TestNextAdvancesColumnAndLine(t *testing.T) {
	c := New([]byte("a\nb"))
	if got := c.Next(); got != 'a' {
		t.Fatalf("first Next = %q", got)
	}
	if c.Position().Line != 1 || c.Position().Column != 2 {
		t.Fatalf("position after 'a' = %+v", c.Position())
	}
	c.Next() // consume '\n'
	if c.Position().Line != 2 || c.Position().Column != 1 {
		t.Fatalf("position after newline = %+v", c.Position())
	}
	if got := c.Next(); got != 'b' {
		t.Fatalf("third Next = %q", got)
	}
	if !c.AtEnd() {
		t.Fatalf("expected AtEnd after consuming whole buffer")
	}
}
