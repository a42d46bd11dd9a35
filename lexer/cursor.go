package lexer

// Cursor reads the source one rune at a time and keeps the position used in
// diagnostics.
type Cursor struct {
	input []rune
	pos   int
	line  int
	col   int
}

func NewCursor(input string) *Cursor {
	return &Cursor{
		input: []rune(input),
		line:  1,
		col:   0,
	}
}

// Peek returns the current rune without consuming it, or 0 at end of input.
func (c *Cursor) Peek() rune {
	if c.pos >= len(c.input) {
		return 0
	}
	return c.input[c.pos]
}

// Next consumes the current rune.
func (c *Cursor) Next() rune {
	if c.EOF() {
		return 0
	}
	ch := c.input[c.pos]
	c.pos++
	if ch == '\n' {
		c.line++
		c.col = 0
	} else {
		c.col++
	}
	return ch
}

func (c *Cursor) EOF() bool { return c.pos >= len(c.input) }

// Position returns the line and the column of the last consumed rune.
func (c *Cursor) Position() (line, col int) { return c.line, c.col }

// Fail returns an error positioned at the cursor.
func (c *Cursor) Fail(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Line: c.line, Col: c.col}
}
