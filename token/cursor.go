package token

// Cursor is the parser's position in the current logical line. Line
// always ends with '\n'.
type Cursor struct {
	Line   []byte
	Pos    int
	LineNo int
}

func (c *Cursor) Ch() byte {
	return c.Line[c.Pos]
}

// Delimiter reports whether the current character is an unescaped ch.
// A doubled structural character counts as escaped and is not a
// delimiter.
func Delimiter(c *Cursor, e *Escape, ch byte) bool {
	return c.Ch() == ch && !e.Escaped(c, ch)
}
