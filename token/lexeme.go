package token

// Lexeme accumulates a key or value through the quoting state machine.
type Lexeme struct {
	Text  []byte
	State ValueState
}

func (lx *Lexeme) Reset() {
	lx.Text = nil
	lx.State = StateNone
}

func (lx *Lexeme) Append(ch byte) {
	lx.Text = append(lx.Text, ch)
}

func (lx *Lexeme) Empty() bool {
	return lx.State == StateNone
}

// StripTrailingSpace drops trailing spaces and tabs from an unquoted
// lexeme at commit time. Quoted lexemes keep their whitespace.
func (lx *Lexeme) StripTrailingSpace() {
	if lx.State != StateUnquoted {
		return
	}
	i := len(lx.Text)
	for i > 0 && IsSpace(lx.Text[i-1]) {
		i--
	}
	lx.Text = lx.Text[:i]
}

// Step advances the quoting state machine over the current character
// and reports whether the caller should treat it as part of the lexeme.
// A true return with a non-terminal state means "append this
// character"; transitions into an End state consume the terminator
// without appending it. A false return leaves the character for the
// next handler.
func (lx *Lexeme) Step(c *Cursor, e *Escape) bool {
	ch := c.Ch()
	switch {
	case IsSpaceOrNewline(ch) && (lx.State == StateNone || lx.State.Continuation()):
		return false

	case e.Tracking():
		// Mid-pair of a doubled escape: the first half is
		// skipped, the second half is appended.
		if !e.Pending() {
			return false
		}
		e.Confirm()
		if lx.State == StateNone {
			lx.State = StateUnquoted
		}
		return true

	case Delimiter(c, e, '\\'):
		switch lx.State {
		case StateEndQuote1:
			lx.State = StateContinuationQuote1
		case StateEndQuote2:
			lx.State = StateContinuationQuote2
		default:
			lx.State = StateContinuationUnquoted
		}
		return false

	case lx.State == StateContinuationQuote1:
		if Delimiter(c, e, '\'') {
			lx.State = StateQuote1
		}
		return false

	case lx.State == StateContinuationQuote2:
		if Delimiter(c, e, '"') {
			lx.State = StateQuote2
		}
		return false

	case lx.State == StateContinuationUnquoted:
		lx.State = StateUnquoted
		return true

	case lx.appendable(c, e, ch):
		return true

	case lx.State == StateNone:
		switch {
		case Delimiter(c, e, '\''):
			lx.State = StateQuote1
		case Delimiter(c, e, '"'):
			lx.State = StateQuote2
		case !Delimiter(c, e, '{') && !Delimiter(c, e, '}'):
			lx.State = StateUnquoted
			return true
		}
		return false

	case lx.State == StateEndQuote1 || lx.State == StateEndQuote2:
		return false

	case Delimiter(c, e, '\'') && lx.State == StateQuote1:
		lx.State = StateEndQuote1
		return true

	case Delimiter(c, e, '"') && lx.State == StateQuote2:
		lx.State = StateEndQuote2
		return true

	case IsNewline(ch) && lx.State == StateUnquoted:
		lx.State = StateEndUnquoted
		return true

	default:
		return false
	}
}

func (lx *Lexeme) appendable(c *Cursor, e *Escape, ch byte) bool {
	switch {
	case Delimiter(c, e, '{') || Delimiter(c, e, '}'):
		return false
	case !IsNewline(ch) && lx.State == StateUnquoted:
		return true
	case !Delimiter(c, e, '"') && lx.State == StateQuote2:
		return true
	case !Delimiter(c, e, '\'') && lx.State == StateQuote1:
		return true
	default:
		return false
	}
}
