package parse

import (
	"github.com/nodeluna/luco/ir"
	"github.com/nodeluna/luco/token"
)

// Each handler is offered the current character in a fixed order and
// reports (consumed, err). A consumed character advances the cursor; an
// unconsumed one falls through to the next handler and finally to the
// syntax-error check, which skips whitespace and rejects the characters
// its cases recognise as misplaced. Handlers also report false for some
// characters they have already acted on (an opening quote, the first
// half of a doubled escape); the check lets those pass.

func (p *parser) delim(ch byte) bool {
	return token.Delimiter(&p.d.cur, &p.d.esc, ch)
}

// handleComment recognizes '#' line comments and the '#{ ... }' nested
// block form. A '#' inside a quoted lexeme is string content, not a
// comment. Block comments track bracket depth; the comment ends when an
// unescaped '}' returns the depth to zero.
func (p *parser) handleComment() (bool, error) {
	d := &p.d
	if !p.inQuotedLexeme() && p.delim('#') {
		d.push(token.Comment)
	} else if p.commentEnd() {
		if d.hier.Top().Ctx != token.NestedComment {
			d.shiftBack = true
		}
		d.hier.Pop()
		return true, nil
	}

	switch {
	case d.hier.TopIs(token.Comment):
		// Only a '{' right after the '#' opens the block form.
		top := d.hier.Top()
		if p.delim('{') && top.Line == d.cur.LineNo && top.Col == d.cur.Pos-1 {
			d.hier.Pop()
			d.push(token.NestedComment)
		}
		return true, nil
	case d.hier.TopIs(token.NestedComment):
		if p.delim('{') {
			p.commentDepth++
		} else if p.delim('}') {
			if p.commentDepth > 0 {
				p.commentDepth--
			}
		}
		return true, nil
	default:
		return false, nil
	}
}

func (p *parser) commentEnd() bool {
	d := &p.d
	if d.hier.TopIs(token.Comment) && token.IsNewline(d.cur.Ch()) {
		return true
	}
	return d.hier.TopIs(token.NestedComment) && p.delim('}') && p.commentDepth == 0
}

func (p *parser) inQuotedLexeme() bool {
	d := &p.d
	if (d.hier.TopIs(token.Value) || d.hier.TopIs(token.TransientBracket)) &&
		d.rawValue.State.Quoted() && !d.rawValue.State.End() {
		return true
	}
	if d.hier.TopIs(token.Key) && d.topKey().State.Quoted() && !d.topKey().State.End() {
		return true
	}
	return false
}

// handleKey accumulates an object key until an unescaped '=' or '{'
// ends it, then hands over to the value or opening-bracket context.
func (p *parser) handleKey() (bool, error) {
	d := &p.d
	if p.keyStart() {
		d.push(token.Key)
		d.pushKey()
	} else if p.keyEnd() && !d.topKey().State.Continuation() {
		d.hier.Pop()
		if p.delim('=') {
			d.push(token.EqualSign)
		} else {
			d.push(token.OpeningBracket)
		}
		return true, nil
	}

	if !d.hier.TopIs(token.Key) {
		return false, nil
	}
	key := d.topKey()
	// keyEnd may already have confirmed the second half of a doubled
	// '{'; offering the character again would drop that confirmation.
	if !d.esc.Pending() {
		d.esc.Escaped(&d.cur, d.cur.Ch())
	}
	if key.Step(&d.cur, &d.esc) {
		if !key.State.End() {
			key.Append(d.cur.Ch())
		}
		return true, nil
	}
	return false, nil
}

func (p *parser) keyStart() bool {
	d := &p.d
	if !d.hier.TopIs(token.Object) {
		return false
	}
	switch ch := d.cur.Ch(); ch {
	case '\n', '\t', ' ':
		return false
	case '{', '}':
		// An escaped structural character may begin a key.
		return d.esc.Escaped(&d.cur, ch)
	default:
		return true
	}
}

func (p *parser) keyEnd() bool {
	return p.d.hier.TopIs(token.Key) && (p.delim('=') || p.delim('{'))
}

// handleValue accumulates the scalar lexeme for the current value and
// commits it on its terminating newline, or opens a transient bracket
// when an unescaped '{' interrupts.
func (p *parser) handleValue() (bool, error) {
	d := &p.d
	if p.valueStart() {
		if d.hier.TopIs(token.EqualSign) || d.hier.TopIs(token.FlushValue) {
			d.hier.Pop()
		}
		d.push(token.Value)
	} else if p.valueEnd() && !d.rawValue.State.Continuation() {
		err := p.commitValue()
		d.hier.Pop()
		return err == nil, err
	}

	if !d.hier.TopIs(token.Value) {
		return false, nil
	}
	d.esc.Escaped(&d.cur, d.cur.Ch())
	confirmed := d.esc.Pending()
	if d.rawValue.Step(&d.cur, &d.esc) {
		if !confirmed && p.delim('=') {
			// A bare '=' cannot follow a value; the error
			// surfaces in the syntax fallthrough.
			d.rawValue.State = token.StateEndUnquoted
			return false, nil
		}
		if !d.rawValue.State.End() {
			d.rawValue.Append(d.cur.Ch())
		}
		return true, nil
	}
	if d.cur.Ch() == '{' && p.delim('{') {
		d.hier.Pop()
		if !d.rawValue.Empty() {
			if err := p.commitValue(); err != nil {
				return false, err
			}
		}
		d.push(token.TransientBracket)
		return true, nil
	}
	return false, nil
}

func (p *parser) valueStart() bool {
	d := &p.d
	if !d.hier.TopIs(token.EqualSign) && !d.hier.TopIs(token.Array) {
		return false
	}
	switch ch := d.cur.Ch(); ch {
	case '\n', '\t', ' ':
		return false
	case '}':
		return d.esc.Escaped(&d.cur, ch)
	default:
		return true
	}
}

func (p *parser) valueEnd() bool {
	d := &p.d
	if d.hier.TopIs(token.Value) && token.IsNewline(d.cur.Ch()) {
		return true
	}
	if d.hier.TopIs(token.FlushValue) {
		d.shiftBack = true
		return true
	}
	return false
}

// commitValue flushes the accumulated lexeme into the current
// container: insert under the pending key for objects, append for
// arrays. Unquoted lexemes run through type inference; quoted ones stay
// strings verbatim.
func (p *parser) commitValue() error {
	d := &p.d
	d.rawValue.StripTrailingSpace()
	var sc ir.Scalar
	if d.rawValue.State.Quoted() {
		sc = ir.StringScalar(string(d.rawValue.Text))
	} else {
		sc = ir.Infer(string(d.rawValue.Text))
	}

	top := d.topNode()
	switch {
	case top.IsObject():
		key := d.topKey()
		key.StripTrailingSpace()
		if _, err := top.Insert(string(key.Text), ir.FromScalar(sc)); err != nil {
			return err
		}
		d.popKey()
	case top.IsArray():
		if _, err := top.PushBack(ir.FromScalar(sc)); err != nil {
			return err
		}
	}
	d.rawValue.Reset()
	return nil
}

// handleOpeningBracket owns the TransientBracket context: the moment a
// '{' is seen it is not yet decided whether an object or an array
// opens. The next unescaped '=' or '{' resolves to an object (the
// accumulated lexeme becomes the pending key), a newline after a
// non-empty lexeme resolves to an array with that lexeme as its first
// element, and a '{' with no lexeme opens a nested array element.
func (p *parser) handleOpeningBracket() (bool, error) {
	d := &p.d
	if d.hier.TopIs(token.OpeningBracket) {
		d.hier.Pop()
		d.push(token.TransientBracket)
	} else if p.transientResolved() {
		d.hier.Pop()
		key := d.topKey()
		key.StripTrailingSpace()

		switch {
		case p.delim('='):
			d.push(token.Object)
			d.push(token.EqualSign)
		case p.delim('{') && !d.rawValue.Empty():
			d.push(token.Object)
			d.push(token.OpeningBracket)
		case token.IsNewline(d.cur.Ch()):
			d.push(token.Array)
			d.push(token.FlushValue)
		case p.delim('{'):
			d.push(token.Array)
			var child *ir.Node
			var err error
			if d.topNode().IsObject() {
				child, err = d.topNode().Insert(string(key.Text), ir.New(ir.ArrayNode))
			} else {
				child, err = d.topNode().PushBack(ir.New(ir.ArrayNode))
			}
			if err != nil {
				return false, err
			}
			d.nodes = append(d.nodes, child)
			d.push(token.TransientBracket)
			return true, nil
		default:
			return false, p.errf("expected '{' or '=' encountered: %q", d.cur.Ch())
		}

		var child *ir.Node
		var err error
		switch d.hier.Top().Ctx {
		case token.OpeningBracket, token.EqualSign:
			if d.topNode().IsObject() {
				child, err = d.topNode().Insert(string(key.Text), ir.New(ir.ObjectNode))
			} else {
				child, err = d.topNode().PushBack(ir.New(ir.ObjectNode))
				// An array element has no key of its own;
				// its closing '}' still pops one frame.
				d.pushKey()
			}
			d.keys = append(d.keys, d.rawValue)
			d.rawValue.Reset()
		case token.FlushValue:
			if d.topNode().IsObject() {
				child, err = d.topNode().Insert(string(key.Text), ir.New(ir.ArrayNode))
			} else {
				child, err = d.topNode().PushBack(ir.New(ir.ArrayNode))
			}
		}
		if err != nil {
			return false, err
		}
		d.nodes = append(d.nodes, child)
		return true, nil
	}

	if !d.hier.TopIs(token.TransientBracket) {
		return false, nil
	}
	if d.rawValue.Empty() && token.IsNewline(d.cur.Ch()) {
		return true, nil
	}
	// transientResolved may already have confirmed the second half of a
	// doubled '{'; offering the character again would drop it.
	if !d.esc.Pending() {
		d.esc.Escaped(&d.cur, d.cur.Ch())
	}
	if d.rawValue.Step(&d.cur, &d.esc) {
		if !d.rawValue.State.End() {
			d.rawValue.Append(d.cur.Ch())
		}
		return true, nil
	}
	return false, nil
}

func (p *parser) transientResolved() bool {
	d := &p.d
	if d.hier.Empty() {
		return false
	}
	if d.rawValue.Empty() && !p.delim('{') {
		return false
	}
	if !d.hier.TopIs(token.TransientBracket) {
		return false
	}
	return p.delim('=') || p.delim('{') || token.IsNewline(d.cur.Ch())
}

// handleClosingBracket pops the object or array the unescaped '}'
// closes, or turns an undecided 'key {}' into an empty object.
func (p *parser) handleClosingBracket() (bool, error) {
	d := &p.d
	if (d.hier.TopIs(token.Object) || d.hier.TopIs(token.Array)) && p.delim('}') {
		d.push(token.ClosingBracket)
	}

	switch {
	case d.hier.TopIs(token.ClosingBracket):
		d.hier.Pop()
		d.topKey().Reset()
		top := d.hier.Top().Ctx
		if top != token.Object && top != token.Array {
			return false, p.errf("encountered '}' without a '{'")
		}
		closed := d.hier.Pop()
		if closed.Ctx == token.Object {
			d.popKey()
		}
		d.popNode()
		if d.hier.Empty() {
			return false, p.errf("encountered more '}' than there is '{'")
		}
		return true, nil
	case d.hier.TopIs(token.TransientBracket) && p.delim('}'):
		if !d.rawValue.Empty() {
			return false, p.errf("expected a new line before '}' but found %q", string(d.rawValue.Text))
		}
		d.hier.Pop()
		if d.topNode().IsArray() {
			if _, err := d.topNode().PushBack(ir.New(ir.ObjectNode)); err != nil {
				return false, err
			}
			return true, nil
		}
		key := d.topKey()
		key.StripTrailingSpace()
		if _, err := d.topNode().Insert(string(key.Text), ir.New(ir.ObjectNode)); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, nil
	}
}

// checkSyntax runs last: it skips whitespace and turns the unconsumed
// characters that match one of its cases into a located ParsingError.
// Any other character passes without an error.
func (p *parser) checkSyntax() error {
	d := &p.d
	ch := d.cur.Ch()
	switch {
	case token.IsSpaceOrNewline(ch):
		return nil
	case d.hier.Empty():
		return p.errf("the number of '}' is more than the number of '{'")
	case d.rawValue.State == token.StateContinuationQuote1 && !p.delim('\\'):
		return p.errf("expected ''' on the new line string but found %q", ch)
	case d.rawValue.State == token.StateContinuationQuote2 && !p.delim('\\'):
		return p.errf(`expected '"' on the new line string but found %q`, ch)
	case d.rawValue.State == token.StateContinuationUnquoted && d.eof:
		return p.errf("expected a string on the new line but reached end of file")
	case d.rawValue.State.Continuation() && d.hier.TopIs(token.FlushValue):
		return p.errf("expected a string on the new line but found %q", ch)
	case d.rawValue.State == token.StateEndQuote1 || d.rawValue.State == token.StateEndQuote2:
		return p.errf("expected a new line after [value] reaching end-of-string but found %q", ch)
	case len(d.keys) > 0 && d.topKey().State.End() && d.hier.TopIs(token.Key):
		return p.errf("expected '=' or '{' after [key] reaching end-of-string but found %q", ch)
	case d.rawValue.State.End() && d.hier.TopIs(token.Value):
		return p.errf("expected 'newline' after [value] reaching end-of-string but found %q", ch)
	case d.hier.TopIs(token.Object) && p.delim('{'):
		return p.errf("expected 'key' in the [global object] but found %q", ch)
	case p.delim('}'):
		return p.errf("found '}' without being in an [object] or [array]")
	default:
		return nil
	}
}
