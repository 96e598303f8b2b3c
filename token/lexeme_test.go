package token

import "testing"

// feed runs a line through the quoting state machine the way the value
// handler does: the escape tracker is offered every character first.
func feed(line string) (string, ValueState) {
	cur := Cursor{Line: []byte(line + "\n"), LineNo: 1}
	var esc Escape
	var lx Lexeme
	for cur.Pos = 0; cur.Pos < len(cur.Line); cur.Pos++ {
		esc.Escaped(&cur, cur.Ch())
		if lx.Step(&cur, &esc) && !lx.State.End() {
			lx.Append(cur.Ch())
		}
		if lx.State.End() {
			break
		}
	}
	return string(lx.Text), lx.State
}

func TestLexemeUnquoted(t *testing.T) {
	text, state := feed("hello world")
	if text != "hello world" || state != StateEndUnquoted {
		t.Fatalf("got %q in state %s", text, state)
	}
}

func TestLexemeQuoted(t *testing.T) {
	tests := []struct {
		in    string
		want  string
		state ValueState
	}{
		{`"meow"`, "meow", StateEndQuote2},
		{`'meow'`, "meow", StateEndQuote1},
		{`"with space "`, "with space ", StateEndQuote2},
		{`"val""ue"`, `val"ue`, StateEndQuote2},
		{`'it''s'`, "it's", StateEndQuote1},
	}
	for _, tc := range tests {
		text, state := feed(tc.in)
		if text != tc.want || state != tc.state {
			t.Errorf("feed(%q) = %q (%s), want %q (%s)", tc.in, text, state, tc.want, tc.state)
		}
	}
}

func TestLexemeDoubledStructural(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`a{{b`, "a{b"},
		{`a}}b`, "a}b"},
		{`C:\\folder`, `C:\folder`},
		{`"l==r"`, "l=r"},
	}
	for _, tc := range tests {
		text, _ := feed(tc.in)
		if text != tc.want {
			t.Errorf("feed(%q) = %q, want %q", tc.in, text, tc.want)
		}
	}
}

func TestLexemeStrip(t *testing.T) {
	lx := Lexeme{Text: []byte("abc  \t"), State: StateUnquoted}
	lx.StripTrailingSpace()
	if string(lx.Text) != "abc" {
		t.Fatalf("strip = %q", lx.Text)
	}

	quoted := Lexeme{Text: []byte("abc "), State: StateEndQuote2}
	quoted.StripTrailingSpace()
	if string(quoted.Text) != "abc " {
		t.Fatal("quoted lexemes keep their whitespace")
	}
}

func TestQuotedPredicate(t *testing.T) {
	for _, s := range []ValueState{StateQuote1, StateQuote2, StateEndQuote1, StateEndQuote2} {
		if !s.Quoted() {
			t.Errorf("%s should be quoted", s)
		}
	}
	for _, s := range []ValueState{StateNone, StateUnquoted, StateEndUnquoted} {
		if s.Quoted() {
			t.Errorf("%s should not be quoted", s)
		}
	}
}
