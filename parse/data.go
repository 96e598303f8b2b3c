package parse

import (
	"github.com/nodeluna/luco/ir"
	"github.com/nodeluna/luco/token"
)

// parsingData is the mutable state threaded through the handler chain:
// the cursor over the current logical line, the hierarchy of syntactic
// contexts, one key frame per pending object key, the stack of
// container nodes under construction, the lexeme being accumulated for
// the current value, and the doubled-character escape tracker.
type parsingData struct {
	cur       token.Cursor
	shiftBack bool
	eof       bool
	keys      []token.Lexeme
	nodes     []*ir.Node
	esc       token.Escape
	rawValue  token.Lexeme
	hier      token.Stack
}

func (d *parsingData) pushKey() {
	d.keys = append(d.keys, token.Lexeme{})
}

func (d *parsingData) topKey() *token.Lexeme {
	return &d.keys[len(d.keys)-1]
}

func (d *parsingData) popKey() {
	d.keys = d.keys[:len(d.keys)-1]
}

func (d *parsingData) topNode() *ir.Node {
	return d.nodes[len(d.nodes)-1]
}

func (d *parsingData) popNode() {
	d.nodes = d.nodes[:len(d.nodes)-1]
}

func (d *parsingData) push(ctx token.Context) {
	d.hier.Push(ctx, d.cur.LineNo, d.cur.Pos)
}
