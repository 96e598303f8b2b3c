// Package parse drives the luco tokenizer over a character stream and
// builds the document tree.
//
// The parser is stack-driven rather than recursive-descent: the
// grammar's disambiguation between 'key {' object openings and bare '{'
// array values is delayed past the opening bracket, so a transient
// context sits on the hierarchy stack until the next significant
// character resolves it.
package parse

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/nodeluna/luco/ir"
	"github.com/nodeluna/luco/lucoerr"
	"github.com/nodeluna/luco/token"
)

type parser struct {
	d            parsingData
	commentDepth uint64
	root         *ir.Node
}

func newParser() *parser {
	p := &parser{root: ir.New(ir.ObjectNode)}
	p.d.cur.LineNo = 1
	p.d.hier.Push(token.Object, 1, 0)
	p.d.nodes = []*ir.Node{p.root}
	p.d.pushKey()
	return p
}

// Parse parses a complete luco document. Input without a final newline
// is treated as if one were present, so a pending lexeme at end of
// input is flushed.
func Parse(d []byte) (*ir.Node, error) {
	return ParseReader(bytes.NewReader(d))
}

func ParseString(s string) (*ir.Node, error) {
	return Parse([]byte(s))
}

// ParseReader parses a luco document from r, consuming it line by
// line.
func ParseReader(r io.Reader) (*ir.Node, error) {
	p := newParser()
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, lucoerr.New(lucoerr.FilesystemError, "read failed: %v", err)
		}
		eof := errors.Is(err, io.EOF)
		if eof {
			p.d.eof = true
			if len(line) > 0 && line[len(line)-1] != '\n' {
				line = append(line, '\n')
			}
		}
		if len(line) > 0 {
			if perr := p.feedLine(line); perr != nil {
				return nil, perr
			}
		}
		if eof {
			return p.finish()
		}
	}
}

// ParseFile opens path and parses it. The file is held only for the
// duration of the call; open failures surface as FilesystemError with
// the underlying system message.
func ParseFile(path string) (*ir.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, lucoerr.New(lucoerr.FilesystemError, "couldn't open '%s', %v", path, err)
	}
	defer f.Close()
	return ParseReader(f)
}

// MustParse is Parse panicking on error.
func MustParse(d []byte) *ir.Node {
	n, err := Parse(d)
	if err != nil {
		panic(err)
	}
	return n
}

func (p *parser) feedLine(line []byte) error {
	p.d.cur.Line = line
	for p.d.cur.Pos = 0; p.d.cur.Pos < len(line); p.d.cur.Pos++ {
		if err := p.step(); err != nil {
			return err
		}
		if p.d.shiftBack {
			p.d.shiftBack = false
			p.d.cur.Pos--
		}
	}
	p.d.cur.LineNo++
	return nil
}

// step offers the current character to the handlers in their fixed
// order, stopping at the first one that consumes it.
func (p *parser) step() error {
	for _, handle := range []func() (bool, error){
		p.handleComment,
		p.handleKey,
		p.handleValue,
		p.handleOpeningBracket,
		p.handleClosingBracket,
	} {
		done, err := handle()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
	return p.checkSyntax()
}

func (p *parser) finish() (*ir.Node, error) {
	d := &p.d
	if d.hier.TopIs(token.NestedComment) {
		return nil, p.errAt(d.hier.Top(), "non-ending nested comment was encountered at")
	}
	if d.rawValue.State.Continuation() {
		return nil, p.errf("expected a string on the new line but reached end of file")
	}
	if d.hier.Len() != 1 || !d.hier.TopIs(token.Object) {
		for i := d.hier.Len() - 1; i >= 0; i-- {
			fr := d.hier[i]
			if fr.Ctx == token.Object || fr.Ctx == token.Array {
				if i == 0 {
					break
				}
				return nil, p.errAt(fr, "unclosed '{' was encountered at")
			}
		}
		return nil, p.errf("unexpected end of input")
	}
	return p.root, nil
}
