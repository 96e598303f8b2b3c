package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/nodeluna/luco/lucoerr"
	"github.com/nodeluna/luco/token"
)

var errColor = color.New(color.FgRed, color.Bold)

// errorLocation renders "line:col", the offending line verbatim, and a
// caret under the cursor. When at is non-nil the line number, column and
// caret come from that frame instead of the cursor; the line text shown
// is still the cursor's current line.
func errorLocation(d *parsingData, at *token.Frame) string {
	line, col := d.cur.LineNo, d.cur.Pos
	if at != nil {
		line, col = at.Line, at.Col
	}

	src := strings.TrimRight(string(d.cur.Line), "\n")
	lineWidth := len(strconv.Itoa(line))

	var b strings.Builder
	fmt.Fprintf(&b, "%d:%d\n", line, col)
	fmt.Fprintf(&b, "  %d\t|\t%s\n", line, src)
	caret := col
	if caret > 0 {
		caret--
	}
	fmt.Fprintf(&b, "  %s\t|\t%s^\n", strings.Repeat(" ", lineWidth), strings.Repeat(" ", caret))
	return errColor.Sprint(b.String())
}

func (p *parser) errf(format string, args ...any) error {
	return lucoerr.New(lucoerr.ParsingError, "%s %s",
		errorLocation(&p.d, nil), fmt.Sprintf(format, args...))
}

func (p *parser) errAt(at token.Frame, format string, args ...any) error {
	return lucoerr.New(lucoerr.ParsingError, "%s %s",
		errorLocation(&p.d, &at), fmt.Sprintf(format, args...))
}
