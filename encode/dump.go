package encode

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/nodeluna/luco/ir"
	"github.com/nodeluna/luco/lucoerr"
)

// DumpToStdout writes the node to stdout, colorized when stdout is a
// terminal.
func DumpToStdout(node *ir.Node, opts ...EncodeOption) error {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		opts = append(opts, EncodeColors(NewColors()))
	}
	return Encode(node, os.Stdout, opts...)
}

// WriteFile serializes the node into the file at path. Open failures
// surface as FilesystemError with the underlying system message;
// serialization itself does not fail.
func WriteFile(node *ir.Node, path string, opts ...EncodeOption) error {
	f, err := os.Create(path)
	if err != nil {
		return lucoerr.New(lucoerr.FilesystemError, "%v", err)
	}
	defer f.Close()
	return Encode(node, f, opts...)
}
