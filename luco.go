package luco

import (
	"io"

	"github.com/nodeluna/luco/encode"
	"github.com/nodeluna/luco/ir"
	"github.com/nodeluna/luco/parse"
)

// Node and Scalar are the document tree types; see the ir package for
// their full API.
type (
	Node   = ir.Node
	Scalar = ir.Scalar
	Pair   = ir.Pair
)

// Parse parses a luco document from raw bytes.
func Parse(data []byte) (*Node, error) {
	return parse.Parse(data)
}

// ParseString parses a luco document from a string.
func ParseString(s string) (*Node, error) {
	return parse.ParseString(s)
}

// ParseReader parses a luco document from a stream.
func ParseReader(r io.Reader) (*Node, error) {
	return parse.ParseReader(r)
}

// ParseFile parses the luco document at path. The file is held only
// for the duration of the call.
func ParseFile(path string) (*Node, error) {
	return parse.ParseFile(path)
}

// MustParse is Parse panicking on error.
func MustParse(data []byte) *Node {
	return parse.MustParse(data)
}

// Stringify returns the node's luco encoding.
func Stringify(node *Node, opts ...encode.EncodeOption) string {
	return encode.MustString(node, opts...)
}

// Write serializes the node into w.
func Write(node *Node, w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(node, w, opts...)
}

// WriteFile serializes the node into the file at path.
func WriteFile(node *Node, path string, opts ...encode.EncodeOption) error {
	return encode.WriteFile(node, path, opts...)
}
