package encode

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/nodeluna/luco/ir"
)

// encodeYAML converts the tree to plain Go values and lets the YAML
// library render the document.
func encodeYAML(node *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(ir.ToAny(node))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
