package encode

import (
	"encoding/json"
	"io"

	"github.com/nodeluna/luco/ir"
)

// encodeJSON emits conventional JSON: brace and bracket containers,
// comma separators, escaped double-quoted strings, and scalar texts as
// produced by Stringify, so doubles keep their decimal point.
func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	if err := jsonNode(node, w, es, 0); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func jsonNode(node *ir.Node, w io.Writer, es *EncState, level int) error {
	switch {
	case node.IsObject():
		return jsonObject(node.MustObject(), w, es, level)
	case node.IsArray():
		return jsonArray(node.MustArray(), w, es, level)
	default:
		return writeString(w, jsonScalar(node.MustValue()))
	}
}

func jsonObject(o *ir.Object, w io.Writer, es *EncState, level int) error {
	if o.Empty() {
		return writeString(w, "{}")
	}
	if err := writeString(w, "{\n"); err != nil {
		return err
	}
	count := 0
	for key, child := range o.All() {
		if err := writeString(w, es.indent(level+1)+escapeJSON(key)+": "); err != nil {
			return err
		}
		if err := jsonNode(child, w, es, level+1); err != nil {
			return err
		}
		count++
		sep := "\n"
		if count != o.Len() {
			sep = ",\n"
		}
		if err := writeString(w, sep); err != nil {
			return err
		}
	}
	return writeString(w, es.indent(level)+"}")
}

func jsonArray(a *ir.Array, w io.Writer, es *EncState, level int) error {
	if a.Empty() {
		return writeString(w, "[]")
	}
	if err := writeString(w, "[\n"); err != nil {
		return err
	}
	for i, child := range a.All() {
		if err := writeString(w, es.indent(level+1)); err != nil {
			return err
		}
		if err := jsonNode(child, w, es, level+1); err != nil {
			return err
		}
		sep := "\n"
		if i != a.Len()-1 {
			sep = ",\n"
		}
		if err := writeString(w, sep); err != nil {
			return err
		}
	}
	return writeString(w, es.indent(level)+"]")
}

func jsonScalar(v *ir.Scalar) string {
	if v.IsString() {
		return escapeJSON(v.Stringify())
	}
	if v.IsEmpty() {
		return "null"
	}
	return v.Stringify()
}

func escapeJSON(s string) string {
	d, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(d)
}
