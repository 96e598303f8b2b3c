// Package encode serializes luco document trees to luco, JSON, or YAML
// text.
package encode

import (
	"io"
	"strings"

	"github.com/nodeluna/luco/format"
	"github.com/nodeluna/luco/ir"
)

// EncState carries the serializer configuration.
type EncState struct {
	indentCh byte
	indentN  int
	format   format.Format
	colors   *Colors
}

// Encode writes node to w in the configured format. Serialization
// itself cannot fail; only the sink can.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indentCh: ' ', indentN: 4}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		return encodeJSON(node, w, es)
	case format.YAMLFormat:
		return encodeYAML(node, w)
	default:
		return encodeLuco(node, w, es)
	}
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func (es *EncState) indent(level int) string {
	return strings.Repeat(string(es.indentCh), level*es.indentN)
}

// encodeLuco emits the document form: the root object has no
// surrounding braces, nested objects are "key {" blocks, arrays list
// one element per line inside braces, and strings are always
// double-quoted with structural characters doubled.
func encodeLuco(node *ir.Node, w io.Writer, es *EncState) error {
	switch {
	case node.IsObject():
		return es.lucoMembers(w, node.MustObject(), 0)
	case node.IsArray():
		if err := es.lucoArray(w, node.MustArray(), 0); err != nil {
			return err
		}
		return writeString(w, "\n")
	default:
		return writeString(w, es.lucoScalar(node.MustValue())+"\n")
	}
}

func (es *EncState) lucoMembers(w io.Writer, o *ir.Object, level int) error {
	for key, child := range o.All() {
		if err := writeString(w, es.indent(level)+es.lucoKey(key)); err != nil {
			return err
		}
		var err error
		switch {
		case child.IsObject():
			if err = writeString(w, " "); err == nil {
				err = es.lucoObject(w, child.MustObject(), level)
			}
		case child.IsArray():
			if err = writeString(w, " "); err == nil {
				err = es.lucoArray(w, child.MustArray(), level)
			}
		default:
			err = writeString(w, " = "+es.lucoScalar(child.MustValue()))
		}
		if err != nil {
			return err
		}
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func (es *EncState) lucoObject(w io.Writer, o *ir.Object, level int) error {
	if err := writeString(w, "{\n"); err != nil {
		return err
	}
	if err := es.lucoMembers(w, o, level+1); err != nil {
		return err
	}
	return writeString(w, es.indent(level)+"}")
}

func (es *EncState) lucoArray(w io.Writer, a *ir.Array, level int) error {
	if err := writeString(w, "{\n"); err != nil {
		return err
	}
	for _, child := range a.All() {
		if err := writeString(w, es.indent(level+1)); err != nil {
			return err
		}
		var err error
		switch {
		case child.IsObject():
			err = es.lucoObject(w, child.MustObject(), level+1)
		case child.IsArray():
			err = es.lucoArray(w, child.MustArray(), level+1)
		default:
			err = writeString(w, es.lucoScalar(child.MustValue()))
		}
		if err != nil {
			return err
		}
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	return writeString(w, es.indent(level)+"}")
}

func (es *EncState) lucoScalar(v *ir.Scalar) string {
	if v.IsString() {
		return es.color(v, `"`+escapeStructural(v.Stringify())+`"`)
	}
	return es.color(v, v.Stringify())
}

// lucoKey emits a key bare when it reparses as one; keys holding
// whitespace, a comment marker, or nothing are quoted. Structural
// characters double either way.
func (es *EncState) lucoKey(key string) string {
	quoted := key == "" || strings.ContainsAny(key, " \t#\n")
	key = escapeStructural(key)
	if quoted {
		key = `"` + key + `"`
	}
	if es.colors != nil {
		return es.colors.Key(key)
	}
	return key
}

// escapeStructural doubles the six structural characters so the result
// survives a reparse.
func escapeStructural(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '{', '=', '}', '"', '\'', '\\':
			b.WriteByte(c)
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
