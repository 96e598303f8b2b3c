package luco

import (
	"bytes"
	"encoding/json"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/nodeluna/luco/encode"
	"github.com/nodeluna/luco/format"
	"github.com/nodeluna/luco/ir"
	"github.com/nodeluna/luco/lucoerr"
)

// MergePatch applies patch to doc as an RFC 7386 merge patch through
// the JSON encoding: patch keys override, explicit nulls delete, and
// nested objects merge recursively. Neither input is modified.
func MergePatch(doc, patch *Node) (*Node, error) {
	merged, err := jsonpatch.MergePatch(jsonBytes(doc), jsonBytes(patch))
	if err != nil {
		return nil, lucoerr.New(lucoerr.WrongType, "merge patch failed: %v", err)
	}
	return fromJSON(merged)
}

func jsonBytes(node *Node) []byte {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeFormat(format.JSONFormat)); err != nil {
		return nil
	}
	return buf.Bytes()
}

// fromJSON decodes JSON into a node tree. Numbers without a decimal
// point stay integers.
func fromJSON(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, lucoerr.New(lucoerr.ParsingError, "invalid json: %v", err)
	}
	return fromJSONValue(v)
}

func fromJSONValue(v any) (*Node, error) {
	switch t := v.(type) {
	case map[string]any:
		res := ir.New(ir.ObjectNode)
		for key, elem := range t {
			child, err := fromJSONValue(elem)
			if err != nil {
				return nil, err
			}
			if _, err := res.Insert(key, child); err != nil {
				return nil, err
			}
		}
		return res, nil
	case []any:
		res := ir.New(ir.ArrayNode)
		for _, elem := range t {
			child, err := fromJSONValue(elem)
			if err != nil {
				return nil, err
			}
			if _, err := res.PushBack(child); err != nil {
				return nil, err
			}
		}
		return res, nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return ir.FromInt(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, lucoerr.New(lucoerr.ParsingErrorWrongType, "invalid number %q", t.String())
		}
		return ir.FromFloat(f), nil
	default:
		return ir.FromAny(t)
	}
}
