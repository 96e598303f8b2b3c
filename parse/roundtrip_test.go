package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nodeluna/luco/encode"
	"github.com/nodeluna/luco/ir"
)

// Serialization output must reparse to a structurally equal tree.
func TestRoundtrip(t *testing.T) {
	trees := map[string]func() (*ir.Node, error){
		"flat": func() (*ir.Node, error) {
			return ir.FromPairs(
				ir.Pair{Key: "name", Val: "cat"},
				ir.Pair{Key: "age", Val: 5},
				ir.Pair{Key: "ratio", Val: 2.5},
				ir.Pair{Key: "smol", Val: true},
				ir.Pair{Key: "none", Val: nil},
			)
		},
		"nested": func() (*ir.Node, error) {
			return ir.FromPairs(
				ir.Pair{Key: "server", Val: map[string]any{
					"host":  "localhost",
					"ports": []any{int64(80), int64(443)},
				}},
			)
		},
		"specials": func() (*ir.Node, error) {
			return ir.FromPairs(
				ir.Pair{Key: "s", Val: `va"l'{}=ue\`},
				ir.Pair{Key: "spaced key", Val: "kept "},
				ir.Pair{Key: "bools", Val: []any{"on", "off", true}},
			)
		},
		"arrays of objects": func() (*ir.Node, error) {
			return ir.FromPairs(
				ir.Pair{Key: "list", Val: []any{
					map[string]any{"name": "a"},
					map[string]any{"name": "b"},
					map[string]any{"name": "c"},
				}},
			)
		},
		"empty": func() (*ir.Node, error) {
			return ir.New(ir.ObjectNode), nil
		},
	}
	for name, build := range trees {
		t.Run(name, func(t *testing.T) {
			n, err := build()
			if err != nil {
				t.Fatal(err)
			}
			text := encode.MustString(n) + "\n"
			back, err := ParseString(text)
			if err != nil {
				t.Fatalf("reparse failed: %v\ninput:\n%s", err, text)
			}
			if !ir.Equal(n, back) {
				t.Fatalf("roundtrip mismatch:\n%s\nserialized:\n%s",
					cmp.Diff(ir.ToAny(n), ir.ToAny(back)), text)
			}
		})
	}
}

// Doubles go through stringify canonicalization; equality holds after
// one pass.
func TestRoundtripDoubles(t *testing.T) {
	n, err := ir.FromPairs(ir.Pair{Key: "f", Val: 1.32230007})
	if err != nil {
		t.Fatal(err)
	}
	once, err := ParseString(encode.MustString(n) + "\n")
	if err != nil {
		t.Fatal(err)
	}
	twice, err := ParseString(encode.MustString(once) + "\n")
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(once, twice) {
		t.Fatal("canonicalized doubles must be stable")
	}
}

func TestRoundtripEscapes(t *testing.T) {
	in := "s = \"a\"\"b\"\n"
	n, err := ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	back, err := ParseString(encode.MustString(n) + "\n")
	if err != nil {
		t.Fatal(err)
	}
	if got := back.MustAt("s").MustString(); got != `a"b` {
		t.Fatalf("escape roundtrip = %q", got)
	}
}
