package luco

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/nodeluna/luco/encode"
	"github.com/nodeluna/luco/ir"
)

// Diff renders a text diff between the canonical luco encodings of a
// and b, colorized for terminals. Structurally equal trees diff to the
// empty string.
func Diff(a, b *Node) string {
	if ir.Equal(a, b) {
		return ""
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(encode.MustString(a)+"\n", encode.MustString(b)+"\n", false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}
