package ir

import (
	"cmp"
	"strings"
)

// Compare orders two nodes. Nodes of different kinds order by kind;
// objects compare entry-wise in key order, arrays element-wise, and
// scalars by kind then payload. The result is 0 exactly when the trees
// are structurally equal.
func Compare(a, b *Node) int {
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}
	switch a.kind {
	case ObjectNode:
		ao, bo := a.object(), b.object()
		aKeys, bKeys := ao.Keys(), bo.Keys()
		for i := range min(len(aKeys), len(bKeys)) {
			if c := strings.Compare(aKeys[i], bKeys[i]); c != 0 {
				return c
			}
			av, _ := ao.Find(aKeys[i])
			bv, _ := bo.Find(bKeys[i])
			if c := Compare(av, bv); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(aKeys), len(bKeys))
	case ArrayNode:
		aa, ba := a.array(), b.array()
		for i := range min(aa.Len(), ba.Len()) {
			if c := Compare(aa.Ref(i), ba.Ref(i)); c != 0 {
				return c
			}
		}
		return cmp.Compare(aa.Len(), ba.Len())
	default:
		return compareScalar(&a.val, &b.val)
	}
}

func compareScalar(a, b *Scalar) int {
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}
	switch a.kind {
	case StringKind:
		return strings.Compare(a.str, b.str)
	case IntegerKind:
		return cmp.Compare(a.i64, b.i64)
	case DoubleKind:
		return cmp.Compare(a.f64, b.f64)
	case BooleanKind:
		switch {
		case a.b == b.b:
			return 0
		case b.b:
			return -1
		default:
			return 1
		}
	default:
		return 0
	}
}

// Equal reports structural equality.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}
