package ir

// ToAny converts a node tree to plain Go values: objects become
// map[string]any, arrays []any, scalars their payload (null and empty
// become nil). The result is what the eval and YAML layers consume.
func ToAny(n *Node) any {
	switch n.kind {
	case ObjectNode:
		res := make(map[string]any, n.object().Len())
		for key, child := range n.object().All() {
			res[key] = ToAny(child)
		}
		return res
	case ArrayNode:
		res := make([]any, 0, n.array().Len())
		for _, child := range n.array().All() {
			res = append(res, ToAny(child))
		}
		return res
	default:
		switch n.val.kind {
		case StringKind:
			return n.val.str
		case IntegerKind:
			return n.val.i64
		case DoubleKind:
			return n.val.f64
		case BooleanKind:
			return n.val.b
		default:
			return nil
		}
	}
}
