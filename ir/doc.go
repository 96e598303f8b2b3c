// Package ir provides the document model for luco: a tree of nodes
// where each node is exactly one of object, array, or scalar value.
//
// # Node Structure
//
// A Node is a three-way tagged union. Value nodes hold a Scalar, itself
// a tagged variant over string, int64, float64, bool, null, and the
// not-yet-set empty state. Object nodes map unique string keys to child
// nodes in key order; array nodes hold an ordered sequence.
//
// # Creating Nodes
//
// Use the constructor functions:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj, err := ir.FromPairs(
//	    ir.Pair{Key: "name", Val: "cat"},
//	    ir.Pair{Key: "age", Val: 5},
//	)
//	arr, err := ir.FromSlice([]any{1.3223, 2, "string", true, nil})
//
// FromAny classifies arbitrary inputs at runtime: scalar-convertibles,
// map[string]any, []any, []Pair, and pre-built *Node values all build
// the corresponding subtree. Inputs are deep-copied on ingestion, so
// mutating one root never changes another.
//
// # Access and Mutation
//
// Accessors come in a fallible form returning (T, error) and a Must
// form that panics with the same *lucoerr.Error:
//
//	child, err := node.At("key")
//	i, err := node.MustAt("key").AsInteger()
//
// In-place mutation goes through Set, Insert, PushBack, SetIndex,
// Extend, and Append. Add combines two nodes of the same kind into a
// new tree.
//
// # Thread Safety
//
// A node and its descendants may be read concurrently as long as no
// goroutine mutates any of them; mutation requires external
// synchronization.
package ir
