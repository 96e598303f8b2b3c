package ir

import (
	"github.com/nodeluna/luco/lucoerr"
)

// NodeKind discriminates the three shapes a Node can take.
type NodeKind int

const (
	ObjectNode NodeKind = iota
	ArrayNode
	ValueNode
)

// Node is the tree element of a luco document: exactly one of object,
// array, or scalar value. The zero value is an empty object. Containers
// own their children; the ingestion paths deep-copy their inputs so two
// independently obtained roots never alias.
type Node struct {
	kind NodeKind
	val  Scalar
	obj  *Object
	arr  *Array
}

// New builds an empty node of the requested kind. A value node starts
// with an empty scalar.
func New(kind NodeKind) *Node {
	n := &Node{kind: kind}
	switch kind {
	case ObjectNode:
		n.obj = NewObjectMap()
	case ArrayNode:
		n.arr = NewArraySeq()
	}
	return n
}

func FromScalar(s Scalar) *Node {
	return &Node{kind: ValueNode, val: s}
}

func FromString(v string) *Node { return FromScalar(StringScalar(v)) }
func FromInt(v int64) *Node     { return FromScalar(IntScalar(v)) }
func FromFloat(v float64) *Node { return FromScalar(FloatScalar(v)) }
func FromBool(v bool) *Node     { return FromScalar(BoolScalar(v)) }
func Null() *Node               { return FromScalar(NullScalar()) }

// Pair is an object entry used by FromPairs and Extend. Val accepts any
// scalar-convertible value, a container, or a pre-built *Node.
type Pair struct {
	Key string
	Val any
}

// FromAny ingests an arbitrary value: scalar-convertibles become value
// nodes, map-shaped inputs become objects, slice-shaped inputs become
// arrays, and a pre-built *Node is deep-copied. Strings take the scalar
// path, never the sequence path.
func FromAny(v any) (*Node, error) {
	switch t := v.(type) {
	case *Node:
		if t == nil {
			return Null(), nil
		}
		return t.Clone(), nil
	case map[string]any:
		return FromMap(t)
	case map[string]*Node:
		res := New(ObjectNode)
		for key, child := range t {
			res.obj.Insert(key, child.Clone())
		}
		return res, nil
	case []any:
		return FromSlice(t)
	case []*Node:
		res := New(ArrayNode)
		for _, child := range t {
			res.arr.PushBack(child.Clone())
		}
		return res, nil
	case []Pair:
		return FromPairs(t...)
	default:
		s, err := ScalarOf(v)
		if err != nil {
			return nil, err
		}
		return FromScalar(s), nil
	}
}

// MustFromAny is FromAny panicking on unsupported input.
func MustFromAny(v any) *Node {
	n, err := FromAny(v)
	if err != nil {
		panic(err)
	}
	return n
}

// FromMap builds an object node, ingesting each value through FromAny.
func FromMap(m map[string]any) (*Node, error) {
	res := New(ObjectNode)
	for key, v := range m {
		child, err := FromAny(v)
		if err != nil {
			return nil, err
		}
		res.obj.Insert(key, child)
	}
	return res, nil
}

// FromSlice builds an array node, ingesting each element through
// FromAny. Heterogeneous element types are dispatched per element.
func FromSlice(vals []any) (*Node, error) {
	res := New(ArrayNode)
	for _, v := range vals {
		child, err := FromAny(v)
		if err != nil {
			return nil, err
		}
		res.arr.PushBack(child)
	}
	return res, nil
}

// FromPairs builds an object node from key/value pairs.
func FromPairs(pairs ...Pair) (*Node, error) {
	res := New(ObjectNode)
	for _, p := range pairs {
		child, err := FromAny(p.Val)
		if err != nil {
			return nil, err
		}
		res.obj.Insert(p.Key, child)
	}
	return res, nil
}

// Clone returns a deep copy.
func (n *Node) Clone() *Node {
	res := &Node{kind: n.kind}
	switch n.kind {
	case ObjectNode:
		res.obj = n.object().clone()
	case ArrayNode:
		res.arr = n.array().clone()
	case ValueNode:
		res.val = n.val
	}
	return res
}

func (n *Node) object() *Object {
	if n.obj == nil {
		n.obj = NewObjectMap()
	}
	return n.obj
}

func (n *Node) array() *Array {
	if n.arr == nil {
		n.arr = NewArraySeq()
	}
	return n.arr
}

func (n *Node) Kind() NodeKind { return n.kind }

func (n *Node) IsObject() bool { return n.kind == ObjectNode }
func (n *Node) IsArray() bool  { return n.kind == ArrayNode }
func (n *Node) IsValue() bool  { return n.kind == ValueNode }

func (n *Node) IsString() bool  { return n.IsValue() && n.val.IsString() }
func (n *Node) IsInteger() bool { return n.IsValue() && n.val.IsInteger() }
func (n *Node) IsDouble() bool  { return n.IsValue() && n.val.IsDouble() }
func (n *Node) IsNumber() bool  { return n.IsValue() && n.val.IsNumber() }
func (n *Node) IsBoolean() bool { return n.IsValue() && n.val.IsBoolean() }
func (n *Node) IsNull() bool    { return n.IsValue() && n.val.IsNull() }

func (n *Node) TypeName() string {
	switch n.kind {
	case ObjectNode:
		return "object"
	case ArrayNode:
		return "array"
	default:
		return "value"
	}
}

// ScalarKind returns the kind of the held scalar, or EmptyKind for
// containers.
func (n *Node) ScalarKind() ScalarKind {
	if !n.IsValue() {
		return EmptyKind
	}
	return n.val.Kind()
}

// ScalarKindName returns the scalar type name, "none" for containers.
func (n *Node) ScalarKindName() string {
	if !n.IsValue() {
		return "none"
	}
	return n.val.TypeName()
}

// AsObject returns the object held by the node, failing WrongType for
// arrays and values.
func (n *Node) AsObject() (*Object, error) {
	if !n.IsObject() {
		return nil, lucoerr.New(lucoerr.WrongType, "wrong type: trying to cast a '%s' node to an object", n.TypeName())
	}
	return n.object(), nil
}

func (n *Node) AsArray() (*Array, error) {
	if !n.IsArray() {
		return nil, lucoerr.New(lucoerr.WrongType, "wrong type: trying to cast a '%s' node to an array", n.TypeName())
	}
	return n.array(), nil
}

func (n *Node) AsValue() (*Scalar, error) {
	if !n.IsValue() {
		return nil, lucoerr.New(lucoerr.WrongType, "wrong type: trying to cast a '%s' node to a value", n.TypeName())
	}
	return &n.val, nil
}

func (n *Node) MustObject() *Object {
	o, err := n.AsObject()
	if err != nil {
		panic(err)
	}
	return o
}

func (n *Node) MustArray() *Array {
	a, err := n.AsArray()
	if err != nil {
		panic(err)
	}
	return a
}

func (n *Node) MustValue() *Scalar {
	v, err := n.AsValue()
	if err != nil {
		panic(err)
	}
	return v
}

func (n *Node) AsString() (string, error) {
	v, err := n.AsValue()
	if err != nil {
		return "", err
	}
	return v.AsString()
}

func (n *Node) AsInteger() (int64, error) {
	v, err := n.AsValue()
	if err != nil {
		return 0, err
	}
	return v.AsInteger()
}

func (n *Node) AsDouble() (float64, error) {
	v, err := n.AsValue()
	if err != nil {
		return 0, err
	}
	return v.AsDouble()
}

func (n *Node) AsNumber() (float64, error) {
	v, err := n.AsValue()
	if err != nil {
		return 0, err
	}
	return v.AsNumber()
}

func (n *Node) AsBoolean() (bool, error) {
	v, err := n.AsValue()
	if err != nil {
		return false, err
	}
	return v.AsBoolean()
}

func (n *Node) AsNull() error {
	v, err := n.AsValue()
	if err != nil {
		return err
	}
	return v.AsNull()
}

func (n *Node) MustString() string {
	v, err := n.AsString()
	if err != nil {
		panic(err)
	}
	return v
}

func (n *Node) MustInteger() int64 {
	v, err := n.AsInteger()
	if err != nil {
		panic(err)
	}
	return v
}

func (n *Node) MustDouble() float64 {
	v, err := n.AsDouble()
	if err != nil {
		panic(err)
	}
	return v
}

func (n *Node) MustNumber() float64 {
	v, err := n.AsNumber()
	if err != nil {
		panic(err)
	}
	return v
}

func (n *Node) MustBoolean() bool {
	v, err := n.AsBoolean()
	if err != nil {
		panic(err)
	}
	return v
}

// Contains reports whether an object node has the key. Non-objects
// never contain anything.
func (n *Node) Contains(key string) bool {
	if !n.IsObject() {
		return false
	}
	_, ok := n.object().Find(key)
	return ok
}

// At returns the child under key. The returned handle stays valid for
// the lifetime of its parent and supports in-place mutation.
func (n *Node) At(key string) (*Node, error) {
	obj, err := n.AsObject()
	if err != nil {
		return nil, err
	}
	return obj.At(key)
}

// AtIndex returns the array element at i.
func (n *Node) AtIndex(i int) (*Node, error) {
	arr, err := n.AsArray()
	if err != nil {
		return nil, lucoerr.New(lucoerr.KeyNotFound, "index: '%d' not found", i)
	}
	return arr.At(i)
}

func (n *Node) MustAt(key string) *Node {
	child, err := n.At(key)
	if err != nil {
		panic(err)
	}
	return child
}

func (n *Node) MustAtIndex(i int) *Node {
	child, err := n.AtIndex(i)
	if err != nil {
		panic(err)
	}
	return child
}

// Set reshapes the node in place to match v: a scalar-convertible makes
// it a value node, a map an object, a slice an array, a *Node a deep
// copy. Setting a node to itself is a no-op.
func (n *Node) Set(v any) error {
	if other, ok := v.(*Node); ok && other == n {
		return nil
	}
	res, err := FromAny(v)
	if err != nil {
		return err
	}
	*n = *res
	return nil
}

// Insert ingests v and stores it under key, overwriting an existing
// entry. The node must be an object; the inserted child is returned.
func (n *Node) Insert(key string, v any) (*Node, error) {
	if !n.IsObject() {
		return nil, lucoerr.New(lucoerr.WrongType, "wrong type: trying to insert a key into a '%s' node", n.TypeName())
	}
	child, err := FromAny(v)
	if err != nil {
		return nil, err
	}
	return n.object().Insert(key, child), nil
}

// PushBack ingests v and appends it. The node must be an array; the
// appended child is returned.
func (n *Node) PushBack(v any) (*Node, error) {
	if !n.IsArray() {
		return nil, lucoerr.New(lucoerr.WrongType, "wrong type: trying to push back into a '%s' node", n.TypeName())
	}
	child, err := FromAny(v)
	if err != nil {
		return nil, err
	}
	return n.array().PushBack(child), nil
}

// SetIndex replaces the array element at i with v, failing WrongIndex
// out of range.
func (n *Node) SetIndex(i int, v any) (*Node, error) {
	arr, err := n.AsArray()
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= arr.Len() {
		return nil, lucoerr.New(lucoerr.WrongIndex, "index: '%d' out of range", i)
	}
	child, err := FromAny(v)
	if err != nil {
		return nil, err
	}
	*arr.Ref(i) = *child
	return arr.Ref(i), nil
}

// Extend appends object entries, overwriting duplicate keys. The node
// must be an object.
func (n *Node) Extend(pairs ...Pair) error {
	if !n.IsObject() {
		return lucoerr.New(lucoerr.WrongType, "wrong type: trying to insert pairs into a '%s' node", n.TypeName())
	}
	for _, p := range pairs {
		if _, err := n.Insert(p.Key, p.Val); err != nil {
			return err
		}
	}
	return nil
}

// Append appends array elements. The node must be an array.
func (n *Node) Append(vals ...any) error {
	if !n.IsArray() {
		return lucoerr.New(lucoerr.WrongType, "wrong type: trying to append values to a '%s' node", n.TypeName())
	}
	for _, v := range vals {
		if _, err := n.PushBack(v); err != nil {
			return err
		}
	}
	return nil
}

// Add combines two nodes of the same kind into a new one: objects merge
// with the right side overriding duplicate keys, arrays concatenate,
// string values concatenate, and numeric values add. Every other
// pairing fails WrongType. Neither input is modified.
func (n *Node) Add(other *Node) (*Node, error) {
	if n.kind != other.kind {
		return nil, lucoerr.New(lucoerr.WrongType, "trying to add a '%s' node to a '%s' node", other.TypeName(), n.TypeName())
	}
	switch n.kind {
	case ObjectNode:
		res := New(ObjectNode)
		for key, child := range n.object().All() {
			res.obj.Insert(key, child.Clone())
		}
		for key, child := range other.object().All() {
			res.obj.Insert(key, child.Clone())
		}
		return res, nil
	case ArrayNode:
		res := New(ArrayNode)
		for _, child := range n.array().All() {
			res.arr.PushBack(child.Clone())
		}
		for _, child := range other.array().All() {
			res.arr.PushBack(child.Clone())
		}
		return res, nil
	default:
		if n.val.IsString() && other.val.IsString() {
			return FromString(n.val.MustString() + other.val.MustString()), nil
		}
		if n.val.IsNumber() && other.val.IsNumber() {
			return FromFloat(n.val.MustNumber() + other.val.MustNumber()), nil
		}
		return nil, lucoerr.New(lucoerr.WrongType,
			"trying to add values that are neither both strings nor both numbers ('%s' and '%s')",
			n.val.TypeName(), other.val.TypeName())
	}
}

// Stringify returns the scalar text for value nodes and the type name
// for containers; use the encode package for full serialization.
func (n *Node) Stringify() string {
	if n.IsValue() {
		return n.val.Stringify()
	}
	return n.TypeName()
}
