package ir

import (
	"iter"
	"slices"

	"github.com/nodeluna/luco/lucoerr"
)

// Object is a key-ordered mapping from string keys to child nodes.
// Keys are unique; inserting an existing key overwrites its node.
type Object struct {
	items map[string]*Node
	keys  []string
}

func NewObjectMap() *Object {
	return &Object{items: map[string]*Node{}}
}

// Insert stores n under key and returns it. An existing key is
// overwritten.
func (o *Object) Insert(key string, n *Node) *Node {
	if _, ok := o.items[key]; !ok {
		at, _ := slices.BinarySearch(o.keys, key)
		o.keys = slices.Insert(o.keys, at, key)
	}
	o.items[key] = n
	return n
}

// Erase removes key and reports how many entries were removed (0 or 1).
func (o *Object) Erase(key string) int {
	if _, ok := o.items[key]; !ok {
		return 0
	}
	delete(o.items, key)
	at, _ := slices.BinarySearch(o.keys, key)
	o.keys = slices.Delete(o.keys, at, at+1)
	return 1
}

// EraseFunc removes every entry for which del returns true and reports
// how many were removed.
func (o *Object) EraseFunc(del func(key string, n *Node) bool) int {
	removed := 0
	for _, key := range slices.Clone(o.keys) {
		if del(key, o.items[key]) {
			removed += o.Erase(key)
		}
	}
	return removed
}

func (o *Object) Len() int {
	return len(o.items)
}

func (o *Object) Empty() bool {
	return len(o.items) == 0
}

func (o *Object) Find(key string) (*Node, bool) {
	n, ok := o.items[key]
	return n, ok
}

// At returns the node stored under key, failing KeyNotFound when
// absent.
func (o *Object) At(key string) (*Node, error) {
	n, ok := o.items[key]
	if !ok {
		return nil, lucoerr.New(lucoerr.KeyNotFound, "key: '%s' not found", key)
	}
	return n, nil
}

// Ref returns the node stored under key, inserting an empty object
// node first when the key is absent.
func (o *Object) Ref(key string) *Node {
	if n, ok := o.items[key]; ok {
		return n
	}
	return o.Insert(key, New(ObjectNode))
}

// Keys returns the keys in their canonical (sorted) order.
func (o *Object) Keys() []string {
	return slices.Clone(o.keys)
}

// All iterates entries in key order.
func (o *Object) All() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		for _, key := range o.keys {
			if !yield(key, o.items[key]) {
				return
			}
		}
	}
}

func (o *Object) clone() *Object {
	res := NewObjectMap()
	for key, n := range o.All() {
		res.Insert(key, n.Clone())
	}
	return res
}
