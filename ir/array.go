package ir

import (
	"iter"
	"slices"

	"github.com/nodeluna/luco/lucoerr"
)

// Array is an ordered sequence of child nodes.
type Array struct {
	items []*Node
}

func NewArraySeq() *Array {
	return &Array{}
}

// PushBack appends n and returns it.
func (a *Array) PushBack(n *Node) *Node {
	a.items = append(a.items, n)
	return n
}

func (a *Array) PopBack() {
	if len(a.items) > 0 {
		a.items = a.items[:len(a.items)-1]
	}
}

// Erase removes the element at i, failing WrongIndex out of range.
func (a *Array) Erase(i int) error {
	if i < 0 || i >= len(a.items) {
		return lucoerr.New(lucoerr.WrongIndex, "index: '%d' out of range", i)
	}
	a.items = slices.Delete(a.items, i, i+1)
	return nil
}

// EraseRange removes the elements in [from, to), failing WrongIndex on
// an invalid range.
func (a *Array) EraseRange(from, to int) error {
	if from < 0 || to > len(a.items) || from > to {
		return lucoerr.New(lucoerr.WrongIndex, "range: [%d, %d) out of range", from, to)
	}
	a.items = slices.Delete(a.items, from, to)
	return nil
}

func (a *Array) Front() *Node {
	return a.items[0]
}

func (a *Array) Back() *Node {
	return a.items[len(a.items)-1]
}

func (a *Array) Len() int {
	return len(a.items)
}

func (a *Array) Empty() bool {
	return len(a.items) == 0
}

// At returns the element at i, failing KeyNotFound out of range.
func (a *Array) At(i int) (*Node, error) {
	if i < 0 || i >= len(a.items) {
		return nil, lucoerr.New(lucoerr.KeyNotFound, "index: '%d' not found", i)
	}
	return a.items[i], nil
}

// Ref returns the element at i without bounds checking.
func (a *Array) Ref(i int) *Node {
	return a.items[i]
}

// All iterates elements in order.
func (a *Array) All() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		for i, n := range a.items {
			if !yield(i, n) {
				return
			}
		}
	}
}

func (a *Array) clone() *Array {
	res := NewArraySeq()
	for _, n := range a.All() {
		res.PushBack(n.Clone())
	}
	return res
}
