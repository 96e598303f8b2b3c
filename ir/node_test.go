package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nodeluna/luco/lucoerr"
)

func TestNodeKindExclusivity(t *testing.T) {
	nodes := []*Node{
		New(ObjectNode),
		New(ArrayNode),
		New(ValueNode),
		FromString("x"),
		FromInt(1),
		Null(),
		{},
	}
	for _, n := range nodes {
		count := 0
		for _, is := range []bool{n.IsObject(), n.IsArray(), n.IsValue()} {
			if is {
				count++
			}
		}
		if count != 1 {
			t.Errorf("node %s: %d kinds true, want exactly 1", n.TypeName(), count)
		}
	}
}

func TestInsertThenGet(t *testing.T) {
	n := New(ObjectNode)
	if _, err := n.Insert("k", "v"); err != nil {
		t.Fatal(err)
	}
	if !n.Contains("k") {
		t.Fatal("Contains(k) = false after insert")
	}
	child, err := n.At("k")
	if err != nil {
		t.Fatal(err)
	}
	if got := child.MustString(); got != "v" {
		t.Fatalf("At(k) = %q, want %q", got, "v")
	}

	// duplicate insertion overwrites
	if _, err := n.Insert("k", 7); err != nil {
		t.Fatal(err)
	}
	if n.MustObject().Len() != 1 || n.MustAt("k").MustInteger() != 7 {
		t.Fatal("duplicate insert must overwrite")
	}
}

func TestInsertWrongKind(t *testing.T) {
	arr := New(ArrayNode)
	if _, err := arr.Insert("k", 1); !errors.Is(err, lucoerr.ErrWrongType) {
		t.Fatalf("Insert on array: got %v, want WrongType", err)
	}
	obj := New(ObjectNode)
	if _, err := obj.PushBack(1); !errors.Is(err, lucoerr.ErrWrongType) {
		t.Fatalf("PushBack on object: got %v, want WrongType", err)
	}
}

func TestHeterogeneousSlice(t *testing.T) {
	n, err := FromSlice([]any{1.3223, 2, "string", true, nil})
	if err != nil {
		t.Fatal(err)
	}
	wantKinds := []ScalarKind{DoubleKind, IntegerKind, StringKind, BooleanKind, NullKind}
	arr := n.MustArray()
	if arr.Len() != len(wantKinds) {
		t.Fatalf("len = %d, want %d", arr.Len(), len(wantKinds))
	}
	for i, want := range wantKinds {
		if got := arr.Ref(i).ScalarKind(); got != want {
			t.Errorf("element %d: kind %s, want %d", i, arr.Ref(i).ScalarKindName(), want)
		}
	}
}

func TestInsertSliceThenMutate(t *testing.T) {
	n := New(ObjectNode)
	if _, err := n.Insert("k", []any{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	if _, err := n.Insert("other", "stays"); err != nil {
		t.Fatal(err)
	}
	got, err := n.MustAt("k").AtIndex(1)
	if err != nil {
		t.Fatal(err)
	}
	if got.MustInteger() != 2 {
		t.Fatalf("k[1] = %d, want 2", got.MustInteger())
	}

	// reshaping the child through the handle keeps siblings intact
	if err := n.MustAt("k").Set(false); err != nil {
		t.Fatal(err)
	}
	if !n.MustAt("k").IsBoolean() {
		t.Fatal("k should be a boolean scalar now")
	}
	if n.MustAt("other").MustString() != "stays" {
		t.Fatal("sibling was clobbered by Set")
	}
}

func TestSetSelfIsNoop(t *testing.T) {
	n, err := FromPairs(Pair{Key: "a", Val: 1}, Pair{Key: "b", Val: "x"})
	if err != nil {
		t.Fatal(err)
	}
	before := n.Clone()
	if err := n.Set(n); err != nil {
		t.Fatal(err)
	}
	if !Equal(before, n) {
		t.Fatal("n.Set(n) changed the node")
	}
}

func TestNoAliasingAcrossRoots(t *testing.T) {
	a, err := FromPairs(Pair{Key: "k", Val: []any{1, 2}})
	if err != nil {
		t.Fatal(err)
	}
	b, err := FromAny(a)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.MustAt("k").SetIndex(0, 99); err != nil {
		t.Fatal(err)
	}
	if a.MustAt("k").MustAtIndex(0).MustInteger() != 1 {
		t.Fatal("mutating the copy changed the original")
	}
}

func TestAddObjects(t *testing.T) {
	a, _ := FromPairs(Pair{Key: "x", Val: 1})
	b, _ := FromPairs(Pair{Key: "y", Val: 2})
	ab, err := a.Add(b)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := b.Add(a)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(ab, ba) {
		t.Fatal("a+b != b+a for disjoint keys")
	}
	if diff := cmp.Diff(map[string]any{"x": int64(1), "y": int64(2)}, ToAny(ab)); diff != "" {
		t.Fatalf("a+b mismatch (-want +got):\n%s", diff)
	}

	// the right side overrides duplicate keys
	c, _ := FromPairs(Pair{Key: "x", Val: 9})
	ac, err := a.Add(c)
	if err != nil {
		t.Fatal(err)
	}
	if ac.MustAt("x").MustInteger() != 9 {
		t.Fatal("right side must override on +")
	}
}

func TestAddArraysAndScalars(t *testing.T) {
	a, _ := FromSlice([]any{1})
	b, _ := FromSlice([]any{2})
	ab, err := a.Add(b)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{int64(1), int64(2)}, ToAny(ab)); diff != "" {
		t.Fatalf("array concat mismatch:\n%s", diff)
	}

	s, err := FromString("foo").Add(FromString("bar"))
	if err != nil {
		t.Fatal(err)
	}
	if s.MustString() != "foobar" {
		t.Fatalf("string + = %q", s.MustString())
	}

	num, err := FromInt(2).Add(FromFloat(0.5))
	if err != nil {
		t.Fatal(err)
	}
	if v := num.MustNumber(); v != 2.5 {
		t.Fatalf("number + = %v", v)
	}

	if _, err := FromString("x").Add(FromInt(1)); !errors.Is(err, lucoerr.ErrWrongType) {
		t.Fatalf("string + integer: got %v, want WrongType", err)
	}
	if _, err := New(ObjectNode).Add(New(ArrayNode)); !errors.Is(err, lucoerr.ErrWrongType) {
		t.Fatalf("object + array: got %v, want WrongType", err)
	}
	if _, err := FromBool(true).Add(FromBool(false)); !errors.Is(err, lucoerr.ErrWrongType) {
		t.Fatalf("bool + bool: got %v, want WrongType", err)
	}
}

func TestExtendAppend(t *testing.T) {
	obj := New(ObjectNode)
	if err := obj.Extend(Pair{Key: "a", Val: 1}, Pair{Key: "b", Val: true}); err != nil {
		t.Fatal(err)
	}
	if obj.MustObject().Len() != 2 {
		t.Fatal("Extend did not add entries")
	}
	if err := obj.Append(1); !errors.Is(err, lucoerr.ErrWrongType) {
		t.Fatalf("Append on object: got %v, want WrongType", err)
	}

	arr := New(ArrayNode)
	if err := arr.Append("x", nil, 2.5); err != nil {
		t.Fatal(err)
	}
	if arr.MustArray().Len() != 3 {
		t.Fatal("Append did not add elements")
	}
	if err := arr.Extend(Pair{Key: "a", Val: 1}); !errors.Is(err, lucoerr.ErrWrongType) {
		t.Fatalf("Extend on array: got %v, want WrongType", err)
	}
}

func TestOutOfRangeAccess(t *testing.T) {
	arr, _ := FromSlice([]any{1})
	if _, err := arr.AtIndex(100); !errors.Is(err, lucoerr.ErrKeyNotFound) {
		t.Fatalf("AtIndex(100): got %v, want KeyNotFound", err)
	}
	if _, err := arr.AtIndex(-1); !errors.Is(err, lucoerr.ErrKeyNotFound) {
		t.Fatalf("AtIndex(-1): got %v, want KeyNotFound", err)
	}
	obj := New(ObjectNode)
	if _, err := obj.At("missing"); !errors.Is(err, lucoerr.ErrKeyNotFound) {
		t.Fatalf("At(missing): got %v, want KeyNotFound", err)
	}
	if _, err := obj.AtIndex(0); !errors.Is(err, lucoerr.ErrKeyNotFound) {
		t.Fatalf("AtIndex on object: got %v, want KeyNotFound", err)
	}
}

func TestMisqueryDoesNotMutate(t *testing.T) {
	n := FromString("meow")
	if _, err := n.AsInteger(); !errors.Is(err, lucoerr.ErrWrongType) {
		t.Fatalf("AsInteger on string: got %v, want WrongType", err)
	}
	if !n.IsString() || n.MustString() != "meow" {
		t.Fatal("failed cast must not mutate the node")
	}
}

func TestSetIndex(t *testing.T) {
	arr, _ := FromSlice([]any{1, 2, 3})
	if _, err := arr.SetIndex(1, "two"); err != nil {
		t.Fatal(err)
	}
	if arr.MustAtIndex(1).MustString() != "two" {
		t.Fatal("SetIndex did not replace the element")
	}
	if _, err := arr.SetIndex(10, 0); !errors.Is(err, lucoerr.ErrWrongIndex) {
		t.Fatalf("SetIndex(10): got %v, want WrongIndex", err)
	}
	if _, err := New(ObjectNode).SetIndex(0, 0); !errors.Is(err, lucoerr.ErrWrongType) {
		t.Fatalf("SetIndex on object: got %v, want WrongType", err)
	}
}

func TestObjectPrimitives(t *testing.T) {
	o := NewObjectMap()
	o.Insert("b", FromInt(2))
	o.Insert("a", FromInt(1))
	o.Insert("c", FromInt(3))
	if diff := cmp.Diff([]string{"a", "b", "c"}, o.Keys()); diff != "" {
		t.Fatalf("keys not in canonical order:\n%s", diff)
	}
	if o.Erase("b") != 1 || o.Erase("b") != 0 {
		t.Fatal("Erase counts wrong")
	}
	if removed := o.EraseFunc(func(key string, n *Node) bool { return key == "c" }); removed != 1 {
		t.Fatalf("EraseFunc removed %d, want 1", removed)
	}
	if o.Len() != 1 || o.Empty() {
		t.Fatal("unexpected object size")
	}
	ref := o.Ref("fresh")
	if !ref.IsObject() {
		t.Fatal("Ref must create an empty object node")
	}
	if _, ok := o.Find("fresh"); !ok {
		t.Fatal("Ref must insert the key")
	}
}

func TestArrayPrimitives(t *testing.T) {
	a := NewArraySeq()
	for i := range 5 {
		a.PushBack(FromInt(int64(i)))
	}
	if a.Front().MustInteger() != 0 || a.Back().MustInteger() != 4 {
		t.Fatal("front/back wrong")
	}
	a.PopBack()
	if err := a.Erase(0); err != nil {
		t.Fatal(err)
	}
	if err := a.EraseRange(0, 2); err != nil {
		t.Fatal(err)
	}
	if a.Len() != 1 || a.Ref(0).MustInteger() != 3 {
		t.Fatalf("unexpected remainder, len=%d", a.Len())
	}
	if err := a.Erase(5); !errors.Is(err, lucoerr.ErrWrongIndex) {
		t.Fatalf("Erase(5): got %v, want WrongIndex", err)
	}
}

func TestToAny(t *testing.T) {
	n, err := FromPairs(
		Pair{Key: "s", Val: "x"},
		Pair{Key: "i", Val: 3},
		Pair{Key: "f", Val: 1.5},
		Pair{Key: "b", Val: false},
		Pair{Key: "n", Val: nil},
		Pair{Key: "arr", Val: []any{1, "two"}},
	)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"s": "x", "i": int64(3), "f": 1.5, "b": false, "n": nil,
		"arr": []any{int64(1), "two"},
	}
	if diff := cmp.Diff(want, ToAny(n)); diff != "" {
		t.Fatalf("ToAny mismatch (-want +got):\n%s", diff)
	}
}
