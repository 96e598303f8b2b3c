package ir

import "testing"

func TestInfer(t *testing.T) {
	tests := []struct {
		raw  string
		kind ScalarKind
	}{
		{"null", NullKind},
		{"true", BooleanKind},
		{"false", BooleanKind},
		{"on", BooleanKind},
		{"off", BooleanKind},
		{"5", IntegerKind},
		{"007", IntegerKind},
		{"5.0", DoubleKind},
		{".5", DoubleKind},
		{"5.", DoubleKind},
		{"5.0.1", StringKind},
		{"-5", StringKind}, // signs are not part of the grammar
		{"5e3", StringKind},
		{"meow", StringKind},
		{"", StringKind},
		{"nullx", StringKind},
		{"True", StringKind},
	}
	for _, tc := range tests {
		if got := Infer(tc.raw); got.Kind() != tc.kind {
			t.Errorf("Infer(%q) kind = %s, want kind %d", tc.raw, got.TypeName(), tc.kind)
		}
	}
}

func TestInferValues(t *testing.T) {
	if v := Infer("true"); !v.MustBoolean() {
		t.Error("true should infer to boolean true")
	}
	if v := Infer("off"); v.MustBoolean() {
		t.Error("off should infer to boolean false")
	}
	if v := Infer("12"); v.MustInteger() != 12 {
		t.Error("bad integer inference")
	}
	if v := Infer("1.25"); v.MustDouble() != 1.25 {
		t.Error("bad double inference")
	}
	if v := Infer("hi there"); v.MustString() != "hi there" {
		t.Error("strings must be kept verbatim")
	}
}
