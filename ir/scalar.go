package ir

import (
	"strconv"
	"strings"

	"github.com/nodeluna/luco/lucoerr"
)

// ScalarKind discriminates the payload held by a Scalar. EmptyKind is
// the not-yet-set state; NullKind is a present, explicit null.
type ScalarKind int

const (
	EmptyKind ScalarKind = iota
	StringKind
	IntegerKind
	DoubleKind
	BooleanKind
	NullKind
)

// Scalar is a tagged variant over {string, int64, float64, bool, null,
// empty}. The kind and the payload never disagree.
type Scalar struct {
	kind ScalarKind
	str  string
	i64  int64
	f64  float64
	b    bool
}

func StringScalar(v string) Scalar { return Scalar{kind: StringKind, str: v} }
func IntScalar(v int64) Scalar     { return Scalar{kind: IntegerKind, i64: v} }
func FloatScalar(v float64) Scalar { return Scalar{kind: DoubleKind, f64: v} }
func BoolScalar(v bool) Scalar     { return Scalar{kind: BooleanKind, b: v} }
func NullScalar() Scalar           { return Scalar{kind: NullKind} }
func EmptyScalar() Scalar          { return Scalar{} }

// ScalarOf builds a Scalar from any scalar-convertible Go value. A nil
// value becomes null. Integer types widen to int64, floating types to
// float64.
func ScalarOf(v any) (Scalar, error) {
	switch t := v.(type) {
	case nil:
		return NullScalar(), nil
	case Scalar:
		return t, nil
	case *Scalar:
		return *t, nil
	case string:
		return StringScalar(t), nil
	case bool:
		return BoolScalar(t), nil
	case int:
		return IntScalar(int64(t)), nil
	case int8:
		return IntScalar(int64(t)), nil
	case int16:
		return IntScalar(int64(t)), nil
	case int32:
		return IntScalar(int64(t)), nil
	case int64:
		return IntScalar(t), nil
	case uint:
		return IntScalar(int64(t)), nil
	case uint8:
		return IntScalar(int64(t)), nil
	case uint16:
		return IntScalar(int64(t)), nil
	case uint32:
		return IntScalar(int64(t)), nil
	case uint64:
		return IntScalar(int64(t)), nil
	case float32:
		return FloatScalar(float64(t)), nil
	case float64:
		return FloatScalar(t), nil
	default:
		return Scalar{}, lucoerr.New(lucoerr.WrongType, "unknown type given to scalar: %T", v)
	}
}

func (s *Scalar) Kind() ScalarKind { return s.kind }

func (s *Scalar) IsString() bool  { return s.kind == StringKind }
func (s *Scalar) IsInteger() bool { return s.kind == IntegerKind }
func (s *Scalar) IsDouble() bool  { return s.kind == DoubleKind }
func (s *Scalar) IsNumber() bool  { return s.kind == IntegerKind || s.kind == DoubleKind }
func (s *Scalar) IsBoolean() bool { return s.kind == BooleanKind }
func (s *Scalar) IsNull() bool    { return s.kind == NullKind }
func (s *Scalar) IsEmpty() bool   { return s.kind == EmptyKind }

// Set replaces the payload and the kind with a new scalar-convertible
// value.
func (s *Scalar) Set(v any) error {
	ns, err := ScalarOf(v)
	if err != nil {
		return err
	}
	*s = ns
	return nil
}

// SetTyped parses raw according to the requested kind and replaces the
// payload. EmptyKind clears the scalar; unknown kinds fail WrongType.
func (s *Scalar) SetTyped(raw string, kind ScalarKind) error {
	switch kind {
	case StringKind:
		*s = StringScalar(raw)
	case IntegerKind:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return lucoerr.New(lucoerr.ParsingErrorWrongType, "cannot parse %q as integer: %v", raw, err)
		}
		*s = IntScalar(i)
	case DoubleKind:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return lucoerr.New(lucoerr.ParsingErrorWrongType, "cannot parse %q as double: %v", raw, err)
		}
		*s = FloatScalar(f)
	case BooleanKind:
		*s = BoolScalar(raw == "true")
	case NullKind:
		*s = NullScalar()
	case EmptyKind:
		*s = EmptyScalar()
	default:
		return lucoerr.New(lucoerr.WrongType, "unsupported scalar kind %d", kind)
	}
	return nil
}

func (s *Scalar) AsString() (string, error) {
	if !s.IsString() {
		return "", s.castErr("string")
	}
	return s.str, nil
}

func (s *Scalar) AsInteger() (int64, error) {
	if !s.IsInteger() {
		return 0, s.castErr("integer")
	}
	return s.i64, nil
}

func (s *Scalar) AsDouble() (float64, error) {
	if !s.IsDouble() {
		return 0, s.castErr("double")
	}
	return s.f64, nil
}

// AsNumber succeeds for both integers and doubles, promoting integers
// to float64.
func (s *Scalar) AsNumber() (float64, error) {
	switch s.kind {
	case IntegerKind:
		return float64(s.i64), nil
	case DoubleKind:
		return s.f64, nil
	default:
		return 0, s.castErr("number")
	}
}

func (s *Scalar) AsBoolean() (bool, error) {
	if !s.IsBoolean() {
		return false, s.castErr("boolean")
	}
	return s.b, nil
}

// AsNull reports whether the scalar holds an explicit null, failing
// WrongType otherwise.
func (s *Scalar) AsNull() error {
	if !s.IsNull() {
		return s.castErr("null")
	}
	return nil
}

func (s *Scalar) MustString() string {
	v, err := s.AsString()
	if err != nil {
		panic(err)
	}
	return v
}

func (s *Scalar) MustInteger() int64 {
	v, err := s.AsInteger()
	if err != nil {
		panic(err)
	}
	return v
}

func (s *Scalar) MustDouble() float64 {
	v, err := s.AsDouble()
	if err != nil {
		panic(err)
	}
	return v
}

func (s *Scalar) MustNumber() float64 {
	v, err := s.AsNumber()
	if err != nil {
		panic(err)
	}
	return v
}

func (s *Scalar) MustBoolean() bool {
	v, err := s.AsBoolean()
	if err != nil {
		panic(err)
	}
	return v
}

func (s *Scalar) castErr(want string) error {
	return lucoerr.New(lucoerr.WrongType,
		"wrong type: trying to cast the value '%s' which is a '%s' to '%s'",
		s.Stringify(), s.TypeName(), want)
}

// Stringify returns the canonical textual form of the scalar. Doubles
// keep a fixed six digit precision with trailing zeros stripped, but
// never lose the decimal point: 5.0 stays "5.0".
func (s *Scalar) Stringify() string {
	switch s.kind {
	case StringKind:
		return s.str
	case IntegerKind:
		return strconv.FormatInt(s.i64, 10)
	case DoubleKind:
		return formatDouble(s.f64)
	case BooleanKind:
		if s.b {
			return "true"
		}
		return "false"
	case NullKind:
		return "null"
	default:
		return ""
	}
}

func formatDouble(f float64) string {
	str := strconv.FormatFloat(f, 'f', 6, 64)
	if strings.Contains(str, ".") {
		str = strings.TrimRight(str, "0")
		if strings.HasSuffix(str, ".") {
			str += "0"
		}
	}
	return str
}

func (s *Scalar) TypeName() string {
	switch s.kind {
	case StringKind:
		return "string"
	case BooleanKind:
		return "boolean"
	case NullKind:
		return "null"
	case DoubleKind:
		return "double"
	case IntegerKind:
		return "integer"
	case EmptyKind:
		return "none"
	default:
		return "unknown"
	}
}
