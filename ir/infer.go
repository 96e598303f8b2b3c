package ir

import "strconv"

// Infer classifies a raw, dequoted lexeme into a Scalar. "null" is
// null, "true"/"on" and "false"/"off" are booleans, all-digit runs with
// at most one '.' are integers or doubles, everything else is a string
// kept verbatim. Explicitly quoted lexemes must not be passed here; the
// quoted form is always a string.
func Infer(raw string) Scalar {
	if raw == "null" {
		return NullScalar()
	}
	switch raw {
	case "true", "on":
		return BoolScalar(true)
	case "false", "off":
		return BoolScalar(false)
	}
	switch numberKind(raw) {
	case IntegerKind:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			return IntScalar(i)
		}
	case DoubleKind:
		f, err := strconv.ParseFloat(raw, 64)
		if err == nil {
			return FloatScalar(f)
		}
	}
	return StringScalar(raw)
}

// numberKind reports IntegerKind or DoubleKind when raw is a non-empty
// digit run with at most one decimal point, EmptyKind otherwise. Signs
// are not part of the grammar.
func numberKind(raw string) ScalarKind {
	if raw == "" {
		return EmptyKind
	}
	hasDecimal := false
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= '0' && c <= '9':
		case c == '.' && !hasDecimal:
			hasDecimal = true
		default:
			return EmptyKind
		}
	}
	if hasDecimal {
		return DoubleKind
	}
	return IntegerKind
}
