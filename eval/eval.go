// Package eval evaluates expressions against a luco document.
//
// The document is exposed to the expression as its plain Go value
// form: object keys become environment identifiers, so with a document
// like
//
//	age = 5
//
// the expression "age > 3" evaluates to true. Non-object roots are
// bound to the identifier "value".
package eval

import (
	"github.com/expr-lang/expr"

	"github.com/nodeluna/luco/ir"
)

// Eval compiles and runs src against the document.
func Eval(node *ir.Node, src string) (any, error) {
	program, err := expr.Compile(src)
	if err != nil {
		return nil, err
	}
	return expr.Run(program, env(node))
}

// Check reports whether src evaluates to a true boolean.
func Check(node *ir.Node, src string) (bool, error) {
	out, err := Eval(node, src)
	if err != nil {
		return false, err
	}
	b, ok := out.(bool)
	return ok && b, nil
}

func env(node *ir.Node) map[string]any {
	if m, ok := ir.ToAny(node).(map[string]any); ok {
		return m
	}
	return map[string]any{"value": ir.ToAny(node)}
}
