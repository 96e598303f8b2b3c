// Package luco parses, manipulates, and serializes documents in the
// luco configuration language: a relaxed, JSON-like format with
// bracketed objects and arrays, optional quoting for keys and string
// values, inferred scalar types, and line comments with a nested block
// form.
//
//	name = "cat"
//	age = 5
//	smol = true
//	toys {
//	    "mouse"
//	    "ball"
//	}
//	# comments run to the end of the line
//	#{ and this block form
//	   may nest #{ like this }
//	}
//
// Parsing yields a *Node tree (see the ir package). Trees can be
// inspected, mutated, and built programmatically, then serialized back
// to luco, or to JSON or YAML, with the encode package.
//
//	doc, err := luco.ParseString(`age = 5` + "\n")
//	if err != nil { ... }
//	age, err := doc.MustAt("age").AsInteger()
//
// The six structural characters {, =, }, double quote, single quote,
// and backslash are escaped by doubling them; a backslash before a
// newline continues a string on the next line.
package luco
