package encode

import (
	"github.com/fatih/color"

	"github.com/nodeluna/luco/ir"
)

// Colors maps document pieces to terminal color functions for luco
// output.
type Colors struct {
	Key     func(string) string
	String  func(string) string
	Number  func(string) string
	Boolean func(string) string
	Null    func(string) string
}

func wrapSprintFunc(f func(a ...interface{}) string) func(string) string {
	return func(s string) string {
		return f(s)
	}
}

func NewColors() *Colors {
	return &Colors{
		Key:     wrapSprintFunc(color.New(color.FgBlue).SprintFunc()),
		String:  wrapSprintFunc(color.New(color.FgGreen).SprintFunc()),
		Number:  wrapSprintFunc(color.New(color.FgCyan).SprintFunc()),
		Boolean: wrapSprintFunc(color.New(color.FgMagenta).SprintFunc()),
		Null:    wrapSprintFunc(color.New(color.FgHiBlack).SprintFunc()),
	}
}

func (es *EncState) color(v *ir.Scalar, s string) string {
	if es.colors == nil {
		return s
	}
	switch {
	case v.IsString():
		return es.colors.String(s)
	case v.IsNumber():
		return es.colors.Number(s)
	case v.IsBoolean():
		return es.colors.Boolean(s)
	case v.IsNull():
		return es.colors.Null(s)
	default:
		return s
	}
}
