package ir

import (
	"sort"
	"strings"
)

// Format renders an expression as canonical, deterministic source text. This
// is the rendering the explicit override table matches against, so it must be
// stable across runs: union members are sorted alphabetically and joined with
// "|", templated forms render as Name<arg, arg> using the schema's own
// spelling, and function types render as function(arg, arg) with an optional
// :returnType suffix (a bare argument-less function renders as just
// "function").
//
// Object literals deliberately render as the bare keyword "Object": their
// property lists are structural detail the override table does not key on.
func Format(e Expr) string {
	switch t := e.(type) {
	case *Primitive:
		return t.Name
	case *Array:
		return "Array<" + Format(t.Elem) + ">"
	case *MapOf:
		return t.Spelled + "<" + Format(t.Key) + ", " + Format(t.Value) + ">"
	case *Union:
		members := make([]string, 0, len(t.Members))
		for _, m := range t.Members {
			members = append(members, Format(m))
		}
		sort.Strings(members)
		joined := strings.Join(members, "|")
		if t.Name == "" {
			return joined
		}
		return t.Name + "<" + joined + ">"
	case *Generic:
		args := make([]string, 0, len(t.Args))
		for _, a := range t.Args {
			args = append(args, Format(a))
		}
		return t.Name + "<" + strings.Join(args, ", ") + ">"
	case *Func:
		if len(t.Args) == 0 {
			return "function"
		}
		args := make([]string, 0, len(t.Args))
		for _, a := range t.Args {
			args = append(args, Format(a))
		}
		s := "function(" + strings.Join(args, ", ") + ")"
		if t.Return != nil {
			s += ":" + Format(t.Return)
		}
		return s
	case *Object:
		return "Object"
	default:
		return ""
	}
}
