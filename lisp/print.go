package lisp

import (
	"strconv"
	"strings"
)

// Print renders an Expr in its canonical form. It is total: every variant
// has a printed form, though functions print as opaque labels that do not
// read back.
func Print(e Expr) string {
	switch x := e.(type) {
	case Nil:
		return "nil"
	case Bool:
		if x {
			return "true"
		}
		return "false"
	case Integer:
		return strconv.FormatInt(int64(x), 10)
	case String:
		return `"` + escape(string(x)) + `"`
	case Symbol:
		return string(x)
	case List:
		elems := make([]string, len(x))
		for i, e := range x {
			elems[i] = Print(e)
		}
		return "(" + strings.Join(elems, " ") + ")"
	case *Lambda:
		return "<function>"
	case *Builtin:
		return "<builtin function>"
	}
	return ""
}

var escaper = strings.NewReplacer(`\`, `\\`, "\n", `\n`, `"`, `\"`)

func escape(s string) string {
	return escaper.Replace(s)
}
