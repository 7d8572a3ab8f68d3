package lisp

// Expr is a node of the symbolic expression tree. The same type doubles as
// the runtime value: evaluation maps Expr to Expr.
// The set of variants is closed; dispatch is by type switch.
type Expr interface {
	expr()
}

// Nil is the empty/absent value. An empty list literal () reads as Nil.
type Nil struct{}

type Bool bool

type Integer int64

type String string

// Symbol evaluates by environment lookup.
type Symbol string

// List is a parenthesized form. A List is never empty: () reads as Nil.
type List []Expr

// Lambda is a user-defined function. Env is the environment active at the
// definition site, so free variables in Body resolve lexically.
type Lambda struct {
	Params []string
	Body   Expr
	Env    *Env
}

// Builtin is a native function. Fn receives the call frame and retrieves its
// arguments by looking up Params in it.
type Builtin struct {
	Params []string
	Fn     func(*Env) (Expr, error)
}

func (Nil) expr()      {}
func (Bool) expr()     {}
func (Integer) expr()  {}
func (String) expr()   {}
func (Symbol) expr()   {}
func (List) expr()     {}
func (*Lambda) expr()  {}
func (*Builtin) expr() {}

// isTruthy: nil and false are falsy, everything else is truthy,
// including 0, "" and any list.
func isTruthy(e Expr) bool {
	switch x := e.(type) {
	case Nil:
		return false
	case Bool:
		return bool(x)
	}
	return true
}
