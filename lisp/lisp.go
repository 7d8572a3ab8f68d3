package lisp

// Lisp ties a root environment to the read/eval/print pipeline. The
// environment survives across inputs; errors abort a single input only.
type Lisp struct {
	Env *Env
}

func New() Lisp {
	return Lisp{Env: GlobalEnv()}
}

// Eval reads the first form in input and evaluates it. A blank or
// comment-only input returns (nil, nil).
func (l Lisp) Eval(input string) (Expr, error) {
	e, err := Read(input)
	if err != nil || e == nil {
		return nil, err
	}
	return Eval(e, l.Env)
}

// EvalExpr evaluates an already-read form.
func (l Lisp) EvalExpr(e Expr) (Expr, error) {
	return Eval(e, l.Env)
}
