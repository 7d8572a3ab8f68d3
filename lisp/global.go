package lisp

// GlobalEnv returns a fresh root frame holding the numeric builtins and nil.
// It is created once per interpreter and shared by all evaluations.
func GlobalEnv() *Env {
	return &Env{vars: map[string]Expr{
		"nil": Nil{},
		"+":   arith("add", func(a, b int64) int64 { return a + b }),
		"-":   arith("subtract", func(a, b int64) int64 { return a - b }),
		"*":   arith("multiply", func(a, b int64) int64 { return a * b }),
		"/":   checkedArith("divide", func(a, b int64) int64 { return a / b }),
		"%":   checkedArith("mod", func(a, b int64) int64 { return a % b }),
	}}
}

// Builtins take fixed parameters named a and b and fetch them from the call
// frame by name.
func arith(verb string, f func(a, b int64) int64) *Builtin {
	return &Builtin{
		Params: []string{"a", "b"},
		Fn: func(env *Env) (Expr, error) {
			a, b, err := numericArgs(env, verb)
			if err != nil {
				return nil, err
			}
			return Integer(f(a, b)), nil
		},
	}
}

// checkedArith is arith for the operations undefined on b = 0.
func checkedArith(verb string, f func(a, b int64) int64) *Builtin {
	return &Builtin{
		Params: []string{"a", "b"},
		Fn: func(env *Env) (Expr, error) {
			a, b, err := numericArgs(env, verb)
			if err != nil {
				return nil, err
			}
			if b == 0 {
				return nil, newError(DivisionByZero, "division by zero: cannot %s %d by 0", verb, a)
			}
			return Integer(f(a, b)), nil
		},
	}
}

func numericArgs(env *Env, verb string) (int64, int64, error) {
	a, _ := env.Lookup("a")
	b, _ := env.Lookup("b")
	an, ok := a.(Integer)
	if !ok {
		return 0, 0, newError(TypeError, "cannot %s %s and %s", verb, Print(a), Print(b))
	}
	bn, ok := b.(Integer)
	if !ok {
		return 0, 0, newError(TypeError, "cannot %s %s and %s", verb, Print(a), Print(b))
	}
	return int64(an), int64(bn), nil
}
