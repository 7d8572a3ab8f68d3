package lisp

// Eval evaluates an expression against an environment. Literals and
// function values evaluate to themselves, symbols by lookup, lists by
// special form or application.
func Eval(e Expr, env *Env) (Expr, error) {
	switch x := e.(type) {
	case Symbol:
		v, ok := env.Lookup(string(x))
		if !ok {
			return nil, newError(UnboundSymbol, "unbound symbol: %s", string(x))
		}
		return v, nil
	case List:
		// the reader never produces an empty List, () reads as Nil
		if len(x) == 0 {
			return Nil{}, nil
		}
		return evalList(x, env)
	}
	return e, nil
}

// Special forms are recognized on the literal head symbol, before the head
// is evaluated. They shadow any variable of the same name.
func evalList(list List, env *Env) (Expr, error) {
	if head, ok := list[0].(Symbol); ok {
		switch head {
		case "let":
			return evalLet(list, env)
		case "if":
			return evalIf(list, env)
		case "lambda":
			return evalLambda(list, env)
		case "set!":
			return evalSet(list, env)
		}
	}
	return apply(list, env)
}

// (let (name expr) body)
func evalLet(list List, env *Env) (Expr, error) {
	if len(list) != 3 {
		return nil, newError(ArityError, "let takes 2 arguments, got %d", len(list)-1)
	}
	binding, ok := list[1].(List)
	if !ok || len(binding) != 2 {
		return nil, newError(TypeError, "let binding must be a (name expr) pair: %s", Print(list[1]))
	}
	name, ok := binding[0].(Symbol)
	if !ok {
		return nil, newError(TypeError, "let binding name must be a symbol: %s", Print(binding[0]))
	}
	v, err := Eval(binding[1], env)
	if err != nil {
		return nil, err
	}
	letEnv := NewEnv(env)
	letEnv.Bind(string(name), v)
	return Eval(list[2], letEnv)
}

// (if cond then else), only the selected branch is evaluated
func evalIf(list List, env *Env) (Expr, error) {
	if len(list) != 4 {
		return nil, newError(ArityError, "if takes 3 arguments, got %d", len(list)-1)
	}
	cond, err := Eval(list[1], env)
	if err != nil {
		return nil, err
	}
	if isTruthy(cond) {
		return Eval(list[2], env)
	}
	return Eval(list[3], env)
}

// (lambda (params...) body), capturing the defining environment
func evalLambda(list List, env *Env) (Expr, error) {
	if len(list) != 3 {
		return nil, newError(ArityError, "lambda takes 2 arguments, got %d", len(list)-1)
	}
	plist, ok := list[1].(List)
	if !ok {
		return nil, newError(TypeError, "lambda parameters must be a list: %s", Print(list[1]))
	}
	params := make([]string, len(plist))
	for i, p := range plist {
		sym, ok := p.(Symbol)
		if !ok {
			return nil, newError(TypeError, "lambda parameter is not a symbol: %s", Print(p))
		}
		params[i] = string(sym)
	}
	return &Lambda{Params: params, Body: list[2], Env: env}, nil
}

// (set! name expr), see Env.Set for the rebinding rule
func evalSet(list List, env *Env) (Expr, error) {
	if len(list) != 3 {
		return nil, newError(ArityError, "set! takes 2 arguments, got %d", len(list)-1)
	}
	name, ok := list[1].(Symbol)
	if !ok {
		return nil, newError(TypeError, "first argument to set! must be a symbol: %s", Print(list[1]))
	}
	v, err := Eval(list[2], env)
	if err != nil {
		return nil, err
	}
	env.Set(string(name), v)
	return v, nil
}

func apply(list List, env *Env) (Expr, error) {
	head, err := Eval(list[0], env)
	if err != nil {
		return nil, err
	}
	// arguments are evaluated eagerly, left to right, in the caller's env
	args := make([]Expr, len(list)-1)
	for i, a := range list[1:] {
		v, err := Eval(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	switch f := head.(type) {
	case *Lambda:
		// the call frame chains to the captured environment, so free
		// variables in the body resolve from the definition site
		frame, err := bindArgs(list[0], f.Params, args, f.Env)
		if err != nil {
			return nil, err
		}
		return Eval(f.Body, frame)
	case *Builtin:
		frame, err := bindArgs(list[0], f.Params, args, env)
		if err != nil {
			return nil, err
		}
		return f.Fn(frame)
	}
	return nil, newError(NotCallable, "attempt to call non-function %s", Print(head))
}

func bindArgs(callee Expr, params []string, args []Expr, outer *Env) (*Env, error) {
	if len(args) != len(params) {
		return nil, newError(ArityError, "%s takes %d arguments, got %d",
			Print(callee), len(params), len(args))
	}
	frame := NewEnv(outer)
	for i, p := range params {
		frame.Bind(p, args[i])
	}
	return frame, nil
}
