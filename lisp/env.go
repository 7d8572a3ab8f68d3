package lisp

// Env is one frame of the lexical environment chain. Frames are ordinary
// heap values: a Lambda holding its defining frame keeps that frame and all
// its parents reachable after the call that created them returns.
type Env struct {
	vars  map[string]Expr
	outer *Env
}

// NewEnv creates a child frame chained to outer. The root frame has a nil
// outer.
func NewEnv(outer *Env) *Env {
	return &Env{vars: map[string]Expr{}, outer: outer}
}

// Lookup walks from this frame outward and returns the nearest binding.
func (e *Env) Lookup(name string) (Expr, bool) {
	if v, ok := e.vars[name]; ok {
		return v, true
	}
	if e.outer == nil {
		return nil, false
	}
	return e.outer.Lookup(name)
}

// find returns the nearest frame in which name is bound.
func (e *Env) find(name string) (*Env, bool) {
	if _, ok := e.vars[name]; ok {
		return e, true
	}
	if e.outer == nil {
		return nil, false
	}
	return e.outer.find(name)
}

// Bind inserts into this frame only, overwriting any binding of the same
// name already in it.
func (e *Env) Bind(name string, v Expr) {
	e.vars[name] = v
}

// Set mutates the nearest existing binding of name in the chain. A name
// unbound in the whole chain is bound in this frame instead, which is how
// top-level definitions are introduced.
func (e *Env) Set(name string, v Expr) {
	if frame, ok := e.find(name); ok {
		frame.vars[name] = v
		return
	}
	e.vars[name] = v
}
