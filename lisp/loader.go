package lisp

// Load evaluates a string of lisp code form by form against the
// environment, for preloading definitions.
func (l Lisp) Load(data string) error {
	exprs, err := ReadAll(data)
	if err != nil {
		return err
	}
	for _, e := range exprs {
		if _, err := l.EvalExpr(e); err != nil {
			return err
		}
	}
	return nil
}
