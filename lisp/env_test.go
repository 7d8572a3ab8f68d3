package lisp

import "testing"

func TestLookupWalksChain(t *testing.T) {
	root := NewEnv(nil)
	root.Bind("x", Integer(1))
	root.Bind("y", Integer(2))
	child := NewEnv(root)
	child.Bind("x", Integer(10))

	if v, ok := child.Lookup("x"); !ok || v.(Integer) != 10 {
		t.Errorf("expected shadowing binding 10, got %v", v)
	}
	if v, ok := child.Lookup("y"); !ok || v.(Integer) != 2 {
		t.Errorf("expected outer binding 2, got %v", v)
	}
	if _, ok := child.Lookup("z"); ok {
		t.Error("expected z to be unbound")
	}
}

func TestBindOverwritesSameFrame(t *testing.T) {
	env := NewEnv(nil)
	env.Bind("x", Integer(1))
	env.Bind("x", Integer(2))
	if v, _ := env.Lookup("x"); v.(Integer) != 2 {
		t.Errorf("rebinding in the same frame must overwrite, got %v", v)
	}
}

func TestSetMutatesNearestBinding(t *testing.T) {
	root := NewEnv(nil)
	root.Bind("x", Integer(1))
	child := NewEnv(root)

	child.Set("x", Integer(5))
	if v, _ := root.Lookup("x"); v.(Integer) != 5 {
		t.Errorf("set must mutate the outer binding, got %v", v)
	}
	if _, ok := child.vars["x"]; ok {
		t.Error("set must not create a shadowing binding in the child frame")
	}

	// unbound names bind locally
	child.Set("fresh", Integer(7))
	if _, ok := root.vars["fresh"]; ok {
		t.Error("unbound set must bind in the current frame, not the root")
	}
	if v, ok := child.Lookup("fresh"); !ok || v.(Integer) != 7 {
		t.Errorf("expected fresh bound to 7 in the child frame, got %v", v)
	}
}
