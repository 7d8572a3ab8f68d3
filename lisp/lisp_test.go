package lisp

import "testing"

func TestEvalNoForm(t *testing.T) {
	l := New()
	for i, input := range []string{"", "   ", "; comment only"} {
		e, err := l.Eval(input)
		if err != nil {
			t.Errorf("%d) eval error %v", i, err)
		}
		if e != nil {
			t.Errorf("%d) expected no result, got %s", i, Print(e))
		}
	}
}

func TestErrorLeavesEnvUsable(t *testing.T) {
	l := New()
	if _, err := l.Eval("(set! x 5)"); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Eval("(/ 1 0)"); err == nil {
		t.Fatal("expected division by zero")
	}
	// the error aborted that line only
	e, err := l.Eval("(+ x 1)")
	if err != nil {
		t.Fatal(err)
	}
	if got := Print(e); got != "6" {
		t.Fatalf("got %s want 6", got)
	}
}

func TestLoad(t *testing.T) {
	l := New()
	err := l.Load(`
        ; small prelude
        (set! inc (lambda (x) (+ x 1)))
        (set! dec (lambda (x) (- x 1)))
    `)
	if err != nil {
		t.Fatal(err)
	}
	e, err := l.Eval("(inc (dec 42))")
	if err != nil {
		t.Fatal(err)
	}
	if got := Print(e); got != "42" {
		t.Fatalf("got %s want 42", got)
	}
}

func TestLoadStopsOnError(t *testing.T) {
	l := New()
	err := l.Load("(set! a 1)\n(boom)\n(set! b 2)")
	if err == nil {
		t.Fatal("expected error from load")
	}
	if _, ok := l.Env.Lookup("a"); !ok {
		t.Error("forms before the error must have been evaluated")
	}
	if _, ok := l.Env.Lookup("b"); ok {
		t.Error("forms after the error must not have been evaluated")
	}
}
