package lisp

import "testing"

func TestPrint(t *testing.T) {
	for i, tt := range []struct {
		e    Expr
		want string
	}{
		{e: Nil{}, want: "nil"},
		{e: Bool(true), want: "true"},
		{e: Bool(false), want: "false"},
		{e: Integer(42), want: "42"},
		{e: Integer(-7), want: "-7"},
		{e: String("hello"), want: `"hello"`},
		{e: String("a\nb"), want: `"a\nb"`},
		{e: String(`say "hi"`), want: `"say \"hi\""`},
		{e: String(`back\slash`), want: `"back\\slash"`},
		{e: Symbol("foo"), want: "foo"},
		{e: List{Integer(1), Symbol("x"), Nil{}}, want: "(1 x nil)"},
		{e: List{List{Integer(1)}, Integer(2)}, want: "((1) 2)"},
		{e: &Lambda{}, want: "<function>"},
		{e: &Builtin{}, want: "<builtin function>"},
	} {
		if got := Print(tt.e); got != tt.want {
			t.Errorf("%d) got %s want %s", i, got, tt.want)
		}
	}
}

// print(read_and_eval(print(v))) == print(v) for self-evaluating literals
func TestRoundTrip(t *testing.T) {
	l := New()
	for i, v := range []Expr{
		Integer(0), Integer(123), Integer(-5),
		String(""), String("plain"), String("esc \" \\ \n aped"),
		Bool(true), Bool(false),
		Nil{},
	} {
		printed := Print(v)
		got, err := l.Eval(printed)
		if err != nil {
			t.Errorf("%d) eval error on %s: %v", i, printed, err)
			continue
		}
		if Print(got) != printed {
			t.Errorf("%d) got %s want %s", i, Print(got), printed)
		}
	}
}
