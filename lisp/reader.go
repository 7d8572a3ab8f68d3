package lisp

import (
	"strconv"
	"strings"
)

// reader walks a token slice with a shared cursor; recursive reads advance
// the same position instead of copying the tokens.
type reader struct {
	tokens []Token
	pos    int
}

func (r *reader) peek() (Token, bool) {
	if r.pos >= len(r.tokens) {
		return "", false
	}
	return r.tokens[r.pos], true
}

func (r *reader) next() (Token, bool) {
	t, ok := r.peek()
	if ok {
		r.pos++
	}
	return t, ok
}

// Read parses the first form in line. One form per line is the supported
// contract: any tokens after it are ignored. A blank or comment-only line
// yields no form (nil, nil).
func Read(line string) (Expr, error) {
	r := &reader{tokens: Tokenize(line)}
	if _, ok := r.peek(); !ok {
		return nil, nil
	}
	return r.readForm()
}

// ReadAll parses every form in text. Used for file input.
func ReadAll(text string) ([]Expr, error) {
	r := &reader{tokens: Tokenize(text)}
	exprs := []Expr{}
	for {
		if _, ok := r.peek(); !ok {
			return exprs, nil
		}
		e, err := r.readForm()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
}

func (r *reader) readForm() (Expr, error) {
	t, ok := r.peek()
	if !ok {
		return nil, newError(UnterminatedList, "expected form, got end of input")
	}
	if t == "(" {
		return r.readList()
	}
	return r.readAtom()
}

func (r *reader) readList() (Expr, error) {
	r.next() // opening paren
	elems := []Expr{}
	for {
		t, ok := r.peek()
		if !ok {
			return nil, newError(UnterminatedList, "unterminated list")
		}
		if t == ")" {
			r.next()
			break
		}
		e, err := r.readForm()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
	// () is Nil, never an empty List
	if len(elems) == 0 {
		return Nil{}, nil
	}
	return List(elems), nil
}

func (r *reader) readAtom() (Expr, error) {
	t, _ := r.next()
	switch {
	case t[0] == '"':
		return decodeString(t)
	case isDigit(t[0]) || (t[0] == '-' && len(t) > 1 && isDigit(t[1])):
		n, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return nil, newError(BadNumber, "not a valid integer: %s", t)
		}
		return Integer(n), nil
	case t == "true":
		return Bool(true), nil
	case t == "false":
		return Bool(false), nil
	}
	return Symbol(t), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// decodeString un-escapes the contents of a quoted token. The lexer
// guarantees a leading quote; the closing quote may be missing.
func decodeString(t Token) (Expr, error) {
	var b strings.Builder
	for i := 1; i < len(t); i++ {
		c := t[i]
		if c == '"' {
			return String(b.String()), nil
		}
		if c == '\\' && i+1 < len(t) {
			i++
			if t[i] == 'n' {
				b.WriteByte('\n')
				continue
			}
			b.WriteByte(t[i])
			continue
		}
		b.WriteByte(c)
	}
	return nil, newError(UnterminatedString, "unterminated string: %s", t)
}
