package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/peterh/liner"

	"github.com/deosjr/blisp/lisp"
)

const (
	prompt      = "blisp> "
	historyFile = ".blisp_history"
)

func main() {
	if len(os.Args) < 2 {
		startREPL()
		return
	}
	runFile(os.Args[1])
}

func runFile(filename string) {
	b, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	exprs, err := lisp.ReadAll(string(b))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	l := lisp.New()
	for _, e := range exprs {
		v, err := l.EvalExpr(e)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(lisp.Print(v))
	}
}

func startREPL() {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	l := lisp.New()
	for {
		line, err := ln.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			// Ctrl+D or closed input ends the loop
			fmt.Println()
			return
		}
		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}
		ln.AppendHistory(line)

		if strings.HasPrefix(code, ":") {
			if !replCommand(code) {
				return
			}
			continue
		}

		v, err := l.Eval(code)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if v == nil {
			continue
		}
		fmt.Println(lisp.Print(v))
	}
}

// replCommand handles : commands, returning false when the REPL should exit.
func replCommand(code string) bool {
	switch {
	case code == ":quit":
		return false
	case strings.HasPrefix(code, ":ast "):
		e, err := lisp.Read(strings.TrimPrefix(code, ":ast "))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return true
		}
		spew.Dump(e)
	default:
		fmt.Println("unknown command, type :quit to exit")
	}
	return true
}
