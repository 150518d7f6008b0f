/*
File   : mixi/cmd/mixi/repl.go

The interactive Read-Eval-Print Loop, adapted from go-mix/repl/repl.go:
same readline-backed line editing and colored feedback, re-plumbed to
call this module's run() pipeline (lex -> parse -> analyze -> evaluate)
instead of go-mix's own evaluator.
*/
package main

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor  = color.New(color.FgBlue)
	greenColor = color.New(color.FgGreen)
)

type repl struct {
	banner  string
	version string
	prompt  string
}

func newRepl(banner, version, prompt string) *repl {
	return &repl{banner: banner, version: version, prompt: prompt}
}

func (r *repl) printBanner(w io.Writer) {
	line := strings.Repeat("-", 60)
	blueColor.Fprintln(w, line)
	greenColor.Fprintln(w, r.banner)
	blueColor.Fprintln(w, line)
	cyanColor.Fprintln(w, "mixi "+r.version+" - type '.exit' to quit")
	blueColor.Fprintln(w, line)
}

// start runs the REPL loop until the user exits or readline reports EOF,
// running each non-empty line through the full pipeline and printing its
// result or error.
func (r *repl) start(in io.Reader, w io.Writer) {
	r.printBanner(w)

	rl, err := readline.New(r.prompt)
	if err != nil {
		redColor.Fprintf(w, "[REPL ERROR] could not start line editor: %v\n", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			w.Write([]byte("Good Bye!\n"))
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			w.Write([]byte("Good Bye!\n"))
			return
		}
		rl.SaveHistory(line)
		r.evalLine(w, line)
	}
}

func (r *repl) evalLine(w io.Writer, line string) {
	result, err := run(line, w)
	if err != nil {
		redColor.Fprintf(w, "%v\n", err)
		return
	}
	yellowColor.Fprintln(w, result.String())
}
