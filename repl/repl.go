// Package repl implements the interactive read-eval-print loop: one line
// of source in, one evaluation's result or error out, looping until the
// user exits or hits EOF.
package repl

import (
	"io"
	"strings"

	"github.com/ashgrove/lt/eval"
	"github.com/ashgrove/lt/objects"
	"github.com/ashgrove/lt/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl bundles the cosmetic banner text shown at startup with the prompt
// readline uses on every line.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl constructs a Repl with its banner and prompt configuration.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the read-eval-print loop against a single evaluator whose
// environment persists across lines, so a `let` on one line is visible
// to the next. It returns when the user types `.exit` or readline hits
// EOF (Ctrl+D).
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line, evaluator)
	}
}

// evalLine parses and evaluates one line of input, reporting parse or
// runtime errors in red and a successful result in yellow, and never
// aborting the loop — a bad line is a chance to correct it, not a reason
// to stop the session.
func (r *Repl) evalLine(writer io.Writer, line string, evaluator *eval.Evaluator) {
	par := parser.NewParser(line)
	prog := par.Parse()

	if par.HasErrors() {
		for _, e := range par.GetErrors() {
			redColor.Fprintf(writer, "%s\n", e)
		}
		return
	}

	result := evaluator.Eval(prog)
	if objects.IsError(result) {
		redColor.Fprintf(writer, "%s\n", result.Inspect())
		return
	}
	yellowColor.Fprintf(writer, "%s\n", result.Inspect())
}
