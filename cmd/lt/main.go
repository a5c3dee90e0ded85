// Command lt is the Language Tool: run it with no arguments for an
// interactive session, or with a file path to run a script.
package main

import (
	"os"

	"github.com/ashgrove/lt/eval"
	"github.com/ashgrove/lt/objects"
	"github.com/ashgrove/lt/parser"
	"github.com/ashgrove/lt/repl"
	"github.com/fatih/color"
)

const version = "v1.0.0"
const author = "ashgrove"
const license = "MIT"
const prompt = "lt >>> "

const line = "----------------------------------------------------------------"

const banner = `
   ██╗  ████████╗
   ██║  ╚══██╔══╝
   ██║     ██║
   ██║     ██║
   ███████╗██║
   ╚══════╝╚═╝
`

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			showVersion()
			return
		default:
			runFile(os.Args[1])
			return
		}
	}

	repler := repl.NewRepl(banner, version, author, line, license, prompt)
	repler.Start(os.Stdout)
}

func showHelp() {
	cyanColor.Println("lt - a small interpreted language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  lt                    Start interactive REPL mode")
	yellowColor.Println("  lt <path-to-file>     Execute a .lt source file")
	yellowColor.Println("  lt --help             Display this help message")
	yellowColor.Println("  lt --version          Display version information")
}

func showVersion() {
	cyanColor.Println("lt - a small interpreted language")
	cyanColor.Printf("Version: %s\n", version)
	cyanColor.Printf("License: %s\n", license)
}

// runFile reads source from path and hands it to executeFileWithRecovery,
// treating failure as fatal rather than something to recover from line by
// line the way the REPL does.
func runFile(path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read %q: %v\n", path, err)
		os.Exit(1)
	}
	executeFileWithRecovery(string(content))
}

// executeFileWithRecovery parses and evaluates source, recovering from any
// panic the lexer, parser, or evaluator might raise so a bug in this
// interpreter surfaces as a reported error rather than a bare Go stack
// trace.
func executeFileWithRecovery(source string) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", r)
			os.Exit(1)
		}
	}()

	par := parser.NewParser(source)
	prog := par.Parse()

	if par.HasErrors() {
		for _, e := range par.GetErrors() {
			redColor.Fprintf(os.Stderr, "%s\n", e)
		}
		os.Exit(1)
	}

	evaluator := eval.NewEvaluator()
	result := evaluator.Eval(prog)

	if objects.IsError(result) {
		redColor.Fprintf(os.Stderr, "%s\n", result.Inspect())
		os.Exit(1)
	}
}
