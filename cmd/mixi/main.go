/*
File   : mixi/cmd/mixi/main.go

Package main is the entry point of the mixi interpreter: a thin external
collaborator (spec.md §1 explicitly places "any CLI driver" out of scope)
wiring the Lexer/Parser/Analyzer/Evaluator core into a runnable program.
Two modes, selected the way go-mix/main/main.go switches on argv: no
arguments starts the REPL, one argument runs it as a source file, except
--help/-h and --version/-v, which print usage or the version.
Grounded on go-mix/main/main.go's MODE/argv dispatch, trimmed of its
server and struct-dump commands (no counterpart in this spec).
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var version = "v0.1.0"

var banner = `
  ███▄ ▄███▓ ██▓▒██   ██▒ ██▓
 ▓██▒▀█▀ ██▒▓██▒▒▒ █ █ ▒░▓██▒
 ▓██    ▓██░▒██▒░░  █   ░▒██▒
 ▒██    ▒██ ░██░ ░ █ █ ▒ ░██░
 ▒██▒   ░██▒░██░▒██▒ ▒██▒░██░
 ░ ▒░   ░  ░░▓  ▒▒ ░ ░▓ ░░▓
 ░  ░      ░ ▒ ░░░   ░▒ ░ ▒ ░
 ░      ░    ▒ ░ ░    ░   ▒ ░
        ░    ░   ░    ░   ░
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
			fmt.Println("mixi " + version)
			return
		default:
			runFile(os.Args[1])
			return
		}
	}
	newRepl(banner, version, "mixi >>> ").start(os.Stdin, os.Stdout)
}

func showHelp() {
	fmt.Println("Usage:")
	fmt.Println("  mixi              start the interactive REPL")
	fmt.Println("  mixi <file>       run a mixi source file")
	fmt.Println("  mixi --version    print the version")
}

// runFile reads and executes a source file, printing the result or error
// to stdout/stderr and exiting non-zero on failure.
func runFile(fileName string) {
	content, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read %q: %v\n", fileName, err)
		os.Exit(1)
	}
	result, err := run(string(content), os.Stdout)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	yellowColor.Println(result.String())
}
