/*
 * rkt
 *
 * A small Scheme-family interpreter.
 */

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"devt.de/krotik/common/termutil"
	"github.com/krotik/rkt/addon"
	"github.com/krotik/rkt/ast"
	"github.com/krotik/rkt/interpreter"
	"github.com/krotik/rkt/lexer"
	"github.com/krotik/rkt/parser"
	"github.com/krotik/rkt/printer"
	"github.com/krotik/rkt/rktlog"
	"github.com/krotik/rkt/scope"
	"github.com/krotik/rkt/util"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	debug := fs.Bool("debug", false, "emit a debug trace to stderr")
	console := fs.Bool("console", false, "drop into an interactive console after evaluating <path>")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [-debug] [-console] <path>\n", args[0])
		fs.PrintDefaults()
	}

	if err := fs.Parse(args[1:]); err != nil {
		return 1
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return 1
	}
	path := rest[0]

	program, err := loadProgram(path)
	if err != nil {
		return reportAndExit(err)
	}

	rp := interpreter.NewRuntimeProvider(path, newLogger(*debug))
	env := rp.NewRootEnv(program)

	if err := rp.RunEach(env, program.ProgramBody, printResult); err != nil {
		return reportAndExit(err)
	}

	if *console {
		return runConsole(rp, env)
	}

	return 0
}

/*
printResult prints n followed by a newline, unless n is the void sentinel
returned by forms that have no printable value (define, set!).
*/
func printResult(n *ast.Node) {
	if ast.Printable(n) {
		fmt.Println(printer.Print(n))
	}
}

func newLogger(debug bool) rktlog.Logger {
	base := rktlog.NewBufferLogger(os.Stderr)
	level := "info"
	if debug {
		level = "debug"
	}
	ll, err := rktlog.NewLevelLogger(base, level)
	if err != nil {
		return base
	}
	return ll
}

func loadProgram(path string) (*ast.Node, error) {
	if !strings.HasSuffix(path, ".rkt") {
		return nil, util.New(util.IOError, path, "source file must have a .rkt suffix", 0, 0)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, util.New(util.IOError, path, err.Error(), 0, 0)
	}

	lines := strings.Split(string(content), "\n")

	program, err := parser.Parse(path, lines)
	if err != nil {
		return nil, err
	}

	interpreter.RegisterBuiltins(program)
	addon.Register(program)

	return program, nil
}

/*
runConsole drops into a line-at-a-time REPL, evaluating each entered form
against the same environment the initial file populated.
*/
func runConsole(rp *interpreter.RuntimeProvider, env *scope.Environment) int {
	term, err := termutil.NewConsoleLineTerminal(os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := term.StartTerm(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer term.StopTerm()

	line, lerr := term.NextLine()
	for lerr == nil {
		trimmed := strings.TrimSpace(line)

		switch trimmed {
		case "":
		case "quit", "exit":
			return 0
		default:
			evalLine(rp, env, trimmed)
		}

		line, lerr = term.NextLine()
	}

	return 0
}

/*
evalLine parses one console line as if it were the sole body of a
source file (a synthetic #lang racket header is supplied so the normal
grammar entry point can be reused) and evaluates its top-level forms one
at a time against the persistent console environment, printing each
printable result.
*/
func evalLine(rp *interpreter.RuntimeProvider, env *scope.Environment, line string) {
	parsed, err := parser.Parse("console input", []string{lexer.LangDirective, line})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}

	if err := rp.RunEach(env, parsed.ProgramBody, printResult); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

/*
reportAndExit writes err's single diagnostic line to stderr and returns
the exit code its Category maps to.
*/
func reportAndExit(err error) int {
	fmt.Fprintln(os.Stderr, err)
	if e, ok := err.(*util.Error); ok {
		return e.Category.ExitCode()
	}
	return 1
}
