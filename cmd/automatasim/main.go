/*
Automatasim simulates a pushdown automaton or multi-tape Turing machine
described in a small declarative text format.

Usage:

	automatasim [-v|--verbose] [-c|--config FILE] [-r|--repl] <machine-path> <input>

The flags are:

	-v, --verbose
		Print a step-by-step trace of the run in addition to the final
		verdict.

	-c, --config FILE
		Load an optional TOML run-configuration file (step ceiling, verbose
		color).

	-r, --repl
		Load the machine once and enter an interactive session instead of
		running a single input; <input>, if given, is run first.

For a pushdown automaton, the machine accepts or rejects the input and the
verdict is printed as true or false. For a Turing machine, the trimmed tape-0
contents at halt are printed instead of a verdict.
*/
package main

import (
	"fmt"
	"os"

	"github.com/ninefold/automatasim/internal/automaton/pda"
	"github.com/ninefold/automatasim/internal/automaton/tm"
	"github.com/ninefold/automatasim/internal/config"
	"github.com/ninefold/automatasim/internal/driver"
	"github.com/ninefold/automatasim/internal/repl"
	"github.com/ninefold/automatasim/internal/runcfg"
	"github.com/ninefold/automatasim/internal/trace"
	"github.com/ninefold/automatasim/internal/version"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitParseError indicates the machine description failed to lex or
	// validate against its formal spec.
	ExitParseError

	// ExitInvalidInput indicates the input string contains a character not
	// in the machine's Sigma.
	ExitInvalidInput
)

var (
	returnCode  int     = ExitSuccess
	flagVersion *bool   = pflag.BoolP("version", "V", false, "Gives the version info")
	flagVerbose *bool   = pflag.BoolP("verbose", "v", false, "Print a step-by-step trace of the run")
	flagConfig  *string = pflag.StringP("config", "c", "", "Optional TOML run-configuration file")
	flagRepl    *bool   = pflag.BoolP("repl", "r", false, "Enter an interactive session over the loaded machine")
)

var warnLog = newLogger(os.Stderr)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occured: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	args := pflag.Args()
	if len(args) < 1 || (len(args) < 2 && !*flagRepl) {
		fmt.Fprintln(os.Stderr, "usage: automatasim [-v|--verbose] [-c|--config FILE] [-r|--repl] <machine-path> <input>")
		returnCode = ExitParseError
		return
	}
	machinePath := args[0]
	var input string
	if len(args) >= 2 {
		input = args[1]
	}

	cfg := runcfg.Default()
	if *flagConfig != "" {
		var err error
		cfg, err = runcfg.Load(*flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: load config: %s\n", err.Error())
			returnCode = ExitParseError
			return
		}
	}

	machine, warnings, err := driver.Load(machinePath)
	if err != nil {
		reportFailure(err, *flagVerbose)
		returnCode = ExitParseError
		return
	}
	for _, w := range warnings {
		warnLog.Print(driver.FormatWarning(w))
	}

	if *flagRepl {
		runRepl(machine, cfg, input)
		return
	}

	runOnce(machine, cfg, input)
}

func runOnce(machine *driver.Machine, cfg runcfg.Config, input string) {
	if *flagVerbose {
		fmt.Println(trace.RunBanner)
	}

	result, err := driver.Run(machine, input, cfg, *flagVerbose)
	if *flagVerbose {
		fmt.Print(result.Trace)
	}
	if err != nil {
		reportFailure(err, *flagVerbose)
		if isInvalidInput(err) {
			returnCode = ExitInvalidInput
		} else {
			returnCode = ExitParseError
		}
		return
	}

	value := verdictValue(machine, result)
	if *flagVerbose {
		fmt.Println(trace.EndBanner)
		fmt.Printf("Result: %s\n", trace.Verdict(value, result.Accepted, cfg.Run.Color))
	} else {
		fmt.Println(value)
	}
}

// verdictValue is the spec-literal value spec.md §6 mandates for stdout: the
// bare true/false for a PDA, the trimmed tape-0 string for a TM.
func verdictValue(machine *driver.Machine, result driver.Result) string {
	if machine.Kind == driver.KindTM {
		return result.Output
	}
	if result.Accepted {
		return "true"
	}
	return "false"
}

// reportFailure prints err to stderr per spec.md §6's two-register stderr
// contract: a banner-wrapped diagnostic in verbose mode, a single concise
// line otherwise.
func reportFailure(err error, verbose bool) {
	if verbose {
		fmt.Fprintln(os.Stderr, trace.ErrBanner)
		if posErr, ok := err.(*config.PositionedError); ok {
			if src := posErr.SourceLineWithCursor(); src != "" {
				fmt.Fprintln(os.Stderr, src)
			}
		}
		fmt.Fprintln(os.Stderr, trace.WrapDiagnostic(err.Error()))
		fmt.Fprintln(os.Stderr, trace.EndBanner)
		return
	}
	if isInvalidInput(err) {
		fmt.Fprintln(os.Stderr, "Illegal Input")
	} else {
		fmt.Fprintln(os.Stderr, "syntax error")
	}
}

func runRepl(machine *driver.Machine, cfg runcfg.Config, firstInput string) {
	var session *repl.Session
	if fi, statErr := os.Stdin.Stat(); statErr == nil && (fi.Mode()&os.ModeCharDevice) != 0 {
		var err error
		session, err = repl.New(machine, cfg, *flagVerbose, os.Stdout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitParseError
			return
		}
	} else {
		session = repl.NewDirect(machine, cfg, *flagVerbose, os.Stdin, os.Stdout)
	}

	if err := session.Run(firstInput); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitParseError
	}
}

func isInvalidInput(err error) bool {
	switch err.(type) {
	case *pda.InvalidInputError, *tm.InvalidInputError:
		return true
	default:
		return false
	}
}
