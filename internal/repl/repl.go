// Package repl implements the interactive multi-input session described in
// SPEC_FULL.md §6.4: load one machine once, then accept repeated input lines
// on stdin, printing a verdict (and, in verbose mode, a trace) per line,
// until ":quit" or EOF.
//
// Grounded on internal/input/input.go's DirectCommandReader/
// InteractiveCommandReader pair (the same readline-vs-direct split, minus
// the command-history prompt editing tunaq's parser needed) and engine.go's
// RunUntilQuit loop shape.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/ninefold/automatasim/internal/automaton/pda"
	"github.com/ninefold/automatasim/internal/automaton/tm"
	"github.com/ninefold/automatasim/internal/driver"
	"github.com/ninefold/automatasim/internal/runcfg"
	"github.com/ninefold/automatasim/internal/trace"
)

// lineReader is the minimal surface both reader implementations share.
type lineReader interface {
	ReadLine() (string, error)
	Close() error
}

type directReader struct {
	r *bufio.Reader
}

func (d *directReader) ReadLine() (string, error) {
	line, err := d.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (d *directReader) Close() error { return nil }

type interactiveReader struct {
	rl *readline.Instance
}

func (i *interactiveReader) ReadLine() (string, error) {
	line, err := i.rl.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (i *interactiveReader) Close() error { return i.rl.Close() }

// QuitCommand ends a REPL session when entered on its own line.
const QuitCommand = ":quit"

// Session drives one interactive run of a loaded machine.
type Session struct {
	Machine *driver.Machine
	Config  runcfg.Config
	Verbose bool
	Out     io.Writer

	reader lineReader
}

// New builds a Session reading from stdin through GNU-readline-style editing
// and history. Used when stdin is a real tty, exactly as cmd/tqi's
// tty-detected default mode does.
func New(m *driver.Machine, cfg runcfg.Config, verbose bool, out io.Writer) (*Session, error) {
	rl, err := readline.NewEx(&readline.Config{Prompt: "automatasim> "})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}
	return &Session{Machine: m, Config: cfg, Verbose: verbose, Out: out, reader: &interactiveReader{rl: rl}}, nil
}

// NewDirect builds a Session reading from the given stream directly,
// bypassing readline. Used when stdin is not a tty, exactly as cmd/tqi's
// --direct flag and non-tty fallback do.
func NewDirect(m *driver.Machine, cfg runcfg.Config, verbose bool, in io.Reader, out io.Writer) *Session {
	return &Session{
		Machine: m,
		Config:  cfg,
		Verbose: verbose,
		Out:     out,
		reader:  &directReader{r: bufio.NewReader(in)},
	}
}

// Run reads input lines until ":quit" or EOF, running each through the
// loaded machine and printing its verdict. first, if non-empty, is run
// before the first prompt (the optional interactive-mode positional input).
func (s *Session) Run(first string) error {
	defer s.reader.Close()

	fmt.Fprintln(s.Out, "automatasim interactive session. Enter input, or ':quit' to exit.")

	if first != "" {
		if err := s.runOne(first); err != nil {
			return err
		}
	}

	for {
		line, err := s.reader.ReadLine()
		if err != nil {
			if err == io.EOF {
				fmt.Fprintln(s.Out, "Goodbye")
				return nil
			}
			return fmt.Errorf("read input line: %w", err)
		}
		if line == "" {
			continue
		}
		if line == QuitCommand {
			fmt.Fprintln(s.Out, "Goodbye")
			return nil
		}
		if err := s.runOne(line); err != nil {
			return err
		}
	}
}

func (s *Session) runOne(input string) error {
	if s.Verbose {
		fmt.Fprintln(s.Out, trace.RunBanner)
	}

	result, err := driver.Run(s.Machine, input, s.Config, s.Verbose)
	if s.Verbose {
		fmt.Fprint(s.Out, result.Trace)
	}
	if err != nil {
		if s.Verbose {
			fmt.Fprintln(s.Out, trace.ErrBanner)
			fmt.Fprintln(s.Out, trace.WrapDiagnostic(err.Error()))
			fmt.Fprintln(s.Out, trace.EndBanner)
		} else if isInvalidInput(err) {
			fmt.Fprintln(s.Out, "Illegal Input")
		} else {
			fmt.Fprintln(s.Out, "syntax error")
		}
		return nil
	}

	value := result.Output
	if s.Machine.Kind != driver.KindTM {
		value = "false"
		if result.Accepted {
			value = "true"
		}
	}
	if s.Verbose {
		fmt.Fprintln(s.Out, trace.EndBanner)
		fmt.Fprintf(s.Out, "Result: %s\n", trace.Verdict(value, result.Accepted, s.Config.Run.Color))
	} else {
		fmt.Fprintln(s.Out, value)
	}
	return nil
}

// isInvalidInput reports whether err signals an input symbol outside the
// machine's alphabet, spec.md §6's distinct "Illegal Input" case.
func isInvalidInput(err error) bool {
	switch err.(type) {
	case *pda.InvalidInputError, *tm.InvalidInputError:
		return true
	default:
		return false
	}
}
