// Package driver dispatches a machine-description file to the right
// automaton package by its extension, runs it to a terminal signal, and
// renders the verbose trace when asked. It is the single entry point shared
// by cmd/automatasim's one-shot mode and internal/repl's interactive mode,
// grounded on the central dispatch original_source/src/main.rs performs
// between its pda and tm (and stubbed dfa) modules.
package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ninefold/automatasim/internal/automaton/dfa"
	"github.com/ninefold/automatasim/internal/automaton/pda"
	"github.com/ninefold/automatasim/internal/automaton/tm"
	"github.com/ninefold/automatasim/internal/runcfg"
	"github.com/ninefold/automatasim/internal/trace"
)

// Kind is the machine kind dispatched on a machine-description file's
// extension.
type Kind int

const (
	KindPDA Kind = iota
	KindTM
	KindDFA
)

// ErrUnknownKind is returned when a machine path's extension does not map to
// a known machine kind.
var ErrUnknownKind = errors.New("driver: unrecognized machine file extension, want .pda, .tm, or .dfa")

// ErrStepCeilingExceeded is returned by Run when cfg's step ceiling is
// positive and the run does not reach a terminal signal within that many
// steps (spec.md §5 permits, but does not mandate, such a ceiling).
var ErrStepCeilingExceeded = errors.New("driver: step ceiling exceeded without reaching a terminal state")

// KindForPath maps a machine-description file's extension to its Kind.
func KindForPath(path string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pda":
		return KindPDA, nil
	case ".tm":
		return KindTM, nil
	case ".dfa":
		return KindDFA, nil
	default:
		return 0, ErrUnknownKind
	}
}

// Machine is a loaded, validated automaton of either kind, immutable once
// built (spec.md §3's Lifecycle), ready to run against any number of inputs.
type Machine struct {
	Kind Kind
	pda  *pda.Automaton
	tm   *tm.Automaton
}

// Load reads a machine-description file and builds the validated Automaton
// for the kind its extension names. The returned error is, depending on
// what went wrong, ErrUnknownKind, a *config.PositionedError, a
// *pda.SpecError, a *tm.SpecError, an *os.PathError, or
// dfa.ErrNotImplemented.
func Load(path string) (*Machine, []string, error) {
	kind, err := KindForPath(path)
	if err != nil {
		return nil, nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	text := string(data)

	switch kind {
	case KindPDA:
		a, buildErr := pda.Build(text)
		if buildErr != nil {
			return nil, nil, buildErr
		}
		return &Machine{Kind: KindPDA, pda: a}, nil, nil
	case KindTM:
		a, warnings, buildErr := tm.Build(text)
		if buildErr != nil {
			return nil, nil, buildErr
		}
		return &Machine{Kind: KindTM, tm: a}, warnings, nil
	case KindDFA:
		_, buildErr := dfa.Build(text)
		return nil, nil, buildErr
	default:
		return nil, nil, ErrUnknownKind
	}
}

// Result is the outcome of one run against one input.
type Result struct {
	Accepted bool
	// Output is the final tape contents for a TM run; empty for PDA, which
	// has no analogous notion of output (spec.md §4.5 only ever signals
	// accept/reject).
	Output string
	// Trace is the rendered step-by-step snapshot sequence, populated only
	// when Run was called with verbose set.
	Trace string
}

// Run simulates m against input to a terminal signal, or until cfg's
// positive step ceiling is reached (ErrStepCeilingExceeded). verbose
// accumulates a snapshot per step in Result.Trace using internal/trace.
func Run(m *Machine, input string, cfg runcfg.Config, verbose bool) (Result, error) {
	switch m.Kind {
	case KindPDA:
		return runPDA(m.pda, input, cfg, verbose)
	case KindTM:
		return runTM(m.tm, input, cfg, verbose)
	default:
		return Result{}, ErrUnknownKind
	}
}

func runPDA(a *pda.Automaton, input string, cfg runcfg.Config, verbose bool) (Result, error) {
	st, err := pda.New(a, input)
	if err != nil {
		return Result{}, err
	}

	var tr strings.Builder
	for {
		if verbose {
			tr.WriteString(trace.PDASnapshot(st.Step, st.Current, st.Input(), st.Stack()))
			tr.WriteString(trace.StepSeparator)
			tr.WriteRune('\n')
		}
		if ceilingExceeded(cfg, st.Step) {
			return Result{Trace: tr.String()}, ErrStepCeilingExceeded
		}

		signal, terminal := st.Step()
		if terminal {
			return Result{Accepted: signal == pda.Accept, Trace: tr.String()}, nil
		}
	}
}

func runTM(a *tm.Automaton, input string, cfg runcfg.Config, verbose bool) (Result, error) {
	st := tm.New(a)
	if err := st.SetInput(input); err != nil {
		return Result{}, err
	}

	var tr strings.Builder
	for {
		if verbose {
			tr.WriteString(trace.TMSnapshot(st.Step, st.Current, st.Tapes))
			tr.WriteString(trace.StepSeparator)
			tr.WriteRune('\n')
		}
		if ceilingExceeded(cfg, st.Step) {
			return Result{Trace: tr.String()}, ErrStepCeilingExceeded
		}

		signal, result, terminal := st.Step()
		if terminal {
			return Result{Accepted: signal == tm.Accept, Output: result, Trace: tr.String()}, nil
		}
	}
}

func ceilingExceeded(cfg runcfg.Config, step int) bool {
	return cfg.Run.StepCeiling > 0 && step >= cfg.Run.StepCeiling
}

// FormatWarning renders a non-fatal builder warning (currently only the TM
// "B != '_'" notice) for the ambient logger, grounded on the original Rust
// source's log::warn! call (SPEC_FULL.md §6.2).
func FormatWarning(w string) string {
	return fmt.Sprintf("warning: %s", w)
}
