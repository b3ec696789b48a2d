// Package pda implements the PDA Builder and PDA Runtime (spec.md §3, §4.2,
// §4.5): lifting a config.Config into a validated PushDownAutomata tuple and
// simulating it step by step against an input string.
//
// Grounded on original_source/src/pda.rs, which this package follows exactly
// for the lookup/epsilon-retry order and the stack-push semantics (§4.2's
// "iterate β right-to-left pushing each character onto the front" resolves,
// concretely, to: the leftmost character of β becomes the new stack top —
// see DESIGN.md for why spec.md §6's looser gloss is read this way).
package pda

import "github.com/ninefold/automatasim/internal/setutil"

// Key is the left side of a delta entry: (state, optional input symbol,
// stack-top symbol). HasInput is false for an epsilon-keyed entry.
type Key struct {
	State    string
	HasInput bool
	Input    rune
	Stack    rune
}

// Move is the right side of a delta entry: the next state and the sequence
// of stack symbols to push, stored in the same left-to-right order they were
// written in the transition token. Applying a Move pops the matched stack
// symbol and prepends Push to what remains, so Push's leftmost rune becomes
// the new stack top.
type Move struct {
	State string
	Push  []rune
}

// Automaton is the validated 7-tuple (Q, Sigma, Gamma, q0, z0, F, delta).
// Immutable after Build returns it.
type Automaton struct {
	Q  setutil.Set
	S  setutil.Set
	G  setutil.Set
	Q0 string
	Z0 rune
	F  setutil.Set

	delta map[Key]Move
}

// Get resolves the delta lookup for (q, a, X), applying spec.md §4.5's
// exact-match-before-epsilon precedence: an input-consuming move is
// preferred over an epsilon move when both exist. in == nil means no input
// symbol is available to peek (input already empty).
//
// Returns the move and whether it consumed *in, or ok == false if no rule
// matches either way.
func (a *Automaton) Get(q string, in *rune, stackTop rune) (move Move, consumed bool, ok bool) {
	if in != nil {
		if m, found := a.delta[Key{State: q, HasInput: true, Input: *in, Stack: stackTop}]; found {
			return m, true, true
		}
	}
	if m, found := a.delta[Key{State: q, HasInput: false, Stack: stackTop}]; found {
		return m, false, true
	}
	return Move{}, false, false
}

// InputValid reports whether every character of s is in Sigma, returning the
// column (rune index) of the first offender otherwise.
func (a *Automaton) InputValid(s string) (col int, ok bool) {
	for i, ch := range []rune(s) {
		if !a.S.Has(string(ch)) {
			return i, false
		}
	}
	return 0, true
}
