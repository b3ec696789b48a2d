// Package dfa is a deliberately minimal stub for deterministic finite
// automata. spec.md §1 lists a DFA stub among the system's external
// collaborators — out of scope for this tool's core, present only so the
// driver has a named (if unimplemented) third machine kind to dispatch to
// alongside .pda and .tm.
//
// Grounded on original_source/src/automata/mod.rs's "pub mod dfa;" — the
// Rust original carries the same placeholder module with no behavior wired
// to main.rs.
package dfa

import "errors"

// ErrNotImplemented is returned by Build for any DFA description; the
// simulator does not support the ".dfa" machine kind.
var ErrNotImplemented = errors.New("dfa: machine kind not implemented")

// Automaton is an intentionally empty placeholder for a future (Q, Sigma,
// delta, q0, F) 5-tuple.
type Automaton struct{}

// Build always fails: no DFA lexer, builder, or runtime exists yet.
func Build(_ string) (*Automaton, error) {
	return nil, ErrNotImplemented
}
