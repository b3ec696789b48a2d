// Package tm implements the TM Builder, Matcher, and TM Runtime (spec.md
// §3, §4.3, §4.4, §4.6): lifting a config.Config into a validated
// TuringMachine 7-tuple, matching transitions against an N-tuple of tape
// symbols with wildcard semantics, and simulating the machine over N
// bidirectionally-infinite tapes.
//
// Grounded on original_source/src/automata/tm.rs and src/exec.rs: the
// matcher's read/write wildcard table and the tape trim rules follow that
// source exactly.
package tm

import "github.com/ninefold/automatasim/internal/setutil"

// Wildcard is the TM transition placeholder: a match-any-non-blank on the
// read side, an identity ("keep what was read") on the write side.
const Wildcard = '*'

// Direction is one of Left, Right, Stay — the per-tape head movement a rule
// specifies.
type Direction int

const (
	Left Direction = iota
	Right
	Stay
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "l"
	case Right:
		return "r"
	case Stay:
		return "*"
	default:
		return "?"
	}
}

// directionFromChar maps spec.md §4.3's transition direction characters
// {l, r, *} to a Direction.
func directionFromChar(c rune) (Direction, bool) {
	switch c {
	case 'l':
		return Left, true
	case 'r':
		return Right, true
	case '*':
		return Stay, true
	default:
		return 0, false
	}
}

// Rule is one ordered delta entry: a state and an N-tuple of read symbols on
// the left, an N-tuple of write symbols, an N-tuple of directions, and a
// next state on the right. Read/write entries are either Wildcard or a
// member of Gamma.
type Rule struct {
	State string
	Read  []rune
	Write []rune
	Dir   []Direction
	Next  string
}

// Automaton is the validated 7-tuple (Q, Sigma, Gamma, q0, B, F, delta)
// together with the tape count N.
// delta is a slice, not a map: rule order is semantically significant
// (spec.md §4.4, §9) because wildcard and concrete rules may both match the
// same observation, and declaration order resolves the ambiguity.
type Automaton struct {
	N  int
	Q  setutil.Set
	S  setutil.Set
	G  setutil.Set
	Q0 string
	B  rune
	F  setutil.Set

	delta []Rule
}

// InputValid reports whether every character of s is in Sigma, returning the
// rune offset of the first offender otherwise.
func (a *Automaton) InputValid(s string) (offset int, ok bool) {
	for i, ch := range []rune(s) {
		if !a.S.Has(string(ch)) {
			return i, false
		}
	}
	return 0, true
}
