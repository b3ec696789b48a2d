package config

import "github.com/ninefold/automatasim/internal/setutil"

// ValueKind distinguishes the two declared-value shapes the lexer recognizes.
type ValueKind int

const (
	// KindAtom is a bare alphanumeric/'_' token, e.g. "#q0 = start".
	KindAtom ValueKind = iota
	// KindSet is a brace-delimited, comma-separated item list, e.g.
	// "#Q = { q0, q1, qf }".
	KindSet
)

// Value is the parsed right-hand side of a "#NAME = VALUE" declaration.
type Value struct {
	Kind ValueKind
	Atom string
	Set  setutil.Set
}

// IsAtom reports whether the value was declared in atom form.
func (v Value) IsAtom() bool { return v.Kind == KindAtom }

// IsSet reports whether the value was declared in set form.
func (v Value) IsSet() bool { return v.Kind == KindSet }
