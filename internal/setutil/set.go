// Package setutil provides a small string set (with sorted rendering) used to hold the
// finite alphabets (states, input symbols, stack/tape symbols) that the
// automaton builders enforce invariants over.
package setutil

import (
	"sort"
	"strings"
)

// Set is an unordered collection of unique strings with the handful of
// set-algebra operations the automaton builders need to check containment
// and subset invariants (q0 in Q, F subset of Q, Sigma subset of Gamma, ...).
type Set map[string]struct{}

// New returns a Set containing the given elements.
func New(elements ...string) Set {
	s := make(Set, len(elements))
	for _, e := range elements {
		s.Add(e)
	}
	return s
}

// Add adds element to the set. No effect if it is already present.
func (s Set) Add(element string) {
	s[element] = struct{}{}
}

// Has returns whether element is in the set.
func (s Set) Has(element string) bool {
	_, ok := s[element]
	return ok
}

// Len returns the number of elements in the set.
func (s Set) Len() int {
	return len(s)
}

// Elements returns the set's contents in unspecified order.
func (s Set) Elements() []string {
	elems := make([]string, 0, len(s))
	for k := range s {
		elems = append(elems, k)
	}
	return elems
}

// Sorted returns the set's contents sorted alphabetically.
func (s Set) Sorted() []string {
	elems := s.Elements()
	sort.Strings(elems)
	return elems
}

// Subset returns whether every element of s is also in o.
func (s Set) Subset(o Set) bool {
	for k := range s {
		if !o.Has(k) {
			return false
		}
	}
	return true
}

// Equal returns whether s and o contain exactly the same elements.
func (s Set) Equal(o Set) bool {
	if len(s) != len(o) {
		return false
	}
	return s.Subset(o)
}

// SymmetricDifference returns the elements present in exactly one of s, o.
func (s Set) SymmetricDifference(o Set) Set {
	diff := make(Set)
	for k := range s {
		if !o.Has(k) {
			diff.Add(k)
		}
	}
	for k := range o {
		if !s.Has(k) {
			diff.Add(k)
		}
	}
	return diff
}

// StringOrdered renders the set as "{a, b, c}" with elements alphabetized, the
// form used in diagnostics so output is reproducible across runs.
func (s Set) StringOrdered() string {
	var sb strings.Builder
	sorted := s.Sorted()

	sb.WriteRune('{')
	for i, item := range sorted {
		sb.WriteString(item)
		if i+1 < len(sorted) {
			sb.WriteString(", ")
		}
	}
	sb.WriteRune('}')
	return sb.String()
}
