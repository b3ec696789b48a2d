package tm

import (
	"fmt"
	"strings"

	"github.com/ninefold/automatasim/internal/config"
	"github.com/ninefold/automatasim/internal/setutil"
)

// SpecErrorKind names the spec-validation error taxonomy of spec.md §7 for
// TM construction, including the TM-only TGlob (wildcard write without
// wildcard read).
type SpecErrorKind int

const (
	ErrDeclItem SpecErrorKind = iota
	ErrType
	ErrMultiCharSymbol
	ErrQChar
	ErrSChar
	ErrGChar
	ErrFNotSubsetQ
	ErrSNotSubsetG
	ErrQ0NotInQ
	ErrBNotInG
	ErrTLen
	ErrTtsLen
	ErrTInvalidState
	ErrTInvalidSymbol
	ErrTInvalidDirection
	ErrTGlob
)

func (k SpecErrorKind) String() string {
	switch k {
	case ErrDeclItem:
		return "DeclItem"
	case ErrType:
		return "Type"
	case ErrMultiCharSymbol:
		return "MultiCharSymbol"
	case ErrQChar:
		return "QChar"
	case ErrSChar:
		return "SChar"
	case ErrGChar:
		return "GChar"
	case ErrFNotSubsetQ:
		return "FNotSubsetQ"
	case ErrSNotSubsetG:
		return "SNotSubsetG"
	case ErrQ0NotInQ:
		return "q0NotInQ"
	case ErrBNotInG:
		return "BNotInG"
	case ErrTLen:
		return "TLen"
	case ErrTtsLen:
		return "TtsLen"
	case ErrTInvalidState:
		return "TInvalidState"
	case ErrTInvalidSymbol:
		return "TInvalidSymbol"
	case ErrTInvalidDirection:
		return "TInvalidDirection"
	case ErrTGlob:
		return "TGlob"
	default:
		return "Unknown"
	}
}

// SpecError is a cross-field or shape violation detected while lifting a
// config.Config into an Automaton.
type SpecError struct {
	Pos  config.Position
	Kind SpecErrorKind
	Msg  string
}

func (e *SpecError) Error() string {
	if e.Pos.Raw == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: line %d, col %d: %s", e.Kind, e.Pos.Row+1, e.Pos.Col+1, e.Msg)
}

func specErr(pos config.Position, kind SpecErrorKind, format string, a ...interface{}) *SpecError {
	return &SpecError{Pos: pos, Kind: kind, Msg: fmt.Sprintf(format, a...)}
}

func declItemError(diff setutil.Set) *SpecError {
	return specErr(config.Position{}, ErrDeclItem,
		"declaration set differs from {N, Q, S, G, q0, B, F} by %s", oxfordJoin(diff.Sorted()))
}

// oxfordJoin renders names as a comma-joined, oxford-comma'd English list
// ("a", "a and b", "a, b, and c") for the declaration-set diff message above.
func oxfordJoin(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		names[len(names)-1] = "and " + names[len(names)-1]
		return strings.Join(names, ", ")
	}
}
