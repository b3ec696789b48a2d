package tm

import (
	"strconv"

	"github.com/ninefold/automatasim/internal/config"
	"github.com/ninefold/automatasim/internal/setutil"
)

var declItemsRef = setutil.New("N", "Q", "S", "G", "q0", "B", "F")

const nrTransItems = 5

// Build lifts raw machine-description text into a validated Automaton.
// Warnings are non-fatal diagnostics (currently just B != '_', spec.md §4.3)
// that the caller is expected to log (spec.md SPEC_FULL §6.2) rather than
// treat as construction failures.
func Build(text string) (a *Automaton, warnings []string, err error) {
	cfg, lexErr := config.Scan(text, nrTransItems)
	if lexErr != nil {
		return nil, nil, lexErr
	}

	present := setutil.New()
	for name := range cfg.Decls {
		present.Add(name)
	}
	if !present.Equal(declItemsRef) {
		return nil, nil, declItemError(present.SymmetricDifference(declItemsRef))
	}

	a = &Automaton{}

	if sErr := buildN(cfg, a); sErr != nil {
		return nil, nil, sErr
	}
	if sErr := buildQAndF(cfg, a); sErr != nil {
		return nil, nil, sErr
	}
	if sErr := buildAlphabets(cfg, a); sErr != nil {
		return nil, nil, sErr
	}
	if sErr := buildStartAndBlank(cfg, a); sErr != nil {
		return nil, nil, sErr
	}

	if !a.Q.Has(a.Q0) {
		return nil, nil, specErr(config.Position{}, ErrQ0NotInQ, "q0 %q is not in Q", a.Q0)
	}
	if !a.G.Has(string(a.B)) {
		return nil, nil, specErr(config.Position{}, ErrBNotInG, "B %q is not in G", string(a.B))
	}
	if !a.F.Subset(a.Q) {
		return nil, nil, specErr(config.Position{}, ErrFNotSubsetQ, "F is not a subset of Q")
	}
	if !a.S.Subset(a.G) {
		return nil, nil, specErr(config.Position{}, ErrSNotSubsetG, "Sigma is not a subset of Gamma")
	}

	if a.B != '_' {
		warnings = append(warnings, "the blank symbol B is '"+string(a.B)+"', not '_'")
	}

	if sErr := buildTransitions(cfg, a); sErr != nil {
		return nil, nil, sErr
	}

	return a, warnings, nil
}

func buildN(cfg *config.Config, a *Automaton) *SpecError {
	decl := cfg.Decls["N"]
	if !decl.Value.IsAtom() {
		return specErr(decl.Pos, ErrType, "N expects an atom value")
	}
	n, convErr := strconv.Atoi(decl.Value.Atom)
	if convErr != nil || n < 1 {
		return specErr(decl.Pos, ErrType, "N %q is not a positive integer", decl.Value.Atom)
	}
	a.N = n
	return nil
}

func validStateSet(pos config.Position, v config.Value) (setutil.Set, *SpecError) {
	if !v.IsSet() {
		return nil, specErr(pos, ErrType, "expected a set value")
	}
	for _, state := range v.Set.Elements() {
		for _, ch := range state {
			if !config.IsAtomChar(ch) {
				return nil, specErr(pos, ErrQChar, "state %q has invalid character %q", state, ch)
			}
		}
	}
	return v.Set, nil
}

func buildQAndF(cfg *config.Config, a *Automaton) *SpecError {
	qDecl := cfg.Decls["Q"]
	q, err := validStateSet(qDecl.Pos, qDecl.Value)
	if err != nil {
		return err
	}
	a.Q = q

	fDecl := cfg.Decls["F"]
	f, err := validStateSet(fDecl.Pos, fDecl.Value)
	if err != nil {
		return err
	}
	a.F = f
	return nil
}

// validSymbolSet enforces single-character symbols; underscore ('_') is
// forbidden in Sigma but allowed in Gamma (it is conventionally the blank).
func validSymbolSet(pos config.Position, v config.Value, allowUnderscore bool, underscoreKind SpecErrorKind) (setutil.Set, *SpecError) {
	if !v.IsSet() {
		return nil, specErr(pos, ErrType, "expected a set value")
	}
	symbols := setutil.New()
	for _, sym := range v.Set.Elements() {
		runes := []rune(sym)
		if len(runes) != 1 {
			return nil, specErr(pos, ErrMultiCharSymbol, "symbol %q is not a single character", sym)
		}
		ch := runes[0]
		if ch == '_' {
			if !allowUnderscore {
				return nil, specErr(pos, underscoreKind, "%q is not permitted in Sigma", ch)
			}
			symbols.Add(string(ch))
			continue
		}
		if !config.IsSymbolChar(ch) {
			return nil, specErr(pos, underscoreKind, "%q is not a valid symbol character", ch)
		}
		symbols.Add(string(ch))
	}
	return symbols, nil
}

func buildAlphabets(cfg *config.Config, a *Automaton) *SpecError {
	sDecl := cfg.Decls["S"]
	s, err := validSymbolSet(sDecl.Pos, sDecl.Value, false, ErrSChar)
	if err != nil {
		return err
	}
	a.S = s

	gDecl := cfg.Decls["G"]
	g, err := validSymbolSet(gDecl.Pos, gDecl.Value, true, ErrGChar)
	if err != nil {
		return err
	}
	a.G = g
	return nil
}

func buildStartAndBlank(cfg *config.Config, a *Automaton) *SpecError {
	q0Decl := cfg.Decls["q0"]
	if !q0Decl.Value.IsAtom() {
		return specErr(q0Decl.Pos, ErrType, "q0 expects an atom value")
	}
	a.Q0 = q0Decl.Value.Atom

	bDecl := cfg.Decls["B"]
	if !bDecl.Value.IsAtom() {
		return specErr(bDecl.Pos, ErrType, "B expects an atom value")
	}
	runes := []rune(bDecl.Value.Atom)
	if len(runes) != 1 {
		return specErr(bDecl.Pos, ErrMultiCharSymbol, "B %q is not a single character", bDecl.Value.Atom)
	}
	a.B = runes[0]
	return nil
}

func buildTransitions(cfg *config.Config, a *Automaton) *SpecError {
	for _, t := range cfg.Trans {
		q, readTok, writeTok, dirTok, p := t.Tokens[0], t.Tokens[1], t.Tokens[2], t.Tokens[3], t.Tokens[4]

		read, write, dirs := []rune(readTok), []rune(writeTok), []rune(dirTok)
		if len(read) != a.N || len(write) != a.N || len(dirs) != a.N {
			return specErr(t.Pos, ErrTtsLen, "read/write/direction must each have length %d", a.N)
		}
		if !a.Q.Has(q) {
			return specErr(t.Pos, ErrTInvalidState, "state %q is not in Q", q)
		}
		if !a.Q.Has(p) {
			return specErr(t.Pos, ErrTInvalidState, "state %q is not in Q", p)
		}

		directions := make([]Direction, a.N)
		for i, d := range dirs {
			dir, ok := directionFromChar(d)
			if !ok {
				return specErr(t.Pos, ErrTInvalidDirection, "direction %q is not one of l, r, *", d)
			}
			directions[i] = dir
		}

		for i := 0; i < a.N; i++ {
			r, w := read[i], write[i]
			if r != Wildcard && w == Wildcard {
				return specErr(t.Pos, ErrTGlob,
					"tape %d: wildcard write requires a wildcard read (read=%q, write=%q)", i, r, w)
			}
			for _, ch := range [2]rune{r, w} {
				if ch != Wildcard && !a.G.Has(string(ch)) {
					return specErr(t.Pos, ErrTInvalidSymbol, "%q is not in Gamma", ch)
				}
			}
		}

		a.delta = append(a.delta, Rule{
			State: q,
			Read:  read,
			Write: write,
			Dir:   directions,
			Next:  p,
		})
	}
	return nil
}
