package pda

import (
	"github.com/ninefold/automatasim/internal/config"
	"github.com/ninefold/automatasim/internal/setutil"
)

var declItemsRef = setutil.New("Q", "S", "G", "q0", "z0", "F")

const nrTransItems = 5

// Build lifts raw machine-description text into a validated Automaton,
// enforcing spec.md §4.2's invariants in order: exact declaration-set
// equality, per-field shape/character-class checks, then the cross-field
// checks q0 in Q, z0 in Gamma, F subset of Q, before lifting transitions.
func Build(text string) (*Automaton, error) {
	cfg, lexErr := config.Scan(text, nrTransItems)
	if lexErr != nil {
		return nil, lexErr
	}

	present := setutil.New()
	for name := range cfg.Decls {
		present.Add(name)
	}
	if !present.Equal(declItemsRef) {
		return nil, declItemError(present.SymmetricDifference(declItemsRef))
	}

	a := &Automaton{delta: make(map[Key]Move)}

	if err := buildQAndF(cfg, a); err != nil {
		return nil, err
	}
	if err := buildAlphabets(cfg, a); err != nil {
		return nil, err
	}
	if err := buildStartAndZ0(cfg, a); err != nil {
		return nil, err
	}

	if !a.Q.Has(a.Q0) {
		return nil, specErr(config.Position{}, ErrQ0NotInQ, "q0 %q is not in Q", a.Q0)
	}
	if !a.G.Has(string(a.Z0)) {
		return nil, specErr(config.Position{}, ErrZ0NotInG, "z0 %q is not in G", string(a.Z0))
	}
	if !a.F.Subset(a.Q) {
		return nil, specErr(config.Position{}, ErrFNotSubsetQ, "F is not a subset of Q")
	}

	if err := buildTransitions(cfg, a); err != nil {
		return nil, err
	}

	return a, nil
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

func validSymbolSet(pos config.Position, v config.Value, allowUnderscore bool) (setutil.Set, *SpecError) {
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
		if !config.IsSymbolChar(ch) || (!allowUnderscore && ch == '_') {
			return nil, specErr(pos, ErrGChar, "%q is not a valid symbol character", ch)
		}
		symbols.Add(string(ch))
	}
	return symbols, nil
}

func buildAlphabets(cfg *config.Config, a *Automaton) *SpecError {
	sDecl := cfg.Decls["S"]
	s, err := validSymbolSet(sDecl.Pos, sDecl.Value, false)
	if err != nil {
		return err
	}
	a.S = s

	gDecl := cfg.Decls["G"]
	g, err := validSymbolSet(gDecl.Pos, gDecl.Value, false)
	if err != nil {
		return err
	}
	a.G = g
	return nil
}

func buildStartAndZ0(cfg *config.Config, a *Automaton) *SpecError {
	q0Decl := cfg.Decls["q0"]
	if !q0Decl.Value.IsAtom() {
		return specErr(q0Decl.Pos, ErrType, "q0 expects an atom value")
	}
	a.Q0 = q0Decl.Value.Atom

	z0Decl := cfg.Decls["z0"]
	if !z0Decl.Value.IsAtom() {
		return specErr(z0Decl.Pos, ErrType, "z0 expects an atom value")
	}
	runes := []rune(z0Decl.Value.Atom)
	if len(runes) != 1 {
		return specErr(z0Decl.Pos, ErrMultiCharSymbol, "z0 %q is not a single character", z0Decl.Value.Atom)
	}
	a.Z0 = runes[0]
	return nil
}

func buildTransitions(cfg *config.Config, a *Automaton) *SpecError {
	for _, t := range cfg.Trans {
		q, aTok, X, p, beta := t.Tokens[0], t.Tokens[1], t.Tokens[2], t.Tokens[3], t.Tokens[4]

		if !a.Q.Has(q) {
			return specErr(t.Pos, ErrTInvalidState, "state %q is not in Q", q)
		}
		if !a.Q.Has(p) {
			return specErr(t.Pos, ErrTInvalidState, "state %q is not in Q", p)
		}

		aRunes, Xrunes := []rune(aTok), []rune(X)
		if len(aRunes) != 1 {
			return specErr(t.Pos, ErrMultiCharSymbol, "input symbol %q is not a single character", aTok)
		}
		if len(Xrunes) != 1 {
			return specErr(t.Pos, ErrMultiCharSymbol, "stack symbol %q is not a single character", X)
		}

		key := Key{State: q, Stack: Xrunes[0]}
		if aRunes[0] == '_' {
			key.HasInput = false
		} else {
			if !a.S.Has(aTok) {
				return specErr(t.Pos, ErrTInvalidSymbol, "input symbol %q is not in Sigma", aTok)
			}
			key.HasInput = true
			key.Input = aRunes[0]
		}
		if Xrunes[0] == '_' || !a.G.Has(X) {
			return specErr(t.Pos, ErrTInvalidSymbol, "stack symbol %q is not in Gamma", X)
		}

		var push []rune
		if beta != "_" {
			for _, ch := range beta {
				if !a.G.Has(string(ch)) {
					return specErr(t.Pos, ErrTInvalidSymbol, "push symbol %q is not in Gamma", ch)
				}
				push = append(push, ch)
			}
		}

		// Duplicate keys collapse; the later declaration wins (spec.md §4.2,
		// §9 — implementations MAY warn, this one does not, matching
		// original_source/src/pda.rs's silent HashMap::insert).
		a.delta[key] = Move{State: p, Push: push}
	}
	return nil
}
