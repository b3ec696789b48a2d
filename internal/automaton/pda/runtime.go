package pda

// SignalKind is the terminal outcome of a PDA run. Accept/Reject are design-
// level signals for loop termination (spec.md §9), not faults.
type SignalKind int

const (
	Accept SignalKind = iota
	Reject
)

// InvalidInputError reports that the supplied input string contains a
// character not in Sigma, at the given rune column. Raised before the first
// step (spec.md §4.5).
type InvalidInputError struct {
	Col int
}

func (e *InvalidInputError) Error() string {
	return "input character not in Sigma"
}

// State is the runtime state of a PDA run: current state, remaining input
// (head at front), and stack (top at front). Created per (machine, input)
// pair and discarded at termination.
type State struct {
	machine *Automaton
	Step    int
	Current string
	input   []rune
	stack   []rune
}

// New validates input against Sigma and builds the initial runtime state:
// q = q0, stack = [z0].
func New(a *Automaton, input string) (*State, error) {
	if col, ok := a.InputValid(input); !ok {
		return nil, &InvalidInputError{Col: col}
	}
	return &State{
		machine: a,
		Current: a.Q0,
		input:   []rune(input),
		stack:   []rune{a.Z0},
	}, nil
}

// Input returns the remaining input queue, head first.
func (s *State) Input() []rune { return append([]rune(nil), s.input...) }

// Stack returns the stack contents, top first.
func (s *State) Stack() []rune { return append([]rune(nil), s.stack...) }

// Step advances the simulation by one transition, per spec.md §4.5:
//  1. input empty and q in F -> Accept.
//  2. empty stack -> Reject.
//  3. look up (q, a, X), retrying with epsilon if a lookup with a concrete
//     symbol misses.
//  4. no rule -> Reject; else pop X, push beta, transition to p, and consume
//     the input symbol iff the matched rule was input-consuming.
//
// Returns terminal == true once a terminal signal has been produced; the
// signal itself is never a fault.
func (s *State) Step() (signal SignalKind, terminal bool) {
	if len(s.input) == 0 && s.machine.F.Has(s.Current) {
		return Accept, true
	}

	if len(s.stack) == 0 {
		return Reject, true
	}
	stackTop := s.stack[0]

	var headPtr *rune
	if len(s.input) > 0 {
		headPtr = &s.input[0]
	}

	move, consumed, ok := s.machine.Get(s.Current, headPtr, stackTop)
	if !ok {
		return Reject, true
	}

	s.stack = append(append([]rune{}, move.Push...), s.stack[1:]...)
	s.Current = move.State
	if consumed {
		s.input = s.input[1:]
	}
	s.Step++
	return 0, false
}
