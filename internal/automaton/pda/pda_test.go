package pda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// balancedAnBnSource is spec.md §8 scenario S1.
const balancedAnBnSource = `
#Q = { q0, q1, qf }
#S = { a, b }
#G = { Z, A }
#q0 = q0
#z0 = Z
#F = { qf }

q0 a Z q0 AZ
q0 a A q0 AA
q0 b A q1 _
q1 b A q1 _
q1 _ Z qf Z
`

func runToTerminal(t *testing.T, a *Automaton, input string) SignalKind {
	t.Helper()
	st, err := New(a, input)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	for {
		sig, terminal := st.Step()
		if terminal {
			return sig
		}
	}
}

func Test_S1_balanced_anbn(t *testing.T) {
	a, err := Build(balancedAnBnSource)
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	assert.Equal(t, Accept, runToTerminal(t, a, "aaabbb"))
	assert.Equal(t, Reject, runToTerminal(t, a, "aabbb"))
}

func Test_empty_input_accept_iff_in_F(t *testing.T) {
	a, err := Build(balancedAnBnSource)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	// q0 is not in F, so empty input rejects immediately: the stack still
	// holds Z and no rule matches (q0, epsilon, Z).
	assert.Equal(t, Reject, runToTerminal(t, a, ""))
}

func Test_invalid_input_symbol(t *testing.T) {
	a, err := Build(balancedAnBnSource)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	_, err = New(a, "aXb")
	if !assert.Error(t, err) {
		t.FailNow()
	}
	invErr, ok := err.(*InvalidInputError)
	if !assert.True(t, ok) {
		t.FailNow()
	}
	assert.Equal(t, 1, invErr.Col)
}

func Test_Build_missing_declaration(t *testing.T) {
	_, err := Build(`
#Q = { q0 }
#S = { a }
#G = { Z }
#q0 = q0
#F = { }
`)
	if !assert.Error(t, err) {
		t.FailNow()
	}
	specErr, ok := err.(*SpecError)
	if !assert.True(t, ok) {
		t.FailNow()
	}
	assert.Equal(t, ErrDeclItem, specErr.Kind)
}

func Test_exact_match_precedence_over_epsilon(t *testing.T) {
	src := `
#Q = { q0, qf }
#S = { a }
#G = { Z }
#q0 = q0
#z0 = Z
#F = { qf }

q0 a Z qf _
q0 _ Z q0 _
`
	a, err := Build(src)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	// both an 'a'-labelled and an epsilon-labelled rule exist for (q0, Z);
	// the 'a'-labelled rule must win.
	assert.Equal(t, Accept, runToTerminal(t, a, "a"))
}
