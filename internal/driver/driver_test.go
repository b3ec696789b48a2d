package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ninefold/automatasim/internal/runcfg"
	"github.com/stretchr/testify/assert"
)

// balancedAnBnSource is spec.md §8 scenario S1 (see internal/automaton/pda's
// copy of the same source).
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

func writeTemp(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func Test_KindForPath(t *testing.T) {
	k, err := KindForPath("machine.PDA")
	assert.NoError(t, err)
	assert.Equal(t, KindPDA, k)

	k, err = KindForPath("machine.tm")
	assert.NoError(t, err)
	assert.Equal(t, KindTM, k)

	_, err = KindForPath("machine.txt")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func Test_Load_and_Run_PDA(t *testing.T) {
	path := writeTemp(t, "anbn.pda", balancedAnBnSource)

	m, warnings, err := Load(path)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	assert.Empty(t, warnings)
	assert.Equal(t, KindPDA, m.Kind)

	result, err := Run(m, "aaabbb", runcfg.Default(), false)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	assert.True(t, result.Accepted)
}

func Test_Run_verbose_populates_trace(t *testing.T) {
	path := writeTemp(t, "anbn.pda", balancedAnBnSource)
	m, _, err := Load(path)
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	result, err := Run(m, "ab", runcfg.Default(), true)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	assert.NotEmpty(t, result.Trace)
}

func Test_Run_step_ceiling_exceeded(t *testing.T) {
	path := writeTemp(t, "anbn.pda", balancedAnBnSource)
	m, _, err := Load(path)
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	cfg := runcfg.Default()
	cfg.Run.StepCeiling = 1
	_, err = Run(m, "aaabbb", cfg, false)
	assert.ErrorIs(t, err, ErrStepCeilingExceeded)
}

func Test_Load_unknown_extension(t *testing.T) {
	path := writeTemp(t, "machine.foo", "")
	_, _, err := Load(path)
	assert.ErrorIs(t, err, ErrUnknownKind)
}
