package repl

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ninefold/automatasim/internal/driver"
	"github.com/ninefold/automatasim/internal/runcfg"
	"github.com/stretchr/testify/assert"
)

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

func loadTestMachine(t *testing.T) *driver.Machine {
	t.Helper()
	path := filepath.Join(t.TempDir(), "anbn.pda")
	if err := os.WriteFile(path, []byte(balancedAnBnSource), 0o644); err != nil {
		t.Fatalf("write temp machine: %v", err)
	}
	m, _, err := driver.Load(path)
	if err != nil {
		t.Fatalf("load machine: %v", err)
	}
	return m
}

func Test_Session_Run_reads_until_quit(t *testing.T) {
	m := loadTestMachine(t)
	in := strings.NewReader("aaabbb\naabbb\n" + QuitCommand + "\n")
	var out bytes.Buffer

	session := NewDirect(m, runcfg.Default(), false, in, &out)
	if err := session.Run(""); !assert.NoError(t, err) {
		t.FailNow()
	}

	text := out.String()
	assert.Contains(t, text, "true")
	assert.Contains(t, text, "false")
	assert.Contains(t, text, "Goodbye")
}

func Test_Session_Run_stops_on_EOF(t *testing.T) {
	m := loadTestMachine(t)
	in := strings.NewReader("aaabbb\n")
	var out bytes.Buffer

	session := NewDirect(m, runcfg.Default(), false, in, &out)
	if err := session.Run(""); !assert.NoError(t, err) {
		t.FailNow()
	}

	assert.Contains(t, out.String(), "Goodbye")
}

func Test_Session_Run_runs_first_input_before_prompting(t *testing.T) {
	m := loadTestMachine(t)
	in := strings.NewReader(QuitCommand + "\n")
	var out bytes.Buffer

	session := NewDirect(m, runcfg.Default(), false, in, &out)
	if err := session.Run("aaabbb"); !assert.NoError(t, err) {
		t.FailNow()
	}

	assert.Contains(t, out.String(), "true")
}
