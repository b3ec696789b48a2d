package trace

import (
	"strings"
	"testing"

	"github.com/ninefold/automatasim/internal/automaton/tm"
	"github.com/stretchr/testify/assert"
)

func Test_PDASnapshot(t *testing.T) {
	out := PDASnapshot(3, "q1", []rune("bb"), []rune("AZ"))
	assert.Contains(t, out, "Step : 3")
	assert.Contains(t, out, "State: q1")
	assert.Contains(t, out, "Input: bb")
	assert.Contains(t, out, "Stack: AZ")
}

func Test_TMSnapshot_aligns_index_tape_head(t *testing.T) {
	tapes := []tm.Tape{
		{
			Cells: []rune{'_', 'a', 'b'},
			Head:  tm.Head{Logical: 0, Offset: 1},
		},
	}
	out := TMSnapshot(2, "scan", tapes)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, "Step   : 2", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Index0 : "))
	assert.True(t, strings.HasPrefix(lines[2], "Tape0  : "))
	assert.True(t, strings.HasPrefix(lines[3], "Head0  : "))
	assert.Equal(t, "State  : scan", lines[4])

	// the head row's caret must land directly under the tape cell at
	// offset 1 ('a').
	headLine := lines[3]
	caretCol := strings.IndexByte(headLine, '^')
	tapeLine := lines[2]
	assert.Equal(t, byte('a'), tapeLine[caretCol])
}

func Test_WrapDiagnostic_wraps_long_text(t *testing.T) {
	long := strings.Repeat("word ", 40)
	out := WrapDiagnostic(long)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(line), diagnosticWrapWidth)
	}
}
