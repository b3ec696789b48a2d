package config

import (
	"testing"

	"github.com/ninefold/automatasim/internal/setutil"
	"github.com/stretchr/testify/assert"
)

func Test_Scan_decls(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect map[string]Value
	}{
		{
			name:  "atom value",
			input: "#q0 = start",
			expect: map[string]Value{
				"q0": {Kind: KindAtom, Atom: "start"},
			},
		},
		{
			name:  "set value",
			input: "#Q = { q0, q1, qf }",
			expect: map[string]Value{
				"Q": {Kind: KindSet, Set: setutil.New("q0", "q1", "qf")},
			},
		},
		{
			name:  "comment stripped",
			input: "#q0 = start ; this is the initial state",
			expect: map[string]Value{
				"q0": {Kind: KindAtom, Atom: "start"},
			},
		},
		{
			name: "blank lines and whitespace ignored",
			input: "\n   \n#q0 = start\n\n",
			expect: map[string]Value{
				"q0": {Kind: KindAtom, Atom: "start"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Scan(tc.input, 5)
			if !assert.Nil(t, err) {
				return
			}
			for name, expectVal := range tc.expect {
				decl, ok := cfg.Decls[name]
				if !assert.True(t, ok, "missing decl %q", name) {
					continue
				}
				assert.Equal(t, expectVal.Kind, decl.Value.Kind)
				assert.Equal(t, expectVal.Atom, decl.Value.Atom)
				assert.Equal(t, expectVal.Set, decl.Value.Set)
			}
		})
	}
}

func Test_Scan_transitions(t *testing.T) {
	cfg, err := Scan("q0 a X q1 AZ", 5)
	if !assert.Nil(t, err) {
		return
	}
	if !assert.Len(t, cfg.Trans, 1) {
		return
	}
	assert.Equal(t, []string{"q0", "a", "X", "q1", "AZ"}, cfg.Trans[0].Tokens)
}

func Test_Scan_errors(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		expectKind Kind
	}{
		{name: "missing equals", input: "#q0 start", expectKind: KindKVUnknown},
		{name: "unclosed set brace", input: "#Q = { q0, q1", expectKind: KindKVSet},
		{name: "invalid set item char", input: "#Q = { q0, q 1 }", expectKind: KindKVSet},
		{name: "invalid atom char", input: "#q0 = sta-rt", expectKind: KindKVAtom},
		{name: "wrong transition token count", input: "q0 a X q1", expectKind: KindTrans},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Scan(tc.input, 5)
			if !assert.NotNil(t, err) {
				return
			}
			assert.Equal(t, tc.expectKind, err.Kind)
		})
	}
}

func Test_PositionedError_FullMessage(t *testing.T) {
	_, err := Scan("q0 a X q1", 5)
	if !assert.NotNil(t, err) {
		return
	}
	full := err.FullMessage()
	assert.Contains(t, full, "q0 a X q1")
	assert.Contains(t, full, "^")
}
