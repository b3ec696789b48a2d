package setutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Set_Subset(t *testing.T) {
	testCases := []struct {
		name   string
		s      Set
		o      Set
		expect bool
	}{
		{
			name:   "empty set is subset of anything",
			s:      New(),
			o:      New("a", "b"),
			expect: true,
		},
		{
			name:   "equal sets are subsets of each other",
			s:      New("a", "b"),
			o:      New("b", "a"),
			expect: true,
		},
		{
			name:   "missing element fails",
			s:      New("a", "c"),
			o:      New("a", "b"),
			expect: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.s.Subset(tc.o))
		})
	}
}

func Test_Set_Equal(t *testing.T) {
	assert.True(t, New("a", "b", "c").Equal(New("c", "b", "a")))
	assert.False(t, New("a", "b").Equal(New("a", "b", "c")))
}

func Test_Set_SymmetricDifference(t *testing.T) {
	diff := New("a", "b", "c").SymmetricDifference(New("b", "c", "d"))
	assert.Equal(t, New("a", "d"), diff)
}

func Test_Set_StringOrdered(t *testing.T) {
	assert.Equal(t, "{a, b, c}", New("c", "a", "b").StringOrdered())
	assert.Equal(t, "{}", New().StringOrdered())
}
