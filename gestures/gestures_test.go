package gestures

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestBeatsCycle verifies that the win relation forms a strict 3-cycle:
// for every pair of distinct gestures exactly one direction wins, and no
// gesture beats itself.
func TestBeatsCycle(t *testing.T) {
	all := []Gesture{Rock, Paper, Scissors}

	for _, a := range all {
		assert.False(t, Beats(a, a), "Beats(%s, %s) must be false", a, a)
	}

	for _, a := range all {
		for _, b := range all {
			if a == b {
				continue
			}
			forward := Beats(a, b)
			backward := Beats(b, a)
			assert.NotEqual(t, forward, backward,
				"exactly one of Beats(%s,%s) and Beats(%s,%s) must hold", a, b, b, a)
		}
	}
}

func TestBeatsPairs(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Gesture
		expect bool
	}{
		{"rock beats scissors", Rock, Scissors, true},
		{"scissors beats paper", Scissors, Paper, true},
		{"paper beats rock", Paper, Rock, true},
		{"scissors does not beat rock", Scissors, Rock, false},
		{"paper does not beat scissors", Paper, Scissors, false},
		{"rock does not beat paper", Rock, Paper, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, Beats(tt.a, tt.b))
		})
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Rock.Valid())
	assert.True(t, Paper.Valid())
	assert.True(t, Scissors.Valid())
	assert.False(t, Gesture("lizard").Valid())
	assert.False(t, Gesture("").Valid())
}

func TestClassMapLookup(t *testing.T) {
	m := DefaultClassMap()

	g, ok := m.Lookup(0)
	assert.True(t, ok)
	assert.Equal(t, Rock, g)

	g, ok = m.Lookup(2)
	assert.True(t, ok)
	assert.Equal(t, Scissors, g)

	// IDs outside the map are discarded by callers.
	_, ok = m.Lookup(7)
	assert.False(t, ok)
}
