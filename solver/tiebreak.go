package solver

import (
	"math/rand"

	"github.com/rpsvision/minusone/gestures"
)

// TieBreak picks one gesture from a non-empty candidate list. It is the
// policy behind every arbitrary-choice branch of the removal rule, injected
// at construction so tests can pin it down.
type TieBreak func([]gestures.Gesture) gestures.Gesture

// FirstTieBreak always picks the first candidate. Deterministic.
func FirstTieBreak(candidates []gestures.Gesture) gestures.Gesture {
	return candidates[0]
}

// RandTieBreak picks uniformly from the candidates using the given source.
func RandTieBreak(r *rand.Rand) TieBreak {
	return func(candidates []gestures.Gesture) gestures.Gesture {
		return candidates[r.Intn(len(candidates))]
	}
}
