// Package gestures - The rock/paper/scissors alphabet and its win relation.
package gestures

// Gesture is one of the three playable hand signs.
type Gesture string

const (
	// Rock beats scissors.
	Rock Gesture = "rock"
	// Paper beats rock.
	Paper Gesture = "paper"
	// Scissors beats paper.
	Scissors Gesture = "scissors"
)

// Valid reports whether g is one of the three known gestures.
func (g Gesture) Valid() bool {
	return g == Rock || g == Paper || g == Scissors
}

// Beats reports whether a wins against b. The relation is cyclic and
// irreflexive: for any two distinct gestures exactly one beats the other,
// and no gesture beats itself.
func Beats(a, b Gesture) bool {
	return (a == Rock && b == Scissors) ||
		(a == Scissors && b == Paper) ||
		(a == Paper && b == Rock)
}

// ClassMap maps detector class IDs to gestures. Built explicitly and passed
// into callers rather than read from package state, so the ID layout of a
// particular model stays a construction-time decision.
type ClassMap map[int]Gesture

// DefaultClassMap returns the class layout of the bundled gesture model.
func DefaultClassMap() ClassMap {
	return ClassMap{
		0: Rock,
		1: Paper,
		2: Scissors,
	}
}

// Lookup resolves a class ID. The second return is false for IDs outside
// the map; callers discard those detections.
func (m ClassMap) Lookup(classID int) (Gesture, bool) {
	g, ok := m[classID]
	return g, ok
}
