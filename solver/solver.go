package solver

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/rpsvision/minusone/gestures"
)

// Config for the solver. Immutable after construction; what the original
// tool kept as ambient globals (class map, frame split) lives here instead.
type Config struct {
	// Classes maps detector class IDs to gestures.
	Classes gestures.ClassMap
	// YSplit is the normalized vertical line separating the opponent's
	// hands (above) from the player's own (below).
	YSplit float32
	// TieBreak resolves the arbitrary-choice branches of the removal rule.
	TieBreak TieBreak
}

// DefaultConfig returns the fixed camera-framing convention and a
// deterministic tie-break.
func DefaultConfig() Config {
	return Config{
		Classes:  gestures.DefaultClassMap(),
		YSplit:   0.5,
		TieBreak: FirstTieBreak,
	}
}

// Solver orchestrates classification and removal for one game image.
type Solver struct {
	cfg Config
}

// New builds a Solver from cfg.
func New(cfg Config) *Solver {
	return &Solver{cfg: cfg}
}

// CountError reports a hand count that does not form a valid game state.
// A valid state needs exactly two hands per player; anything else is an
// input problem, not a game to solve.
type CountError struct {
	Self     int
	Opponent int
}

func (e *CountError) Error() string {
	return fmt.Sprintf("detected %d opponent hand(s) and %d of your hand(s); need two of each",
		e.Opponent, e.Self)
}

// Verdict is the solved instruction for one game image.
type Verdict struct {
	// Left and Right are the player's own gestures by physical side.
	Left  gestures.Gesture
	Right gestures.Gesture
	// Opponent gestures, left to right in the frame.
	Opponent [2]gestures.Gesture
	// Removal is the gesture the player must retract.
	Removal gestures.Gesture
	// RetractSide is the physical hand showing that gesture.
	RetractSide Side
	// Warning is non-empty when the removal rule degraded to an
	// arbitrary fallback on invalid input.
	Warning string
}

// Solve verifies the game state, applies the removal rule and maps the
// result back to a physical hand.
//
// Arguments:
//   - hands: Unclassified hands from one detection batch.
//
// Returns:
//   - *Verdict: The instruction, when a valid game state was found.
//   - error: A *CountError on hand-count mismatch, or a logic error when
//     the removal gesture matches neither physical hand (unreachable while
//     Remove draws from mine).
func (s *Solver) Solve(hands []Hand) (*Verdict, error) {
	cl := s.Classify(hands)
	if len(cl.Self) != 2 || len(cl.Opponent) != 2 {
		return nil, &CountError{Self: len(cl.Self), Opponent: len(cl.Opponent)}
	}

	// cl.Self is sorted by XCenter: index 0 is LEFT, 1 is RIGHT.
	mine := [2]gestures.Gesture{cl.Self[0].Gesture, cl.Self[1].Gesture}
	opponent := [2]gestures.Gesture{cl.Opponent[0].Gesture, cl.Opponent[1].Gesture}

	removal, warning := s.Remove(mine, opponent)

	var side Side
	switch removal {
	// When both hands show the removal gesture, LEFT wins the tie-break.
	case mine[0]:
		side = SideLeft
	case mine[1]:
		side = SideRight
	default:
		return nil, errors.Errorf(
			"logic error: no physical hand matches removal gesture %q", removal)
	}

	return &Verdict{
		Left:        mine[0],
		Right:       mine[1],
		Opponent:    opponent,
		Removal:     removal,
		RetractSide: side,
		Warning:     warning,
	}, nil
}

// Report renders the verdict as the multi-line instruction printed to the
// player.
func (v *Verdict) Report() string {
	var b strings.Builder
	b.WriteString("--- Game Analysis ---\n")
	fmt.Fprintf(&b, "Your hands: %s (left), %s (right)\n", title(v.Left), title(v.Right))
	fmt.Fprintf(&b, "Opponent's hands: %s, %s\n", title(v.Opponent[0]), title(v.Opponent[1]))
	if v.Warning != "" {
		fmt.Fprintf(&b, "WARNING: %s\n", v.Warning)
	}
	fmt.Fprintf(&b, "Remove: %s\n", title(v.Removal))
	fmt.Fprintf(&b, "ACTION: retract your %s hand.", strings.ToUpper(string(v.RetractSide)))
	return b.String()
}

func title(g gestures.Gesture) string {
	if g == "" {
		return ""
	}
	return strings.ToUpper(string(g[:1])) + string(g[1:])
}
