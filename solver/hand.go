// Package solver - Assigns detected gestures to players and decides which
// hand to retract under the RPS-Minus-One rule set.
package solver

import (
	"sort"

	"github.com/rpsvision/minusone/detect"
	"github.com/rpsvision/minusone/gestures"
)

// Player identifies whose hand a detection belongs to.
type Player string

const (
	// PlayerSelf is the player in the lower half of the frame.
	PlayerSelf Player = "self"
	// PlayerOpponent is the player in the upper half of the frame.
	PlayerOpponent Player = "opponent"
)

// Side is the physical side of one of the player's own hands. Opponent
// hands never receive a side.
type Side string

const (
	// SideNone marks a hand without a side assignment.
	SideNone Side = ""
	// SideLeft is the player's leftmost hand in the frame.
	SideLeft Side = "left"
	// SideRight is the player's rightmost hand in the frame.
	SideRight Side = "right"
)

// Hand is a detection enriched with its game role.
type Hand struct {
	Gesture gestures.Gesture
	XCenter float32
	YCenter float32
	Player  Player
	Side    Side
}

// Classified is the outcome of partitioning hands between the two players.
// Both groups are sorted by XCenter ascending for deterministic ordering.
type Classified struct {
	Self     []Hand
	Opponent []Hand
}

// HandsFromResult converts a detection batch into hands, discarding any
// detection whose class ID is outside the gesture map.
func (s *Solver) HandsFromResult(res *detect.Result) []Hand {
	hands := make([]Hand, 0, len(res.Detections))
	for _, d := range res.Detections {
		g, ok := s.cfg.Classes.Lookup(d.ClassID)
		if !ok {
			continue
		}
		hands = append(hands, Hand{
			Gesture: g,
			XCenter: d.XCenter,
			YCenter: d.YCenter,
		})
	}
	return hands
}

// Classify partitions hands by the vertical split (the opponent appears in
// the upper half of the frame under the fixed camera convention) and labels
// the player's two leftmost-first hands LEFT and RIGHT. With fewer than two
// self hands, sides stay unset. No side effect beyond the annotations on
// the returned copies.
func (s *Solver) Classify(hands []Hand) Classified {
	var cl Classified
	for _, h := range hands {
		if h.YCenter < s.cfg.YSplit {
			h.Player = PlayerOpponent
			cl.Opponent = append(cl.Opponent, h)
		} else {
			h.Player = PlayerSelf
			cl.Self = append(cl.Self, h)
		}
	}

	sort.Slice(cl.Self, func(i, j int) bool {
		return cl.Self[i].XCenter < cl.Self[j].XCenter
	})
	sort.Slice(cl.Opponent, func(i, j int) bool {
		return cl.Opponent[i].XCenter < cl.Opponent[j].XCenter
	})

	if len(cl.Self) >= 2 {
		cl.Self[0].Side = SideLeft
		cl.Self[1].Side = SideRight
	}
	return cl
}
