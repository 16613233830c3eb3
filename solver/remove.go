package solver

import "github.com/rpsvision/minusone/gestures"

// alphabet fixes the iteration order over gesture sets so every branch of
// the removal rule is deterministic.
var alphabet = []gestures.Gesture{gestures.Rock, gestures.Paper, gestures.Scissors}

// Remove applies the RPS-Minus-One removal rule: given the player's two
// revealed gestures and the opponent's two, it returns the gesture the
// player must retract, always drawn from mine. The second return is a
// diagnostic; it is empty on the deterministic branches and describes the
// problem when an arbitrary fallback was taken on invalid input.
//
// The rule, over the set intersection of the two sides:
//   - identical sets: retract the loser of the pair (a repeated single
//     gesture retracts itself);
//   - one common gesture: if the player's unique gesture beats the
//     opponent's unique one, retract it (the winner is given up to keep the
//     common gesture in play for the next round); if it loses, retract the
//     common gesture;
//   - no common gesture: arbitrary pick from mine, via the tie-break.
//
// A side that does not contribute exactly one unique gesture next to one
// common gesture violated the two-distinct-gestures rule; that degrades to
// the tie-break with a diagnostic rather than an error.
func (s *Solver) Remove(mine, opponent [2]gestures.Gesture) (gestures.Gesture, string) {
	mySet := toSet(mine)
	oppSet := toSet(opponent)

	var common, myUnique, oppUnique []gestures.Gesture
	for _, g := range alphabet {
		switch {
		case mySet[g] && oppSet[g]:
			common = append(common, g)
		case mySet[g]:
			myUnique = append(myUnique, g)
		case oppSet[g]:
			oppUnique = append(oppUnique, g)
		}
	}

	if len(common) == 2 {
		a, b := common[0], common[1]
		if gestures.Beats(a, b) {
			return b, ""
		}
		return a, ""
	}

	if len(common) == 1 {
		if len(myUnique) != 1 || len(oppUnique) != 1 {
			return s.cfg.TieBreak(mine[:]),
				"hand input violates game rules (expected two distinct gestures per player); falling back to arbitrary choice"
		}
		myNC, oppNC := myUnique[0], oppUnique[0]
		if gestures.Beats(myNC, oppNC) {
			return myNC, ""
		}
		if gestures.Beats(oppNC, myNC) {
			return common[0], ""
		}
		// Unreachable while Beats is total over distinct gestures; kept as
		// an explicit fallback instead of falling through undefined.
		return s.cfg.TieBreak(mine[:]),
			"no win relation between unique gestures; falling back to arbitrary choice"
	}

	// No common gesture: arbitrary pick by rule.
	return s.cfg.TieBreak(mine[:]), ""
}

func toSet(pair [2]gestures.Gesture) map[gestures.Gesture]bool {
	return map[gestures.Gesture]bool{pair[0]: true, pair[1]: true}
}
