package searcher

import (
	"checkers/game"
	"math"
)

const CSquared = 2.0 // Exploration constant

const Win = 1.0   // Reward for winning outcome
const Loss = -Win // Reward for loss outcome (negate from opponent perspective)

// uct is the tree policy for the children of one parent, holding
// c^2*ln(N) for the parent's N visits.
type uct float64

func newUCT(cSquared float64, parentVisits float64) uct {
	if parentVisits == 0 {
		panic("parent visits cannot be 0")
	}
	return uct(cSquared * math.Log(parentVisits))
}

// value is q/n + sqrt(c^2*ln(N)/n) for a child with rewards q over n visits.
func (u uct) value(q float64, n float64) float64 {
	if n == 0 {
		panic("child visits cannot be 0")
	}
	return q/n + math.Sqrt(float64(u)/n)
}

// bestMove picks the move with the largest visit share. Ties go to the move
// that sorts first by notation so the choice does not depend on map order.
func bestMove(policy map[game.Move]float64) (game.Move, bool) {
	var best game.Move
	found := false
	for move, share := range policy {
		if !found || share > policy[best] || (share == policy[best] && move.String() < best.String()) {
			best = move
			found = true
		}
	}
	return best, found
}
