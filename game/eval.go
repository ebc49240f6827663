package game

import "checkers/meta"

// EvaluateMaterial compares live piece counts to produce a score between -1
// and 1 from the current player's perspective
func EvaluateMaterial(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	return gs.materialScore()
}

// EvaluateAdvancement considers how far each side's pieces have marched, in
// addition to material, to produce a score between -1 and 1 from the current
// player's perspective
func EvaluateAdvancement(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	return (gs.materialScore() + gs.advancementScore()) / 2
}

func (gs *GameState) materialScore() float64 {
	current := gs.board.CurrentSide()
	opponent := gs.board.OpponentSide()
	return normalize(float64(gs.board.PieceCount(current)), float64(gs.board.PieceCount(opponent)))
}

func (gs *GameState) advancementScore() float64 {
	current := gs.board.CurrentSide()
	opponent := gs.board.OpponentSide()
	return normalize(gs.advancement(current), gs.advancement(opponent))
}

// advancement sums the rows each live piece has travelled from its home edge
func (gs *GameState) advancement(side Side) float64 {
	total := 0.0
	for _, piece := range gs.board.Pieces(side) {
		if piece.Captured {
			continue
		}
		if side == X {
			total += float64(piece.Pos.Row - 1)
		} else {
			total += float64(meta.BOARD_SIZE - piece.Pos.Row)
		}
	}
	return total
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
