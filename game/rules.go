package game

import "checkers/utils"

// IsValidMove checks whether the current side may play m on b.
func IsValidMove(m Move, b *Board) bool {
	return IsValidMoveFor(m, b, b.CurrentSide())
}

// IsValidMoveFor checks whether side may play m on b, regardless of whose
// turn it is. Checks run cheapest first and stop at the first failure. The
// board is only read.
func IsValidMoveFor(m Move, b *Board, side Side) bool {
	if !m.InBounds() {
		return false
	}
	if side == NoSide || b.at(m.From).Side != side {
		return false
	}
	if !b.at(m.To).IsEmpty() {
		return false
	}
	return IsSimpleMove(m, side) || IsJump(m, b, side)
}

// IsSimpleMove checks the shape of a one-step forward diagonal move.
func IsSimpleMove(m Move, side Side) bool {
	if side != X && side != O {
		return false
	}
	return m.To.Row-m.From.Row == side.Forward() &&
		utils.Abs(m.To.Col-m.From.Col) == 1
}

// IsJump checks the shape of a forward capture and that the jumped square
// holds an opponent piece.
func IsJump(m Move, b *Board, side Side) bool {
	if side != X && side != O {
		return false
	}
	if m.To.Row-m.From.Row != 2*side.Forward() || utils.Abs(m.To.Col-m.From.Col) != 2 {
		return false
	}
	mid := m.Midpoint()
	if !mid.Valid() {
		return false
	}
	return b.at(mid).Side == side.Opponent()
}

// CandidateMoves lists the four destinations a piece of side at pos could
// reach: forward-left and forward-right steps, then forward-left and
// forward-right jumps. Candidates may be off the board.
func CandidateMoves(pos Position, side Side) [4]Move {
	step := side.Forward()
	return [4]Move{
		NewMove(pos.Row, pos.Col, pos.Row+step, pos.Col-1),
		NewMove(pos.Row, pos.Col, pos.Row+step, pos.Col+1),
		NewMove(pos.Row, pos.Col, pos.Row+2*step, pos.Col-2),
		NewMove(pos.Row, pos.Col, pos.Row+2*step, pos.Col+2),
	}
}

// CanMove reports whether the piece on pos has any legal move for its own
// side. Empty or off-board squares cannot move.
func CanMove(pos Position, b *Board) bool {
	if !pos.Valid() {
		return false
	}
	side := b.at(pos).Side
	if side == NoSide {
		return false
	}
	for _, m := range CandidateMoves(pos, side) {
		if IsValidMoveFor(m, b, side) {
			return true
		}
	}
	return false
}

// LegalMoves returns every legal move of side, in piece order.
func LegalMoves(b *Board, side Side) []Move {
	var moves []Move
	for _, piece := range b.Pieces(side) {
		if piece.Captured {
			continue
		}
		for _, m := range CandidateMoves(piece.Pos, side) {
			if IsValidMoveFor(m, b, side) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// CheckWin reports whether the side that just moved (still the current side,
// the turn has not been switched yet) has won: the opponent has no pieces
// left, or none of them can move. Mobility is checked in the opponent's own
// direction; the turn is never touched.
func CheckWin(b *Board) bool {
	opponent := b.OpponentSide()
	if b.PieceCount(opponent) == 0 {
		return true
	}

	for row := 1; row <= len(b.grid); row++ {
		for col := 1; col <= len(b.grid[row-1]); col++ {
			pos := Position{Row: row, Col: col}
			if b.at(pos).Side != opponent {
				continue
			}
			if CanMove(pos, b) {
				return false
			}
		}
	}
	return true
}

// Winner returns the current side if CheckWin holds, NoSide otherwise.
func Winner(b *Board) Side {
	if CheckWin(b) {
		return b.CurrentSide()
	}
	return NoSide
}
