package game

// GameState is an immutable view of a game for search. Play never mutates the
// receiver's board.
type GameState struct {
	board  *Board
	winner Side
}

// NewGameState wraps a copy of b with the current side to move. A side to
// move without any legal move has already lost.
func NewGameState(b *Board) *GameState {
	gs := &GameState{board: b.Copy()}
	if len(LegalMoves(gs.board, gs.board.CurrentSide())) == 0 {
		gs.winner = gs.board.OpponentSide()
	}
	return gs
}

func (gs *GameState) Board() *Board {
	return gs.board.Copy()
}

func (gs *GameState) Player() string {
	return gs.board.CurrentSide().String()
}

// LegalMoves returns all legal moves for the current player, none once the
// game is over.
func (gs *GameState) LegalMoves() []Move {
	if gs.winner != NoSide {
		return nil
	}
	return LegalMoves(gs.board, gs.board.CurrentSide())
}

// Play applies a legal move, detects a win for the mover, and passes the turn.
func (gs *GameState) Play(m Move) State {
	b := gs.board.Copy()
	b.ApplyMove(m)
	next := &GameState{board: b}
	if CheckWin(b) {
		next.winner = b.CurrentSide()
	}
	b.SwitchTurn()
	return next
}

// Winner returns the winning side's name, "" while the game is in progress.
func (gs *GameState) Winner() string {
	if gs.winner == NoSide {
		return ""
	}
	return gs.winner.String()
}
