package player

import (
	"checkers/game"
	"context"
)

// Player chooses the next move for the board's current side. Implementations
// only read the board; the engine validates and applies the move.
type Player interface {
	FindMove(ctx context.Context, b *game.Board) (game.Move, error)
}
