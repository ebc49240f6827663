package player

import (
	"checkers/game"
	"checkers/searcher"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// SearchPlayer plays the most visited move of a Monte Carlo tree search.
type SearchPlayer struct {
	mcts *searcher.MCTS
}

func NewSearchPlayer(mcts *searcher.MCTS) *SearchPlayer {
	return &SearchPlayer{mcts: mcts}
}

func (p *SearchPlayer) FindMove(ctx context.Context, b *game.Board) (game.Move, error) {
	if err := ctx.Err(); err != nil {
		return game.Move{}, err
	}

	move, metric, ok := p.mcts.FindBestMove(ctx, game.NewGameState(b))
	if err := ctx.Err(); err != nil {
		return game.Move{}, err
	}
	if !ok {
		return game.Move{}, fmt.Errorf("%s to move: %w", b.CurrentSide(), game.ErrNoLegalMove)
	}

	log.Debug().
		Str("side", b.CurrentSide().String()).
		Str("move", move.String()).
		Int("episodes", metric.Episodes).
		Float64("mean_depth", metric.MeanDepth).
		Msg("search player chose move")
	return move, nil
}
