package player

import (
	"checkers/game"
	"checkers/meta"
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

type ScanOption func(p *ScanPlayer)

// ScanPlayer picks a random piece to start from and plays the first jump it
// finds scanning the side's pieces in order, or failing that the first
// simple move. It does not look for the best capture.
type ScanPlayer struct {
	rng *rand.Rand
}

func WithSeed(seed uint64) ScanOption {
	return func(p *ScanPlayer) {
		p.rng = rand.New(rand.NewSource(seed))
	}
}

func NewScanPlayer(options ...ScanOption) *ScanPlayer {
	p := &ScanPlayer{
		rng: rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

func (p *ScanPlayer) FindMove(ctx context.Context, b *game.Board) (game.Move, error) {
	side := b.CurrentSide()
	pieces := b.Pieces(side)
	start := p.rng.Intn(meta.PIECES_PER_SIDE)

	if m, ok := scan(b, pieces, start, jumps); ok {
		return m, nil
	}
	if m, ok := scan(b, pieces, start, steps); ok {
		return m, nil
	}
	return game.Move{}, fmt.Errorf("%s to move: %w", side, game.ErrNoLegalMove)
}

// candidates returns the two moves of one kind for a piece, left before right
type candidates func(pos game.Position, side game.Side) [2]game.Move

func jumps(pos game.Position, side game.Side) [2]game.Move {
	c := game.CandidateMoves(pos, side)
	return [2]game.Move{c[2], c[3]}
}

func steps(pos game.Position, side game.Side) [2]game.Move {
	c := game.CandidateMoves(pos, side)
	return [2]game.Move{c[0], c[1]}
}

// scan visits pieces from start to the end, then wraps around to start-1.
func scan(b *game.Board, pieces []game.Piece, start int, kind candidates) (game.Move, bool) {
	n := len(pieces)
	for k := 0; k < n; k++ {
		piece := pieces[(start+k)%n]
		if piece.Captured {
			continue
		}
		for _, m := range kind(piece.Pos, piece.Side) {
			if game.IsValidMove(m, b) {
				return m, true
			}
		}
	}
	return game.Move{}, false
}
