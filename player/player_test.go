package player

import (
	"checkers/game"
	"checkers/searcher"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func place(t *testing.T, b *game.Board, side game.Side, row, col int) {
	t.Helper()
	require.NoError(t, b.Place(side, game.Position{Row: row, Col: col}))
}

func TestScanPlayer(t *testing.T) {
	t.Run("returns a legal opening move for either side", func(t *testing.T) {
		for seed := uint64(0); seed < 20; seed++ {
			b := game.NewBoard()
			p := NewScanPlayer(WithSeed(seed))

			m, err := p.FindMove(context.Background(), b)
			require.NoError(t, err)
			require.True(t, game.IsValidMove(m, b), "seed %d produced %s", seed, m)

			b.ApplyMove(m)
			b.SwitchTurn()
			m, err = p.FindMove(context.Background(), b)
			require.NoError(t, err)
			require.True(t, game.IsValidMove(m, b), "seed %d produced %s for O", seed, m)
		}
	})

	t.Run("is deterministic for a seed", func(t *testing.T) {
		b := game.NewBoard()

		m1, err := NewScanPlayer(WithSeed(42)).FindMove(context.Background(), b)
		require.NoError(t, err)
		m2, err := NewScanPlayer(WithSeed(42)).FindMove(context.Background(), b)
		require.NoError(t, err)

		require.Equal(t, m1, m2)
	})

	t.Run("prefers a jump over a simple move", func(t *testing.T) {
		// O piece 0 can only step; piece 1 can jump X on (4,4).
		for seed := uint64(0); seed < 12; seed++ {
			b := game.NewEmptyBoard(game.O)
			place(t, b, game.O, 7, 1)
			place(t, b, game.O, 5, 5)
			place(t, b, game.X, 4, 4)
			place(t, b, game.X, 1, 7)

			m, err := NewScanPlayer(WithSeed(seed)).FindMove(context.Background(), b)

			require.NoError(t, err)
			require.Equal(t, game.NewMove(5, 5, 3, 3), m, "seed %d", seed)
		}
	})

	t.Run("tries the left jump before the right one", func(t *testing.T) {
		b := game.NewEmptyBoard(game.X)
		place(t, b, game.X, 3, 3)
		place(t, b, game.O, 4, 2)
		place(t, b, game.O, 4, 4)

		m, err := NewScanPlayer(WithSeed(1)).FindMove(context.Background(), b)

		require.NoError(t, err)
		require.Equal(t, game.NewMove(3, 3, 5, 1), m)
	})

	t.Run("skips captured pieces", func(t *testing.T) {
		b := game.NewEmptyBoard(game.O)
		place(t, b, game.X, 4, 4)
		place(t, b, game.X, 2, 2)
		place(t, b, game.O, 5, 5)
		b.ApplyMove(game.NewMove(5, 5, 3, 3)) // captures X piece 0
		b.SwitchTurn()

		m, err := NewScanPlayer(WithSeed(3)).FindMove(context.Background(), b)

		require.NoError(t, err)
		require.Equal(t, game.Position{Row: 2, Col: 2}, m.From)
	})

	t.Run("reports no legal move", func(t *testing.T) {
		b := game.NewEmptyBoard(game.O)
		place(t, b, game.O, 2, 2)
		place(t, b, game.X, 1, 1)
		place(t, b, game.X, 1, 3)

		_, err := NewScanPlayer(WithSeed(5)).FindMove(context.Background(), b)

		require.ErrorIs(t, err, game.ErrNoLegalMove)
	})

	t.Run("does not mutate the board", func(t *testing.T) {
		b := game.NewBoard()
		before := b.Snapshot()

		_, err := NewScanPlayer(WithSeed(9)).FindMove(context.Background(), b)

		require.NoError(t, err)
		require.Equal(t, before, b.Snapshot())
	})
}

func TestSearchPlayer(t *testing.T) {
	t.Run("returns a legal move", func(t *testing.T) {
		b := game.NewBoard()
		p := NewSearchPlayer(searcher.NewMCTS(2, searcher.WithEpisodes(50), searcher.WithCutoff(8)))

		m, err := p.FindMove(context.Background(), b)

		require.NoError(t, err)
		require.True(t, game.IsValidMove(m, b))
	})

	t.Run("stops on a cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		p := NewSearchPlayer(searcher.NewMCTS(1, searcher.WithEpisodes(5)))

		_, err := p.FindMove(ctx, game.NewBoard())

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("reports no legal move", func(t *testing.T) {
		b := game.NewEmptyBoard(game.O)
		place(t, b, game.O, 2, 2)
		place(t, b, game.X, 1, 1)
		place(t, b, game.X, 1, 3)
		p := NewSearchPlayer(searcher.NewMCTS(1, searcher.WithEpisodes(5)))

		_, err := p.FindMove(context.Background(), b)

		require.ErrorIs(t, err, game.ErrNoLegalMove)
	})
}
