package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGameState(t *testing.T) {
	t.Run("starting state", func(t *testing.T) {
		gs := NewGameState(NewBoard())

		require.Equal(t, "x", gs.Player())
		require.Equal(t, "", gs.Winner())
		require.Len(t, gs.LegalMoves(), 7)
	})

	t.Run("play returns a new state and leaves the receiver unchanged", func(t *testing.T) {
		gs := NewGameState(NewBoard())

		next := gs.Play(NewMove(3, 3, 4, 4))

		require.Equal(t, "o", next.Player(), "Turn should pass to O")
		require.Equal(t, "x", gs.Player())
		cell, _ := gs.Board().CellAt(3, 3)
		require.Equal(t, X, cell.Side, "Receiver board should be untouched")
		cell, _ = next.(*GameState).Board().CellAt(4, 4)
		require.Equal(t, X, cell.Side)
	})

	t.Run("winning move ends the game", func(t *testing.T) {
		b := board(t, X, at{X, 3, 3}, at{O, 4, 4})
		gs := NewGameState(b)

		next := gs.Play(NewMove(3, 3, 5, 5))

		require.Equal(t, "x", next.Winner())
		require.Empty(t, next.LegalMoves(), "Terminal state should have no moves")
	})

	t.Run("side to move without moves has lost", func(t *testing.T) {
		gs := NewGameState(board(t, O, at{X, 1, 1}, at{X, 1, 3}, at{O, 2, 2}))

		require.Equal(t, "x", gs.Winner())
		require.Empty(t, gs.LegalMoves())
	})
}

func TestEvaluate(t *testing.T) {
	t.Run("even material scores zero", func(t *testing.T) {
		gs := NewGameState(NewBoard())

		require.InDelta(t, 0.0, EvaluateMaterial(gs), 1e-9)
		require.InDelta(t, 0.0, EvaluateAdvancement(gs), 1e-9)
	})

	t.Run("material advantage is positive for the side to move", func(t *testing.T) {
		gs := NewGameState(board(t, X, at{X, 3, 3}, at{X, 3, 5}, at{X, 3, 7}, at{O, 7, 7}))

		require.InDelta(t, 0.5, EvaluateMaterial(gs), 1e-9, "(3-1)/(3+1)")
	})

	t.Run("material disadvantage is negative", func(t *testing.T) {
		gs := NewGameState(board(t, O, at{X, 3, 3}, at{X, 3, 5}, at{X, 3, 7}, at{O, 7, 7}))

		require.InDelta(t, -0.5, EvaluateMaterial(gs), 1e-9)
	})

	t.Run("advancement rewards marching pieces", func(t *testing.T) {
		gs := NewGameState(board(t, X, at{X, 6, 6}, at{O, 7, 1}))

		// Material is even; X travelled 5 rows, O travelled 1.
		require.InDelta(t, (0.0+4.0/6.0)/2, EvaluateAdvancement(gs), 1e-9)
	})
}
