package game

import (
	"checkers/meta"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Run("places twelve pieces per side on dark squares", func(t *testing.T) {
		b := NewBoard()

		for _, side := range []Side{X, O} {
			require.Equal(t, meta.PIECES_PER_SIDE, b.PieceCount(side), "Side %s should start with 12 pieces", side)
			pieces := b.Pieces(side)
			require.Len(t, pieces, meta.PIECES_PER_SIDE)
			for i, piece := range pieces {
				require.Equal(t, i, piece.ID, "Piece IDs should follow placement order")
				require.False(t, piece.Captured, "No piece should start captured")
				require.True(t, piece.Pos.Dark(), "Piece %d of %s should sit on a dark square", i, side)
				cell, err := b.CellAt(piece.Pos.Row, piece.Pos.Col)
				require.NoError(t, err)
				require.Equal(t, Cell{Side: side, Piece: i}, cell, "Grid should point back at the piece")
			}
		}
	})

	t.Run("uses rows 1-3 for X and 6-8 for O", func(t *testing.T) {
		b := NewBoard()

		for row := 1; row <= 8; row++ {
			for col := 1; col <= 8; col++ {
				cell, err := b.CellAt(row, col)
				require.NoError(t, err)
				pos := Position{Row: row, Col: col}
				switch {
				case row <= 3 && pos.Dark():
					require.Equal(t, X, cell.Side, "%s", pos)
				case row >= 6 && pos.Dark():
					require.Equal(t, O, cell.Side, "%s", pos)
				default:
					require.True(t, cell.IsEmpty(), "%s should be empty", pos)
				}
			}
		}
	})

	t.Run("X moves first", func(t *testing.T) {
		b := NewBoard()

		require.Equal(t, X, b.CurrentSide())
		require.Equal(t, O, b.OpponentSide())
	})

	t.Run("first pieces match the standard corners", func(t *testing.T) {
		b := NewBoard()

		require.Equal(t, Position{Row: 1, Col: 1}, b.Pieces(X)[0].Pos)
		require.Equal(t, Position{Row: 6, Col: 2}, b.Pieces(O)[0].Pos)
		require.Equal(t, Position{Row: 8, Col: 8}, b.Pieces(O)[11].Pos)
	})
}

func TestCellAt(t *testing.T) {
	b := NewBoard()

	for _, tc := range []struct {
		name     string
		row, col int
	}{
		{"row zero", 0, 1},
		{"column zero", 1, 0},
		{"row nine", 9, 1},
		{"column nine", 1, 9},
		{"negative", -1, -1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := b.CellAt(tc.row, tc.col)
			require.ErrorIs(t, err, ErrOutOfRange)
		})
	}
}

func TestSwitchTurn(t *testing.T) {
	t.Run("two switches restore the pair", func(t *testing.T) {
		b := NewBoard()

		b.SwitchTurn()
		require.Equal(t, O, b.CurrentSide())
		require.Equal(t, X, b.OpponentSide())

		b.SwitchTurn()
		require.Equal(t, X, b.CurrentSide())
		require.Equal(t, O, b.OpponentSide())
	})
}

func TestApplyMove(t *testing.T) {
	t.Run("simple move relocates the piece", func(t *testing.T) {
		b := NewBoard()
		m := NewMove(3, 3, 4, 4)

		b.ApplyMove(m)

		from, _ := b.CellAt(3, 3)
		to, _ := b.CellAt(4, 4)
		require.True(t, from.IsEmpty(), "Origin should be cleared")
		require.Equal(t, X, to.Side)
		require.Equal(t, m.To, b.Pieces(X)[to.Piece].Pos, "Piece position should follow the grid")
		require.Equal(t, 12, b.PieceCount(O), "Simple move should not capture")
	})

	t.Run("jump captures the midpoint piece", func(t *testing.T) {
		b := NewEmptyBoard(X)
		require.NoError(t, b.Place(X, Position{Row: 3, Col: 3}))
		require.NoError(t, b.Place(O, Position{Row: 4, Col: 4}))
		require.NoError(t, b.Place(O, Position{Row: 8, Col: 8}))

		b.ApplyMove(NewMove(3, 3, 5, 5))

		origin, _ := b.CellAt(3, 3)
		jumped, _ := b.CellAt(4, 4)
		landing, _ := b.CellAt(5, 5)
		require.True(t, origin.IsEmpty())
		require.True(t, jumped.IsEmpty(), "Jumped square should be cleared")
		require.Equal(t, X, landing.Side)
		require.Equal(t, 1, b.PieceCount(O), "Opponent count should drop by exactly one")
		require.Equal(t, 1, b.PieceCount(X))

		captured := b.Pieces(O)[0]
		require.True(t, captured.Captured)
		require.Equal(t, OffBoard, captured.Pos, "Captured piece should have no position")
		require.False(t, b.Pieces(O)[1].Captured)
	})

	t.Run("does not switch the turn", func(t *testing.T) {
		b := NewBoard()

		b.ApplyMove(NewMove(3, 1, 4, 2))

		require.Equal(t, X, b.CurrentSide())
	})
}

func TestPlace(t *testing.T) {
	t.Run("rejects occupied squares", func(t *testing.T) {
		b := NewEmptyBoard(X)
		require.NoError(t, b.Place(X, Position{Row: 1, Col: 1}))

		err := b.Place(O, Position{Row: 1, Col: 1})

		require.ErrorIs(t, err, ErrSquareOccupied)
	})

	t.Run("rejects off-board squares", func(t *testing.T) {
		b := NewEmptyBoard(X)

		require.ErrorIs(t, b.Place(X, Position{Row: 0, Col: 4}), ErrOutOfRange)
	})

	t.Run("rejects a thirteenth piece", func(t *testing.T) {
		b := NewBoard()

		require.ErrorIs(t, b.Place(X, Position{Row: 4, Col: 4}), ErrTooManyPieces)
	})
}

func TestCopy(t *testing.T) {
	t.Run("copies are independent", func(t *testing.T) {
		b := NewBoard()
		c := b.Copy()

		c.ApplyMove(NewMove(3, 1, 4, 2))
		c.SwitchTurn()

		cell, _ := b.CellAt(3, 1)
		require.Equal(t, X, cell.Side, "Original board should be untouched")
		require.Equal(t, X, b.CurrentSide())
		require.Equal(t, Position{Row: 3, Col: 1}, b.Pieces(X)[8].Pos)
	})
}

func TestSnapshot(t *testing.T) {
	b := NewBoard()

	s := b.Snapshot()

	require.Equal(t, X, s.Occupant(1, 1))
	require.Equal(t, O, s.Occupant(8, 2))
	require.Equal(t, NoSide, s.Occupant(4, 4))
	require.Equal(t, NoSide, s.Occupant(0, 0))
	require.Equal(t, 12, s.XCount)
	require.Equal(t, 12, s.OCount)
	require.Equal(t, X, s.Current)
	require.Len(t, s.X, 12)
}

func TestBoardString(t *testing.T) {
	b := NewBoard()

	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")

	require.Len(t, lines, 9)
	require.Equal(t, "8 | _ | o | _ | o | _ | o | _ | o |", lines[0])
	require.Equal(t, "1 | x | _ | x | _ | x | _ | x | _ |", lines[7])
	require.Equal(t, "    a   b   c   d   e   f   g   h ", lines[8])
}
