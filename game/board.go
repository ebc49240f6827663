package game

import (
	"checkers/meta"
	"fmt"
	"strings"
)

// Cell is the occupant of a square: empty when Side is NoSide, otherwise
// Piece indexes the occupying piece in its side's piece array.
type Cell struct {
	Side  Side
	Piece int
}

func (c Cell) IsEmpty() bool {
	return c.Side == NoSide
}

// Piece is a single checker. A captured piece keeps its ID but is off the
// grid for the rest of the game.
type Piece struct {
	ID       int
	Side     Side
	Pos      Position
	Captured bool
}

// Board owns the grid, the pieces, the live counts and the turn pair.
// Board holds only value arrays so a plain struct copy is a deep copy.
type Board struct {
	grid     [meta.BOARD_SIZE][meta.BOARD_SIZE]Cell
	pieces   [2][meta.PIECES_PER_SIDE]Piece
	placed   [2]int // Pieces created per side
	counts   [2]int // Live pieces per side
	current  Side
	opponent Side
}

// NewBoard returns a board with the standard starting layout and X to move.
func NewBoard() *Board {
	b := NewEmptyBoard(X)
	for row := 1; row <= meta.BOARD_SIZE; row++ {
		var side Side
		switch {
		case row <= 3:
			side = X
		case row >= 6:
			side = O
		default:
			continue
		}
		for col := 1; col <= meta.BOARD_SIZE; col++ {
			pos := Position{Row: row, Col: col}
			if !pos.Dark() {
				continue
			}
			if err := b.Place(side, pos); err != nil {
				panic(fmt.Sprintf("starting layout: %v", err))
			}
		}
	}
	return b
}

// NewEmptyBoard returns a board without pieces, with current to move.
func NewEmptyBoard(current Side) *Board {
	if current != X && current != O {
		panic("current side must be X or O")
	}
	return &Board{
		current:  current,
		opponent: current.Opponent(),
	}
}

// Place puts a new piece for side on pos. Pieces get IDs in placement order.
func (b *Board) Place(side Side, pos Position) error {
	if side != X && side != O {
		return fmt.Errorf("place %s: unknown side %d", pos, side)
	}
	if !pos.Valid() {
		return fmt.Errorf("place %d,%d: %w", pos.Row, pos.Col, ErrOutOfRange)
	}
	if !b.at(pos).IsEmpty() {
		return fmt.Errorf("place %s: %w", pos, ErrSquareOccupied)
	}
	i := side.index()
	id := b.placed[i]
	if id >= meta.PIECES_PER_SIDE {
		return fmt.Errorf("place %s for %s: %w", pos, side, ErrTooManyPieces)
	}
	b.pieces[i][id] = Piece{ID: id, Side: side, Pos: pos}
	b.placed[i]++
	b.counts[i]++
	b.set(pos, Cell{Side: side, Piece: id})
	return nil
}

// CellAt returns the occupant of (row, col).
func (b *Board) CellAt(row, col int) (Cell, error) {
	pos := Position{Row: row, Col: col}
	if !pos.Valid() {
		return Cell{}, fmt.Errorf("cell %d,%d: %w", row, col, ErrOutOfRange)
	}
	return b.at(pos), nil
}

// PieceCount returns the number of live pieces of side.
func (b *Board) PieceCount(side Side) int {
	if side != X && side != O {
		return 0
	}
	return b.counts[side.index()]
}

// Pieces returns a copy of the side's pieces, captured ones included. Indices
// are stable for the whole game.
func (b *Board) Pieces(side Side) []Piece {
	if side != X && side != O {
		return nil
	}
	i := side.index()
	pieces := make([]Piece, b.placed[i])
	copy(pieces, b.pieces[i][:b.placed[i]])
	return pieces
}

func (b *Board) CurrentSide() Side {
	return b.current
}

func (b *Board) OpponentSide() Side {
	return b.opponent
}

// SwitchTurn swaps the current and opponent sides. It is the only operation
// that changes the turn.
func (b *Board) SwitchTurn() {
	b.current, b.opponent = b.opponent, b.current
}

// ApplyMove relocates the piece at m.From to m.To and, for a jump, captures
// the piece in between. The move must have been validated with IsValidMove
// first; ApplyMove checks nothing and leaves the board inconsistent
// otherwise.
func (b *Board) ApplyMove(m Move) {
	cell := b.at(m.From)
	b.set(m.To, cell)
	b.set(m.From, Cell{})
	b.pieces[cell.Side.index()][cell.Piece].Pos = m.To

	if m.IsJump() {
		b.capture(m.Midpoint())
	}
}

func (b *Board) capture(pos Position) {
	cell := b.at(pos)
	i := cell.Side.index()
	b.counts[i]--
	piece := &b.pieces[i][cell.Piece]
	piece.Captured = true
	piece.Pos = OffBoard
	b.set(pos, Cell{})
}

// Copy returns an independent copy of the board.
func (b *Board) Copy() *Board {
	c := *b
	return &c
}

func (b *Board) at(pos Position) Cell {
	return b.grid[pos.Row-1][pos.Col-1]
}

func (b *Board) set(pos Position, cell Cell) {
	b.grid[pos.Row-1][pos.Col-1] = cell
}

// Snapshot is a read-only view of the board for renderers and exporters.
// Cells is indexed [row-1][col-1].
type Snapshot struct {
	Cells   [meta.BOARD_SIZE][meta.BOARD_SIZE]Cell `json:"cells"`
	X       []Piece                                `json:"x"`
	O       []Piece                                `json:"o"`
	XCount  int                                    `json:"x_count"`
	OCount  int                                    `json:"o_count"`
	Current Side                                   `json:"current"`
}

func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		Cells:   b.grid,
		X:       b.Pieces(X),
		O:       b.Pieces(O),
		XCount:  b.PieceCount(X),
		OCount:  b.PieceCount(O),
		Current: b.current,
	}
}

// Occupant returns the side on (row, col), NoSide when empty or off-board.
func (s Snapshot) Occupant(row, col int) Side {
	if !(Position{Row: row, Col: col}).Valid() {
		return NoSide
	}
	return s.Cells[row-1][col-1].Side
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := meta.BOARD_SIZE; row >= 1; row-- {
		fmt.Fprintf(&sb, "%d |", row)
		for col := 1; col <= meta.BOARD_SIZE; col++ {
			fmt.Fprintf(&sb, " %s |", b.at(Position{Row: row, Col: col}).Side)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  ")
	for col := 0; col < meta.BOARD_SIZE; col++ {
		fmt.Fprintf(&sb, "  %c ", rune('a'+col))
	}
	sb.WriteString("\n")
	return sb.String()
}
