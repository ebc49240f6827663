package game

import (
	"checkers/meta"
	"checkers/utils"
	"fmt"
)

// Position is a 1-based (row, column) pair. Rows count bottom to top and
// columns left to right, matching the a-h / 1-8 notation.
type Position struct {
	Row int
	Col int
}

// OffBoard is the position of a captured piece.
var OffBoard = Position{}

func (p Position) Valid() bool {
	return p.Row >= 1 && p.Row <= meta.BOARD_SIZE && p.Col >= 1 && p.Col <= meta.BOARD_SIZE
}

// Dark reports whether the square is one pieces are placed on.
func (p Position) Dark() bool {
	return (p.Row+p.Col)%2 == 0
}

func (p Position) String() string {
	if !p.Valid() {
		return "--"
	}
	return fmt.Sprintf("%d%c", p.Row, rune('a'+p.Col-1))
}

// Move represents a single relocation of a piece. It is constructed per
// attempt and never stored on the board.
type Move struct {
	From Position
	To   Position
}

func NewMove(fromRow, fromCol, toRow, toCol int) Move {
	return Move{
		From: Position{Row: fromRow, Col: fromCol},
		To:   Position{Row: toRow, Col: toCol},
	}
}

func (m Move) InBounds() bool {
	return m.From.Valid() && m.To.Valid()
}

// IsJump reports whether the move spans two rows, the shape of a capture.
func (m Move) IsJump() bool {
	return utils.Abs(m.To.Row-m.From.Row) == 2
}

// Midpoint is the square jumped over. Only meaningful for jumps.
func (m Move) Midpoint() Position {
	return Position{
		Row: (m.From.Row + m.To.Row) / 2,
		Col: (m.From.Col + m.To.Col) / 2,
	}
}

func (m Move) String() string {
	return m.From.String() + "-" + m.To.String()
}
