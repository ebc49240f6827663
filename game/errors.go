package game

import "errors"

var (
	ErrOutOfRange     = errors.New("coordinate out of range")
	ErrIllegalMove    = errors.New("illegal move")
	ErrGameOver       = errors.New("game is over")
	ErrNoLegalMove    = errors.New("no legal move available")
	ErrSquareOccupied = errors.New("square occupied")
	ErrTooManyPieces  = errors.New("too many pieces for side")
)
