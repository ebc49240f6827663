package game

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() string
	LegalMoves() []Move
	Play(Move) State
	Winner() string
}

// Evaluates the game state to a score between -1 and 1 indicating how
// favorable the current player's position is to a winning (positive) outcome.
type Evaluate func(State) float64

// Side is one of the two players. The zero value marks an empty cell.
type Side int

const (
	NoSide Side = iota
	X
	O
)

func (s Side) String() string {
	switch s {
	case X:
		return "x"
	case O:
		return "o"
	default:
		return "_"
	}
}

func (s Side) Opponent() Side {
	switch s {
	case X:
		return O
	case O:
		return X
	default:
		return NoSide
	}
}

// Forward is the row delta of a simple move for the side: X climbs, O descends.
func (s Side) Forward() int {
	switch s {
	case X:
		return 1
	case O:
		return -1
	default:
		return 0
	}
}

func (s Side) index() int {
	return int(s) - 1
}
