package engine

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/player"
	"time"
)

// Seat binds a player to one side of the board. Computer seats are paced
// by the engine's delay before they move.
type Seat struct {
	Player   player.Player
	Computer bool
}

// Observer is told about the progress of a game. Boards passed to it are
// copies.
type Observer interface {
	TurnStarted(b *game.Board, side game.Side, computer bool)
	MoveRejected(side game.Side, m game.Move, err error)
	MovePlayed(b *game.Board, side game.Side, m game.Move)
	GameOver(b *game.Board, winner game.Side)
}

type Result struct {
	GameID string
	Winner game.Side
	Game   metrics.GameMetric
	Moves  []metrics.MoveMetric
}

type Option func(e *Engine)

type Engine struct {
	board    *game.Board
	seats    [2]Seat
	rules    game.Rules
	observer Observer
	delay    time.Duration
	winner   game.Side
}

func WithRules(rules game.Rules) Option {
	return func(e *Engine) {
		if rules != nil {
			e.rules = rules
		}
	}
}

func WithObserver(observer Observer) Option {
	return func(e *Engine) {
		if observer != nil {
			e.observer = observer
		}
	}
}

// WithDelay sets the pause before each computer move.
func WithDelay(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.delay = d
		}
	}
}

// WithBoard starts the game from b instead of the standard layout.
func WithBoard(b *game.Board) Option {
	return func(e *Engine) {
		if b != nil {
			e.board = b.Copy()
		}
	}
}

func New(x, o Seat, options ...Option) *Engine {
	if x.Player == nil || o.Player == nil {
		panic("both seats need a player")
	}

	e := &Engine{
		board:    game.NewBoard(),
		seats:    [2]Seat{x, o},
		rules:    game.NewStandardRules(),
		observer: nopObserver{},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Board returns a copy of the current position.
func (e *Engine) Board() *game.Board {
	return e.board.Copy()
}

// Winner is NoSide while the game is in progress.
func (e *Engine) Winner() game.Side {
	return e.winner
}

func (e *Engine) seat(side game.Side) Seat {
	if side == game.O {
		return e.seats[1]
	}
	return e.seats[0]
}

type nopObserver struct{}

func (nopObserver) TurnStarted(*game.Board, game.Side, bool)     {}
func (nopObserver) MoveRejected(game.Side, game.Move, error)     {}
func (nopObserver) MovePlayed(*game.Board, game.Side, game.Move) {}
func (nopObserver) GameOver(*game.Board, game.Side)              {}
