package engine

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Play validates m for the side to move and applies it. A rejected move
// leaves the board untouched.
func (e *Engine) Play(m game.Move) error {
	if e.winner != game.NoSide {
		return game.ErrGameOver
	}
	if !e.rules.IsValidMove(m, e.board) {
		return fmt.Errorf("%s plays %s: %w", e.board.CurrentSide(), m, game.ErrIllegalMove)
	}

	e.board.ApplyMove(m)
	if e.rules.CheckWin(e.board) {
		e.winner = e.board.CurrentSide()
	}
	e.board.SwitchTurn()
	return nil
}

// Run plays the game to the end. The context is checked between turns; a
// player error ends the run.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	result := Result{GameID: uuid.NewString()}
	gameMetric := metrics.GameMetric{
		GameID:         result.GameID,
		StartingPlayer: e.board.CurrentSide().String(),
		StartTime:      time.Now(),
	}

	log.Info().Msgf("game %s: %s is starting", result.GameID, e.board.CurrentSide())

	// A position handed in with WithBoard can already be lost for the side to move.
	if e.winner == game.NoSide && len(game.LegalMoves(e.board, e.board.CurrentSide())) == 0 {
		e.winner = e.board.OpponentSide()
	}

	step := 1
	for e.winner == game.NoSide {
		if err := ctx.Err(); err != nil {
			return e.finish(result, gameMetric), err
		}

		side := e.board.CurrentSide()
		moveMetric, err := e.turn(ctx, step, side)
		if err != nil {
			return e.finish(result, gameMetric), err
		}
		result.Moves = append(result.Moves, moveMetric)
		gameMetric.TotalMoves++
		if moveMetric.Capture {
			gameMetric.Captures++
		}
		step++
	}

	result = e.finish(result, gameMetric)
	e.observer.GameOver(e.board.Copy(), e.winner)
	log.Info().Msgf("game %s: %s won after %d moves", result.GameID, e.winner, gameMetric.TotalMoves)
	return result, nil
}

// turn asks the side's seat for moves until one is legal. Computer seats get
// no second attempt.
func (e *Engine) turn(ctx context.Context, step int, side game.Side) (metrics.MoveMetric, error) {
	seat := e.seat(side)
	e.observer.TurnStarted(e.board.Copy(), side, seat.Computer)
	if seat.Computer {
		pause(ctx, e.delay)
	}

	start := time.Now()
	rejected := 0
	for {
		m, err := seat.Player.FindMove(ctx, e.board.Copy())
		if err != nil {
			return metrics.MoveMetric{}, fmt.Errorf("%s to move: %w", side, err)
		}

		err = e.Play(m)
		if errors.Is(err, game.ErrIllegalMove) {
			rejected++
			log.Warn().Str("side", side.String()).Str("move", m.String()).Msg("move rejected")
			e.observer.MoveRejected(side, m, err)
			if seat.Computer {
				return metrics.MoveMetric{}, err
			}
			continue
		}
		if err != nil {
			return metrics.MoveMetric{}, err
		}

		log.Debug().Int("step", step).Str("side", side.String()).Str("move", m.String()).Msg("move played")
		e.observer.MovePlayed(e.board.Copy(), side, m)
		return metrics.MoveMetric{
			Step:     step,
			Side:     side.String(),
			Move:     m.String(),
			Capture:  m.IsJump(),
			Rejected: rejected,
			Think:    time.Since(start),
		}, nil
	}
}

func (e *Engine) finish(result Result, gameMetric metrics.GameMetric) Result {
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	if e.winner != game.NoSide {
		gameMetric.Winner = e.winner.String()
	}
	result.Winner = e.winner
	result.Game = gameMetric
	return result
}

// pause waits for d. A done context cuts the wait short and the caller
// carries on as if it had elapsed.
func pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
