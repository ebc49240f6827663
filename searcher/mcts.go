package searcher

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

// MCTS is a parallel UCT search. One search runs at a time per MCTS.
type MCTS struct {
	goroutines int
	duration   time.Duration
	episodes   int
	cutoff     int
	evaluate   game.Evaluate
	root       *decision
	metrics    metrics.Collector
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(goroutines int, options ...Option) *MCTS {
	if goroutines < 1 {
		goroutines = 1
	}
	m := &MCTS{ // Default values
		goroutines: goroutines,
		cutoff:     MaxCutoff,
		evaluate:   game.EvaluateMaterial,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

// Simulate builds a fresh tree from state and returns the visit share of each
// root move along with the search metrics. The search stops early when ctx
// is done.
func (m *MCTS) Simulate(ctx context.Context, state game.State) (map[game.Move]float64, metrics.SearchMetric) {
	m.root = newDecision(nil, "", state)

	m.metrics.Start(m.goroutines, m.cutoff)
	m.search(ctx, state)
	metric := m.metrics.Complete()

	log.Debug().
		Int("episodes", metric.Episodes).
		Int("full_playouts", metric.FullPlayouts).
		Float64("mean_depth", metric.MeanDepth).
		Dur("duration", metric.Duration).
		Msg("search complete")

	return m.root.Policy(), metric
}

// search runs episodes on every goroutine until the episode budget is spent
// or the duration has passed, whichever comes first.
func (m *MCTS) search(ctx context.Context, state game.State) {
	if m.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.duration)
		defer cancel()
	}

	var remaining atomic.Int64
	remaining.Store(int64(m.episodes))

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ctx.Err() == nil {
				if m.episodes > 0 && remaining.Add(-1) < 0 {
					return
				}
				m.simulate(state)
				m.metrics.AddEpisode()
			}
		}()
	}
	wg.Wait()
}

func (m *MCTS) simulate(state game.State) {
	newNode, newState := selectThenExpand(m.root, state)
	player, score := rollout(newState, m.cutoff, m.evaluate, m.metrics)
	backup(newNode, player, score)
}

func selectThenExpand(root *decision, state game.State) (*decision, game.State) {
	parent := root
	child, state, selected := parent.SelectOrExpand(state)
	for selected && (child != parent) {
		parent = child
		child, state, selected = parent.SelectOrExpand(state)
	}
	return child, state
}

func rollout(state game.State, cutoff int, evaluate game.Evaluate, metrics metrics.Collector) (string, float64) {
	depth := 0
	moves := state.LegalMoves()
	// Rollout till game over or for cutoff number of moves
	for len(moves) > 0 && (depth < cutoff) {
		move := moves[rand.Intn(len(moves))] // Random rollout policy
		state = state.Play(move)
		moves = state.LegalMoves()
		depth++
	}

	metrics.AddRollout(depth, len(moves) == 0)
	if len(moves) == 0 { // Game over before cutoff
		return state.Winner(), Win
	}

	// At cutoff state, return an evaluation score from current player's perspective
	return state.Player(), evaluate(state)
}

func backup(newNode *decision, player string, score float64) {
	node := newNode
	for node != nil {
		parent := node.Backup(player, score)
		node = parent
	}
}

// FindBestMove returns the most visited root move of a search from state.
func (m *MCTS) FindBestMove(ctx context.Context, state game.State) (game.Move, metrics.SearchMetric, bool) {
	policy, metric := m.Simulate(ctx, state)
	move, ok := bestMove(policy)
	return move, metric, ok
}
