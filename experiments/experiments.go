package experiments

import (
	"checkers/engine"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/player"
	"checkers/searcher"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	ScanAgent   = "scan"
	SearchAgent = "search"
)

// MatchUp pairs the agent playing X with the agent playing O.
type MatchUp [2]metrics.AgentConfig

// searchBudget is used when a search agent is configured with neither
// episodes nor a duration.
const searchBudget = 200 * time.Millisecond

type Options struct {
	Games    int // Per match up
	OutDir   string
	MatchUps []MatchUp
	Progress io.Writer // Defaults to stderr
}

// DefaultMatchUps plays the scan player against itself and against a
// search agent with the given budget from both sides, then material
// against advancement evaluation.
func DefaultMatchUps(search metrics.AgentConfig, seed uint64) []MatchUp {
	scan := metrics.AgentConfig{ID: 1, Kind: ScanAgent, Seed: seed}
	material := search
	material.ID = 2
	material.Kind = SearchAgent
	material.Evaluate = game.EvaluateMaterial
	advancement := material
	advancement.ID = 3
	advancement.Evaluate = game.EvaluateAdvancement

	return []MatchUp{
		{scan, scan},
		{material, scan},
		{scan, material},
		{material, advancement},
	}
}

// RunSelfPlay plays every match up opts.Games times and writes the agent
// configs, game records and move records. It returns the output directory.
func RunSelfPlay(ctx context.Context, opts Options) (string, error) {
	if opts.Games < 1 || len(opts.MatchUps) == 0 {
		return "", fmt.Errorf("self-play needs games and match ups, got %d games and %d match ups", opts.Games, len(opts.MatchUps))
	}
	progress := opts.Progress
	if progress == nil {
		progress = os.Stderr
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting self-play with %d match ups of %d games...", len(opts.MatchUps), opts.Games)
	bar := newBar(len(opts.MatchUps)*opts.Games, "self-play", progress)

	for mi, matchUp := range opts.MatchUps {
		config1 := matchUp[0]
		config2 := matchUp[1]

		log.Info().Msgf("starting match up %d of %d between agent1=%d (%s) and agent2=%d (%s)...",
			mi+1, len(opts.MatchUps), config1.ID, config1.Kind, config2.ID, config2.Kind)

		for i := 0; i < opts.Games; i++ {
			result, err := runGame(ctx, config1, config2, i)
			if err != nil {
				return "", fmt.Errorf("match up %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: result.Game,
			})
			for _, mm := range result.Moves {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
			_ = bar.Add(1)

			log.Debug().Msgf("completed match up %d game %d with winner: %s", mi+1, i+1, result.Winner)
		}
	}
	_ = bar.Finish()

	log.Info().Msg("completed self-play")

	writer, err := metrics.NewWriter(opts.OutDir, "selfplay")
	if err != nil {
		return "", err
	}
	err = writer.WriteAgentConfigs(distinct(opts.MatchUps))
	if err != nil {
		return "", err
	}
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", err
	}
	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", err
	}
	log.Info().Msgf("stored self-play records in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame plays one game with config1 as X. X always starts.
func runGame(ctx context.Context, config1, config2 metrics.AgentConfig, round int) (engine.Result, error) {
	x := engine.Seat{Player: NewPlayer(config1, round), Computer: true}
	o := engine.Seat{Player: NewPlayer(config2, round), Computer: true}
	return engine.New(x, o).Run(ctx)
}

// NewPlayer builds the agent a config describes. Seeded scan players get a
// different seed each round so repeated games differ.
func NewPlayer(config metrics.AgentConfig, round int) player.Player {
	if config.Kind == SearchAgent {
		return player.NewSearchPlayer(createMCTS(config))
	}
	if config.Seed == 0 {
		return player.NewScanPlayer()
	}
	return player.NewScanPlayer(player.WithSeed(config.Seed + uint64(round)))
}

func createMCTS(config metrics.AgentConfig) *searcher.MCTS {
	options := []searcher.Option{}

	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Episodes <= 0 && config.Duration <= 0 {
		options = append(options, searcher.WithDuration(searchBudget))
	}
	if config.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(config.Cutoff))
	}
	if config.Evaluate != nil {
		options = append(options, searcher.WithEvaluationFn(config.Evaluate))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(config.Goroutines, options...)
}

func distinct(matchUps []MatchUp) []metrics.AgentConfig {
	seen := map[int]bool{}
	configs := []metrics.AgentConfig{}
	for _, matchUp := range matchUps {
		for _, config := range matchUp {
			if !seen[config.ID] {
				seen[config.ID] = true
				configs = append(configs, config)
			}
		}
	}
	return configs
}
