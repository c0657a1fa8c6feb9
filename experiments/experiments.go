package experiments

import (
	"fmt"
	"time"

	"durak/engine"
	"durak/experiments/metrics"
	"durak/game"
	"durak/player"
	"durak/searcher"
	"durak/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// HeuristicVsMCTS seats the search agent last and heuristic players everywhere else,
// and returns the durak of each game.
func HeuristicVsMCTS(iterations, games, players int) ([]int, error) {
	return Run(player.Heuristic{}, iterations, games, players, uint64(time.Now().UnixNano()))
}

func RandomVsMCTS(iterations, games, players int) ([]int, error) {
	return Run(player.Random{}, iterations, games, players, uint64(time.Now().UnixNano()))
}

func EpsilonVsMCTS(iterations, games, players int) ([]int, error) {
	return Run(player.NewEpsilonHeuristic(), iterations, games, players, uint64(time.Now().UnixNano()))
}

// Run plays games between an MCTS agent at the last position and baseline players,
// returning the loser position of every game (game.NoPosition when nobody lost).
func Run(baseline player.Policy, iterations, games, players int, seed uint64) ([]int, error) {
	config := metrics.AgentConfig{ID: 1, Goroutines: 1, Episodes: iterations}
	records, err := runExperiment(baseline, config, games, players, seed)
	if err != nil {
		return nil, err
	}
	losers := make([]int, len(records))
	for i, record := range records {
		losers[i] = record.Loser
	}
	return losers, nil
}

func runExperiment(baseline player.Policy, config metrics.AgentConfig, games, players int, seed uint64) ([]metrics.GameRecord, error) {
	name := fmt.Sprint(baseline)
	rng := rand.New(rand.NewSource(seed))
	records := make([]metrics.GameRecord, 0, games)

	log.Info().Msgf("starting %s vs mcts experiment with %d players, agent=%+v...", name, players, config)
	for i := 0; i < games; i++ {
		gameMetric, err := runGame(baseline, config, players, rng)
		if err != nil {
			return records, fmt.Errorf("game %d of %d: %w", i+1, games, err)
		}
		records = append(records, metrics.GameRecord{
			ID:         i + 1,
			Baseline:   name,
			Agent:      config.ID,
			GameMetric: gameMetric,
		})
		log.Info().Msgf("completed game %d of %d with durak: %d", i+1, games, gameMetric.Loser)
	}
	log.Info().Msgf("completed %s vs mcts experiment, mcts lost %d of %d", name, countLosses(records, players-1), games)
	return records, nil
}

// runGame executes a single game and returns its metrics
func runGame(baseline player.Policy, config metrics.AgentConfig, players int, rng *rand.Rand) (metrics.GameMetric, error) {
	state, err := game.New(players, game.WithSeed(rng.Uint64()))
	if err != nil {
		return metrics.GameMetric{}, err
	}
	mcts, err := createMCTS(config, rng.Uint64())
	if err != nil {
		return metrics.GameMetric{}, err
	}

	agents := make([]agent.Agent, players)
	for i := 0; i < players-1; i++ {
		agents[i] = agent.NewPolicyAgent(baseline, rand.New(rand.NewSource(rng.Uint64())))
	}
	agents[players-1] = agent.NewEndgameAgent(mcts, rand.New(rand.NewSource(rng.Uint64())))

	e, err := engine.NewLocalEngine(state, agents)
	if err != nil {
		return metrics.GameMetric{}, err
	}
	gameMetric, _, err := e.Run()
	return gameMetric, err
}

func createMCTS(config metrics.AgentConfig, seed uint64) (*searcher.MCTS, error) {
	options := []searcher.Option{searcher.WithSeed(seed)}

	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(config.Cutoff))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(options...)
}

func countLosses(records []metrics.GameRecord, position int) int {
	losses := 0
	for _, record := range records {
		if record.Loser == position {
			losses++
		}
	}
	return losses
}
