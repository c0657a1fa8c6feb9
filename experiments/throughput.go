package experiments

import (
	"time"

	"durak/experiments/metrics"
	"durak/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Throughput searches the opening position of one dealt game once per goroutine count,
// each search running for duration, and returns the metrics of every search.
func Throughput(players int, duration time.Duration, goroutines []int, seed uint64) ([]metrics.SearchMetric, error) {
	rng := rand.New(rand.NewSource(seed))
	state, err := game.New(players, game.WithSeed(rng.Uint64()))
	if err != nil {
		return nil, err
	}

	log.Info().Msg("starting throughput experiment...")
	results := make([]metrics.SearchMetric, 0, len(goroutines))
	for i, n := range goroutines {
		config := metrics.AgentConfig{ID: i + 1, Goroutines: n, Duration: duration}
		mcts, err := createMCTS(config, rng.Uint64())
		if err != nil {
			return results, err
		}
		_, metric, err := mcts.Simulate(state)
		if err != nil {
			return results, err
		}
		results = append(results, metric)
		log.Info().Msgf("agent=%+v ran %d episodes (%.0f/s)", config, metric.Episodes,
			float64(metric.Episodes)/metric.Duration.Seconds())
	}
	log.Info().Msg("completed throughput experiment")
	return results, nil
}
