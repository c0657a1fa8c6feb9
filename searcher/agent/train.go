package agent

import (
	"math"

	"durak/experiments/metrics"
	"durak/game"
	"durak/searcher"

	"golang.org/x/exp/rand"
)

type trainingAgent struct {
	mcts        *searcher.MCTS
	temperature float64
	rng         *rand.Rand
}

// NewTrainingAgent returns a new agent for self-play. It samples root actions in
// proportion to visits^(1/temperature).
func NewTrainingAgent(mcts *searcher.MCTS, temperature float64, rng *rand.Rand) Agent {
	if temperature <= 0 {
		temperature = 1.0
	}
	return trainingAgent{mcts: mcts, temperature: temperature, rng: rng}
}

func (a trainingAgent) FindAction(state *game.State) (game.Action, metrics.SearchMetric, error) {
	visits, metric, err := a.mcts.Simulate(state)
	if err != nil {
		return game.Action{}, metric, err
	}
	// TODO: apply a temperature schedule as training progresses
	policy := adjustTemperature(visits, a.temperature)
	return sample(visits, policy, a.rng.Float64()), metric, nil
}

func adjustTemperature(visits []searcher.ActionVisits, temperature float64) []float64 {
	// Compute temperature-adjusted action probabilities
	exponent := 1.0 / temperature
	sum := 0.0
	policy := make([]float64, len(visits))
	for i, v := range visits {
		prob := math.Pow(v.Visits, exponent)
		sum += prob
		policy[i] = prob
	}
	// Normalize
	for i := range policy {
		policy[i] /= sum
	}
	return policy
}

func sample(visits []searcher.ActionVisits, policy []float64, sampled float64) game.Action {
	cumulative := 0.0
	for i, prob := range policy {
		cumulative += prob
		if sampled < cumulative {
			return visits[i].Action
		}
	}
	return visits[len(visits)-1].Action
}
