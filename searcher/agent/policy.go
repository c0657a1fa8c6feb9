package agent

import (
	"durak/experiments/metrics"
	"durak/game"
	"durak/player"

	"golang.org/x/exp/rand"
)

type policyAgent struct {
	policy player.Policy
	rng    *rand.Rand
}

// NewPolicyAgent plays with a playout policy and no search.
func NewPolicyAgent(policy player.Policy, rng *rand.Rand) Agent {
	return policyAgent{policy: policy, rng: rng}
}

func (a policyAgent) FindAction(state *game.State) (game.Action, metrics.SearchMetric, error) {
	actions := state.Actions()
	if len(actions) == 0 {
		return game.Action{}, metrics.SearchMetric{}, game.ErrGameOver
	}
	return a.policy.Choose(state, actions, a.rng), metrics.SearchMetric{}, nil
}

type humanAgent struct {
	human *player.Human
}

func NewHumanAgent(human *player.Human) Agent {
	return humanAgent{human: human}
}

func (a humanAgent) FindAction(state *game.State) (game.Action, metrics.SearchMetric, error) {
	actions := state.Actions()
	if len(actions) == 0 {
		return game.Action{}, metrics.SearchMetric{}, game.ErrGameOver
	}
	action, err := a.human.Select(state, actions)
	return action, metrics.SearchMetric{}, err
}
