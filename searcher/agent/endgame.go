package agent

import (
	"durak/experiments/metrics"
	"durak/game"
	"durak/player"
	"durak/searcher"

	"golang.org/x/exp/rand"
)

type endgameAgent struct {
	mcts *searcher.MCTS
	rng  *rand.Rand
}

// NewEndgameAgent plays forced moves directly, follows the heuristic while the talon is
// long and searches once the game gets close to the end.
func NewEndgameAgent(mcts *searcher.MCTS, rng *rand.Rand) Agent {
	return endgameAgent{mcts: mcts, rng: rng}
}

func (a endgameAgent) FindAction(state *game.State) (game.Action, metrics.SearchMetric, error) {
	actions := state.Actions()
	switch {
	case len(actions) == 0:
		return game.Action{}, metrics.SearchMetric{}, game.ErrGameOver
	case len(actions) == 1:
		return actions[0], metrics.SearchMetric{}, nil
	case state.TalonSize() > player.TalonTolerance:
		return player.Heuristic{}.Choose(state, actions, a.rng), metrics.SearchMetric{}, nil
	}
	return a.mcts.Search(state)
}
