package agent

import (
	"durak/experiments/metrics"
	"durak/game"
	"durak/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns a new agent for actual game play during evaluation.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindAction(state *game.State) (game.Action, metrics.SearchMetric, error) {
	visits, metric, err := a.mcts.Simulate(state)
	if err != nil {
		return game.Action{}, metric, err
	}
	return findMax(visits), metric, nil
}

func findMax(visits []searcher.ActionVisits) game.Action {
	var maxAction game.Action
	maxVisit := -1.0
	for _, v := range visits {
		if v.Visits > maxVisit {
			maxVisit = v.Visits
			maxAction = v.Action
		}
	}
	return maxAction
}
