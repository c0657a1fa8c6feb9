package agent

import (
	"durak/experiments/metrics"
	"durak/game"
)

type Agent interface {
	// FindAction returns the action to play and the search metrics (if collected) from the decision process
	FindAction(state *game.State) (game.Action, metrics.SearchMetric, error)
}
