package player

import (
	"durak/game"

	"golang.org/x/exp/rand"
)

// Policy decides a move for whoever is to act in s. actions is s.Actions() and is never empty.
type Policy interface {
	Choose(s *game.State, actions []game.Action, rng *rand.Rand) game.Action
}

// Random plays uniformly among the legal actions.
type Random struct{}

func (Random) Choose(_ *game.State, actions []game.Action, rng *rand.Rand) game.Action {
	return actions[rng.Intn(len(actions))]
}

func (Random) String() string { return "random" }

// EpsilonHeuristic plays a uniformly random action with probability Epsilon and the
// heuristic action otherwise.
type EpsilonHeuristic struct {
	Epsilon float64
}

func NewEpsilonHeuristic() EpsilonHeuristic {
	return EpsilonHeuristic{Epsilon: Epsilon}
}

func (p EpsilonHeuristic) Choose(s *game.State, actions []game.Action, rng *rand.Rand) game.Action {
	if rng.Float64() < p.Epsilon {
		return Random{}.Choose(s, actions, rng)
	}
	return Heuristic{}.Choose(s, actions, rng)
}

func (p EpsilonHeuristic) String() string { return "epsilon-heuristic" }
