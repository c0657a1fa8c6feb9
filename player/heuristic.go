package player

import (
	"math"

	"durak/game"

	"golang.org/x/exp/rand"
)

const (
	TalonTolerance = 4   // above this many talon cards, trumps are worth hoarding
	Epsilon        = 0.1 // chance of playing a trump anyway, and of a random move in EpsilonHeuristic
)

// Heuristic plays the cheapest card it can and holds back trumps while the talon is long.
type Heuristic struct{}

// Choose plays LowestValueAction. Early in the game, when that would cost a trump, it
// usually holds back instead: a legal pass first, then ride, block or eat, and only
// then the trump itself.
func (Heuristic) Choose(s *game.State, actions []game.Action, rng *rand.Rand) game.Action {
	best, usesTrump := LowestValueAction(s, actions)
	if !usesTrump || s.TalonSize() <= TalonTolerance || rng.Float64() <= Epsilon {
		return best
	}

	if !s.IsAttackerMove() {
		if game.ContainsAction(actions, game.Eat()) {
			return game.Eat()
		}
		return best
	}
	if game.ContainsAction(actions, game.Pass()) {
		return game.Pass()
	}
	hold := game.Ride()
	if s.DefenderEating() {
		hold = game.Block()
	}
	if game.ContainsAction(actions, hold) {
		return hold
	}
	return best
}

func (Heuristic) String() string { return "heuristic" }

// LowestValueAction prefers playing cards to passing, and passing to riding, blocking or
// eating. Among card actions it takes the one whose highest card is lowest, using trumps
// only when every card action needs one. Ties go to the earlier action. The second result
// reports whether the chosen action plays a trump.
func LowestValueAction(s *game.State, actions []game.Action) (game.Action, bool) {
	best := actions[0]
	bestRank := math.MaxInt
	bestTrump := true
	for _, a := range actions {
		switch a.Kind {
		case game.RideAction, game.BlockAction, game.EatAction:
			continue
		case game.PassAction:
			if isHold(best) {
				best, bestRank, bestTrump = a, math.MaxInt, true
			}
			continue
		}

		rank, trumpRank, hasTrump := -1, -1, false
		for _, c := range a.Cards {
			rank = max(rank, c.Rank)
			if s.IsTrump(c) {
				hasTrump = true
				trumpRank = max(trumpRank, c.Rank)
			}
		}

		switch {
		case bestTrump && !hasTrump:
			best, bestRank, bestTrump = a, rank, false
		case !bestTrump && hasTrump:
		case hasTrump:
			if trumpRank < bestRank {
				best, bestRank = a, trumpRank
			}
		default:
			if rank < bestRank {
				best, bestRank = a, rank
			}
		}
	}
	return best, bestTrump && len(best.Cards) > 0
}

func isHold(a game.Action) bool {
	switch a.Kind {
	case game.RideAction, game.BlockAction, game.EatAction:
		return true
	}
	return false
}
