package game

import "durak/utils"

// Actions lists the legal actions of the player to move. It is empty only on terminal states.
func (s *State) Actions() []Action {
	switch s.Phase() {
	case OpenPhase:
		return s.possibleFirstAttacks()
	case AttackPhase:
		actions := []Action{Ride()}
		if s.CanPass() {
			actions = append(actions, Pass())
		}
		return append(actions, s.possibleAdds(s.attack, s.defense)...)
	case PickupPhase:
		var actions []Action
		if s.CanPass() {
			actions = append(actions, Pass())
		}
		actions = append(actions, Block())
		return append(actions, s.possibleAdds(s.lastAtk, s.lastDef)...)
	case DefendPhase:
		actions := []Action{Eat()}
		if len(s.defense) == 0 {
			actions = append(actions, s.possibleTransfers()...)
		}
		for _, defense := range s.PossibleDefenses() {
			actions = append(actions, Defend(defense...))
		}
		return actions
	default:
		return nil
	}
}

// possibleFirstAttacks opens with any nonempty same-rank group no larger than the defender's hand.
func (s *State) possibleFirstAttacks() []Action {
	hand := s.players[s.attacker].hand
	limit := len(s.players[s.defender].hand)
	var actions []Action
	for _, group := range groupByRank(hand) {
		for _, subset := range utils.Subsets(group) {
			if len(subset) > 0 && len(subset) <= limit {
				actions = append(actions, Add(subset...))
			}
		}
	}
	return actions
}

// groupByRank splits cards into same-rank groups ordered by first appearance.
func groupByRank(cards []Card) [][]Card {
	index := make(map[int]int)
	var groups [][]Card
	for _, c := range cards {
		i, ok := index[c.Rank]
		if !ok {
			i = len(groups)
			index[c.Rank] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], c)
	}
	return groups
}

func (s *State) possibleAdds(attack, defense []Card) []Action {
	ranks := tableRanks(attack, defense)
	var actions []Action
	for _, c := range s.players[s.attacker].hand {
		if ranks[c.Rank] {
			actions = append(actions, Add(c))
		}
	}
	return actions
}

func tableRanks(attack, defense []Card) map[int]bool {
	ranks := make(map[int]bool, len(attack)+len(defense))
	for _, c := range attack {
		ranks[c.Rank] = true
	}
	for _, c := range defense {
		ranks[c.Rank] = true
	}
	return ranks
}

// possibleTransfers redirects the attack with cards matching its rank, as long as the
// receiving seat holds enough cards to face the enlarged attack.
func (s *State) possibleTransfers() []Action {
	if len(s.attack) == 0 {
		return nil
	}
	rank := s.attack[0].Rank
	var matching []Card
	for _, c := range s.players[s.defender].hand {
		if c.Rank == rank {
			matching = append(matching, c)
		}
	}
	receiver := s.receivingSeat()
	limit := len(s.players[receiver].hand)
	var actions []Action
	for _, subset := range utils.Subsets(matching) {
		if len(subset) > 0 && len(subset)+len(s.attack) <= limit {
			actions = append(actions, Transfer(subset...))
		}
	}
	return actions
}

// receivingSeat is the seat that would defend a transferred attack.
func (s *State) receivingSeat() int {
	return movePosition(s.defender, 1, len(s.players))
}

// PossibleDefenses lists the card sequences that beat the table. Before any defense each
// attack card must be beaten by the card at the same position; afterwards only the most
// recent attack card is answered, one card at a time.
func (s *State) PossibleDefenses() [][]Card {
	hand := s.players[s.defender].hand
	if len(s.attack) == 0 {
		return nil
	}
	if len(s.defense) > 0 {
		target := s.attack[len(s.attack)-1]
		var defenses [][]Card
		for _, c := range hand {
			if s.BeatsCard(c, target) {
				defenses = append(defenses, []Card{c})
			}
		}
		return defenses
	}
	return utils.Permutations(hand, len(s.attack), func(pos int, c Card) bool {
		return s.BeatsCard(c, s.attack[pos])
	})
}
