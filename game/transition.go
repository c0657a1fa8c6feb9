package game

import (
	"fmt"
)

// Transition applies a to the state. An action that is not legal is rejected with
// ErrIllegalAction (or ErrCannotPass / ErrGameOver) and leaves the state untouched.
func (s *State) Transition(a Action) error {
	phase := s.Phase()
	if err := s.validate(phase, a); err != nil {
		return err
	}

	seat := s.CurrentSeat()
	s.lastPlayer = s.players[seat].Position
	played := Action{Kind: a.Kind, Cards: cloneCards(a.Cards)}
	s.lastAction = &played

	switch phase {
	case OpenPhase, AttackPhase:
		switch a.Kind {
		case PassAction:
			// validated, cannot fail
			_ = s.passAttack()
		case RideAction:
			s.discard = s.discard.Union(NewCardSet(s.attack...)).Union(NewCardSet(s.defense...))
			s.attack = nil
			s.defense = nil
			s.advanceAttacker(1)
			s.round++
		case AddAction:
			s.publicPlay(seat, a.Cards...)
			s.attack = append(s.attack, a.Cards...)
			s.attackerMove = false
		}
	case PickupPhase:
		switch a.Kind {
		case PassAction:
			_ = s.passAttack()
		case BlockAction:
			s.defenderEating = false
			s.lastAtk = nil
			s.lastDef = nil
			s.advanceAttacker(2)
			s.round++
		case AddAction:
			s.publicPlay(seat, a.Cards...)
			s.publicPickUp(s.defender, a.Cards...)
		}
	case DefendPhase:
		switch a.Kind {
		case EatAction:
			table := append(cloneCards(s.attack), s.defense...)
			s.publicPickUp(seat, table...)
			s.lastAtk = s.attack
			s.lastDef = s.defense
			s.attack = nil
			s.defense = nil
			s.defenderEating = true
			s.resetAttacker()
			s.attackerMove = true
		case TransferAction:
			s.publicPlay(seat, a.Cards...)
			s.attack = append(s.attack, a.Cards...)
			s.advanceAttacker(1)
		case DefendAction:
			s.publicPlay(seat, a.Cards...)
			s.defense = append(s.defense, a.Cards...)
			s.resetAttacker()
			s.attackerMove = true
		}
	}

	s.eliminate()
	return nil
}

func (s *State) validate(phase Phase, a Action) error {
	if phase == OverPhase {
		return ErrGameOver
	}
	if a.Kind.carriesCards() != (len(a.Cards) > 0) {
		return s.illegal(a, "wrong number of cards")
	}
	if !distinct(a.Cards) {
		return s.illegal(a, "repeated card")
	}
	seat := s.CurrentSeat()
	for _, c := range a.Cards {
		if !s.players[seat].holds(c) {
			return s.illegal(a, "card "+c.String()+" not in hand")
		}
	}

	switch phase {
	case OpenPhase:
		if a.Kind != AddAction {
			return s.illegal(a, "round must be opened with an attack")
		}
		if !sameRank(a.Cards) {
			return s.illegal(a, "opening cards must share a rank")
		}
		if len(a.Cards) > len(s.players[s.defender].hand) {
			return s.illegal(a, "attack exceeds defender's hand")
		}
	case AttackPhase, PickupPhase:
		switch a.Kind {
		case PassAction:
			if !s.CanPass() {
				return ErrCannotPass
			}
		case RideAction:
			if phase != AttackPhase {
				return s.illegal(a, "cannot ride while the defender eats")
			}
		case BlockAction:
			if phase != PickupPhase {
				return s.illegal(a, "nothing to block")
			}
		case AddAction:
			ranks := tableRanks(s.attack, s.defense)
			if phase == PickupPhase {
				ranks = tableRanks(s.lastAtk, s.lastDef)
			}
			if len(a.Cards) != 1 || !ranks[a.Cards[0].Rank] {
				return s.illegal(a, "added card must match a rank on the table")
			}
		default:
			return s.illegal(a, "not an attacker action")
		}
	case DefendPhase:
		switch a.Kind {
		case EatAction:
		case TransferAction:
			if len(s.defense) > 0 {
				return s.illegal(a, "cannot transfer after defending")
			}
			for _, c := range a.Cards {
				if c.Rank != s.attack[0].Rank {
					return s.illegal(a, "transfer must match the attack rank")
				}
			}
			if len(a.Cards)+len(s.attack) > len(s.players[s.receivingSeat()].hand) {
				return s.illegal(a, "receiver holds too few cards")
			}
		case DefendAction:
			targets := s.attack
			if len(s.defense) > 0 {
				targets = s.attack[len(s.attack)-1:]
			}
			if len(a.Cards) != len(targets) {
				return s.illegal(a, "defense must answer the attack card for card")
			}
			for i, c := range a.Cards {
				if !s.BeatsCard(c, targets[i]) {
					return s.illegal(a, c.String()+" does not beat "+targets[i].String())
				}
			}
		default:
			return s.illegal(a, "not a defender action")
		}
	}
	return nil
}

func (s *State) illegal(a Action, reason string) error {
	return fmt.Errorf("%w: %s in %s: %s", ErrIllegalAction, a, s.Phase(), reason)
}

func distinct(cards []Card) bool {
	seen := CardSet(0)
	for _, c := range cards {
		if seen.Has(c) {
			return false
		}
		seen = seen.Add(c)
	}
	return true
}

func sameRank(cards []Card) bool {
	for _, c := range cards[1:] {
		if c.Rank != cards[0].Rank {
			return false
		}
	}
	return true
}

// eliminate removes every empty-handed player once the talon is exhausted, in one
// compaction pass that keeps seats, roles and beliefs consistent.
func (s *State) eliminate() {
	if len(s.talon) > 0 {
		return
	}
	newSeat := make([]int, len(s.players))
	survivors := s.players[:0:0]
	for i, p := range s.players {
		if len(p.hand) == 0 {
			newSeat[i] = -1
			continue
		}
		newSeat[i] = len(survivors)
		survivors = append(survivors, p)
	}
	if len(survivors) == len(s.players) {
		return
	}
	for i, p := range s.players {
		if newSeat[i] >= 0 {
			continue
		}
		for j := range survivors {
			delete(survivors[j].handBeliefs, p.Position)
		}
	}

	oldAttacker, oldDefender := s.attacker, s.defender
	s.players = survivors
	n := len(survivors)
	if n < 2 {
		s.attacker, s.defender = 0, 0
		return
	}

	if seat := newSeat[oldDefender]; seat >= 0 {
		s.defender = seat
		attacker := newSeat[oldAttacker]
		s.attacker = attacker
		if attacker < 0 || attacker == seat || !containsSeat(s.AllowedAttackers(), attacker) {
			s.resetAttacker()
		}
		return
	}

	// The defender left: the nearest surviving seat at or before the attacker carries on.
	attacker := -1
	for offset := 0; offset < len(newSeat) && attacker < 0; offset++ {
		attacker = newSeat[movePosition(oldAttacker, -offset, len(newSeat))]
	}
	s.attacker = attacker
	s.defender = movePosition(attacker, 1, n)
}

func containsSeat(seats []int, seat int) bool {
	for _, s := range seats {
		if s == seat {
			return true
		}
	}
	return false
}
