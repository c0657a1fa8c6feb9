package game

import "durak/utils"

// BeatsCard reports whether d beats c when trump is the trump suit.
func BeatsCard(d, c Card, trump int) bool {
	switch {
	case d.Suit == trump && c.Suit != trump:
		return true
	case d.Suit == c.Suit:
		return d.Rank > c.Rank
	default:
		return false
	}
}

func (s *State) BeatsCard(d, c Card) bool {
	return BeatsCard(d, c, s.trump)
}

// AllowedAttackers lists the seats allowed to attack the current defender, in pass order.
func (s *State) AllowedAttackers() []int {
	return allowedAttackers(s.defender, len(s.players))
}

func allowedAttackers(defender, n int) []int {
	seat := func(offset int) int {
		return movePosition(defender, offset, n)
	}
	switch {
	case n < 2:
		return nil
	case n == 2:
		return []int{seat(1)}
	case n == 3:
		return []int{seat(-1), seat(1)}
	case n == 4:
		// right, left, across
		return []int{seat(-1), seat(1), seat(2)}
	default:
		return []int{seat(1), seat(-1)}
	}
}

func movePosition(seat, offset, n int) int {
	return ((seat+offset)%n + n) % n
}

// CanPass reports whether the attacker to move may hand over to a later eligible attacker.
func (s *State) CanPass() bool {
	eligible := s.AllowedAttackers()
	i := utils.FindIndex(eligible, s.attacker)
	return i >= 0 && i < len(eligible)-1
}

func (s *State) passAttack() error {
	eligible := s.AllowedAttackers()
	i := utils.FindIndex(eligible, s.attacker)
	if i < 0 || i == len(eligible)-1 {
		return ErrCannotPass
	}
	s.attacker = eligible[i+1]
	return nil
}

// resetAttacker hands the initiative back to the first eligible attacker.
func (s *State) resetAttacker() {
	if eligible := s.AllowedAttackers(); len(eligible) > 0 {
		s.attacker = eligible[0]
	}
}

// advanceAttacker moves the main attack k seats on from the seat before the defender.
func (s *State) advanceAttacker(k int) {
	n := len(s.players)
	s.attacker = movePosition(s.defender, k-1, n)
	s.defender = movePosition(s.attacker, 1, n)
}
