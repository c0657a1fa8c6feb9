package game

// Step applies a and, when it closes a round, refills the hands from the talon.
func (s *State) Step(a Action) error {
	round := s.round
	if err := s.Transition(a); err != nil {
		return err
	}
	if s.round != round {
		s.Restock()
	}
	return nil
}

// Restock refills hands up to the target size, starting at the first eligible attacker
// and moving backwards around the table until the talon runs out.
func (s *State) Restock() {
	n := len(s.players)
	if n == 0 {
		return
	}
	first := s.attacker
	if eligible := s.AllowedAttackers(); len(eligible) > 0 {
		first = eligible[0]
	}
	for i := 0; i < n && len(s.talon) > 0; i++ {
		seat := movePosition(first, -i, n)
		for len(s.players[seat].hand) < s.handSize && len(s.talon) > 0 {
			s.privatePickUp(seat, s.draw())
		}
	}
	s.eliminate()
}

// IsTerminal reports whether the game is decided.
func (s *State) IsTerminal() bool {
	if len(s.players) <= 1 {
		return true
	}
	if len(s.talon) > 0 {
		return false
	}
	holding := 0
	for _, p := range s.players {
		if len(p.hand) > 0 {
			holding++
		}
	}
	return holding <= 1
}

// Loser returns the position of the durak. The second result is false while the game
// is still running, and when everybody went out together.
func (s *State) Loser() (int, bool) {
	if !s.IsTerminal() {
		return NoPosition, false
	}
	for _, p := range s.players {
		if len(p.hand) > 0 {
			return p.Position, true
		}
	}
	return NoPosition, false
}
