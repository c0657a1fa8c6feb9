package game

// Player is one seat's private view of the game: its hand and what it believes about the rest.
type Player struct {
	Position int // stable across eliminations

	hand        []Card
	talonBelief CardSet         // cards this player thinks may still be in the talon
	handBeliefs map[int]CardSet // by other player's position: cards known to be in that hand
}

func newPlayer(position int, deck CardSet, others []int) Player {
	p := Player{
		Position:    position,
		talonBelief: deck,
		handBeliefs: make(map[int]CardSet, len(others)),
	}
	for _, other := range others {
		if other != position {
			p.handBeliefs[other] = 0
		}
	}
	return p
}

func (p Player) clone() Player {
	beliefs := make(map[int]CardSet, len(p.handBeliefs))
	for position, belief := range p.handBeliefs {
		beliefs[position] = belief
	}
	return Player{
		Position:    p.Position,
		hand:        cloneCards(p.hand),
		talonBelief: p.talonBelief,
		handBeliefs: beliefs,
	}
}

func (p *Player) holds(c Card) bool {
	for _, h := range p.hand {
		if h == c {
			return true
		}
	}
	return false
}

func (p *Player) removeFromHand(c Card) {
	for i, h := range p.hand {
		if h == c {
			p.hand = append(p.hand[:i], p.hand[i+1:]...)
			return
		}
	}
	panic("card " + c.String() + " is not in hand")
}

// privatePickUp draws cards nobody else sees.
func (s *State) privatePickUp(seat int, cards ...Card) {
	p := &s.players[seat]
	for _, c := range cards {
		p.hand = append(p.hand, c)
		p.talonBelief = p.talonBelief.Remove(c)
	}
}

// publicPickUp takes cards in view of the table; everyone else now knows they are in this hand.
func (s *State) publicPickUp(seat int, cards ...Card) {
	p := &s.players[seat]
	for _, c := range cards {
		p.hand = append(p.hand, c)
		for i := range s.players {
			if i != seat {
				s.players[i].handBeliefs[p.Position] = s.players[i].handBeliefs[p.Position].Add(c)
			}
		}
	}
}

// publicPlay moves cards out of a hand face up.
func (s *State) publicPlay(seat int, cards ...Card) {
	p := &s.players[seat]
	for _, c := range cards {
		p.removeFromHand(c)
		for i := range s.players {
			if i == seat {
				continue
			}
			other := &s.players[i]
			other.handBeliefs[p.Position] = other.handBeliefs[p.Position].Remove(c)
			other.talonBelief = other.talonBelief.Remove(c)
		}
	}
}
