package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Determinize samples a fully observable state consistent with what the player to move
// knows: its own hand, the table, the discard pile and the cards it has seen others pick
// up. Talon and hand sizes match the source exactly. The source state is not modified.
func (s *State) Determinize(rng *rand.Rand) (*State, error) {
	if len(s.players) == 0 {
		return s.Clone(), nil
	}
	viewer := s.CurrentSeat()
	view := s.players[viewer]

	candidates := view.talonBelief.Cards()
	if len(candidates) < len(s.talon) {
		return nil, fmt.Errorf("%w: %d talon candidates for %d cards", ErrBeliefInconsistent, len(candidates), len(s.talon))
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	talon := candidates[:len(s.talon)]

	used := NewCardSet(talon...).
		Union(s.discard).
		Union(NewCardSet(view.hand...)).
		Union(NewCardSet(s.attack...)).
		Union(NewCardSet(s.defense...))
	for _, belief := range view.handBeliefs {
		used = used.Union(belief)
	}
	pool := s.deck.Minus(used).Cards()
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	sample := s.Clone()
	sample.talon = cloneCards(talon)
	for seat := range sample.players {
		if seat == viewer {
			continue
		}
		p := &sample.players[seat]
		size := len(p.hand)
		hand := view.handBeliefs[p.Position].Cards()
		if len(hand) > size {
			return nil, fmt.Errorf("%w: seat %d is believed to hold %d cards but holds %d", ErrBeliefInconsistent, seat, len(hand), size)
		}
		missing := size - len(hand)
		if missing > len(pool) {
			return nil, fmt.Errorf("%w: %d unaccounted cards for %d hidden cards", ErrBeliefInconsistent, len(pool), missing)
		}
		p.hand = append(hand, pool[:missing]...)
		pool = pool[missing:]
	}

	if err := sample.checkPartition(); err != nil {
		return nil, err
	}
	return sample, nil
}

// checkPartition verifies that talon, discard, hands and table hold every card of the deck exactly once.
func (s *State) checkPartition() error {
	seen := s.discard
	total := s.discard.Len()
	add := func(cards []Card) {
		seen = seen.Union(NewCardSet(cards...))
		total += len(cards)
	}
	add(s.talon)
	add(s.attack)
	add(s.defense)
	for _, p := range s.players {
		add(p.hand)
	}
	if seen != s.deck || total != s.deck.Len() {
		return fmt.Errorf("%w: cards on the table, in hands and piles do not partition the deck", ErrBeliefInconsistent)
	}
	return nil
}
