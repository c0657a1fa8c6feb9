package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func card(rank, suit int) Card {
	return Card{Rank: rank, Suit: suit}
}

// newTestState seats one player per hand on a standard deck. Cards that are neither in
// the talon nor in a hand are treated as discarded, and every player has seen them go.
func newTestState(trump int, talon []Card, hands ...[]Card) *State {
	deck := NewCardSet(Deck(DefaultSuits, DefaultRanks)...)
	positions := make([]int, len(hands))
	for i := range positions {
		positions[i] = i
	}
	s := &State{
		suits:        DefaultSuits,
		ranks:        DefaultRanks,
		handSize:     DefaultHandSize,
		deck:         deck,
		trump:        trump,
		talon:        cloneCards(talon),
		attacker:     0,
		defender:     1,
		attackerMove: true,
		lastPlayer:   NoPosition,
	}
	used := NewCardSet(talon...)
	for i, hand := range hands {
		s.players = append(s.players, newPlayer(i, deck, positions))
		s.privatePickUp(i, hand...)
		used = used.Union(NewCardSet(hand...))
	}
	s.discard = deck.Minus(used)
	for i := range s.players {
		s.players[i].talonBelief = s.players[i].talonBelief.Minus(s.discard)
	}
	return s
}

func TestNew(t *testing.T) {
	t.Run("dealing a seeded game for three players", func(t *testing.T) {
		s, err := New(3, WithSeed(42))
		require.NoError(t, err)

		require.Equal(t, 3, s.NumPlayers())
		for seat := 0; seat < 3; seat++ {
			require.Equal(t, DefaultHandSize, s.HandSize(seat), "Every player should be dealt a full hand")
		}
		require.Equal(t, 36-3*DefaultHandSize, s.TalonSize())
		require.GreaterOrEqual(t, s.Trump(), 0)
		require.Less(t, s.Trump(), DefaultSuits)
		require.Equal(t, OpenPhase, s.Phase())
		require.Equal(t, 0, s.CurrentPosition(), "Player 0 should open the game")
		require.Equal(t, NoPosition, s.LastPlayer())
		require.NoError(t, s.checkPartition())
	})

	t.Run("same seed deals the same game", func(t *testing.T) {
		a, err := New(4, WithSeed(7))
		require.NoError(t, err)
		b, err := New(4, WithSeed(7))
		require.NoError(t, err)
		require.Equal(t, a, b)
	})

	t.Run("fixed talon deals from the top alternating seats", func(t *testing.T) {
		talon := []Card{card(0, 0), card(1, 0), card(2, 0), card(3, 0)}
		s, err := New(2, WithDeck(1, 4), WithHandSize(2), WithTrump(0), WithTalon(talon))
		require.NoError(t, err)

		require.Equal(t, []Card{card(3, 0), card(1, 0)}, s.Hand(0))
		require.Equal(t, []Card{card(2, 0), card(0, 0)}, s.Hand(1))
		require.Equal(t, 0, s.TalonSize())
	})

	t.Run("private draws shrink only the drawer's talon belief", func(t *testing.T) {
		s, err := New(2, WithSeed(3))
		require.NoError(t, err)
		for _, c := range s.Hand(0) {
			require.False(t, s.TalonBelief(0).Has(c))
			require.True(t, s.TalonBelief(1).Has(c), "Opponent has not seen the card")
		}
		require.Equal(t, CardSet(0), s.HandBelief(1, 0))
	})

	t.Run("rejecting invalid configurations", func(t *testing.T) {
		_, err := New(1)
		require.ErrorIs(t, err, ErrTooFewPlayers)

		_, err = New(3, WithDeck(1, 4))
		require.ErrorIs(t, err, ErrInvalidConfig, "Deck too small to deal")

		_, err = New(2, WithDeck(5, 9))
		require.ErrorIs(t, err, ErrInvalidConfig)

		_, err = New(2, WithTrump(4))
		require.ErrorIs(t, err, ErrInvalidConfig)

		_, err = New(2, WithDeck(1, 4), WithHandSize(2), WithTalon([]Card{card(0, 0), card(0, 0), card(1, 0), card(2, 0)}))
		require.ErrorIs(t, err, ErrInvalidConfig, "Talon must be a permutation of the deck")
	})
}

func TestClone(t *testing.T) {
	t.Run("mutating a clone leaves the original untouched", func(t *testing.T) {
		s, err := New(3, WithSeed(11))
		require.NoError(t, err)
		snapshot := s.Clone()

		clone := s.Clone()
		actions := clone.Actions()
		require.NoError(t, clone.Step(actions[0]))
		require.NoError(t, clone.Step(clone.Actions()[0]))

		require.Equal(t, snapshot, s)
		require.NotEqual(t, snapshot, clone)
	})
}

func TestRandomPlayKeepsDeckPartitioned(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		players := 2 + int(seed%4)
		s, err := New(players, WithSeed(seed))
		require.NoError(t, err)
		rng := rand.New(rand.NewSource(seed))

		for move := 0; move < 3000 && !s.IsTerminal(); move++ {
			actions := s.Actions()
			require.NotEmpty(t, actions, "Non-terminal state must offer an action (seed %d)", seed)
			mover := s.CurrentPosition()
			a := actions[rng.Intn(len(actions))]
			require.NoError(t, s.Step(a))
			require.NoError(t, s.checkPartition(), "seed %d move %d", seed, move)
			require.Equal(t, mover, s.LastPlayer())
			if s.NumPlayers() >= 2 {
				require.NotEqual(t, s.Attacker(), s.Defender())
			}
		}
		if s.IsTerminal() {
			require.Empty(t, s.Actions())
			require.Equal(t, OverPhase, s.Phase())
		}
	}
}
