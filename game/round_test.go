package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRestock(t *testing.T) {
	t.Run("refills backwards from the first eligible attacker", func(t *testing.T) {
		talon := []Card{card(8, 0), card(8, 1), card(8, 2)}
		s := newTestState(3, talon,
			[]Card{card(0, 0)},
			[]Card{card(1, 0), card(1, 1), card(1, 2)},
			[]Card{card(2, 0), card(2, 1)})
		s.handSize = 3

		s.Restock()

		require.Equal(t, []Card{card(0, 0), card(8, 2), card(8, 1)}, s.Hand(0))
		require.Equal(t, []Card{card(2, 0), card(2, 1), card(8, 0)}, s.Hand(2))
		require.Equal(t, 3, s.HandSize(1))
		require.Equal(t, 0, s.TalonSize())
	})

	t.Run("stops when the talon runs out", func(t *testing.T) {
		talon := []Card{card(8, 0)}
		s := newTestState(3, talon,
			[]Card{card(0, 0)},
			[]Card{card(1, 0)},
			[]Card{card(2, 0)})

		s.Restock()

		require.Equal(t, 2, s.HandSize(0))
		require.Equal(t, 1, s.HandSize(1))
		require.Equal(t, 1, s.HandSize(2))
	})

	t.Run("never draws from an empty talon", func(t *testing.T) {
		s := newTestState(3, nil,
			[]Card{card(0, 0)},
			[]Card{card(1, 0)})
		before := s.Clone()

		s.Restock()

		require.Equal(t, before, s)
	})

	t.Run("players left without cards leave once the talon is gone", func(t *testing.T) {
		s := newTestState(3, []Card{card(8, 0)},
			[]Card{},
			[]Card{card(1, 0)},
			[]Card{card(2, 0)})
		s.attacker, s.defender = 1, 2

		s.Restock()

		require.Equal(t, []int{1, 2}, s.PlayerNumbers(), "Seat 1 draws the last card and seat 0 is out")
		require.Equal(t, 2, s.HandSize(0))
		require.Equal(t, 0, s.Attacker())
		require.Equal(t, 1, s.Defender())
	})
}

func TestTermination(t *testing.T) {
	t.Run("the last player holding cards is the durak", func(t *testing.T) {
		s := newTestState(3, nil,
			[]Card{},
			[]Card{card(1, 0)},
			[]Card{})
		require.True(t, s.IsTerminal())
		loser, ok := s.Loser()
		require.True(t, ok)
		require.Equal(t, 1, loser)
	})

	t.Run("nobody loses when everyone goes out", func(t *testing.T) {
		s := newTestState(3, nil, []Card{}, []Card{})
		require.True(t, s.IsTerminal())
		_, ok := s.Loser()
		require.False(t, ok)

		s.players = nil
		require.True(t, s.IsTerminal())
		_, ok = s.Loser()
		require.False(t, ok)
	})

	t.Run("cards in the talon keep the game going", func(t *testing.T) {
		s := newTestState(3, []Card{card(8, 0)}, []Card{}, []Card{card(1, 0)})
		require.False(t, s.IsTerminal())
		_, ok := s.Loser()
		require.False(t, ok)
	})
}

func TestFixedGameEndsWithKnownLoser(t *testing.T) {
	talon := []Card{card(0, 0), card(1, 0), card(2, 0), card(3, 0)}
	s, err := New(2, WithSeed(1), WithDeck(1, 4), WithHandSize(2), WithTrump(0), WithTalon(talon))
	require.NoError(t, err)

	require.NoError(t, s.Step(Add(card(1, 0))))
	require.Equal(t, []Action{Eat(), Defend(card(2, 0))}, s.Actions())
	require.NoError(t, s.Step(Defend(card(2, 0))))
	require.Equal(t, []Action{Ride()}, s.Actions())
	require.NoError(t, s.Step(Ride()))
	require.Equal(t, 1, s.CurrentPosition())
	require.Equal(t, []Action{Add(card(0, 0))}, s.Actions())
	require.NoError(t, s.Step(Add(card(0, 0))))

	require.True(t, s.IsTerminal())
	loser, ok := s.Loser()
	require.True(t, ok)
	require.Equal(t, 0, loser, "Player 0 is left holding the highest card")
	require.Equal(t, []Card{card(3, 0)}, s.Hand(0))
}
