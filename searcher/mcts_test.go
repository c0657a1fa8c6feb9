package searcher

import (
	"testing"
	"time"

	"durak/game"
	"durak/player"

	"github.com/stretchr/testify/require"
)

/*
- configuration: exactly one of episodes or duration
- search: returns a legal root action, never touches the live state
- visits: root children visits add up to the episodes run, also across goroutines
- playouts: full playouts report the durak, cut off playouts the player holding most cards
*/

func newGame(t *testing.T, players int, seed uint64) *game.State {
	s, err := game.New(players, game.WithSeed(seed))
	require.NoError(t, err)
	return s
}

func sumVisits(visits []ActionVisits) float64 {
	total := 0.0
	for _, v := range visits {
		total += v.Visits
	}
	return total
}

func TestNewMCTS(t *testing.T) {
	t.Run("requires a budget", func(t *testing.T) {
		_, err := NewMCTS()
		require.ErrorIs(t, err, ErrSearchBudget)
	})

	t.Run("rejects two budgets", func(t *testing.T) {
		_, err := NewMCTS(WithEpisodes(10), WithDuration(time.Second))
		require.ErrorIs(t, err, ErrSearchBudget)
	})

	t.Run("ignores non-positive values", func(t *testing.T) {
		_, err := NewMCTS(WithEpisodes(0), WithDuration(-time.Second))
		require.ErrorIs(t, err, ErrSearchBudget)

		m, err := NewMCTS(WithEpisodes(10), WithGoroutines(0), WithCutoff(-1), WithPolicy(nil))
		require.NoError(t, err)
		require.Equal(t, 1, m.goroutines)
		require.Equal(t, MaxCutoff, m.cutoff)
		require.Equal(t, player.Heuristic{}, m.policy)
	})
}

func TestSearch(t *testing.T) {
	t.Run("returns a legal action and leaves the state alone", func(t *testing.T) {
		s := newGame(t, 3, 4)
		before := s.Clone()
		m, err := NewMCTS(WithEpisodes(200), WithSeed(1))
		require.NoError(t, err)

		action, _, err := m.Search(s)
		require.NoError(t, err)
		require.True(t, game.ContainsAction(s.Actions(), action))
		require.Equal(t, before, s)
	})

	t.Run("every episode visits one root child", func(t *testing.T) {
		s := newGame(t, 2, 5)
		m, err := NewMCTS(WithEpisodes(150), WithSeed(2), WithMetrics())
		require.NoError(t, err)

		visits, metric, err := m.Simulate(s)
		require.NoError(t, err)
		require.Equal(t, 150.0, sumVisits(visits))
		require.Equal(t, 150, metric.Episodes)
		require.Equal(t, 150, metric.FullPlayouts+metric.CutoffPlayouts)
		for _, v := range visits {
			require.True(t, game.ContainsAction(s.Actions(), v.Action))
		}
	})

	t.Run("root parallel search merges the trees", func(t *testing.T) {
		s := newGame(t, 4, 6)
		m, err := NewMCTS(WithEpisodes(101), WithGoroutines(4), WithSeed(3), WithMetrics())
		require.NoError(t, err)

		visits, metric, err := m.Simulate(s)
		require.NoError(t, err)
		require.Equal(t, 101.0, sumVisits(visits))
		require.Equal(t, 101, metric.Episodes)
		require.Equal(t, 4, metric.Goroutines)

		seen := map[string]bool{}
		for _, v := range visits {
			require.False(t, seen[v.Action.Key()], "Merged actions should be unique")
			seen[v.Action.Key()] = true
		}
	})

	t.Run("time budget runs at least one episode", func(t *testing.T) {
		s := newGame(t, 2, 7)
		m, err := NewMCTS(WithDuration(time.Nanosecond), WithSeed(4), WithMetrics())
		require.NoError(t, err)

		action, metric, err := m.Search(s)
		require.NoError(t, err)
		require.GreaterOrEqual(t, metric.Episodes, 1)
		require.True(t, game.ContainsAction(s.Actions(), action))
	})

	t.Run("same seed searches the same way", func(t *testing.T) {
		s := newGame(t, 3, 8)
		a, err := NewMCTS(WithEpisodes(80), WithSeed(5))
		require.NoError(t, err)
		b, err := NewMCTS(WithEpisodes(80), WithSeed(5))
		require.NoError(t, err)

		visitsA, _, err := a.Simulate(s)
		require.NoError(t, err)
		visitsB, _, err := b.Simulate(s)
		require.NoError(t, err)
		require.Equal(t, visitsA, visitsB)
	})

	t.Run("finds the only winning attack", func(t *testing.T) {
		// Player 0 holds {9, 7} and player 1 holds {8, 6} of a single trump suit. Leading
		// the 9 forces a pickup, after which the 7 goes out; leading the 7 loses.
		talon := []game.Card{card(0, 0), card(1, 0), card(2, 0), card(3, 0)}
		s, err := game.New(2, game.WithDeck(1, 4), game.WithHandSize(2), game.WithTrump(0), game.WithTalon(talon))
		require.NoError(t, err)
		m, err := NewMCTS(WithEpisodes(100), WithSeed(6))
		require.NoError(t, err)

		action, _, err := m.Search(s)
		require.NoError(t, err)
		require.Equal(t, game.Add(card(3, 0)), action)
	})

	t.Run("refuses finished games", func(t *testing.T) {
		talon := []game.Card{card(0, 0), card(1, 0), card(2, 0), card(3, 0)}
		s, err := game.New(2, game.WithDeck(1, 4), game.WithHandSize(2), game.WithTrump(0), game.WithTalon(talon))
		require.NoError(t, err)
		require.NoError(t, s.Step(game.Add(card(3, 0))))
		require.NoError(t, s.Step(game.Eat()))
		require.NoError(t, s.Step(game.Block()))
		require.NoError(t, s.Step(game.Add(card(1, 0))))
		require.True(t, s.IsTerminal())

		m, err := NewMCTS(WithEpisodes(10))
		require.NoError(t, err)
		_, _, err = m.Search(s)
		require.ErrorIs(t, err, game.ErrGameOver)
	})
}

func TestRollout(t *testing.T) {
	t.Run("cut off playouts blame the biggest hand", func(t *testing.T) {
		s := newGame(t, 2, 9)
		m, err := NewMCTS(WithEpisodes(20), WithCutoff(1), WithSeed(7), WithMetrics())
		require.NoError(t, err)

		_, metric, err := m.Simulate(s)
		require.NoError(t, err)
		require.Equal(t, 20, metric.CutoffPlayouts)
		require.Zero(t, metric.FullPlayouts)
	})

	t.Run("most cards breaks ties by seat", func(t *testing.T) {
		s := newGame(t, 3, 10)
		require.Equal(t, 0, mostCards(s))

		require.NoError(t, s.Step(s.Actions()[0]))
		require.Equal(t, 1, mostCards(s), "Defender now holds more than the attacker")
	})

	t.Run("random playouts finish games too", func(t *testing.T) {
		s := newGame(t, 2, 11)
		m, err := NewMCTS(WithEpisodes(30), WithPolicy(player.Random{}), WithSeed(8), WithMetrics())
		require.NoError(t, err)

		_, metric, err := m.Simulate(s)
		require.NoError(t, err)
		require.Equal(t, 30, metric.Episodes)
	})
}
