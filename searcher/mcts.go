package searcher

import (
	"errors"
	"fmt"
	"time"

	"durak/experiments/metrics"
	"durak/game"
	"durak/player"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

var ErrSearchBudget = errors.New("exactly one of episodes or duration must be set")

type Option func(mcts *MCTS)

// ActionVisits is the visit count of one root action.
type ActionVisits struct {
	Action game.Action
	Visits float64
}

// MCTS searches a game tree over determinized playouts. An MCTS is not safe for
// concurrent use; WithGoroutines parallelizes a single search.
type MCTS struct {
	goroutines int
	duration   time.Duration
	episodes   int
	cutoff     int
	policy     player.Policy
	rng        *rand.Rand
	metrics    func() metrics.Collector
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithGoroutines(goroutines int) Option {
	return func(m *MCTS) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

// WithPolicy sets the playout policy. The default is the heuristic player.
func WithPolicy(policy player.Policy) Option {
	return func(m *MCTS) {
		if policy != nil {
			m.policy = policy
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector
	}
}

func NewMCTS(options ...Option) (*MCTS, error) {
	m := &MCTS{ // Default values
		goroutines: 1,
		cutoff:     MaxCutoff,
		policy:     player.Heuristic{},
		metrics:    metrics.NewDummyCollector,
	}
	for _, option := range options {
		option(m)
	}
	if (m.episodes > 0) == (m.duration > 0) {
		return nil, ErrSearchBudget
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m, nil
}

// Search returns the most visited action at the root, the earliest expanded one on ties.
func (m *MCTS) Search(state *game.State) (game.Action, metrics.SearchMetric, error) {
	visits, metric, err := m.Simulate(state)
	if err != nil {
		return game.Action{}, metric, err
	}
	best := visits[0]
	for _, v := range visits[1:] {
		if v.Visits > best.Visits {
			best = v
		}
	}
	return best.Action, metric, nil
}

// Simulate runs the configured budget of episodes from state and returns the visit count
// of every explored root action in expansion order. state itself is never modified.
func (m *MCTS) Simulate(state *game.State) ([]ActionVisits, metrics.SearchMetric, error) {
	if state.IsTerminal() {
		return nil, metrics.SearchMetric{}, game.ErrGameOver
	}
	collector := m.metrics()
	collector.Start(m.goroutines, m.cutoff)

	roots := make([]*node, m.goroutines)
	rngs := make([]*rand.Rand, m.goroutines)
	for i := range roots {
		roots[i] = newNode(nil, game.Action{}, state.LastPlayer())
		rngs[i] = m.rng
		if m.goroutines > 1 {
			rngs[i] = rand.New(rand.NewSource(m.rng.Uint64()))
		}
	}

	var g errgroup.Group
	deadline := time.Now().Add(m.duration)
	for i := range roots {
		episodes := m.episodes / m.goroutines
		if i < m.episodes%m.goroutines {
			episodes++
		}
		if m.episodes > 0 && episodes == 0 {
			continue
		}
		i := i
		g.Go(func() error {
			if m.episodes > 0 {
				return m.iterate(roots[i], state, rngs[i], episodes, collector)
			}
			return m.countdown(roots[i], state, rngs[i], deadline, collector)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, collector.Complete(), err
	}
	return merge(roots), collector.Complete(), nil
}

func (m *MCTS) iterate(root *node, state *game.State, rng *rand.Rand, episodes int, collector metrics.Collector) error {
	for i := 0; i < episodes; i++ {
		if err := m.simulate(root, state, rng, collector); err != nil {
			return err
		}
		collector.AddEpisode()
	}
	return nil
}

func (m *MCTS) countdown(root *node, state *game.State, rng *rand.Rand, deadline time.Time, collector metrics.Collector) error {
	for first := true; first || time.Now().Before(deadline); first = false {
		if err := m.simulate(root, state, rng, collector); err != nil {
			return err
		}
		collector.AddEpisode()
	}
	return nil
}

func (m *MCTS) simulate(root *node, state *game.State, rng *rand.Rand, collector metrics.Collector) error {
	newNode, newState := selectThenExpand(root, state.Clone(), rng)
	loser, hasLoser, err := m.rollout(newState, rng, collector)
	if err != nil {
		return err
	}
	backup(newNode, loser, hasLoser)
	return nil
}

// selectThenExpand descends by UCB1 through fully expanded nodes and adds one child
// below the first node that is not. state is advanced along the way.
func selectThenExpand(root *node, state *game.State, rng *rand.Rand) (*node, *game.State) {
	n := root
	for !state.IsTerminal() {
		actions := state.Actions()
		if !n.isFullyExpanded(actions) {
			untried := n.untried(actions)
			action := untried[rng.Intn(len(untried))]
			mover := state.CurrentPosition()
			mustStep(state, action)
			return n.expand(action, mover), state
		}
		n = n.selectChild()
		mustStep(state, n.action)
	}
	return n, state
}

func mustStep(state *game.State, action game.Action) {
	if err := state.Step(action); err != nil {
		panic(fmt.Sprintf("tree action %s is not legal: %v", action, err))
	}
}

// rollout plays a determinization of state to the end with the playout policy and
// returns the durak's position.
func (m *MCTS) rollout(state *game.State, rng *rand.Rand, collector metrics.Collector) (int, bool, error) {
	if state.IsTerminal() {
		collector.AddFullPlayout()
		loser, ok := state.Loser()
		return loser, ok, nil
	}

	sample, err := state.Determinize(rng)
	if err != nil {
		return game.NoPosition, false, err
	}
	for depth := 0; !sample.IsTerminal(); depth++ {
		if depth >= m.cutoff {
			collector.AddCutoffPlayout()
			return mostCards(sample), true, nil
		}
		action := m.policy.Choose(sample, sample.Actions(), rng)
		if err := sample.Step(action); err != nil {
			return game.NoPosition, false, fmt.Errorf("playout policy: %w", err)
		}
	}
	collector.AddFullPlayout()
	loser, ok := sample.Loser()
	return loser, ok, nil
}

// mostCards names the player holding the most cards, the lowest seat on ties.
func mostCards(state *game.State) int {
	seat := 0
	for i := 1; i < state.NumPlayers(); i++ {
		if state.HandSize(i) > state.HandSize(seat) {
			seat = i
		}
	}
	return state.PlayerNumbers()[seat]
}

func backup(newNode *node, loser int, hasLoser bool) {
	n := newNode
	for n != nil {
		n = n.update(loser, hasLoser)
	}
}

// merge sums root child visits across trees by action, keeping first-seen order.
func merge(roots []*node) []ActionVisits {
	index := make(map[string]int)
	var visits []ActionVisits
	for _, root := range roots {
		for _, child := range root.children {
			key := child.action.Key()
			i, ok := index[key]
			if !ok {
				i = len(visits)
				index[key] = i
				visits = append(visits, ActionVisits{Action: child.action})
			}
			visits[i].Visits += child.visits
		}
	}
	return visits
}
