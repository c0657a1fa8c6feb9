package engine

import (
	"fmt"
	"time"

	"durak/experiments/metrics"
	"durak/game"
	"durak/searcher/agent"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Option func(e *LocalEngine)

func WithMaxMoves(moves int) Option {
	return func(e *LocalEngine) {
		if moves > 0 {
			e.maxMoves = moves
		}
	}
}

// LocalEngine drives one game in process. Agents are indexed by player position.
type LocalEngine struct {
	ID       uuid.UUID
	State    *game.State
	agents   []agent.Agent
	maxMoves int
	logger   zerolog.Logger
}

func NewLocalEngine(state *game.State, agents []agent.Agent, options ...Option) (*LocalEngine, error) {
	if len(agents) != state.NumPlayers() {
		return nil, fmt.Errorf("%w: %d agents for %d players", ErrAgentCount, len(agents), state.NumPlayers())
	}
	id := uuid.New()
	e := &LocalEngine{
		ID:       id,
		State:    state,
		agents:   agents,
		maxMoves: MaxMoves,
		logger:   log.With().Str("game", id.String()).Logger(),
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// Run executes the game loop until the game is over, restocking after every round.
func (e *LocalEngine) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:             e.ID,
		Players:        e.State.NumPlayers(),
		StartingPlayer: e.State.CurrentPosition(),
		Loser:          game.NoPosition,
		StartTime:      time.Now(),
	}
	e.logger.Info().Msgf("player %d is starting, trump is %s", gameMetric.StartingPlayer, game.SuitSymbol(e.State.Trump()))

	var moveMetrics []metrics.MoveMetric
	finish := func(err error) (metrics.GameMetric, []metrics.MoveMetric, error) {
		gameMetric.EndTime = time.Now()
		gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
		gameMetric.Rounds = e.State.Round()
		gameMetric.TotalMoves = len(moveMetrics)
		return gameMetric, moveMetrics, err
	}

	for !e.State.IsTerminal() {
		if len(moveMetrics) >= e.maxMoves {
			e.logger.Warn().Msgf("stopped after %d moves", len(moveMetrics))
			return finish(ErrTooManyMoves)
		}

		position := e.State.CurrentPosition()
		start := time.Now()
		action, searchMetric, err := e.agents[position].FindAction(e.State.Clone())
		if err != nil {
			return finish(fmt.Errorf("player %d: %w", position, err))
		}
		if !game.ContainsAction(e.State.Actions(), action) {
			e.logger.Warn().Msgf("player %d chose %s which is not legal", position, action)
			return finish(fmt.Errorf("player %d chose %s: %w", position, action, game.ErrIllegalAction))
		}
		if err := e.State.Step(action); err != nil {
			return finish(fmt.Errorf("player %d: %w", position, err))
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         len(moveMetrics) + 1,
			Round:        e.State.Round(),
			Player:       position,
			Action:       action.String(),
			Duration:     time.Since(start),
			SearchMetric: searchMetric,
		})
		e.logger.Debug().Msgf("move %d: player %d plays %s", len(moveMetrics), position, action)
	}

	if loser, ok := e.State.Loser(); ok {
		gameMetric.Loser = loser
		e.logger.Info().Msgf("game over after %d moves, player %d is the durak", len(moveMetrics), loser)
	} else {
		e.logger.Info().Msgf("game over after %d moves, nobody is left holding cards", len(moveMetrics))
	}
	return finish(nil)
}

var _ Engine = (*LocalEngine)(nil)
