package engine

import (
	"errors"

	"durak/experiments/metrics"
)

const MaxMoves = 10000

var (
	ErrTooManyMoves = errors.New("game exceeded the move limit")
	ErrAgentCount   = errors.New("need exactly one agent per player")
)

type Engine interface {
	// Run plays a game till there's a durak (or everyone is out) or a max number of moves is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
