package metrics

import "time"

// AgentConfig describes a search agent taking part in an experiment.
type AgentConfig struct {
	ID         int
	Goroutines int
	Duration   time.Duration
	Episodes   int
	Cutoff     int
}

type GameRecord struct {
	ID       int
	Baseline string // playout policy of every other seat
	Agent    int    // AgentConfig.ID of the search agent
	GameMetric
}
