// Package metrics defines the records an experiment produces and writes
// them out as CSV files for offline analysis.
package metrics

import "time"

// AgentConfig identifies one agent configuration under test.
type AgentConfig struct {
	ID   int
	Name string
	Seed uint64
}

// GameRecord captures the outcome of a single game between two configured
// agents.
type GameRecord struct {
	ID             int
	Agent1         int // AgentConfig.ID
	Agent2         int // AgentConfig.ID
	Rows           int
	Cols           int
	StartingPlayer int
	Winner         string // "Player1", "Player2" or "" for a draw
	Moves          int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}
