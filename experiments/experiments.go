// Package experiments benchmarks agents against each other over batches of
// headless games. The random agent is the baseline floor every other
// strategy is compared against.
package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"connectfour/agent"
	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/gamemaster"
)

// Config controls one baseline experiment run.
type Config struct {
	Games int
	Rows  int
	Cols  int
	Seed  uint64
}

// RunBaseline plays Games matches of random-versus-random on the configured
// board, alternating the starting player, and returns one record per game.
func RunBaseline(cfg Config) ([]metrics.GameRecord, error) {
	records := make([]metrics.GameRecord, 0, cfg.Games)

	log.Info().Msgf("starting baseline experiment: %d games on a %dx%d board", cfg.Games, cfg.Rows, cfg.Cols)

	for i := 0; i < cfg.Games; i++ {
		first := game.PlayerOne
		if i%2 == 1 {
			first = game.PlayerTwo
		}

		record, err := runGame(cfg, i, first)
		if err != nil {
			return nil, fmt.Errorf("game %d failed: %w", i+1, err)
		}
		records = append(records, record)

		log.Info().Msgf("completed game %d of %d, winner: %s", i+1, cfg.Games, winnerLabel(record.Winner))
	}

	log.Info().Msgf("completed baseline experiment: %s", Summary(records))
	return records, nil
}

func runGame(cfg Config, index int, first game.Cell) (metrics.GameRecord, error) {
	g, err := game.New(game.Config{Rows: cfg.Rows, Cols: cfg.Cols})
	if err != nil {
		return metrics.GameRecord{}, err
	}

	// Per-game seed offsets keep each match independent but reproducible.
	gm := gamemaster.New(g,
		agent.NewRandomSeeded(cfg.Seed+uint64(2*index)),
		agent.NewRandomSeeded(cfg.Seed+uint64(2*index)+1))
	gm.NewGame(first)

	start := time.Now()
	moves := 0
	for !g.GameOver() {
		if _, err := gm.PlayAgentTurn(); err != nil {
			return metrics.GameRecord{}, err
		}
		moves++
	}
	end := time.Now()

	winner := ""
	if g.Winner() != game.Empty {
		winner = g.Winner().String()
	}

	return metrics.GameRecord{
		ID:             index + 1,
		Agent1:         1,
		Agent2:         2,
		Rows:           cfg.Rows,
		Cols:           cfg.Cols,
		StartingPlayer: int(first),
		Winner:         winner,
		Moves:          moves,
		StartTime:      start,
		EndTime:        end,
		Duration:       end.Sub(start),
	}, nil
}

// WriteResults stores the agent configurations and game records for one run
// under root/name/<timestamp>.
func WriteResults(root, name string, cfg Config, records []metrics.GameRecord) error {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	configs := []metrics.AgentConfig{
		{ID: 1, Name: "random", Seed: cfg.Seed},
		{ID: 2, Name: "random", Seed: cfg.Seed + 1},
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}

	if err := writer.WriteGameRecords(records); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}

	log.Info().Msgf("stored %d game records in %s", len(records), writer.Dir())
	return nil
}

// Summary condenses a batch of records into a win/draw tally.
func Summary(records []metrics.GameRecord) string {
	var p1, p2, draws, moves int
	for _, r := range records {
		switch r.Winner {
		case game.PlayerOne.String():
			p1++
		case game.PlayerTwo.String():
			p2++
		default:
			draws++
		}
		moves += r.Moves
	}
	avg := 0
	if len(records) > 0 {
		avg = moves / len(records)
	}
	return fmt.Sprintf("%d games: Player1 %d, Player2 %d, draws %d, avg %d moves", len(records), p1, p2, draws, avg)
}

func winnerLabel(winner string) string {
	if winner == "" {
		return "draw"
	}
	return winner
}
