package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"connectfour/config"
	"connectfour/experiments"
)

func main() {
	cfg := config.Load()

	rows := flag.Int("rows", cfg.Rows, "board rows")
	cols := flag.Int("cols", cfg.Cols, "board columns")
	games := flag.Int("games", cfg.Games, "number of games to play")
	seed := flag.Uint64("seed", cfg.Seed, "seed for the agents' RNG")
	out := flag.String("out", "results", "directory for experiment records")
	save := flag.Bool("save", false, "persist these settings as the new defaults")
	debug := flag.Bool("debug", false, "log every move")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	runCfg := experiments.Config{
		Games: *games,
		Rows:  *rows,
		Cols:  *cols,
		Seed:  *seed,
	}

	records, err := experiments.RunBaseline(runCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	if err := experiments.WriteResults(*out, "baseline", runCfg, records); err != nil {
		log.Fatal().Err(err).Msg("failed to store results")
	}

	if *save {
		saved := config.Config{Rows: *rows, Cols: *cols, Games: *games, Seed: *seed}
		if err := saved.Save(); err != nil {
			log.Warn().Err(err).Msg("failed to save settings")
		}
	}
}
