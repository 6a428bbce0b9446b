// Package config resolves runtime settings for the command-line runner.
// Values come from, in increasing precedence: built-in defaults, a saved
// settings file in the XDG config directory, a .env file, and environment
// variables. Board dimension validity itself is enforced by the engine at
// construction, never clamped here.
package config

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const settingsFile = "connectfour/settings.json"

// Config holds the runner settings.
type Config struct {
	Rows  int    `json:"rows"`
	Cols  int    `json:"cols"`
	Games int    `json:"games"`
	Seed  uint64 `json:"seed"`
}

// Default returns the standard settings: a 6x7 board, 20 games, and a
// clock-derived seed.
func Default() Config {
	return Config{
		Rows:  6,
		Cols:  7,
		Games: 20,
		Seed:  uint64(time.Now().UnixNano()),
	}
}

// Load resolves the effective configuration. A missing settings or .env
// file is not an error; malformed environment values fall back with a log
// line.
func Load() Config {
	cfg := Default()

	if path, err := xdg.SearchConfigFile(settingsFile); err == nil {
		readSettings(path, &cfg)
	}

	// .env values only fill in unset environment variables.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("failed to load .env file")
	}

	cfg.Rows = getEnvAsInt("CONNECT4_ROWS", cfg.Rows)
	cfg.Cols = getEnvAsInt("CONNECT4_COLS", cfg.Cols)
	cfg.Games = getEnvAsInt("CONNECT4_GAMES", cfg.Games)
	cfg.Seed = getEnvAsUint("CONNECT4_SEED", cfg.Seed)

	return cfg
}

// Save persists the settings to the XDG config directory so the next run
// starts from them.
func (c Config) Save() error {
	path, err := xdg.ConfigFile(settingsFile)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0664)
}

func readSettings(path string, cfg *Config) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		log.Warn().Err(err).Msgf("ignoring malformed settings file %s", path)
	}
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Msgf("invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsUint(key string, defaultValue uint64) uint64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		log.Warn().Msgf("invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
