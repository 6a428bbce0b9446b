package game

import (
	"errors"
	"fmt"
)

const (
	DefaultRows = 6
	DefaultCols = 7
)

// ErrInvalidDimensions is returned by New for a non-positive row or column
// count. Dimensions are never silently clamped.
var ErrInvalidDimensions = errors.New("board dimensions must be positive")

// Config fixes the board dimensions for one engine instance. It is supplied
// once at construction and never mutated afterwards.
type Config struct {
	Rows int
	Cols int
}

// DefaultConfig returns the standard 6x7 board.
func DefaultConfig() Config {
	return Config{Rows: DefaultRows, Cols: DefaultCols}
}

func (c Config) validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, c.Rows, c.Cols)
	}
	return nil
}
