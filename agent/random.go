package agent

import (
	"errors"
	"time"

	"golang.org/x/exp/rand"

	"connectfour/game"
)

// ErrNoValidMoves is returned when an agent is consulted on a board with no
// playable column. A correct host never does this.
var ErrNoValidMoves = errors.New("no valid moves to choose from")

// Random chooses uniformly at random among the valid moves. It is the
// baseline every other strategy is measured against.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a random agent seeded from the clock.
func NewRandom() *Random {
	return NewRandomSeeded(uint64(time.Now().UnixNano()))
}

// NewRandomSeeded returns a random agent with a fixed seed, for reproducible
// matches and tests.
func NewRandomSeeded(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Name() string { return "random" }

func (r *Random) ChooseMove(board game.Board, player game.Cell, validMoves []int, lastMove *game.Move) (int, error) {
	if len(validMoves) == 0 {
		return 0, ErrNoValidMoves
	}
	return validMoves[r.rng.Intn(len(validMoves))], nil
}

func (r *Random) OnNewGame(player game.Cell) {}

func (r *Random) OnOpponentMove(move game.Move) {}

func (r *Random) OnAgentMove(move game.Move) {}
