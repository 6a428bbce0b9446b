// Package gamemaster drives games between the engine and automated players.
// It owns the consult-validate-apply cycle for agent turns: the engine stays
// the single source of truth, and agents only ever see snapshots.
package gamemaster

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"connectfour/agent"
	"connectfour/game"
)

// ProtocolError reports a per-turn agent fault: the decision call failed, or
// it returned a column outside the valid moves. It is recoverable: no board
// mutation has happened when it is returned.
type ProtocolError struct {
	Player game.Cell
	Col    int
	Err    error
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: choose move failed: %v", e.Player, e.Err)
	}
	return fmt.Sprintf("%v: chose invalid column %d", e.Player, e.Col)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// GameMaster sequences one match on one engine instance. Calls must be
// serialized; independent matches need independent GameMaster and Game
// instances.
type GameMaster struct {
	game  *game.Game
	seats map[game.Cell]agent.Agent
}

// New creates a game master over g. A nil agent leaves that seat to external
// input via PlayHumanMove.
func New(g *game.Game, playerOne, playerTwo agent.Agent) *GameMaster {
	seats := make(map[game.Cell]agent.Agent, 2)
	if playerOne != nil {
		seats[game.PlayerOne] = playerOne
	}
	if playerTwo != nil {
		seats[game.PlayerTwo] = playerTwo
	}
	return &GameMaster{game: g, seats: seats}
}

// Game exposes the underlying engine for read-only observation.
func (gm *GameMaster) Game() *game.Game { return gm.game }

// NewGame resets the engine with first to move and tells each seated agent
// which side it plays.
func (gm *GameMaster) NewGame(first game.Cell) {
	gm.game.Reset(first)
	for player, a := range gm.seats {
		a.OnNewGame(player)
	}
	log.Info().Msgf("new game started, %v moves first", gm.game.CurrentPlayer())
}

// IsAgentTurn reports whether the side to move is driven by a seated agent.
func (gm *GameMaster) IsAgentTurn() bool {
	_, ok := gm.seats[gm.game.CurrentPlayer()]
	return ok && !gm.game.GameOver()
}

// PlayAgentTurn consults the current player's agent, validates its decision,
// and applies it. An agent fault or an invalid choice returns a
// ProtocolError with the engine untouched; the engine's own DropPiece
// re-validates the column as a second line of defense. On a terminal board
// the call is a no-op, mirroring the engine.
func (gm *GameMaster) PlayAgentTurn() (game.MoveResult, error) {
	if gm.game.GameOver() {
		return game.MoveResult{}, nil
	}

	player := gm.game.CurrentPlayer()
	seated, ok := gm.seats[player]
	if !ok {
		return game.MoveResult{}, fmt.Errorf("no agent seated for %v", player)
	}

	valid := gm.game.ValidMoves()
	if len(valid) == 0 {
		return game.MoveResult{}, nil
	}

	var lastMove *game.Move
	if move, moved := gm.game.LastMove(); moved {
		lastMove = &move
	}

	// Board() returns a copy, so agent writes to it never reach the engine.
	col, err := seated.ChooseMove(gm.game.Board(), player, valid, lastMove)
	if err != nil {
		return game.MoveResult{}, &ProtocolError{Player: player, Err: err}
	}
	if !slices.Contains(valid, col) {
		return game.MoveResult{}, &ProtocolError{Player: player, Col: col}
	}

	result := gm.game.DropPiece(col)
	if !result.Placed {
		return game.MoveResult{}, &ProtocolError{Player: player, Col: col}
	}

	log.Debug().Msgf("%s (%v) played column %d", agent.Name(seated), player, col)
	gm.notifyMove(player, game.Move{Row: result.Row, Col: result.Col})
	return result, nil
}

// PlayHumanMove forwards an externally supplied column for the side to move.
// Illegal columns no-op with Placed=false, exactly as on the engine.
func (gm *GameMaster) PlayHumanMove(col int) game.MoveResult {
	player := gm.game.CurrentPlayer()
	result := gm.game.DropPiece(col)
	if result.Placed {
		gm.notifyMove(player, game.Move{Row: result.Row, Col: result.Col})
	}
	return result
}

// Run plays a fully automated match to its terminal state, starting from the
// engine's current position. It returns the winning mark, or Empty for a
// draw. A protocol violation aborts the match.
func (gm *GameMaster) Run() (game.Cell, error) {
	for !gm.game.GameOver() {
		if _, err := gm.PlayAgentTurn(); err != nil {
			return game.Empty, err
		}
	}

	if winner := gm.game.Winner(); winner != game.Empty {
		log.Info().Msgf("game over, %v wins", winner)
		return winner, nil
	}
	log.Info().Msg("game over, draw")
	return game.Empty, nil
}

// notifyMove fans a landed move out to the seated agents: the mover first,
// then the opponent, matching the order the events occurred.
func (gm *GameMaster) notifyMove(mover game.Cell, move game.Move) {
	if a, ok := gm.seats[mover]; ok {
		a.OnAgentMove(move)
	}
	if a, ok := gm.seats[mover.Opponent()]; ok {
		a.OnOpponentMove(move)
	}
}
