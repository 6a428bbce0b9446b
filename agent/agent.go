// Package agent defines the contract an automated player satisfies and the
// reference uniform-random implementation.
package agent

import "connectfour/game"

// Agent is an automated decision-maker the host consults once per turn.
//
// ChooseMove must return a column present in validMoves. The board is a
// snapshot: the agent may read or keep it but mutating it has no effect on
// the engine. player is the agent's own mark for this call; lastMove is the
// most recent landing cell, or nil at the start of a game. Returning an
// error, or a column absent from validMoves, is a protocol violation the
// host handles per turn without applying any move.
//
// The lifecycle hooks let agents that keep incremental internal state (a
// search tree, a board mirror) stay in sync without re-deriving it from
// snapshots. They are invoked once per corresponding game event, in event
// order.
type Agent interface {
	ChooseMove(board game.Board, player game.Cell, validMoves []int, lastMove *game.Move) (int, error)

	// OnNewGame tells the agent which side it plays from now on. Agents
	// should drop any episodic state here.
	OnNewGame(player game.Cell)

	// OnOpponentMove reports a piece landed by the other side.
	OnOpponentMove(move game.Move)

	// OnAgentMove reports a piece landed by this agent's own side.
	OnAgentMove(move game.Move)
}

// Name reports a human-readable agent name for logs when the agent provides
// one, falling back to a generic label.
func Name(a Agent) string {
	if n, ok := a.(interface{ Name() string }); ok {
		return n.Name()
	}
	return "agent"
}
