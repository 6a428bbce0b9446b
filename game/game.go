package game

// winLength is fixed: the game is four in a row regardless of board size.
const winLength = 4

// lineDirections are the four line orientations a win can form along:
// horizontal, vertical, and the two diagonals. Each is scanned both ways
// from the last-placed cell.
var lineDirections = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal, down-right
	{-1, 1}, // diagonal, up-right
}

// MoveResult reports the effect of one DropPiece call. Placed is false when
// nothing landed (terminal game, bad column, full column). When Placed is
// true, Row/Col give the landing cell and Winner/IsDraw the post-move
// outcome snapshot.
type MoveResult struct {
	Placed bool
	Row    int
	Col    int
	Winner Cell
	IsDraw bool
}

// Game is the headless rules engine: it owns the board, enforces move
// legality, detects wins and draws, and advances turns. It is a synchronous
// state machine; callers must not issue concurrent calls against one
// instance. Independent matches need independent Game instances.
type Game struct {
	config        Config
	cells         []Cell // row-major, indexed row*cols+col
	currentPlayer Cell
	lastMove      Move
	hasLastMove   bool
	winner        Cell
	isDraw        bool
}

// New creates an engine with the given board dimensions. Non-positive
// dimensions are a construction error; this is the only operation on the
// engine that can fail.
func New(config Config) (*Game, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	g := &Game{
		config: config,
		cells:  make([]Cell, config.Rows*config.Cols),
	}
	g.Reset(PlayerOne)
	return g, nil
}

// NewDefault creates an engine with the standard 6x7 board.
func NewDefault() *Game {
	g, err := New(DefaultConfig())
	if err != nil {
		panic(err) // default config is always valid
	}
	return g
}

// Reset reinitializes the board and all derived state as at construction,
// with first to move. Any value other than a player mark falls back to
// PlayerOne.
func (g *Game) Reset(first Cell) {
	for i := range g.cells {
		g.cells[i] = Empty
	}
	if first != PlayerOne && first != PlayerTwo {
		first = PlayerOne
	}
	g.currentPlayer = first
	g.lastMove = Move{}
	g.hasLastMove = false
	g.winner = Empty
	g.isDraw = false
}

func (g *Game) Rows() int { return g.config.Rows }

func (g *Game) Cols() int { return g.config.Cols }

// CurrentPlayer is the mark to move, or, once the game is terminal, the
// mark that moved last.
func (g *Game) CurrentPlayer() Cell { return g.currentPlayer }

// LastMove returns the most recent landing cell, or false if no piece has
// been placed since the last reset.
func (g *Game) LastMove() (Move, bool) {
	return g.lastMove, g.hasLastMove
}

// Winner is the winning mark, or Empty while the game is undecided.
func (g *Game) Winner() Cell { return g.winner }

func (g *Game) IsDraw() bool { return g.isDraw }

// GameOver reports whether the game is terminal: decided or drawn.
func (g *Game) GameOver() bool {
	return g.winner != Empty || g.isDraw
}

// Board returns a snapshot copy of the grid. The engine's own storage never
// escapes, so callers may keep or mutate the snapshot freely.
func (g *Game) Board() Board {
	grid := make(Board, g.config.Rows)
	for r := 0; r < g.config.Rows; r++ {
		row := make([]Cell, g.config.Cols)
		copy(row, g.cells[r*g.config.Cols:(r+1)*g.config.Cols])
		grid[r] = row
	}
	return grid
}

// ValidMoves returns the playable column indices in ascending order. A
// column is playable iff its top cell is empty. The slice is empty on a
// full board.
func (g *Game) ValidMoves() []int {
	moves := make([]int, 0, g.config.Cols)
	for c := 0; c < g.config.Cols; c++ {
		if g.at(0, c) == Empty {
			moves = append(moves, c)
		}
	}
	return moves
}

// DropPiece drops the current player's piece into col. It never fails:
// placing after game end, into an out-of-range column, or into a full
// column all return Placed=false and leave the game untouched. Callers are
// expected to check GameOver first; the terminal guard keeps a stale call
// from corrupting a finished game.
func (g *Game) DropPiece(col int) MoveResult {
	if g.GameOver() {
		return MoveResult{}
	}
	if col < 0 || col >= g.config.Cols {
		return MoveResult{}
	}
	if g.at(0, col) != Empty {
		return MoveResult{}
	}

	// Gravity: the piece lands on the lowest empty row of the column.
	row := g.config.Rows - 1
	for g.at(row, col) != Empty {
		row--
	}

	g.cells[row*g.config.Cols+col] = g.currentPlayer
	g.lastMove = Move{Row: row, Col: col}
	g.hasLastMove = true

	// A win takes priority over filling the last cell: the mover wins, the
	// game is never scored as a draw on the same move.
	if g.winsFrom(row, col, g.currentPlayer) {
		g.winner = g.currentPlayer
	} else if len(g.ValidMoves()) == 0 {
		g.isDraw = true
	}

	result := MoveResult{
		Placed: true,
		Row:    row,
		Col:    col,
		Winner: g.winner,
		IsDraw: g.isDraw,
	}

	// The turn only advances while the game is live, so a terminal board
	// keeps a stable, queryable mover.
	if !g.GameOver() {
		g.currentPlayer = g.currentPlayer.Opponent()
	}

	return result
}

// winsFrom reports whether player has four in a row through (row, col).
// Only lines through the newest piece can newly complete, so anchoring the
// scan there keeps it bounded by the win length, not the board size.
func (g *Game) winsFrom(row, col int, player Cell) bool {
	for _, d := range lineDirections {
		run := g.runLength(row, col, d[0], d[1], player) +
			g.runLength(row, col, -d[0], -d[1], player) - 1 // placed cell counted twice
		if run >= winLength {
			return true
		}
	}
	return false
}

// runLength counts consecutive player cells from (row, col) inclusive,
// stepping by (dr, dc) until the run or the board ends.
func (g *Game) runLength(row, col, dr, dc int, player Cell) int {
	count := 0
	for row >= 0 && row < g.config.Rows && col >= 0 && col < g.config.Cols &&
		g.at(row, col) == player {
		count++
		row += dr
		col += dc
	}
	return count
}

func (g *Game) at(row, col int) Cell {
	return g.cells[row*g.config.Cols+col]
}
