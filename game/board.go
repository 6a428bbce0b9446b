package game

// Cell is the content of one board square. The numeric values are part of
// the public encoding: 0 = empty, 1 = player one, 2 = player two.
type Cell uint8

const (
	Empty Cell = iota
	PlayerOne
	PlayerTwo
)

func (c Cell) String() string {
	switch c {
	case PlayerOne:
		return "Player1"
	case PlayerTwo:
		return "Player2"
	default:
		return "Empty"
	}
}

// Opponent returns the other player's mark. Empty has no opponent and maps
// to Empty.
func (c Cell) Opponent() Cell {
	switch c {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return Empty
	}
}

// Move is a landed piece position. Row 0 is the top of the board and pieces
// fall toward increasing row index. Column indices are 0-based left-to-right.
type Move struct {
	Row int
	Col int
}

// Board is a row-major snapshot of the grid. Snapshots handed out by the
// engine are always copies: mutating one never affects engine state.
type Board [][]Cell

func (b Board) Rows() int {
	return len(b)
}

func (b Board) Cols() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	grid := make(Board, len(b))
	for r, row := range b {
		rowCopy := make([]Cell, len(row))
		copy(rowCopy, row)
		grid[r] = rowCopy
	}
	return grid
}
