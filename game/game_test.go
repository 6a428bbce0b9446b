package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("creates an empty board of the requested shape", func(t *testing.T) {
		g, err := New(Config{Rows: 4, Cols: 5})
		require.NoError(t, err)

		require.Equal(t, 4, g.Rows())
		require.Equal(t, 5, g.Cols())

		board := g.Board()
		require.Len(t, board, 4)
		for _, row := range board {
			require.Len(t, row, 5)
			for _, cell := range row {
				require.Equal(t, Empty, cell, "New board should be all empty")
			}
		}

		require.Equal(t, PlayerOne, g.CurrentPlayer())
		require.Equal(t, Empty, g.Winner())
		require.False(t, g.IsDraw())
		_, ok := g.LastMove()
		require.False(t, ok, "fresh game should have no last move")
	})

	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		for _, config := range []Config{
			{Rows: 0, Cols: 7},
			{Rows: 6, Cols: 0},
			{Rows: -1, Cols: 7},
			{Rows: 6, Cols: -3},
		} {
			_, err := New(config)
			require.ErrorIs(t, err, ErrInvalidDimensions,
				"config %+v should fail construction", config)
		}
	})

	t.Run("default is 6x7", func(t *testing.T) {
		g := NewDefault()
		require.Equal(t, DefaultRows, g.Rows())
		require.Equal(t, DefaultCols, g.Cols())
	})
}

func TestReset(t *testing.T) {
	g := NewDefault()
	g.DropPiece(3)
	g.DropPiece(4)

	g.Reset(PlayerTwo)

	require.Equal(t, PlayerTwo, g.CurrentPlayer(), "Reset should honor the starting player")
	_, ok := g.LastMove()
	require.False(t, ok)
	require.Equal(t, Empty, g.Winner())
	require.False(t, g.IsDraw())
	for _, row := range g.Board() {
		for _, cell := range row {
			require.Equal(t, Empty, cell, "Reset should clear the board")
		}
	}
}

func TestValidMoves(t *testing.T) {
	t.Run("ascending columns on an open board", func(t *testing.T) {
		g := NewDefault()
		require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, g.ValidMoves())
	})

	t.Run("idempotent without intervening drops", func(t *testing.T) {
		g := NewDefault()
		g.DropPiece(2)
		require.Equal(t, g.ValidMoves(), g.ValidMoves())
	})

	t.Run("excludes full columns", func(t *testing.T) {
		g, err := New(Config{Rows: 2, Cols: 3})
		require.NoError(t, err)
		g.DropPiece(1)
		g.DropPiece(1) // column 1 now full

		require.Equal(t, []int{0, 2}, g.ValidMoves())
	})

	t.Run("empty on a full board", func(t *testing.T) {
		g := fillWithoutWinner(t)
		require.Empty(t, g.ValidMoves())
	})
}

func TestDropPiece(t *testing.T) {
	t.Run("piece lands on the bottom row of an empty column", func(t *testing.T) {
		g := NewDefault()
		res := g.DropPiece(3)

		require.True(t, res.Placed)
		require.Equal(t, 5, res.Row, "piece should fall to the bottom")
		require.Equal(t, 3, res.Col)
		require.Equal(t, Empty, res.Winner)
		require.False(t, res.IsDraw)
		require.Equal(t, PlayerOne, g.Board()[5][3])
	})

	t.Run("pieces stack under gravity", func(t *testing.T) {
		g := NewDefault()
		first := g.DropPiece(3)
		second := g.DropPiece(3)

		require.Equal(t, 5, first.Row)
		require.Equal(t, 4, second.Row, "second piece should land on top of the first")

		board := g.Board()
		require.Equal(t, PlayerOne, board[5][3])
		require.Equal(t, PlayerTwo, board[4][3])
	})

	t.Run("gravity invariant holds across random play", func(t *testing.T) {
		g := NewDefault()
		cols := []int{3, 3, 2, 4, 3, 2, 0, 6, 2, 3, 3, 1, 5, 3}
		for _, c := range cols {
			g.DropPiece(c)
		}

		board := g.Board()
		for c := 0; c < g.Cols(); c++ {
			for r := 0; r < g.Rows()-1; r++ {
				if board[r][c] != Empty {
					require.NotEqual(t, Empty, board[r+1][c],
						"occupied cell at (%d,%d) must rest on an occupied cell", r, c)
				}
			}
		}
	})

	t.Run("turn alternates after every live placement", func(t *testing.T) {
		g := NewDefault()
		require.Equal(t, PlayerOne, g.CurrentPlayer())
		g.DropPiece(0)
		require.Equal(t, PlayerTwo, g.CurrentPlayer())
		g.DropPiece(1)
		require.Equal(t, PlayerOne, g.CurrentPlayer())
	})

	t.Run("out-of-range columns are rejected without mutation", func(t *testing.T) {
		g := NewDefault()
		before := g.Board()

		for _, col := range []int{-1, 7, 100} {
			res := g.DropPiece(col)
			require.False(t, res.Placed, "column %d should not place", col)
		}

		require.Equal(t, before, g.Board(), "rejected drops must not mutate the board")
		require.Equal(t, PlayerOne, g.CurrentPlayer(), "rejected drops must not advance the turn")
	})

	t.Run("full column is rejected", func(t *testing.T) {
		g, err := New(Config{Rows: 2, Cols: 2})
		require.NoError(t, err)
		require.True(t, g.DropPiece(0).Placed)
		require.True(t, g.DropPiece(0).Placed)

		res := g.DropPiece(0)
		require.False(t, res.Placed)
	})

	t.Run("records the last move", func(t *testing.T) {
		g := NewDefault()
		g.DropPiece(6)

		move, ok := g.LastMove()
		require.True(t, ok)
		require.Equal(t, Move{Row: 5, Col: 6}, move)
	})
}

func TestWinDetection(t *testing.T) {
	t.Run("horizontal win", func(t *testing.T) {
		g := NewDefault()
		// P1 builds columns 0..3 along the bottom row, P2 stacks on column 6.
		plays := []int{0, 6, 1, 6, 2, 6}
		for _, c := range plays {
			res := g.DropPiece(c)
			require.True(t, res.Placed)
			require.Equal(t, Empty, res.Winner)
		}

		res := g.DropPiece(3)
		require.True(t, res.Placed)
		require.Equal(t, PlayerOne, res.Winner, "fourth piece in a row should win")
		require.Equal(t, PlayerOne, g.Winner())
	})

	t.Run("vertical win", func(t *testing.T) {
		g := NewDefault()
		plays := []int{2, 3, 2, 3, 2, 3}
		for _, c := range plays {
			require.Equal(t, Empty, g.DropPiece(c).Winner)
		}

		res := g.DropPiece(2)
		require.Equal(t, PlayerOne, res.Winner)
	})

	t.Run("diagonal win", func(t *testing.T) {
		g := NewDefault()
		// Staircase: P1 at (5,0), (4,1), (3,2), (2,3).
		plays := []int{0, 1, 1, 2, 2, 3, 2, 3, 3, 5, 3}
		var last MoveResult
		for _, c := range plays {
			last = g.DropPiece(c)
			require.True(t, last.Placed)
		}
		require.Equal(t, PlayerOne, last.Winner, "rising diagonal should win")
	})

	t.Run("five in one column is not a win when colors alternate", func(t *testing.T) {
		g := NewDefault()
		for i := 0; i < 5; i++ {
			res := g.DropPiece(3)
			require.True(t, res.Placed)
			require.Equal(t, Empty, res.Winner,
				"alternating stack must not produce a four-in-a-row")
		}
		require.False(t, g.GameOver())
	})

	t.Run("winner stays fixed as current player", func(t *testing.T) {
		g := winForPlayerOne(t)
		require.Equal(t, PlayerOne, g.CurrentPlayer(),
			"terminal board should keep the mover as current player")
	})
}

func TestDrawDetection(t *testing.T) {
	t.Run("full board without a line is a draw", func(t *testing.T) {
		g := fillWithoutWinner(t)
		require.True(t, g.IsDraw())
		require.Equal(t, Empty, g.Winner())
	})

	t.Run("win on the last cell beats the draw", func(t *testing.T) {
		g, err := New(Config{Rows: 4, Cols: 4})
		require.NoError(t, err)

		// Fill all cells but the top of column 3, feeding P2 a vertical
		// stack there; P2's final drop both fills the board and completes
		// four in a row.
		plays := []int{0, 3, 2, 2, 0, 2, 1, 0, 0, 1, 1, 3, 1, 3, 2}
		for _, c := range plays {
			res := g.DropPiece(c)
			require.True(t, res.Placed, "scripted drop at %d should place", c)
			require.Equal(t, Empty, res.Winner)
			require.False(t, res.IsDraw)
		}

		require.Equal(t, []int{3}, g.ValidMoves(), "only one cell should remain")
		res := g.DropPiece(3)
		require.True(t, res.Placed)
		require.Equal(t, PlayerTwo, res.Winner, "board-filling move should score as a win")
		require.False(t, res.IsDraw, "a win is never simultaneously a draw")
	})
}

func TestPostTerminalImmutability(t *testing.T) {
	g := winForPlayerOne(t)
	boardBefore := g.Board()
	winnerBefore := g.Winner()

	for _, col := range []int{0, 3, 6, -1, 7} {
		res := g.DropPiece(col)
		require.False(t, res.Placed, "drop into %d after game end should no-op", col)
	}

	require.Equal(t, boardBefore, g.Board())
	require.Equal(t, winnerBefore, g.Winner())
	require.False(t, g.IsDraw())
}

func TestBoardSnapshot(t *testing.T) {
	t.Run("mutating a snapshot does not touch the engine", func(t *testing.T) {
		g := NewDefault()
		g.DropPiece(0)

		snap := g.Board()
		snap[0][0] = PlayerTwo
		snap[5][0] = Empty

		require.Equal(t, PlayerOne, g.Board()[5][0], "engine state must survive snapshot edits")
		require.Equal(t, Empty, g.Board()[0][0])
	})

	t.Run("clone is independent of its source", func(t *testing.T) {
		g := NewDefault()
		g.DropPiece(1)

		snap := g.Board()
		clone := snap.Clone()
		clone[5][1] = Empty

		require.Equal(t, PlayerOne, snap[5][1])
		require.Equal(t, snap.Rows(), clone.Rows())
		require.Equal(t, snap.Cols(), clone.Cols())
	})
}

// winForPlayerOne plays a quick horizontal win for P1 and returns the
// terminal game.
func winForPlayerOne(t *testing.T) *Game {
	t.Helper()
	g := NewDefault()
	for _, c := range []int{0, 6, 1, 6, 2, 6, 3} {
		require.True(t, g.DropPiece(c).Placed)
	}
	require.Equal(t, PlayerOne, g.Winner())
	return g
}

// fillWithoutWinner fills a 4x4 board completely with no four-in-a-row,
// producing a drawn game.
func fillWithoutWinner(t *testing.T) *Game {
	t.Helper()
	g, err := New(Config{Rows: 4, Cols: 4})
	require.NoError(t, err)

	// Pair up columns so every row, column, and diagonal mixes colors.
	// Columns bottom-to-top end as c0=1221, c1=2112, c2=1221, c3=2112.
	plays := []int{0, 1, 1, 0, 1, 0, 0, 1, 2, 3, 3, 2, 3, 2, 2, 3}
	for i, c := range plays {
		res := g.DropPiece(c)
		require.True(t, res.Placed, "drop %d at column %d should place", i, c)
		require.Equal(t, Empty, res.Winner, "fill script must not create a winner")
	}
	require.True(t, g.IsDraw(), "full board without a line should be a draw")
	return g
}
