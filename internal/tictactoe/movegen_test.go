package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

func TestLegalMoves(t *testing.T) {
	t.Run("New game offers all 81 cells in board then position order", func(t *testing.T) {
		// Given: a new game
		sb := entity.NewSuperBoard()

		// When: listing the legal moves
		moves := LegalMoves(sb)

		// Then: every cell is listed in ascending order
		require.Len(t, moves, 81)
		for i, mv := range moves {
			assert.Equal(t, entity.Move{Board: i / 9, Position: i % 9}, mv)
		}
	})

	t.Run("Centre opening forces the reply into board 4", func(t *testing.T) {
		// Given: X opened at (4, 4)
		sb := entity.NewSuperBoard()
		require.NoError(t, sb.ApplyMove(4, 4))

		// When: listing O's legal moves
		moves := LegalMoves(sb)

		// Then: only the empty cells of board 4 remain
		expected := []entity.Move{
			{Board: 4, Position: 0}, {Board: 4, Position: 1}, {Board: 4, Position: 2},
			{Board: 4, Position: 3}, {Board: 4, Position: 5}, {Board: 4, Position: 6},
			{Board: 4, Position: 7}, {Board: 4, Position: 8},
		}
		assert.Equal(t, 4, sb.NextBoard)
		assert.Equal(t, expected, moves)
	})

	t.Run("Won forced board frees the choice and skips dead boards", func(t *testing.T) {
		// Given: board 3 is won, board 6 is full, and X is sent to board 3
		sb := entity.NewSuperBoard()
		sb.Boards[3] = wonBoard(entity.O)
		sb.Boards[6].Cells = [9]entity.Mark{
			entity.X, entity.O, entity.X,
			entity.X, entity.O, entity.O,
			entity.O, entity.X, entity.X,
		}
		require.NoError(t, sb.ApplyMove(0, 3))

		// When: listing O's legal moves
		moves := LegalMoves(sb)

		// Then: board 0 minus its used cell plus six untouched boards are offered
		require.Len(t, moves, 8+6*9)
		for _, mv := range moves {
			assert.NotEqual(t, 3, mv.Board)
			assert.NotEqual(t, 6, mv.Board)
		}
		assert.Equal(t, entity.Move{Board: 0, Position: 0}, moves[0])
		assert.Equal(t, entity.Move{Board: 1, Position: 0}, moves[8])
	})

	t.Run("Decided board with empty cells is never offered", func(t *testing.T) {
		// Given: board 0 is won by X but has six empty cells
		sb := entity.NewSuperBoard()
		sb.Boards[0] = wonBoard(entity.X)

		// When: listing the legal moves
		moves := LegalMoves(sb)

		// Then: board 0 is absent
		require.Len(t, moves, 72)
		assert.Equal(t, 1, moves[0].Board)
	})
}

func TestLegalMoves_Properties(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		sb := entity.NewSuperBoard()
		rnd := newRand(seed)

		for !sb.IsFinished() {
			moves := LegalMoves(sb)
			require.NotEmpty(t, moves)

			// no move names a dead board or an occupied cell
			for _, mv := range moves {
				board := &sb.Boards[mv.Board]
				require.False(t, board.IsDead(), "seed %d: move %+v on dead board", seed, mv)
				require.Equal(t, entity.NoMark, board.Cells[mv.Position])
			}

			mv := moves[rnd.Intn(len(moves))]
			require.NoError(t, sb.Play(mv))

			// the reply is sent to the played position unless that board is dead
			if sb.Boards[mv.Position].IsDead() {
				assert.Equal(t, freeChoice(sb), LegalMoves(sb))
			} else {
				forced, ok := sb.ForcedBoard()
				require.True(t, ok)
				assert.Equal(t, mv.Position, forced)
				for _, reply := range LegalMoves(sb) {
					assert.Equal(t, mv.Position, reply.Board)
				}
			}

			// the global winner is exactly the owner of a line of board winners
			assert.Equal(t, lineOfWinners(sb), sb.Winner)
		}
	}
}

func freeChoice(sb *entity.SuperBoard) []entity.Move {
	moves := make([]entity.Move, 0, 81)
	for b := range sb.Boards {
		if sb.Boards[b].IsDead() {
			continue
		}
		for p, cell := range sb.Boards[b].Cells {
			if cell == entity.NoMark {
				moves = append(moves, entity.Move{Board: b, Position: p})
			}
		}
	}

	return moves
}

func lineOfWinners(sb *entity.SuperBoard) entity.Mark {
	for _, combo := range entity.WinCombos {
		a := sb.Boards[combo[0]].Winner
		if a != entity.NoMark && a == sb.Boards[combo[1]].Winner && a == sb.Boards[combo[2]].Winner {
			return a
		}
	}

	return entity.NoMark
}
