package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

func TestEvaluate(t *testing.T) {
	t.Run("New game is balanced", func(t *testing.T) {
		assert.Equal(t, 0, Evaluate(entity.NewSuperBoard(), entity.X))
	})

	t.Run("Won boards and cell counts are summed", func(t *testing.T) {
		// Given: X owns boards 0 and 4, O owns board 1, board 2 leans to X, board 3 to O
		sb := entity.NewSuperBoard()
		sb.Boards[0] = wonBoard(entity.X)
		sb.Boards[4] = wonBoard(entity.X)
		sb.Boards[1] = wonBoard(entity.O)
		sb.Boards[2].Cells = [9]entity.Mark{entity.X, entity.X, entity.O}
		sb.Boards[3].Cells = [9]entity.Mark{entity.O}

		// Then: the score is 500 + 500 - 500 + 1 - 1 for X and the negation for O
		assert.Equal(t, 500, Evaluate(sb, entity.X))
		assert.Equal(t, -500, Evaluate(sb, entity.O))
	})

	t.Run("Cells of a won board count only through the win", func(t *testing.T) {
		// Given: O won board 5 while X also holds two of its cells
		sb := entity.NewSuperBoard()
		sb.Boards[5] = entity.Board{
			Cells:  [9]entity.Mark{entity.O, entity.O, entity.O, entity.X, entity.X},
			Winner: entity.O,
		}

		assert.Equal(t, -BoardScore, Evaluate(sb, entity.X))
	})

	t.Run("Decided game outranks material", func(t *testing.T) {
		// Given: O owns the top row of boards while X owns four other boards
		sb := entity.NewSuperBoard()
		for _, i := range []int{0, 1, 2} {
			sb.Boards[i] = wonBoard(entity.O)
		}
		for _, i := range []int{3, 5, 6, 8} {
			sb.Boards[i] = wonBoard(entity.X)
		}

		// Then: the terminal score wins over the per-board sum
		assert.Equal(t, -WinScore, Evaluate(sb, entity.X))
		assert.Equal(t, WinScore, Evaluate(sb, entity.O))
	})
}
