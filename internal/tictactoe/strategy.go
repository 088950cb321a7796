package tictactoe

import (
	"math/rand"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

// PickMove searches depth plies ahead for ai. The search maximizes when ai is to move
// and minimizes otherwise. ok is false when the game is over or no move exists.
func PickMove(sb *entity.SuperBoard, depth int, ai entity.Mark) (entity.Move, bool) {
	result := Minimax(sb, sb.Turn == ai, ai, depth)

	return result.Move, result.Found
}

// RandomMove picks a legal move uniformly at random.
func RandomMove(sb *entity.SuperBoard, rnd *rand.Rand) (entity.Move, bool) {
	if sb.Outcome() != entity.NoMark {
		return entity.Move{}, false
	}

	moves := LegalMoves(sb)
	if len(moves) == 0 {
		return entity.Move{}, false
	}

	return moves[rnd.Intn(len(moves))], true
}
