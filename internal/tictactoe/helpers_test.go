package tictactoe

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

func wonBoard(mark entity.Mark) entity.Board {
	return entity.Board{Cells: [9]entity.Mark{mark, mark, mark}, Winner: mark}
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) //nolint: gosec // deterministic test positions
}

// playout plays up to n random legal moves from a new game.
func playout(t *testing.T, seed int64, n int) *entity.SuperBoard {
	t.Helper()

	rnd := newRand(seed)
	sb := entity.NewSuperBoard()

	for range n {
		mv, ok := RandomMove(sb, rnd)
		if !ok {
			break
		}
		require.NoError(t, sb.Play(mv))
	}

	return sb
}

// sampleStates returns undecided positions reached by random play.
func sampleStates(t *testing.T, count int) []*entity.SuperBoard {
	t.Helper()

	states := make([]*entity.SuperBoard, 0, count)
	for seed := int64(1); len(states) < count; seed++ {
		sb := playout(t, seed, 8+int(seed%24))
		if sb.IsFinished() {
			continue
		}
		states = append(states, sb)
	}

	return states
}
