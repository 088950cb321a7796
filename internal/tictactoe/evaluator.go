package tictactoe

import "github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"

const (
	WinScore   = 100000
	BoardScore = 500
)

// Evaluate scores sb from ai's point of view, whoever is to move. A decided game scores
// ±WinScore; otherwise each won board counts ±BoardScore and each undecided board the
// difference of the two players' cell counts.
func Evaluate(sb *entity.SuperBoard, ai entity.Mark) int {
	if score, ok := terminalScore(sb, ai); ok {
		return score
	}

	opponent := ai.Opponent()

	score := 0
	for i := range sb.Boards {
		board := &sb.Boards[i]

		switch board.Winner {
		case ai:
			score += BoardScore
		case opponent:
			score -= BoardScore
		default:
			score += board.Count(ai) - board.Count(opponent)
		}
	}

	return score
}

func terminalScore(sb *entity.SuperBoard, ai entity.Mark) (int, bool) {
	switch winner := sb.Outcome(); winner {
	case entity.NoMark:
		return 0, false
	case ai:
		return WinScore, true
	default:
		return -WinScore, true
	}
}
