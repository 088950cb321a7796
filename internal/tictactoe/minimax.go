package tictactoe

import (
	"math"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

// worstScore seeds the running best of a node; any evaluation beats it.
const worstScore = 1_000_000_000

// Result is the outcome of a search. Found is false when the root was already decided,
// the depth was zero or no legal move existed. Nodes counts the positions visited.
type Result struct {
	Score int
	Move  entity.Move
	Found bool
	Nodes int
}

// Minimax runs a depth-limited minimax search with alpha-beta pruning from sb. The
// maximizing side is the one playing ai. sb is never modified: every child is explored
// on its own clone.
func Minimax(sb *entity.SuperBoard, maximizing bool, ai entity.Mark, depth int) Result {
	s := searcher{ai: ai}

	score, move, found := s.search(sb, maximizing, depth, math.MinInt, math.MaxInt)

	return Result{
		Score: score,
		Move:  move,
		Found: found,
		Nodes: s.nodes,
	}
}

type searcher struct {
	ai    entity.Mark
	nodes int
}

func (that *searcher) search(sb *entity.SuperBoard, maximizing bool, depth, alpha, beta int) (int, entity.Move, bool) {
	that.nodes++

	if score, ok := terminalScore(sb, that.ai); ok {
		return score, entity.Move{}, false
	}

	moves := LegalMoves(sb)
	if depth <= 0 || len(moves) == 0 {
		return Evaluate(sb, that.ai), entity.Move{}, false
	}

	var (
		bestMove entity.Move
		found    bool
	)

	if maximizing {
		best := -worstScore
		for _, mv := range moves {
			child := sb.Clone()
			if err := child.Play(mv); err != nil {
				continue
			}

			score, _, _ := that.search(child, false, depth-1, alpha, beta)
			if score > best {
				best, bestMove, found = score, mv, true
			}

			alpha = max(alpha, score)
			if beta <= alpha {
				break
			}
		}

		return best, bestMove, found
	}

	best := worstScore
	for _, mv := range moves {
		child := sb.Clone()
		if err := child.Play(mv); err != nil {
			continue
		}

		score, _, _ := that.search(child, true, depth-1, alpha, beta)
		if score < best {
			best, bestMove, found = score, mv, true
		}

		beta = min(beta, score)
		if beta <= alpha {
			break
		}
	}

	return best, bestMove, found
}
