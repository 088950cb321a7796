package tictactoe

import "github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"

// LegalMoves lists the moves available to the side to move. A playable forced board
// restricts the list to its empty cells; otherwise every board that is neither won nor
// full contributes its empty cells. Boards and cells are visited in ascending order,
// which the search relies on for its tie-break.
func LegalMoves(sb *entity.SuperBoard) []entity.Move {
	if board, ok := sb.ForcedBoard(); ok {
		return appendEmptyCells(make([]entity.Move, 0, 9), sb, board)
	}

	moves := make([]entity.Move, 0, 81)
	for board := range sb.Boards {
		if sb.Boards[board].IsDead() {
			continue
		}
		moves = appendEmptyCells(moves, sb, board)
	}

	return moves
}

func appendEmptyCells(moves []entity.Move, sb *entity.SuperBoard, board int) []entity.Move {
	for position, cell := range sb.Boards[board].Cells {
		if cell == entity.NoMark {
			moves = append(moves, entity.Move{Board: board, Position: position})
		}
	}

	return moves
}
