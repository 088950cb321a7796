package entity

import "time"

// MoveRecord describes one applied move. SmallWinner is the winner of the played board after
// the move, GlobalWinner is set only on the move that decided the game.
type MoveRecord struct {
	Number       int  `json:"move"`
	Player       Mark `json:"player"`
	Board        int  `json:"board"`
	Position     int  `json:"position"`
	NextBoard    int  `json:"next_board"`
	SmallWinner  Mark `json:"small_winner,omitempty"`
	GlobalWinner Mark `json:"global_winner,omitempty"`
}

// GameRecord is the archived summary of a finished game.
type GameRecord struct {
	ID         string       `json:"id"`
	Winner     Mark         `json:"winner,omitempty"`
	Draw       bool         `json:"draw"`
	Moves      []MoveRecord `json:"moves"`
	FinishedAt time.Time    `json:"finished_at"`
}

// NewGameRecord snapshots the history of sb under the given id.
func NewGameRecord(id string, sb *SuperBoard, finishedAt time.Time) *GameRecord {
	moves := make([]MoveRecord, len(sb.History))
	copy(moves, sb.History)

	return &GameRecord{
		ID:         id,
		Winner:     sb.Outcome(),
		Draw:       sb.IsDraw(),
		Moves:      moves,
		FinishedAt: finishedAt,
	}
}
