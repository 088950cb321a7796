package entity

import (
	"slices"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
)

// Move addresses one cell: Board is the sub-board index, Position the cell inside it.
type Move struct {
	Board    int `json:"board"`
	Position int `json:"position"`
}

// SuperBoard is the whole game: nine boards, the side to move, the board the side to move
// is sent to and the ordered move history.
type SuperBoard struct {
	Boards       [9]Board     `json:"boards"`
	Turn         Mark         `json:"turn"`
	NextBoard    int          `json:"next_board"`
	HasNextBoard bool         `json:"has_next_board"`
	Winner       Mark         `json:"winner,omitempty"`
	History      []MoveRecord `json:"history"`
}

// NewSuperBoard returns an empty game with X to move and a free choice of board.
func NewSuperBoard() *SuperBoard {
	return &SuperBoard{
		Turn:    X,
		History: []MoveRecord{},
	}
}

// ApplyForcedMove plays position in the board chosen by the previous move.
func (that *SuperBoard) ApplyForcedMove(position int) error {
	if !that.HasNextBoard {
		return apperror.ErrUnspecifiedBoard
	}

	return that.ApplyMove(that.NextBoard, position)
}

// ApplyMove writes the current mark into the given cell and passes the turn.
// Indices must already be in 0..8. On error the receiver is left untouched.
func (that *SuperBoard) ApplyMove(board, position int) error {
	target := &that.Boards[board]
	if target.Cells[position] != NoMark {
		return apperror.ErrCellOccupied
	}

	player := that.Turn
	target.Cells[position] = player
	that.NextBoard, that.HasNextBoard = position, true

	target.CheckWinner()

	decidedBefore := that.Winner != NoMark
	that.CheckWinner()

	record := MoveRecord{
		Number:      len(that.History) + 1,
		Player:      player,
		Board:       board,
		Position:    position,
		NextBoard:   position,
		SmallWinner: target.Winner,
	}
	if !decidedBefore && that.Winner != NoMark {
		record.GlobalWinner = that.Winner
	}
	that.History = append(that.History, record)

	that.Turn = player.Opponent()

	return nil
}

// Play is ApplyMove for a Move value.
func (that *SuperBoard) Play(mv Move) error {
	return that.ApplyMove(mv.Board, mv.Position)
}

// CheckWinner recomputes the global winner from the per-board winners.
func (that *SuperBoard) CheckWinner() bool {
	if winner := that.Outcome(); winner != NoMark {
		that.Winner = winner
		return true
	}

	return false
}

// Outcome derives the global winner from the per-board winners without touching the state.
func (that *SuperBoard) Outcome() Mark {
	var owners [9]Mark
	for i := range that.Boards {
		owners[i] = that.Boards[i].Winner
	}

	return lineOwner(owners)
}

// IsFull reports whether every cell of board i is occupied.
func (that *SuperBoard) IsFull(i int) bool {
	return that.Boards[i].IsFull()
}

// ForcedBoard returns the board the side to move must play in. The constraint lifts
// when no board was set or the set board is already won or full.
func (that *SuperBoard) ForcedBoard() (int, bool) {
	if !that.HasNextBoard || that.Boards[that.NextBoard].IsDead() {
		return 0, false
	}

	return that.NextBoard, true
}

// IsFinished reports whether the game is decided or no board can take a move.
func (that *SuperBoard) IsFinished() bool {
	return that.Outcome() != NoMark || that.allDead()
}

// IsDraw reports a finished game without a global winner.
func (that *SuperBoard) IsDraw() bool {
	return that.Outcome() == NoMark && that.allDead()
}

func (that *SuperBoard) allDead() bool {
	for i := range that.Boards {
		if !that.Boards[i].IsDead() {
			return false
		}
	}

	return true
}

// Clone returns a deep copy sharing no mutable storage with the receiver.
func (that *SuperBoard) Clone() *SuperBoard {
	clone := *that
	clone.History = slices.Clone(that.History)
	if clone.History == nil {
		clone.History = []MoveRecord{}
	}

	return &clone
}

func (that *SuperBoard) String() string {
	var sb strings.Builder

	for bigRow := range 3 {
		if bigRow > 0 {
			sb.WriteString(strings.Repeat("-", 21))
			sb.WriteByte('\n')
		}

		for row := range 3 {
			for bigCol := range 3 {
				if bigCol > 0 {
					sb.WriteString(" | ")
				}

				board := &that.Boards[bigRow*3+bigCol]
				for col := range 3 {
					if col > 0 {
						sb.WriteByte(' ')
					}
					sb.WriteString(cellString(board.Cells[row*3+col]))
				}
			}
			sb.WriteByte('\n')
		}
	}

	next := "None"
	if that.HasNextBoard {
		next = strconv.Itoa(that.NextBoard)
	}

	winner := "None"
	if that.Winner != NoMark {
		winner = that.Winner.String()
	}

	sb.WriteString("Current player: " + that.Turn.String())
	sb.WriteString("    Next board: " + next)
	sb.WriteString("    Global winner: " + winner)

	return sb.String()
}

func cellString(mark Mark) string {
	if mark == NoMark {
		return "."
	}

	return mark.String()
}
