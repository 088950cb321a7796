package apperror

import "errors"

var (
	ErrUnspecifiedBoard = errors.New("board is not specified and no board is forced")
	ErrCellOccupied     = errors.New("cell is already occupied")

	ErrGameFinished     = errors.New("game is already finished")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrIllegalMove      = errors.New("move is not legal in the current position")
	ErrNoAvailableMoves = errors.New("no available moves")
)
