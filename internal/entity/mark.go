package entity

import (
	"errors"
	"fmt"
)

// Mark is the symbol a player puts into a cell. NoMark is an empty cell or an absent winner.
type Mark uint8

const (
	NoMark Mark = iota
	X
	O
)

var ErrUnknownMark = errors.New("unknown mark")

// ParseMark accepts "X" or "O".
func ParseMark(s string) (Mark, error) {
	switch s {
	case "X":
		return X, nil
	case "O":
		return O, nil
	default:
		return NoMark, fmt.Errorf("%w: %q", ErrUnknownMark, s)
	}
}

// Opponent returns the other player's mark. NoMark has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return NoMark
	}
}

func (that Mark) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

func (that Mark) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Mark) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*that = NoMark
		return nil
	}

	mark, err := ParseMark(string(text))
	if err != nil {
		return err
	}

	*that = mark

	return nil
}
