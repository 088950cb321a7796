// Package boardfile reads a starting position from its text form:
//
//	Current player: O
//	Active board: (2,2)
//
//	(1,1)
//	X X X
//	. O .
//	. . .
//
// Board headers are 1-based (row,col) pairs. A row is either three whitespace separated
// tokens or a single three-character token; X and O are marks, anything else is empty.
package boardfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

var ErrInvalidHeader = errors.New("invalid board header")

// ParseFile opens path and parses it.
func ParseFile(path string) (*entity.SuperBoard, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open board file: %w", err)
	}
	defer file.Close()

	sb, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return sb, nil
}

// Parse builds a SuperBoard from r and recomputes every winner. Sections with a
// malformed header or fewer than three rows are skipped.
func Parse(r io.Reader) (*entity.SuperBoard, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	sb := entity.NewSuperBoard()

	for _, line := range lines {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}

		switch strings.ToLower(strings.TrimSpace(key)) {
		case "current player":
			if mark, err := entity.ParseMark(strings.TrimSpace(value)); err == nil {
				sb.Turn = mark
			}
		case "active board":
			if board, err := parseHeader(strings.TrimSpace(value)); err == nil {
				sb.NextBoard, sb.HasNextBoard = board, true
			}
		}
	}

	for i := 0; i < len(lines); {
		if !isHeader(lines[i]) {
			i++
			continue
		}

		board, err := parseHeader(lines[i])
		if err != nil {
			i++
			continue
		}

		rows := make([]string, 0, 3)
		j := i + 1
		for ; j < len(lines) && len(rows) < 3; j++ {
			if lines[j] != "" {
				rows = append(rows, lines[j])
			}
		}

		if len(rows) == 3 {
			if cells, ok := parseCells(rows); ok {
				sb.Boards[board].Cells = cells
			}
		}

		i = j
	}

	for i := range sb.Boards {
		sb.Boards[i].CheckWinner()
	}
	sb.CheckWinner()

	return sb, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read board: %w", err)
	}

	return lines, nil
}

func isHeader(line string) bool {
	return strings.HasPrefix(line, "(") && strings.HasSuffix(line, ")") && strings.Contains(line, ",")
}

// parseHeader turns "(r,c)" into a board index.
func parseHeader(header string) (int, error) {
	if !isHeader(header) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHeader, header)
	}

	rowText, colText, _ := strings.Cut(strings.Trim(header, "()"), ",")

	row, err := strconv.Atoi(strings.TrimSpace(rowText))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHeader, header)
	}

	col, err := strconv.Atoi(strings.TrimSpace(colText))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHeader, header)
	}

	if row < 1 || row > 3 || col < 1 || col > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHeader, header)
	}

	return (row-1)*3 + (col - 1), nil
}

func parseCells(rows []string) ([9]entity.Mark, bool) {
	var cells [9]entity.Mark

	n := 0
	for _, row := range rows {
		tokens := strings.Fields(row)
		if len(tokens) == 1 && len(tokens[0]) == 3 {
			tokens = strings.Split(tokens[0], "")
		}

		for _, token := range tokens {
			if n == len(cells) {
				return cells, false
			}

			mark, err := entity.ParseMark(token)
			if err != nil {
				mark = entity.NoMark
			}
			cells[n] = mark
			n++
		}
	}

	return cells, n == len(cells)
}
