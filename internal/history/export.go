package history

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

var header = []string{"move", "player", "board", "position", "next_board", "small_winner", "global_winner"}

// WriteCSV writes one row per move. Absent winners are empty fields.
func WriteCSV(w io.Writer, records []entity.MoveRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, record := range records {
		if err := writer.Write(row(record)); err != nil {
			return fmt.Errorf("failed to write move %d: %w", record.Number, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush history: %w", err)
	}

	return nil
}

// SaveCSV writes the history to path, replacing any existing file.
func SaveCSV(path string, records []entity.MoveRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err = WriteCSV(file, records); err != nil {
		_ = file.Close()
		return err
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	return nil
}

// WriteTable prints the history as an aligned text table.
func WriteTable(w io.Writer, records []entity.MoveRecord) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, record := range records {
		if _, err := fmt.Fprintln(tw, strings.Join(row(record), "\t")); err != nil {
			return fmt.Errorf("failed to write move %d: %w", record.Number, err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}

	return nil
}

func row(record entity.MoveRecord) []string {
	return []string{
		strconv.Itoa(record.Number),
		record.Player.String(),
		strconv.Itoa(record.Board),
		strconv.Itoa(record.Position),
		strconv.Itoa(record.NextBoard),
		record.SmallWinner.String(),
		record.GlobalWinner.String(),
	}
}
