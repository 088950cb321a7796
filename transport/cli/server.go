package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/history"
)

var (
	ErrInputClosed = errors.New("input closed before the game finished")
	errBadNumber   = errors.New("not an index between 0 and 8")
)

type uGame interface {
	State() *entity.SuperBoard
	IsFinished() bool
	IsBotTurn() bool

	MakeTurn(ctx context.Context, move entity.Move) error
	BotTurn(ctx context.Context) (entity.Move, error)

	Finish(ctx context.Context) (*entity.GameRecord, error)
}

// Server drives one game in text mode over a line based input and an output stream.
type Server struct {
	logger *slog.Logger
	uGame  uGame

	in  *bufio.Scanner
	out io.Writer
}

func New(logger *slog.Logger, uGame uGame, in io.Reader, out io.Writer) *Server {
	return &Server{
		logger: logger.With("component", "cli"),
		uGame:  uGame,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run plays until the game is finished and returns its record.
func (that *Server) Run(ctx context.Context) (*entity.GameRecord, error) {
	log := that.logger.With("method", "Run")

	that.printf("=== Super Tic Tac Toe ===\n")
	that.printf("Boards and positions are indexed 0-8 like a 3x3 grid.\n")
	that.printf("%s\n", strings.Repeat("-", 50))

	for !that.uGame.IsFinished() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("game interrupted: %w", err)
		}

		state := that.uGame.State()
		that.printf("%s\n\n", state)

		if that.uGame.IsBotTurn() {
			that.printf("AI thinking...\n")

			move, err := that.uGame.BotTurn(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to make bot turn: %w", err)
			}

			that.printf("AI plays on board %d, position %d.\n\n", move.Board, move.Position)
			continue
		}

		move, err := that.readMove(state)
		if err != nil {
			return nil, err
		}

		if err = that.uGame.MakeTurn(ctx, move); err != nil {
			if !isMoveError(err) {
				return nil, fmt.Errorf("failed to make turn: %w", err)
			}

			log.Debug("rejected move", "board", move.Board, "position", move.Position, "error", err)
			that.printf("Error: %v\n", err)
		}
	}

	return that.finish(ctx)
}

func (that *Server) finish(ctx context.Context) (*entity.GameRecord, error) {
	state := that.uGame.State()
	that.printf("%s\n", state)

	if winner := state.Outcome(); winner != entity.NoMark {
		that.printf("Game Over! Winner: %s\n", winner)
	} else {
		that.printf("It's a draw!\n")
	}

	that.printf("\nGame history:\n")
	if err := history.WriteTable(that.out, state.History); err != nil {
		return nil, fmt.Errorf("failed to print history: %w", err)
	}

	record, err := that.uGame.Finish(ctx)
	if err != nil {
		return record, fmt.Errorf("failed to finish game: %w", err)
	}

	return record, nil
}

// readMove prompts until both indices parse. The board is asked for only when the
// side to move has a free choice.
func (that *Server) readMove(state *entity.SuperBoard) (entity.Move, error) {
	for {
		board, forced := state.ForcedBoard()
		if forced {
			that.printf("%s: you must play in board #%d.\n", state.Turn, board)
		} else {
			var err error
			board, err = that.readIndex(fmt.Sprintf("%s: enter board index (0-8): ", state.Turn))
			if errors.Is(err, errBadNumber) {
				that.printf("Invalid input. Please enter an integer between 0 and 8.\n")
				continue
			}
			if err != nil {
				return entity.Move{}, err
			}
		}

		position, err := that.readIndex("Enter position (0-8): ")
		if errors.Is(err, errBadNumber) {
			that.printf("Invalid input. Please enter an integer between 0 and 8.\n")
			continue
		}
		if err != nil {
			return entity.Move{}, err
		}

		return entity.Move{Board: board, Position: position}, nil
	}
}

func (that *Server) readIndex(prompt string) (int, error) {
	that.printf("%s", prompt)

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return 0, fmt.Errorf("failed to read input: %w", err)
		}
		return 0, ErrInputClosed
	}

	n, err := strconv.Atoi(strings.TrimSpace(that.in.Text()))
	if err != nil || n < 0 || n > 8 {
		return 0, errBadNumber
	}

	return n, nil
}

func (that *Server) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

func isMoveError(err error) bool {
	return errors.Is(err, apperror.ErrCellOccupied) ||
		errors.Is(err, apperror.ErrIllegalMove) ||
		errors.Is(err, apperror.ErrUnspecifiedBoard) ||
		errors.Is(err, apperror.ErrNotYourTurn)
}
