package service

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/tictactoe"
)

const (
	DifficultyMinimax = "minimax"
	DifficultyRandom  = "random"
)

var ErrUnknownDifficulty = errors.New("unknown bot difficulty")

type BotService interface {
	Mark() entity.Mark
	PickMove(game *entity.SuperBoard) (entity.Move, error)
}

type BotOptions struct {
	Difficulty string
	Mark       entity.Mark
	Depth      int
	Seed       int64
}

// NewBotService builds the bot for the requested difficulty.
func NewBotService(logger *slog.Logger, opts BotOptions) (BotService, error) {
	switch opts.Difficulty {
	case DifficultyMinimax, "":
		return NewMinimaxBot(logger, opts.Mark, opts.Depth), nil
	case DifficultyRandom:
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return NewRandomBot(logger, opts.Mark, rand.New(rand.NewSource(seed))), nil //nolint: gosec // it's ok
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDifficulty, opts.Difficulty)
	}
}

type minimaxBot struct {
	logger *slog.Logger
	mark   entity.Mark
	depth  int
}

func NewMinimaxBot(logger *slog.Logger, mark entity.Mark, depth int) BotService {
	return &minimaxBot{
		logger: logger.With("component", "bot", "difficulty", DifficultyMinimax),
		mark:   mark,
		depth:  depth,
	}
}

func (that *minimaxBot) Mark() entity.Mark {
	return that.mark
}

func (that *minimaxBot) PickMove(game *entity.SuperBoard) (entity.Move, error) {
	log := that.logger.With("method", "PickMove", "move", len(game.History)+1)

	started := time.Now()
	result := tictactoe.Minimax(game, game.Turn == that.mark, that.mark, that.depth)

	log.Debug("search finished",
		"depth", that.depth,
		"score", result.Score,
		"nodes", result.Nodes,
		"elapsed", time.Since(started),
	)

	if !result.Found {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	return result.Move, nil
}

type randomBot struct {
	logger *slog.Logger
	mark   entity.Mark
	rnd    *rand.Rand
}

func NewRandomBot(logger *slog.Logger, mark entity.Mark, rnd *rand.Rand) BotService {
	return &randomBot{
		logger: logger.With("component", "bot", "difficulty", DifficultyRandom),
		mark:   mark,
		rnd:    rnd,
	}
}

func (that *randomBot) Mark() entity.Mark {
	return that.mark
}

func (that *randomBot) PickMove(game *entity.SuperBoard) (entity.Move, error) {
	move, ok := tictactoe.RandomMove(game, that.rnd)
	if !ok {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	that.logger.Debug("random move", "board", move.Board, "position", move.Position)

	return move, nil
}
