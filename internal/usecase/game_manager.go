package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/tictactoe"
)

var ErrNoBot = errors.New("no bot configured")

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.GameRecord) error
}

type botService interface {
	Mark() entity.Mark
	PickMove(game *entity.SuperBoard) (entity.Move, error)
}

// GameManager is the single owner of the live game. Front ends read snapshots through
// State and change the game only through MakeTurn and BotTurn.
type GameManager struct {
	logger *slog.Logger

	id       string
	game     *entity.SuperBoard
	bot      botService
	gameRepo gameRepo
	now      func() time.Time
}

// NewGameManager takes ownership of game. bot and gameRepo may be nil: without a bot
// both marks are played through MakeTurn, without a repository finished games are not archived.
func NewGameManager(logger *slog.Logger, game *entity.SuperBoard, bot botService, gameRepo gameRepo) *GameManager {
	if game == nil {
		game = entity.NewSuperBoard()
	}

	id := uuid.NewString()

	return &GameManager{
		logger:   logger.With("component", "game_manager", "gameID", id),
		id:       id,
		game:     game,
		bot:      bot,
		gameRepo: gameRepo,
		now:      time.Now,
	}
}

func (that *GameManager) ID() string {
	return that.id
}

// State returns a copy of the live game.
func (that *GameManager) State() *entity.SuperBoard {
	return that.game.Clone()
}

// LegalMoves lists the moves of the side to move, or none once the game is finished.
func (that *GameManager) LegalMoves() []entity.Move {
	if that.game.IsFinished() {
		return []entity.Move{}
	}

	return tictactoe.LegalMoves(that.game)
}

func (that *GameManager) IsFinished() bool {
	return that.game.IsFinished()
}

// IsBotTurn reports whether the next move belongs to the bot.
func (that *GameManager) IsBotTurn() bool {
	return that.bot != nil && !that.game.IsFinished() && that.game.Turn == that.bot.Mark()
}

// MakeTurn applies a move chosen by a human player.
func (that *GameManager) MakeTurn(_ context.Context, move entity.Move) error {
	log := that.logger.With("method", "MakeTurn")

	if that.game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.IsBotTurn() {
		return apperror.ErrNotYourTurn
	}

	if !inRange(move.Board) || !inRange(move.Position) {
		return fmt.Errorf("%w: board %d position %d", apperror.ErrIllegalMove, move.Board, move.Position)
	}

	if !slices.Contains(tictactoe.LegalMoves(that.game), move) {
		if that.game.Boards[move.Board].Cells[move.Position] != entity.NoMark {
			return apperror.ErrCellOccupied
		}
		return fmt.Errorf("%w: board %d position %d", apperror.ErrIllegalMove, move.Board, move.Position)
	}

	if err := that.game.Play(move); err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	log.Info("player made a turn", "player", that.game.History[len(that.game.History)-1].Player,
		"board", move.Board, "position", move.Position)

	return nil
}

// BotTurn asks the bot for a move and applies it.
func (that *GameManager) BotTurn(_ context.Context) (entity.Move, error) {
	log := that.logger.With("method", "BotTurn")

	if that.bot == nil {
		return entity.Move{}, ErrNoBot
	}

	if that.game.IsFinished() {
		return entity.Move{}, apperror.ErrGameFinished
	}

	if that.game.Turn != that.bot.Mark() {
		return entity.Move{}, apperror.ErrNotYourTurn
	}

	move, err := that.bot.PickMove(that.game.Clone())
	if err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to pick a move: %w", err)
	}

	if err = that.game.Play(move); err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Info("bot made a turn", "player", that.bot.Mark(), "board", move.Board, "position", move.Position)

	return move, nil
}

// Finish builds the record of the game and archives it when a repository is configured.
func (that *GameManager) Finish(ctx context.Context) (*entity.GameRecord, error) {
	log := that.logger.With("method", "Finish")

	record := entity.NewGameRecord(that.id, that.game, that.now())

	if that.gameRepo == nil {
		return record, nil
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, record); err != nil {
		return record, fmt.Errorf("failed to archive game: %w", err)
	}

	log.Info("game archived", "moves", len(record.Moves), "winner", record.Winner, "draw", record.Draw)

	return record, nil
}

func inRange(i int) bool {
	return i >= 0 && i < 9
}
