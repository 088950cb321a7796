package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/boardfile"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/config"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/history"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/repository"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/repository/storage"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/service"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/usecase"
	"github.com/rocketscienceinc/ultimate-tictactoe/transport/cli"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs one game on stdin/stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		logger.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run wires the game from conf and plays it over in and out.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	game, err := loadGame(conf.BoardFile)
	if err != nil {
		return err
	}

	aiMark, err := entity.ParseMark(conf.AI.Mark)
	if err != nil {
		return fmt.Errorf("invalid ai mark: %w", err)
	}

	bot, err := service.NewBotService(logger, service.BotOptions{
		Difficulty: conf.AI.Difficulty,
		Mark:       aiMark,
		Depth:      conf.AI.Depth,
		Seed:       conf.AI.Seed,
	})
	if err != nil {
		return fmt.Errorf("could not create bot: %w", err)
	}

	var gameManager *usecase.GameManager

	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		gameRepo := repository.NewGameRepository(redisStorage.Connection)
		gameManager = usecase.NewGameManager(logger, game, bot, gameRepo)
	} else {
		gameManager = usecase.NewGameManager(logger, game, bot, nil)
	}

	log.Info("Starting game", "gameID", gameManager.ID(), "ai", aiMark, "depth", conf.AI.Depth, "difficulty", conf.AI.Difficulty)

	type outcome struct {
		record *entity.GameRecord
		err    error
	}

	doneCh := make(chan outcome, 1)
	go func() {
		record, err := cli.New(logger, gameManager, in, out).Run(ctx)
		doneCh <- outcome{record: record, err: err}
	}()

	select {
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	case done := <-doneCh:
		if done.err != nil && done.record == nil {
			return fmt.Errorf("game error: %w", done.err)
		}
		if done.err != nil {
			log.Error("game finished with error", "error", done.err)
		}

		return exportHistory(log, conf.Export.CSVPath, done.record)
	}
}

func loadGame(path string) (*entity.SuperBoard, error) {
	if path == "" {
		return entity.NewSuperBoard(), nil
	}

	game, err := boardfile.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not load board: %w", err)
	}

	return game, nil
}

func exportHistory(log *slog.Logger, path string, record *entity.GameRecord) error {
	if path == "" {
		return nil
	}

	if err := history.SaveCSV(path, record.Moves); err != nil {
		return fmt.Errorf("could not export history: %w", err)
	}

	log.Info("History exported", "path", path, "moves", len(record.Moves))

	return nil
}
