package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/rocketscienceinc/ultimate-tictactoe/testing/suite"
)

func finishedGame(t *testing.T, id string, finishedAt time.Time) *entity.GameRecord {
	t.Helper()

	sb := entity.NewSuperBoard()
	require.NoError(t, sb.ApplyMove(4, 4))
	require.NoError(t, sb.ApplyMove(4, 0))

	return entity.NewGameRecord(id, sb, finishedAt)
}

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage.Connection)

	// Given: a finished game record
	game := finishedGame(t, "123", time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC))

	// When: CreateOrUpdate is called
	err := gameRepo.CreateOrUpdate(ctx, game)

	// Then: no error should be returned, and the game is listed
	require.NoError(t, err)

	ids, err := gameRepo.ListIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"123"}, ids)
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage.Connection)

		// Given: an archived game
		game := finishedGame(t, "123", time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC))
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: GetByID is called with the existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the retrieved history matches the saved one
		require.NoError(t, err)
		assert.Equal(t, game.ID, retrievedGame.ID)
		assert.Equal(t, game.Moves, retrievedGame.Moves)
		assert.True(t, game.FinishedAt.Equal(retrievedGame.FinishedAt))
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage.Connection)

		// When: GetByID is called with a non-existent ID
		retrievedGame, err := gameRepo.GetByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, ErrGameNotFound)
		assert.Empty(t, retrievedGame.ID)
	})
}

func TestGameRepository_ListIDs(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage.Connection)

	// Given: two games archived out of order
	later := finishedGame(t, "later", time.Date(2026, 10, 19, 13, 0, 0, 0, time.UTC))
	earlier := finishedGame(t, "earlier", time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC))
	require.NoError(t, gameRepo.CreateOrUpdate(ctx, later))
	require.NoError(t, gameRepo.CreateOrUpdate(ctx, earlier))

	// When: listing the archive
	ids, err := gameRepo.ListIDs(ctx)

	// Then: the games come back by finishing time
	require.NoError(t, err)
	assert.Equal(t, []string{"earlier", "later"}, ids)
}

func TestGameRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage.Connection)

		// Given: an archived game
		game := finishedGame(t, "123", time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC))
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: DeleteByID is called with the existing ID
		err := gameRepo.DeleteByID(ctx, game.ID)

		// Then: the game is gone from storage and index
		require.NoError(t, err)

		_, err = gameRepo.GetByID(ctx, game.ID)
		require.ErrorIs(t, err, ErrGameNotFound)

		ids, err := gameRepo.ListIDs(ctx)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage.Connection)

		// When: DeleteByID is called with a non-existent ID
		err := gameRepo.DeleteByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, ErrGameNotFound)
	})
}
