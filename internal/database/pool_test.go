package database_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/assignment-api/internal/database"
	"github.com/yukikurage/assignment-api/internal/models"
	"github.com/yukikurage/assignment-api/internal/testutils"
	"gorm.io/gorm"
)

func TestPool_WithRunsOnBorrowedConnection(t *testing.T) {
	pool := database.NewPool(testutils.NewSQLiteDB(t))

	err := pool.With(context.Background(), func(conn *gorm.DB) error {
		assert.Equal(t, 1, pool.Stats().InUse)
		return conn.Create(&models.TaskStatus{StatusName: "open"}).Error
	})
	require.NoError(t, err)

	assert.Equal(t, 0, pool.Stats().InUse)
}

func TestPool_WithReturnsCallbackErrorUnwrapped(t *testing.T) {
	pool := database.NewPool(testutils.NewSQLiteDB(t))
	boom := errors.New("boom")

	err := pool.With(context.Background(), func(conn *gorm.DB) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, database.ErrPoolUnavailable)
	assert.Equal(t, 0, pool.Stats().InUse)
}

func TestPool_StatementsDoNotLeakConditions(t *testing.T) {
	pool := database.NewPool(testutils.NewSQLiteDB(t))

	err := pool.With(context.Background(), func(conn *gorm.DB) error {
		require.NoError(t, conn.Create(&models.TaskStatus{StatusName: "open"}).Error)
		require.NoError(t, conn.Create(&models.TaskStatus{StatusName: "done"}).Error)

		var first models.TaskStatus
		require.NoError(t, conn.Where("status_name = ?", "open").First(&first).Error)

		var all []models.TaskStatus
		require.NoError(t, conn.Find(&all).Error)
		assert.Len(t, all, 2)
		return nil
	})
	require.NoError(t, err)
}

func TestPool_CancelledContextIsUnavailable(t *testing.T) {
	pool := database.NewPool(testutils.NewSQLiteDB(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := pool.With(ctx, func(conn *gorm.DB) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, database.ErrPoolUnavailable)
	assert.False(t, called)
}

func TestPool_ExhaustedPoolIsUnavailable(t *testing.T) {
	// the test DB allows a single open connection
	pool := database.NewPool(testutils.NewSQLiteDB(t))

	err := pool.With(context.Background(), func(conn *gorm.DB) error {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		return pool.With(ctx, func(*gorm.DB) error {
			t.Fatal("second borrower must not get a connection")
			return nil
		})
	})

	assert.ErrorIs(t, err, database.ErrPoolUnavailable)
	assert.Equal(t, 0, pool.Stats().InUse)
}

func TestPool_ClosedDatabaseIsUnavailable(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	err = database.NewPool(db).With(context.Background(), func(*gorm.DB) error { return nil })

	assert.ErrorIs(t, err, database.ErrPoolUnavailable)
}

func TestPool_NilPool(t *testing.T) {
	var pool *database.Pool

	assert.ErrorIs(t, pool.With(context.Background(), func(*gorm.DB) error { return nil }), database.ErrPoolUnavailable)
	assert.ErrorIs(t, pool.Ping(context.Background()), database.ErrPoolUnavailable)
	assert.Zero(t, pool.Stats().OpenConnections)
}

func TestPool_Ping(t *testing.T) {
	pool := database.NewPool(testutils.NewSQLiteDB(t))

	assert.NoError(t, pool.Ping(context.Background()))
}
