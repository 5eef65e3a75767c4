package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/assignment-api/internal/config"
	"github.com/yukikurage/assignment-api/internal/database"
	"gorm.io/gorm/logger"
)

func TestDialector(t *testing.T) {
	for _, driver := range []string{config.DriverMySQL, config.DriverPostgres, config.DriverSQLite} {
		d, err := database.Dialector(driver, "dsn")
		require.NoError(t, err, driver)
		assert.Equal(t, driver, d.Name())
	}

	_, err := database.Dialector("oracle", "dsn")
	assert.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, database.ParseLogLevel("silent"))
	assert.Equal(t, logger.Error, database.ParseLogLevel("ERROR"))
	assert.Equal(t, logger.Info, database.ParseLogLevel("info"))
	assert.Equal(t, logger.Warn, database.ParseLogLevel(""))
}

func TestConnectAndMigrate_SQLite(t *testing.T) {
	cfg := &config.Config{
		DBDriver:       config.DriverSQLite,
		DBPath:         "file::memory:?cache=shared",
		DBLogLevel:     "silent",
		DBMaxOpenConns: 2,
		DBMaxIdleConns: 1,
	}

	require.NoError(t, database.Connect(cfg))
	t.Cleanup(func() {
		database.Close()
		database.SetDB(nil)
	})

	require.NoError(t, database.Migrate())

	db := database.GetDB()
	assert.True(t, db.Migrator().HasTable("user_tasks"))
	assert.True(t, db.Migrator().HasTable("task_statuses"))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 2, sqlDB.Stats().MaxOpenConnections)
}
