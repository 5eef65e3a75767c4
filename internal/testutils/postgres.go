//go:build integration

package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/yukikurage/assignment-api/internal/database"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	pgOnce     sync.Once
	pgInitErr  error
	pgPool     *dockertest.Pool
	pgResource *dockertest.Resource
	pgDB       *gorm.DB
)

// NewPostgresDB returns a migrated gorm DB backed by a throwaway Postgres container.
// The container is shared by the whole test binary; both tables are truncated per call.
func NewPostgresDB(t *testing.T) *gorm.DB {
	t.Helper()

	pgOnce.Do(func() { pgInitErr = startPostgres() })
	if pgInitErr != nil {
		t.Fatalf("failed to initialize postgres container: %v", pgInitErr)
	}

	for _, table := range []string{"user_tasks", "task_statuses"} {
		if err := pgDB.Exec(`TRUNCATE TABLE "` + table + `" RESTART IDENTITY`).Error; err != nil {
			t.Fatalf("failed to truncate %s: %v", table, err)
		}
	}
	return pgDB
}

// PurgePostgres removes the shared container. Call it from TestMain.
func PurgePostgres() {
	if pgDB != nil {
		if sqlDB, err := pgDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if pgPool != nil && pgResource != nil {
		if err := pgPool.Purge(pgResource); err != nil {
			log.Printf("WARN: could not purge postgres container: %v", err)
		}
	}
	pgPool, pgResource, pgDB = nil, nil, nil
}

func startPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pgPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=taskpassword",
			"POSTGRES_USER=taskuser",
			"POSTGRES_DB=task_management",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	pgResource = resource

	hostPort := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("host=127.0.0.1 port=%s user=taskuser password=taskpassword dbname=task_management sslmode=disable", hostPort)

	pool.MaxWait = 2 * time.Minute
	return pool.Retry(func() error {
		std, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		if err := std.Ping(); err != nil {
			return err
		}

		db, err := gorm.Open(postgres.Open(dsn), database.GormConfig(logger.Silent))
		if err != nil {
			return err
		}
		if err := database.MigrateDatabase(db); err != nil {
			return err
		}
		pgDB = db
		return nil
	})
}
