package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrPoolUnavailable is returned when no connection could be borrowed from the pool
var ErrPoolUnavailable = errors.New("database: connection unavailable")

// Pool lends store connections for the duration of a single callback
type Pool struct {
	db *gorm.DB
}

// NewPool wraps db. Its size is governed by the sql.DB settings applied in Connect.
func NewPool(db *gorm.DB) *Pool {
	return &Pool{db: db}
}

// With borrows a connection, runs fn on it and returns the connection on every exit path.
// Acquisition blocks until a connection frees up or ctx is done.
func (p *Pool) With(ctx context.Context, fn func(conn *gorm.DB) error) error {
	if p == nil || p.db == nil {
		return ErrPoolUnavailable
	}

	acquired := false
	err := p.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		acquired = true
		// NewDB keeps the borrowed connection but starts every chain from a clean statement
		return fn(conn.Session(&gorm.Session{NewDB: true}))
	})
	if err != nil && !acquired {
		return fmt.Errorf("%w: %v", ErrPoolUnavailable, err)
	}
	return err
}

// Ping checks that the store is reachable
func (p *Pool) Ping(ctx context.Context) error {
	if p == nil || p.db == nil {
		return ErrPoolUnavailable
	}
	sqlDB, err := p.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPoolUnavailable, err)
	}
	return sqlDB.PingContext(ctx)
}

// Stats reports the underlying sql.DB pool counters
func (p *Pool) Stats() sql.DBStats {
	if p == nil || p.db == nil {
		return sql.DBStats{}
	}
	sqlDB, err := p.db.DB()
	if err != nil {
		return sql.DBStats{}
	}
	return sqlDB.Stats()
}
