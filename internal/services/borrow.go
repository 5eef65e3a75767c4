package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/assignment-api/internal/database"
	"gorm.io/gorm"
)

// withRepository borrows a pooled connection, builds a repository on it and runs fn.
// The connection goes back to the pool before withRepository returns.
func withRepository[R any, T any](ctx context.Context, pool *database.Pool, newRepo func(*gorm.DB) R, fn func(R) (T, error)) (T, error) {
	var result T
	err := pool.With(ctx, func(conn *gorm.DB) error {
		var err error
		result, err = fn(newRepo(conn))
		return err
	})
	return result, err
}

// translate maps store errors onto the service taxonomy.
// Pool failures keep ErrPoolUnavailable in their chain, missing rows become notFound
// and everything else is wrapped with the failed operation.
func translate(err error, notFound error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, database.ErrPoolUnavailable):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	default:
		return fmt.Errorf("failed to %s: %w", op, err)
	}
}
