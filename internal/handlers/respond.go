package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/assignment-api/internal/database"
	apierrors "github.com/yukikurage/assignment-api/internal/errors"
	"github.com/yukikurage/assignment-api/internal/logger"
	"github.com/yukikurage/assignment-api/internal/services"
)

// respondAbsent collapses any service error into a 404.
// The error kind only decides how loudly it is logged.
func respondAbsent(c *gin.Context, op string, err error) {
	log := logger.WithContext(c.Request.Context()).WithField("op", op).WithError(err)

	switch {
	case errors.Is(err, services.ErrAssignmentNotFound), errors.Is(err, services.ErrTaskStatusNotFound):
		log.Debug("no matching row")
	case errors.Is(err, database.ErrPoolUnavailable):
		log.Error("no database connection available")
	default:
		log.Warn("store operation failed")
	}

	apierrors.NotFound(c, "")
}

// logListFailure records why a list endpoint is answering with an empty array
func logListFailure(c *gin.Context, op string, err error) {
	log := logger.WithContext(c.Request.Context()).WithField("op", op).WithError(err)
	if errors.Is(err, database.ErrPoolUnavailable) {
		log.Error("no database connection available, returning empty list")
		return
	}
	log.Warn("list failed, returning empty list")
}
