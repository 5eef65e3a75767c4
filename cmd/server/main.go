package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/yukikurage/assignment-api/internal/config"
	"github.com/yukikurage/assignment-api/internal/database"
	"github.com/yukikurage/assignment-api/internal/logger"
	"github.com/yukikurage/assignment-api/internal/router"
)

//	@title			Assignment API
//	@version		1.0
//	@description	CRUD service for task statuses and user-to-task assignments.

//	@host		localhost:8080
//	@BasePath	/

const shutdownTimeout = 10 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(cfg.GinMode)
	}

	if err := database.Connect(cfg); err != nil {
		logrus.Fatal("Failed to connect to database: ", err)
	}

	if cfg.DBAutoMigrate {
		if err := database.Migrate(); err != nil {
			logrus.Fatal("Failed to run migrations: ", err)
		}
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.Setup(database.GetDB(), cfg),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server forced to shutdown")
	}

	if err := database.Close(); err != nil {
		logrus.WithError(err).Error("Failed to close database")
	}

	logrus.Info("Server exited")
}
