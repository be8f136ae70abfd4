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
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/sibaproject/siba-gateway/internal/app"
	"github.com/sibaproject/siba-gateway/internal/config"
	"github.com/sibaproject/siba-gateway/internal/logging"
	"github.com/sibaproject/siba-gateway/internal/session"
)

func main() {
	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cliApp := &cli.App{
		Name:  "siba-gateway",
		Usage: "session-holding gateway in front of the booking API",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Value: false,
				EnvVars: []string{
					"SIBA_GATEWAY_DEBUG",
				},
			},
		},
		Before: func(cctx *cli.Context) error {
			return logging.Setup(cctx.Bool("debug"))
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "purge-sessions",
				Usage:  "delete expired sessions from the session store",
				Action: purgeSessions,
			},
		},
	}

	if err := cliApp.RunContext(ctx, os.Args); err != nil {
		zap.L().Fatal("unhandled error", zap.Error(err))
	}
}

func serve(cctx *cli.Context) error {
	defer func() { _ = zap.L().Sync() }()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.IsProduction && !cctx.Bool("debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := session.OpenDB(cfg.SessionDBPath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	container := app.NewContainer(cfg, db)

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: container.Router,
	}

	serverDone := make(chan struct{})
	go func() {
		zap.L().Info("serving requests", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Error("failed to listen for http requests", zap.Error(err))
		}
		close(serverDone)
	}()

	select {
	case <-serverDone:
	case <-cctx.Context.Done():
		zap.L().Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zap.L().Warn("server forced to shutdown", zap.Error(err))
	}

	zap.L().Info("server exited gracefully")
	return nil
}

func purgeSessions(cctx *cli.Context) error {
	defer func() { _ = zap.L().Sync() }()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := session.OpenDB(cfg.SessionDBPath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	sessions := session.NewService(session.NewSQLiteRepository(db), cfg.SessionTTL)
	deleted, err := sessions.PurgeExpired(cctx.Context)
	if err != nil {
		return err
	}

	zap.L().Info("purged expired sessions", zap.Int64("deleted", deleted))
	return nil
}
