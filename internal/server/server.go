// Package server boots the HTTP server with every subsystem wired:
// database, cache, queue workers, log sink, routes.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eshop-back/app/jobs"
	"eshop-back/app/routes"
	"eshop-back/config"
	"eshop-back/pkg/cache"
	"eshop-back/pkg/database"
	"eshop-back/pkg/logger"
	"eshop-back/pkg/queue"
	"eshop-back/pkg/router"
)

// Start runs the server until SIGINT or SIGTERM, then drains in-flight
// requests for up to 10 seconds.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if uri := config.LogMongoURI(); uri != "" {
		sink, err := logger.AttachMongoSink(uri)
		if err != nil {
			logger.Warn("mongo log sink unavailable", "error", err)
		} else {
			defer sink.Close()
		}
	}

	db, err := database.Connect()
	if err != nil {
		return err
	}

	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, cache and redis queue disabled", "error", err)
	}

	// Background jobs: Redis-backed when configured and reachable,
	// in-process otherwise.
	jobs.RegisterAll()
	queue.UseDB(db)
	if config.QueueDriver() == "redis" && cache.Client() != nil {
		queue.SetDriver(queue.NewRedisDriver(cache.Client()))
	}
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	queue.StartWorkers(workerCtx, 4)

	r := router.New()
	routes.Register(r, db)

	addr := ":" + config.AppPort()
	srv := &http.Server{
		Addr:              addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr, "env", config.AppEnv())
		errCh <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
