package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/victormf2/gameioc"
	"github.com/victormf2/gameioc/gameloop"
	"github.com/victormf2/gameioc/internal/examples/arcade/config"
	"github.com/victormf2/gameioc/internal/examples/arcade/game"
	"github.com/victormf2/gameioc/internal/examples/arcade/setup"
)

func main() {
	cfg := config.Load()

	// First create the Container
	c := gameioc.NewContainer()

	// Then register all dependencies. Keeping registrations in functions lets the
	// tests reuse them.
	if err := setup.RegisterServices(c, cfg); err != nil {
		log.Fatalf("failed to register services: %v", err)
	}
	if cfg.Debug.Enabled {
		if err := setup.RegisterDebugServer(c); err != nil {
			log.Fatalf("failed to register debug server: %v", err)
		}
	}

	// Any resolution error means a broken dependency graph, so stop right here.
	logger, err := gameioc.Resolve[*log.Entry](c)
	if err != nil {
		log.Fatalf("failed to resolve logger: %v", err)
	}
	world, err := gameioc.Resolve[*game.World](c)
	if err != nil {
		logger.WithError(err).Fatal("failed to build the world")
	}
	runner, err := gameioc.Resolve[*gameloop.Runner](c)
	if err != nil {
		logger.WithError(err).Fatal("failed to build the game loop")
	}

	var server *http.Server
	if cfg.Debug.Enabled {
		server, err = gameioc.Resolve[*http.Server](c)
		if err != nil {
			logger.WithError(err).Fatal("failed to build the debug server")
		}
		go func() {
			logger.WithField("addr", server.Addr).Info("debug server listening")
			err := server.ListenAndServe()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.WithError(err).Error("debug server failed")
			}
		}()
	}

	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runner.Run(ctx); err != nil {
		logger.WithError(err).Error("game loop failed")
	}
	stop()

	logger.WithField("points", world.Score.Points()).Info("game over")

	if server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.WithError(err).Error("debug server forced to shutdown")
		}
	}

	if err := setup.CloseServices(c); err != nil {
		logger.WithError(err).Error("failed to close services")
	}
}
