// Package gameloop ticks a state.Manager at a fixed rate until it is told to stop.
package gameloop

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/victormf2/gameioc/state"
)

const DefaultTickRate = time.Second / 60

type Config struct {
	// Interval between frames. Zero or less means DefaultTickRate.
	TickRate time.Duration
	// Stop after this many frames. Zero means no limit.
	MaxFrames int
}

type Runner struct {
	manager *state.Manager
	config  Config
	logger  *logrus.Entry
}

func NewRunner(manager *state.Manager, config Config, logger *logrus.Entry) *Runner {
	if config.TickRate <= 0 {
		config.TickRate = DefaultTickRate
	}
	return &Runner{
		manager: manager,
		config:  config,
		logger:  logger.WithField("component", "gameloop"),
	}
}

// Run starts the manager and updates it on every tick with the elapsed time since the
// previous frame. It returns when ctx is done, the manager is Stopped, MaxFrames frames
// have run, or a frame fails. The manager is stopped before returning.
//
// Context cancellation is a normal exit and returns nil.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.manager.Start(); err != nil {
		return err
	}
	defer r.stop()

	ticker := time.NewTicker(r.config.TickRate)
	defer ticker.Stop()

	r.logger.WithField("tick_rate", r.config.TickRate.String()).Info("game loop started")

	frames := 0
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("game loop cancelled")
			return nil
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now

			if err := r.manager.Update(dt); err != nil {
				r.logger.WithError(err).Error("frame failed")
				return err
			}
			frames++

			if r.manager.Current() == state.Stopped {
				r.logger.WithField("frames", frames).Info("game stopped")
				return nil
			}
			if r.config.MaxFrames > 0 && frames >= r.config.MaxFrames {
				r.logger.WithField("frames", frames).Info("frame limit reached")
				return nil
			}
		}
	}
}

func (r *Runner) stop() {
	if r.manager.Current() != state.Stopped {
		if err := r.manager.Stop(); err != nil {
			r.logger.WithError(err).Warn("failed to stop game")
		}
	}
	// Deliver the final StateChanged to subscribers.
	if err := r.manager.Update(0); err != nil {
		r.logger.WithError(err).Warn("final frame failed")
	}
}
