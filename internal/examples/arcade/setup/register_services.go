package setup

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/victormf2/gameioc"
	"github.com/victormf2/gameioc/events"
	"github.com/victormf2/gameioc/gameloop"
	"github.com/victormf2/gameioc/internal/examples/arcade/config"
	"github.com/victormf2/gameioc/internal/examples/arcade/game"
	"github.com/victormf2/gameioc/internal/examples/arcade/infra"
	"github.com/victormf2/gameioc/internal/examples/arcade/repositories"
	"github.com/victormf2/gameioc/state"
)

func RegisterServices(c *gameioc.Container, cfg *config.Config) error {
	err := errors.Join(
		gameioc.RegisterInstance(c, cfg),
		gameioc.RegisterInstance(c, events.QueueConfig{Capacity: cfg.Game.QueueCapacity}),
		gameioc.RegisterInstance(c, gameloop.Config{TickRate: cfg.Game.TickRate, MaxFrames: cfg.Game.MaxFrames}),
		gameioc.RegisterInstance(c, game.SpawnerConfig{Every: cfg.Game.SpawnEvery}),

		gameioc.RegisterFactory[*game.Session](c, func(*gameioc.Container) (*game.Session, error) {
			return game.NewSession(cfg.Game.Player), nil
		}, gameioc.Singleton),
		gameioc.RegisterFactory[*logrus.Entry](c, newLogger, gameioc.Singleton),

		gameioc.DeclareConstructors[*events.Queue](c, events.NewQueue),
		gameioc.DeclareConstructors[*state.Manager](c, state.NewManager),
		gameioc.DeclareConstructors[*gameloop.Runner](c, gameloop.NewRunner),
		gameioc.DeclareConstructors[*game.Spawner](c, game.NewSpawner),
		gameioc.DeclareConstructors[*game.Arena](c, game.NewArena),
		// The persistent keeper is picked whenever a score repository is registered.
		gameioc.DeclareConstructors[*game.ScoreKeeper](c, game.NewScoreKeeper, game.NewPersistentScoreKeeper),
		gameioc.DeclareConstructors[*game.StatusBoard](c, game.NewStatusBoard),
		gameioc.DeclareConstructors[*game.World](c, game.NewWorld),

		gameioc.RegisterSelf[*events.Queue](c, gameioc.Singleton),
		gameioc.RegisterSelf[*state.Manager](c, gameioc.Singleton),
		gameioc.RegisterSelf[*gameloop.Runner](c, gameioc.Singleton),
		gameioc.RegisterSelf[*game.Spawner](c, gameioc.Singleton),
		gameioc.RegisterSelf[*game.Arena](c, gameioc.Singleton),
		gameioc.RegisterSelf[*game.ScoreKeeper](c, gameioc.Singleton),
		gameioc.RegisterSelf[*game.StatusBoard](c, gameioc.Singleton),
		gameioc.RegisterSelf[*game.World](c, gameioc.Singleton),
	)
	if err != nil {
		return err
	}

	if cfg.DB.Path == "" {
		return nil
	}

	return errors.Join(
		gameioc.RegisterInstance(c, infra.DBConfig{Path: cfg.DB.Path}),
		gameioc.DeclareConstructors[*sqlx.DB](c, infra.NewDB),
		gameioc.RegisterSelf[*sqlx.DB](c, gameioc.Singleton),
		gameioc.DeclareConstructors[repositories.IScoreRepository](c, repositories.NewScoreRepository),
		gameioc.RegisterSelf[repositories.IScoreRepository](c, gameioc.Singleton),
	)
}

func newLogger(c *gameioc.Container) (*logrus.Entry, error) {
	cfg, err := gameioc.Resolve[*config.Config](c)
	if err != nil {
		return nil, err
	}
	session, err := gameioc.Resolve[*game.Session](c)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	logger.SetLevel(level)
	if cfg.Log.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger.WithFields(logrus.Fields{
		"session_id": session.ID,
		"player":     session.Player,
	}), nil
}

// CloseServices releases what RegisterServices opened. Only the score database needs it.
func CloseServices(c *gameioc.Container) error {
	if !gameioc.IsRegistered[*sqlx.DB](c) {
		return nil
	}
	db, err := gameioc.Resolve[*sqlx.DB](c)
	if err != nil {
		return err
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("failed to close the score database: %w", err)
	}
	return nil
}
