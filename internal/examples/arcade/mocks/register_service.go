package mocks

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/victormf2/gameioc"
	"github.com/victormf2/gameioc/internal/examples/arcade/config"
	"github.com/victormf2/gameioc/internal/examples/arcade/setup"
)

// RegisterTestServices registers the application services with a quiet logger and
// without a database. Tests override what they want to control afterwards.
func RegisterTestServices(c *gameioc.Container, cfg *config.Config) error {
	cfg.DB.Path = ""

	return errors.Join(
		setup.RegisterServices(c, cfg),
		gameioc.RegisterFactory[*logrus.Entry](c, func(*gameioc.Container) (*logrus.Entry, error) {
			logger := logrus.New()
			logger.Out = io.Discard
			return logrus.NewEntry(logger), nil
		}, gameioc.Singleton),
	)
}
