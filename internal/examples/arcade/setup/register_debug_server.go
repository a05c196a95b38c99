package setup

import (
	"errors"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/victormf2/gameioc"
	"github.com/victormf2/gameioc/internal/examples/arcade/config"
	"github.com/victormf2/gameioc/internal/examples/arcade/game"
	"github.com/victormf2/gameioc/internal/examples/arcade/repositories"
)

type ServiceInfo struct {
	Service        string `json:"service"`
	Implementation string `json:"implementation"`
}

func RegisterDebugServer(c *gameioc.Container) error {
	return errors.Join(
		gameioc.RegisterFactory[*gin.Engine](c, newDebugRouter, gameioc.Singleton),
		gameioc.RegisterFactory[*http.Server](c, func(c *gameioc.Container) (*http.Server, error) {
			cfg, err := gameioc.Resolve[*config.Config](c)
			if err != nil {
				return nil, err
			}
			router, err := gameioc.Resolve[*gin.Engine](c)
			if err != nil {
				return nil, err
			}
			return &http.Server{
				Addr:              cfg.Debug.Addr,
				Handler:           router,
				ReadHeaderTimeout: 5 * time.Second,
			}, nil
		}, gameioc.Singleton),
	)
}

// Handlers run on the server goroutines while the container belongs to the update loop,
// so everything they use is resolved here, during bootstrap.
func newDebugRouter(c *gameioc.Container) (*gin.Engine, error) {
	board, err := gameioc.Resolve[*game.StatusBoard](c)
	if err != nil {
		return nil, err
	}
	logger, err := gameioc.Resolve[*logrus.Entry](c)
	if err != nil {
		return nil, err
	}
	var repository repositories.IScoreRepository
	if gameioc.IsRegistered[repositories.IScoreRepository](c) {
		repository, err = gameioc.Resolve[repositories.IScoreRepository](c)
		if err != nil {
			return nil, err
		}
	}
	services := describeServices(c)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogMiddleware(logger))

	router.GET("/debug/status", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, board.Snapshot())
	})

	router.GET("/debug/services", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, services)
	})

	router.GET("/debug/scores", func(ctx *gin.Context) {
		if repository == nil {
			ctx.JSON(http.StatusNotFound, gin.H{"msg": "scores are not persisted"})
			return
		}

		limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
		if err != nil || limit <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"msg": "limit must be a positive integer"})
			return
		}

		scores, err := repository.Top(ctx.Request.Context(), limit)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, scores)
	})

	return router, nil
}

func describeServices(c *gameioc.Container) []ServiceInfo {
	services := []ServiceInfo{}
	for _, serviceType := range c.RegisteredTypes() {
		services = append(services, ServiceInfo{
			Service:        serviceType.String(),
			Implementation: c.ImplementationType(serviceType).String(),
		})
	}
	slices.SortFunc(services, func(a, b ServiceInfo) int {
		return strings.Compare(a.Service, b.Service)
	})
	return services
}

func requestLogMiddleware(logger *logrus.Entry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		// Process request
		c.Next()

		logger.WithFields(logrus.Fields{
			"status":    c.Writer.Status(),
			"duration":  time.Since(start).String(),
			"client_ip": c.ClientIP(),
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
		}).Debug("debug request")
	}
}
