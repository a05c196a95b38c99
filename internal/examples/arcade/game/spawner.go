package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/victormf2/gameioc/events"
)

type SpawnerConfig struct {
	// Spawn an enemy every Every frames. Zero or less disables spawning.
	Every int
	// Kinds are spawned round robin.
	Kinds []string
}

var DefaultKinds = []string{"slime", "goblin", "slime", "dragon"}

type Spawner struct {
	queue   *events.Queue
	config  SpawnerConfig
	logger  *logrus.Entry
	frame   int
	spawned int
}

func NewSpawner(queue *events.Queue, config SpawnerConfig, logger *logrus.Entry) *Spawner {
	if len(config.Kinds) == 0 {
		config.Kinds = DefaultKinds
	}
	return &Spawner{
		queue:  queue,
		config: config,
		logger: logger.WithField("system", "spawner"),
	}
}

func (s *Spawner) Update(time.Duration) error {
	s.frame++
	if s.config.Every <= 0 || s.frame%s.config.Every != 0 {
		return nil
	}

	enemy := EnemySpawned{
		ID:    uuid.NewString(),
		Kind:  s.config.Kinds[s.spawned%len(s.config.Kinds)],
		Frame: s.frame,
	}
	// A full queue only costs us this enemy.
	if err := s.queue.Publish(enemy); err != nil {
		s.logger.WithError(err).Warn("enemy not spawned")
		return nil
	}
	s.spawned++

	s.logger.WithFields(logrus.Fields{
		"enemy_id": enemy.ID,
		"kind":     enemy.Kind,
	}).Debug("enemy spawned")
	return nil
}
