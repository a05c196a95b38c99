package game

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/victormf2/gameioc/events"
)

var pointsByKind = map[string]int{
	"slime":  10,
	"goblin": 25,
	"dragon": 100,
}

// Arena keeps the enemies alive and defeats the oldest one every frame.
type Arena struct {
	queue  *events.Queue
	logger *logrus.Entry
	alive  []EnemySpawned
}

func NewArena(queue *events.Queue, logger *logrus.Entry) *Arena {
	a := &Arena{
		queue:  queue,
		logger: logger.WithField("system", "arena"),
	}
	events.Subscribe(queue, func(e EnemySpawned) {
		a.alive = append(a.alive, e)
	})
	return a
}

func (a *Arena) Alive() int {
	return len(a.alive)
}

func (a *Arena) Update(time.Duration) error {
	if len(a.alive) == 0 {
		return nil
	}

	enemy := a.alive[0]
	defeated := EnemyDefeated{ID: enemy.ID, Kind: enemy.Kind, Points: points(enemy.Kind)}
	if err := a.queue.Publish(defeated); err != nil {
		// The enemy survives until the next frame.
		a.logger.WithError(err).Warn("enemy not defeated")
		return nil
	}
	a.alive = a.alive[1:]
	return nil
}

func points(kind string) int {
	if p, ok := pointsByKind[kind]; ok {
		return p
	}
	return 1
}
