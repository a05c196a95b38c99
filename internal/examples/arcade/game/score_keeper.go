package game

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/victormf2/gameioc/events"
	"github.com/victormf2/gameioc/internal/examples/arcade/repositories"
	"github.com/victormf2/gameioc/state"
)

const saveTimeout = 5 * time.Second

// ScoreKeeper sums the points of defeated enemies and saves the final score when the
// game stops. Without a repository the score is only logged.
type ScoreKeeper struct {
	session    *Session
	repository repositories.IScoreRepository
	logger     *logrus.Entry
	points     int
	defeated   int
	frames     int64
	saved      *repositories.Score
}

func NewScoreKeeper(queue *events.Queue, session *Session, logger *logrus.Entry) *ScoreKeeper {
	return NewPersistentScoreKeeper(queue, session, nil, logger)
}

func NewPersistentScoreKeeper(queue *events.Queue, session *Session, repository repositories.IScoreRepository, logger *logrus.Entry) *ScoreKeeper {
	k := &ScoreKeeper{
		session:    session,
		repository: repository,
		logger:     logger.WithField("system", "score"),
	}
	events.Subscribe(queue, func(e EnemyDefeated) {
		k.points += e.Points
		k.defeated++
	})
	events.Subscribe(queue, func(e state.StateChanged) {
		if e.To == state.Stopped {
			k.finish(e.At)
		}
	})
	return k
}

func (k *ScoreKeeper) Points() int {
	return k.points
}

func (k *ScoreKeeper) Persistent() bool {
	return k.repository != nil
}

// Saved returns the score recorded when the game stopped, or nil.
func (k *ScoreKeeper) Saved() *repositories.Score {
	return k.saved
}

func (k *ScoreKeeper) Update(time.Duration) error {
	k.frames++
	return nil
}

func (k *ScoreKeeper) finish(at time.Time) {
	score := &repositories.Score{
		SessionID:  k.session.ID,
		Player:     k.session.Player,
		Points:     k.points,
		Defeated:   k.defeated,
		Frames:     k.frames,
		RecordedAt: at,
	}
	logger := k.logger.WithFields(logrus.Fields{
		"points":   score.Points,
		"defeated": score.Defeated,
		"frames":   score.Frames,
	})

	if k.repository != nil {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()

		if err := k.repository.Save(ctx, score); err != nil {
			logger.WithError(err).Error("failed to save score")
			return
		}
	}

	k.saved = score
	logger.Info("final score")
}
