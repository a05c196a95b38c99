//go:generate mockgen -source=score_repository.go -destination=../mocks/score_repository.go -package=mocks
package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type Score struct {
	ID         int64     `db:"id"`
	SessionID  string    `db:"session_id"`
	Player     string    `db:"player"`
	Points     int       `db:"points"`
	Defeated   int       `db:"defeated"`
	Frames     int64     `db:"frames"`
	RecordedAt time.Time `db:"recorded_at"`
}

type IScoreRepository interface {
	Save(ctx context.Context, score *Score) error
	Top(ctx context.Context, limit int) ([]Score, error)
}

type scoreRepository struct {
	db *sqlx.DB
}

func NewScoreRepository(db *sqlx.DB) IScoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) Save(ctx context.Context, score *Score) error {
	query := `INSERT INTO scores (session_id, player, points, defeated, frames, recorded_at)
		VALUES (:session_id, :player, :points, :defeated, :frames, :recorded_at)`
	result, err := r.db.NamedExecContext(ctx, query, score)
	if err != nil {
		return err
	}
	score.ID, err = result.LastInsertId()
	return err
}

func (r *scoreRepository) Top(ctx context.Context, limit int) ([]Score, error) {
	query := `SELECT id, session_id, player, points, defeated, frames, recorded_at
		FROM scores ORDER BY points DESC, id ASC LIMIT ?`
	scores := []Score{}
	err := r.db.SelectContext(ctx, &scores, query, limit)
	if err != nil {
		return nil, err
	}
	return scores, nil
}
