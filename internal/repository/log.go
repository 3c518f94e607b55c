package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/replyguy/replyguy/internal/model"
)

var (
	ErrLogNotFound  = errors.New("log not found")
	ErrDuplicateLog = errors.New("log already exists for date")
)

type LogRepository interface {
	ByDate(ctx context.Context, userID, logDate string) (*model.Log, error)
	Create(ctx context.Context, log *model.Log) error
	CreateIfAbsent(ctx context.Context, log *model.Log) (bool, error)
	UpdateReplies(ctx context.Context, userID, logDate string, replies int, goalMet bool) error
	UpdateFollowers(ctx context.Context, userID, logDate string, followers int) error
	Since(ctx context.Context, userID, since string) ([]*model.Log, error)
	Latest(ctx context.Context, userID string, limit int) ([]*model.Log, error)
}

type logRepository struct {
	db *sqlx.DB
}

func NewLogRepository(db *sqlx.DB) LogRepository {
	return &logRepository{db: db}
}

const insertLogQuery = `INSERT INTO logs (id, user_id, log_date, replies_made, follower_count, daily_goal, goal_met, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (r *logRepository) ByDate(ctx context.Context, userID, logDate string) (*model.Log, error) {
	log := &model.Log{}
	query := `SELECT * FROM logs WHERE user_id = $1 AND log_date = $2`

	err := r.db.GetContext(ctx, log, query, userID, logDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLogNotFound
	}
	if err != nil {
		return nil, err
	}

	return log, nil
}

func (r *logRepository) Create(ctx context.Context, log *model.Log) error {
	prepare(log)

	_, err := r.db.ExecContext(ctx, insertLogQuery, logArgs(log)...)
	if err != nil {
		// Unique constraint violation (SQLite and PostgreSQL wording)
		errStr := err.Error()
		if strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value") {
			return ErrDuplicateLog
		}
		return err
	}

	return nil
}

// CreateIfAbsent inserts the row unless one already exists for (user_id, log_date).
// It reports whether this call created the row.
func (r *logRepository) CreateIfAbsent(ctx context.Context, log *model.Log) (bool, error) {
	prepare(log)

	result, err := r.db.ExecContext(ctx, insertLogQuery+` ON CONFLICT (user_id, log_date) DO NOTHING`, logArgs(log)...)
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}

func (r *logRepository) UpdateReplies(ctx context.Context, userID, logDate string, replies int, goalMet bool) error {
	query := `UPDATE logs
	          SET replies_made = $1, goal_met = $2, updated_at = $3
	          WHERE user_id = $4 AND log_date = $5`

	result, err := r.db.ExecContext(ctx, query, replies, goalMet, time.Now().UTC(), userID, logDate)
	return checkAffected(result, err)
}

func (r *logRepository) UpdateFollowers(ctx context.Context, userID, logDate string, followers int) error {
	query := `UPDATE logs
	          SET follower_count = $1, updated_at = $2
	          WHERE user_id = $3 AND log_date = $4`

	result, err := r.db.ExecContext(ctx, query, followers, time.Now().UTC(), userID, logDate)
	return checkAffected(result, err)
}

func (r *logRepository) Since(ctx context.Context, userID, since string) ([]*model.Log, error) {
	logs := []*model.Log{}
	query := `SELECT * FROM logs WHERE user_id = $1 AND log_date >= $2 ORDER BY log_date ASC`

	err := r.db.SelectContext(ctx, &logs, query, userID, since)
	if err != nil {
		return nil, err
	}

	return logs, nil
}

// Latest returns up to limit rows, newest first.
func (r *logRepository) Latest(ctx context.Context, userID string, limit int) ([]*model.Log, error) {
	logs := []*model.Log{}
	query := `SELECT * FROM logs WHERE user_id = $1 ORDER BY log_date DESC LIMIT $2`

	err := r.db.SelectContext(ctx, &logs, query, userID, limit)
	if err != nil {
		return nil, err
	}

	return logs, nil
}

func prepare(log *model.Log) {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if log.CreatedAt.IsZero() {
		log.CreatedAt = now
	}
	if log.UpdatedAt.IsZero() {
		log.UpdatedAt = now
	}
}

func logArgs(log *model.Log) []any {
	return []any{
		log.ID,
		log.UserID,
		log.LogDate,
		log.RepliesMade,
		log.FollowerCount,
		log.DailyGoal,
		log.GoalMet,
		log.CreatedAt,
		log.UpdatedAt,
	}
}

func checkAffected(result sql.Result, err error) error {
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrLogNotFound
	}

	return nil
}
