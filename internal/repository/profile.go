package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/replyguy/replyguy/internal/model"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
)

type ProfileRepository interface {
	ByID(ctx context.Context, userID string) (*model.Profile, error)
	UpsertDailyGoal(ctx context.Context, userID string, goal int) error
	UpsertFollowerCount(ctx context.Context, userID string, count int) error
	UpsertOnboarding(ctx context.Context, userID string, goal, followers int) (*model.Profile, error)
}

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) ByID(ctx context.Context, userID string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.GetContext(ctx, &profile, `SELECT * FROM profiles WHERE id = $1`, userID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// UpsertDailyGoal sets daily_goal, creating the profile with defaults if needed.
// Other columns of an existing profile are left alone.
func (r *profileRepository) UpsertDailyGoal(ctx context.Context, userID string, goal int) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (id, daily_goal, current_follower_count, onboarding_completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET daily_goal = excluded.daily_goal, updated_at = excluded.updated_at
	`, userID, goal, model.DefaultFollowerCount, false, now, now)

	return err
}

func (r *profileRepository) UpsertFollowerCount(ctx context.Context, userID string, count int) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (id, daily_goal, current_follower_count, onboarding_completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET current_follower_count = excluded.current_follower_count, updated_at = excluded.updated_at
	`, userID, model.DefaultDailyGoal, count, false, now, now)

	return err
}

func (r *profileRepository) UpsertOnboarding(ctx context.Context, userID string, goal, followers int) (*model.Profile, error) {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (id, daily_goal, current_follower_count, onboarding_completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET daily_goal = excluded.daily_goal,
		    current_follower_count = excluded.current_follower_count,
		    onboarding_completed = excluded.onboarding_completed,
		    updated_at = excluded.updated_at
	`, userID, goal, followers, true, now, now)
	if err != nil {
		return nil, err
	}

	return r.ByID(ctx, userID)
}
