package model

import "time"

const (
	DefaultDailyGoal     = 50
	DefaultFollowerCount = 0
)

type Profile struct {
	ID                   string    `db:"id" json:"id"`
	DailyGoal            int       `db:"daily_goal" json:"daily_goal"`
	CurrentFollowerCount int       `db:"current_follower_count" json:"current_follower_count"`
	OnboardingCompleted  bool      `db:"onboarding_completed" json:"onboarding_completed"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time `db:"updated_at" json:"updated_at"`
}

// DefaultProfile is what a user without a stored profile is treated as.
func DefaultProfile(userID string) *Profile {
	return &Profile{
		ID:                   userID,
		DailyGoal:            DefaultDailyGoal,
		CurrentFollowerCount: DefaultFollowerCount,
		OnboardingCompleted:  false,
	}
}

// Goal returns the effective daily goal, falling back to the default for
// unset or corrupt values.
func (p *Profile) Goal() int {
	if p == nil || p.DailyGoal < 1 {
		return DefaultDailyGoal
	}
	return p.DailyGoal
}
