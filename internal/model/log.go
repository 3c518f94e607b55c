package model

import (
	"time"
)

// LogDateLayout is the calendar date format used for log_date.
const LogDateLayout = "2006-01-02"

const (
	MetricReplies   = "replies"
	MetricFollowers = "followers"
)

type Log struct {
	ID            string    `db:"id" json:"id"`
	UserID        string    `db:"user_id" json:"user_id"`
	LogDate       string    `db:"log_date" json:"log_date"`
	RepliesMade   int       `db:"replies_made" json:"replies_made"`
	FollowerCount int       `db:"follower_count" json:"follower_count"`
	DailyGoal     int       `db:"daily_goal" json:"daily_goal"` // snapshot at creation
	GoalMet       bool      `db:"goal_met" json:"goal_met"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// TodayLog is a log row paired with the live goal from the profile.
type TodayLog struct {
	Log       *Log
	DailyGoal int
	GoalMet   bool
}

// GoalMet reports whether replies reach goal.
func GoalMet(replies, goal int) bool {
	return replies >= goal
}
