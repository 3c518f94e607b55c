package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/replyguy/replyguy/internal/model"
	"github.com/replyguy/replyguy/internal/repository"
	"github.com/replyguy/replyguy/internal/validation"
)

var (
	ErrInvalidMetric = errors.New("metric must be replies or followers")
	ErrAlreadyLogged = errors.New("already logged today")
)

// debugLogLimit caps how many rows the debug session reports.
const debugLogLimit = 5

// TrackingService reconciles the per-day log row with the user's profile.
type TrackingService struct {
	logRepo     repository.LogRepository
	profileRepo repository.ProfileRepository
	historyDays int
	clock       func() time.Time
}

func NewTrackingService(
	logRepo repository.LogRepository,
	profileRepo repository.ProfileRepository,
	historyDays int,
) *TrackingService {
	if historyDays <= 0 {
		historyDays = 30
	}
	return &TrackingService{
		logRepo:     logRepo,
		profileRepo: profileRepo,
		historyDays: historyDays,
		clock:       time.Now,
	}
}

// LogicalDate returns date unchanged, or the server's local date when empty.
func (s *TrackingService) LogicalDate(date string) string {
	if date != "" {
		return date
	}
	return s.clock().Format(model.LogDateLayout)
}

// TodayLog returns the row for (userID, date), creating it from the profile if
// it does not exist yet. Goal and goal-met always come from the live profile.
func (s *TrackingService) TodayLog(ctx context.Context, userID, date string) (*model.TodayLog, error) {
	date = s.LogicalDate(date)

	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	log, err := s.logRepo.ByDate(ctx, userID, date)
	if errors.Is(err, repository.ErrLogNotFound) {
		_, err = s.logRepo.CreateIfAbsent(ctx, &model.Log{
			UserID:        userID,
			LogDate:       date,
			RepliesMade:   0,
			FollowerCount: profile.CurrentFollowerCount,
			DailyGoal:     profile.Goal(),
			GoalMet:       false,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create daily log: %w", err)
		}

		// Read back whichever row won if another request created it first.
		log, err = s.logRepo.ByDate(ctx, userID, date)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get daily log: %w", err)
	}

	return live(log, profile), nil
}

// UpdateMetric writes an absolute value for one metric of an existing day.
func (s *TrackingService) UpdateMetric(ctx context.Context, userID, date, metric string, value int) (*model.TodayLog, error) {
	err := validation.ValidateCount(value)
	if err != nil {
		return nil, err
	}
	if metric != model.MetricReplies && metric != model.MetricFollowers {
		return nil, ErrInvalidMetric
	}

	date = s.LogicalDate(date)

	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch metric {
	case model.MetricReplies:
		err = s.logRepo.UpdateReplies(ctx, userID, date, value, model.GoalMet(value, profile.Goal()))
	case model.MetricFollowers:
		err = s.logRepo.UpdateFollowers(ctx, userID, date, value)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", metric, err)
	}

	if metric == model.MetricFollowers {
		err = s.profileRepo.UpsertFollowerCount(ctx, userID, value)
		if err != nil {
			slog.Warn("failed to propagate follower count to profile", "error", err, "user_id", userID)
		}
	}

	log, err := s.logRepo.ByDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to reload daily log: %w", err)
	}

	return live(log, profile), nil
}

// RecentLogs returns rows on or after since, oldest first. An empty since
// means the configured history window ending today.
func (s *TrackingService) RecentLogs(ctx context.Context, userID, since string) ([]*model.Log, error) {
	if since == "" {
		since = s.clock().AddDate(0, 0, -s.historyDays).Format(model.LogDateLayout)
	}

	logs, err := s.logRepo.Since(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	return logs, nil
}

// CreateLog records a whole day in one submission. A day can only be
// submitted once.
func (s *TrackingService) CreateLog(ctx context.Context, userID, date string, replies, followers int) (*model.Log, error) {
	err := validation.ValidateCount(replies)
	if err != nil {
		return nil, err
	}
	err = validation.ValidateCount(followers)
	if err != nil {
		return nil, err
	}

	date = s.LogicalDate(date)

	_, err = s.logRepo.ByDate(ctx, userID, date)
	if err == nil {
		return nil, ErrAlreadyLogged
	}
	if !errors.Is(err, repository.ErrLogNotFound) {
		return nil, fmt.Errorf("failed to check existing log: %w", err)
	}

	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	log := &model.Log{
		UserID:        userID,
		LogDate:       date,
		RepliesMade:   replies,
		FollowerCount: followers,
		DailyGoal:     profile.Goal(),
		GoalMet:       model.GoalMet(replies, profile.Goal()),
	}

	err = s.logRepo.Create(ctx, log)
	if errors.Is(err, repository.ErrDuplicateLog) {
		return nil, ErrAlreadyLogged
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save log: %w", err)
	}

	err = s.profileRepo.UpsertFollowerCount(ctx, userID, followers)
	if err != nil {
		slog.Warn("failed to update follower count", "error", err, "user_id", userID)
	}

	return log, nil
}

// Stats summarises the history window ending at date.
func (s *TrackingService) Stats(ctx context.Context, userID, date string) (*model.Stats, error) {
	today, err := time.Parse(model.LogDateLayout, s.LogicalDate(date))
	if err != nil {
		return nil, validation.ErrInvalidDate
	}

	since := today.AddDate(0, 0, -s.historyDays).Format(model.LogDateLayout)
	weekStart := today.AddDate(0, 0, -7).Format(model.LogDateLayout)

	logs, err := s.RecentLogs(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	stats := &model.Stats{TotalDays: len(logs)}
	for _, log := range logs {
		if !log.GoalMet {
			continue
		}
		stats.GoalsAchieved++
		if log.LogDate >= weekStart {
			stats.ThisWeekGoals++
		}
	}
	if stats.TotalDays > 0 {
		stats.SuccessRate = int(math.Round(float64(stats.GoalsAchieved) / float64(stats.TotalDays) * 100))
	}

	return stats, nil
}

// LatestLogs returns the newest rows for diagnostics.
func (s *TrackingService) LatestLogs(ctx context.Context, userID string) ([]*model.Log, error) {
	return s.logRepo.Latest(ctx, userID, debugLogLimit)
}

func (s *TrackingService) profile(ctx context.Context, userID string) (*model.Profile, error) {
	profile, err := s.profileRepo.ByID(ctx, userID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return model.DefaultProfile(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

func live(log *model.Log, profile *model.Profile) *model.TodayLog {
	goal := profile.Goal()
	return &model.TodayLog{
		Log:       log,
		DailyGoal: goal,
		GoalMet:   model.GoalMet(log.RepliesMade, goal),
	}
}
