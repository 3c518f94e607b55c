package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/replyguy/replyguy/internal/model"
	"github.com/replyguy/replyguy/internal/repository"
	"github.com/replyguy/replyguy/internal/validation"
)

type ProfileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
	}
}

// Profile returns the stored profile, or defaults when the user has none.
func (s *ProfileService) Profile(ctx context.Context, userID string) (*model.Profile, error) {
	profile, _, err := s.Stored(ctx, userID)
	return profile, err
}

// Stored is Profile plus whether a row actually exists.
func (s *ProfileService) Stored(ctx context.Context, userID string) (*model.Profile, bool, error) {
	profile, err := s.profileRepo.ByID(ctx, userID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return model.DefaultProfile(userID), false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, true, nil
}

// SetDailyGoal changes the goal without touching stored logs.
func (s *ProfileService) SetDailyGoal(ctx context.Context, userID string, goal int) error {
	err := validation.ValidateDailyGoal(goal)
	if err != nil {
		return err
	}

	err = s.profileRepo.UpsertDailyGoal(ctx, userID, goal)
	if err != nil {
		return fmt.Errorf("failed to set daily goal: %w", err)
	}
	return nil
}

func (s *ProfileService) CompleteOnboarding(ctx context.Context, userID string, goal, followers int) (*model.Profile, error) {
	err := validation.ValidateDailyGoal(goal)
	if err != nil {
		return nil, err
	}
	err = validation.ValidateCount(followers)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.UpsertOnboarding(ctx, userID, goal, followers)
	if err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return profile, nil
}
