package service

import (
	"context"
	"fmt"

	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/repository"
	"github.com/templui/fittrack/internal/workout"
)

type WorkoutPlanService struct {
	repo        repository.WorkoutPlanRepository
	profileRepo repository.ProfileRepository
	builder     *workout.Builder
}

func NewWorkoutPlanService(
	repo repository.WorkoutPlanRepository,
	profileRepo repository.ProfileRepository,
	builder *workout.Builder,
) *WorkoutPlanService {
	return &WorkoutPlanService{
		repo:        repo,
		profileRepo: profileRepo,
		builder:     builder,
	}
}

// Generate builds a plan for the profile and replaces the user's current
// plan with it. A failed build leaves the current plan untouched.
func (s *WorkoutPlanService) Generate(ctx context.Context, profile *model.FitnessProfile) (*model.WorkoutPlan, error) {
	plan, err := s.builder.Build(profile)
	if err != nil {
		return nil, err
	}

	err = s.repo.Replace(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("failed to replace workout plan: %w", err)
	}

	return plan, nil
}

// Regenerate rebuilds the plan from the stored profile.
func (s *WorkoutPlanService) Regenerate(ctx context.Context, userID string) (*model.WorkoutPlan, error) {
	profile, err := s.profileRepo.ByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.Generate(ctx, profile)
}

func (s *WorkoutPlanService) Current(ctx context.Context, userID string) (*model.WorkoutPlan, error) {
	return s.repo.Current(ctx, userID)
}

func (s *WorkoutPlanService) Count(ctx context.Context, userID string) (int, error) {
	return s.repo.Count(ctx, userID)
}

func (s *WorkoutPlanService) Exercise(ctx context.Context, userID, exerciseID string) (*model.Exercise, error) {
	return s.repo.ExerciseByID(ctx, userID, exerciseID)
}
