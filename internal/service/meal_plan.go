package service

import (
	"context"
	"fmt"

	"github.com/templui/fittrack/internal/mealplan"
	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/repository"
)

type MealPlanService struct {
	repo        repository.MealPlanRepository
	profileRepo repository.ProfileRepository
	builder     *mealplan.Builder
}

func NewMealPlanService(
	repo repository.MealPlanRepository,
	profileRepo repository.ProfileRepository,
	builder *mealplan.Builder,
) *MealPlanService {
	return &MealPlanService{
		repo:        repo,
		profileRepo: profileRepo,
		builder:     builder,
	}
}

// Generate runs every recipe request before touching the datastore, then
// replaces the user's current meal plan in one transaction.
func (s *MealPlanService) Generate(ctx context.Context, profile *model.FitnessProfile) (*model.MealPlan, error) {
	plan, err := s.builder.Build(ctx, profile)
	if err != nil {
		return nil, err
	}

	err = s.repo.Replace(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("failed to replace meal plan: %w", err)
	}

	return plan, nil
}

func (s *MealPlanService) Regenerate(ctx context.Context, userID string) (*model.MealPlan, error) {
	profile, err := s.profileRepo.ByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.Generate(ctx, profile)
}

func (s *MealPlanService) Current(ctx context.Context, userID string) (*model.MealPlan, error) {
	return s.repo.Current(ctx, userID)
}

func (s *MealPlanService) Count(ctx context.Context, userID string) (int, error) {
	return s.repo.Count(ctx, userID)
}

func (s *MealPlanService) Meal(ctx context.Context, userID, mealID string) (*model.Meal, error) {
	return s.repo.MealByID(ctx, userID, mealID)
}
