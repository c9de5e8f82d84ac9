package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/nutrition"
	"github.com/templui/fittrack/internal/repository"
	"github.com/templui/fittrack/internal/validation"
)

const recentLogLimit = 10

// SaveResult reports the stored profile and what happened to each plan.
// A plan error never fails the save itself.
type SaveResult struct {
	Profile     *model.FitnessProfile
	WorkoutPlan *model.WorkoutPlan
	MealPlan    *model.MealPlan
	WorkoutErr  error
	MealErr     error
}

// MealPlanSkipped reports whether the profile lacked biometrics for a meal plan.
func (r *SaveResult) MealPlanSkipped() bool {
	return r.MealPlan == nil && r.MealErr == nil
}

type Overview struct {
	Profile       *model.FitnessProfile `json:"profile"`
	TotalWorkouts int                   `json:"total_workouts"`
	RecentLogs    []*model.WorkoutLog   `json:"recent_logs"`
}

type Dashboard struct {
	Profile     *model.FitnessProfile `json:"profile"`
	Targets     *nutrition.Targets    `json:"targets,omitempty"`
	WorkoutPlan *model.WorkoutPlan    `json:"workout_plan"`
	MealPlan    *model.MealPlan       `json:"meal_plan"`
}

type ProfileService struct {
	profileRepo        repository.ProfileRepository
	workoutPlanService *WorkoutPlanService
	mealPlanService    *MealPlanService
	workoutLogService  *WorkoutLogService
}

func NewProfileService(
	profileRepo repository.ProfileRepository,
	workoutPlanService *WorkoutPlanService,
	mealPlanService *MealPlanService,
	workoutLogService *WorkoutLogService,
) *ProfileService {
	return &ProfileService{
		profileRepo:        profileRepo,
		workoutPlanService: workoutPlanService,
		mealPlanService:    mealPlanService,
		workoutLogService:  workoutLogService,
	}
}

func (s *ProfileService) ByUserID(ctx context.Context, userID string) (*model.FitnessProfile, error) {
	return s.profileRepo.ByUserID(ctx, userID)
}

// Save normalizes, validates and upserts the profile, then regenerates the
// workout plan and, when biometrics are complete, the meal plan.
func (s *ProfileService) Save(ctx context.Context, userID string, profile *model.FitnessProfile) (*SaveResult, error) {
	profile.UserID = userID
	profile.ID = ""
	profile.TargetMuscleGroups = validation.NormalizeMuscleGroups(profile.TargetMuscleGroups)
	profile.DietaryRestrictions = validation.NormalizeRestrictions(profile.DietaryRestrictions)
	for i := range profile.SplitDetails {
		profile.SplitDetails[i].MuscleGroups = validation.NormalizeMuscleGroups(profile.SplitDetails[i].MuscleGroups)
	}
	if profile.SplitCount == nil && len(profile.SplitDetails) > 0 {
		n := len(profile.SplitDetails)
		profile.SplitCount = &n
	}

	err := validation.ValidateProfile(profile)
	if err != nil {
		return nil, err
	}

	stored, err := s.profileRepo.Upsert(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to save fitness profile: %w", err)
	}

	result := &SaveResult{Profile: stored}

	result.WorkoutPlan, result.WorkoutErr = s.workoutPlanService.Generate(ctx, stored)
	if result.WorkoutErr != nil {
		slog.Error("failed to generate workout plan", "error", result.WorkoutErr, "user_id", userID)
	}

	if _, ok := stored.Biometrics(); ok {
		result.MealPlan, result.MealErr = s.mealPlanService.Generate(ctx, stored)
		if result.MealErr != nil {
			slog.Error("failed to generate meal plan", "error", result.MealErr, "user_id", userID)
		}
	}

	return result, nil
}

func (s *ProfileService) Overview(ctx context.Context, userID string) (*Overview, error) {
	profile, err := s.profileRepo.ByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	total, err := s.workoutLogService.Count(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count workouts: %w", err)
	}

	recent, err := s.workoutLogService.Recent(ctx, userID, recentLogLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent workouts: %w", err)
	}

	return &Overview{
		Profile:       profile,
		TotalWorkouts: total,
		RecentLogs:    recent,
	}, nil
}

// Dashboard gathers the profile, its nutrition targets and both current
// plans. A missing plan is returned as nil.
func (s *ProfileService) Dashboard(ctx context.Context, userID string) (*Dashboard, error) {
	profile, err := s.profileRepo.ByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{Profile: profile}

	if bio, ok := profile.Biometrics(); ok {
		targets, err := nutrition.Calculate(bio, profile.Goal)
		if err == nil {
			d.Targets = &targets
		}
	}

	d.WorkoutPlan, err = s.workoutPlanService.Current(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrWorkoutPlanNotFound) {
		return nil, fmt.Errorf("failed to load workout plan: %w", err)
	}

	d.MealPlan, err = s.mealPlanService.Current(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrMealPlanNotFound) {
		return nil, fmt.Errorf("failed to load meal plan: %w", err)
	}

	return d, nil
}
