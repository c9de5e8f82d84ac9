package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/repository"
	"github.com/templui/fittrack/internal/validation"
)

type LogInput struct {
	SetsCompleted int     `json:"sets_completed"`
	RepsCompleted string  `json:"reps_completed"`
	WeightUsed    float64 `json:"weight_used"`
	Notes         string  `json:"notes"`
}

type WorkoutLogService struct {
	repo     repository.WorkoutLogRepository
	planRepo repository.WorkoutPlanRepository
	now      func() time.Time
}

func NewWorkoutLogService(repo repository.WorkoutLogRepository, planRepo repository.WorkoutPlanRepository) *WorkoutLogService {
	return &WorkoutLogService{
		repo:     repo,
		planRepo: planRepo,
		now:      time.Now,
	}
}

// Log records a session of an exercise in the user's current plan, dated now.
// The exercise name and muscle groups are copied onto the log.
func (s *WorkoutLogService) Log(ctx context.Context, userID, exerciseID string, in LogInput) (*model.WorkoutLog, error) {
	reps := strings.TrimSpace(in.RepsCompleted)
	err := validation.ValidateWorkoutLog(in.SetsCompleted, reps, in.WeightUsed)
	if err != nil {
		return nil, err
	}

	exercise, err := s.planRepo.ExerciseByID(ctx, userID, exerciseID)
	if err != nil {
		return nil, err
	}

	log := &model.WorkoutLog{
		UserID:        userID,
		ExerciseID:    exercise.ID,
		ExerciseName:  exercise.Name,
		MuscleGroups:  exercise.MuscleGroups,
		Date:          s.now(),
		SetsCompleted: in.SetsCompleted,
		RepsCompleted: reps,
		WeightUsed:    in.WeightUsed,
	}
	if notes := strings.TrimSpace(in.Notes); notes != "" {
		log.Notes = &notes
	}

	err = s.repo.Create(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create workout log: %w", err)
	}

	return log, nil
}

func (s *WorkoutLogService) History(ctx context.Context, userID, exerciseID string) ([]*model.WorkoutLog, error) {
	return s.repo.ByExercise(ctx, userID, exerciseID)
}

func (s *WorkoutLogService) Recent(ctx context.Context, userID string, limit int) ([]*model.WorkoutLog, error) {
	return s.repo.Recent(ctx, userID, limit)
}

func (s *WorkoutLogService) Count(ctx context.Context, userID string) (int, error) {
	return s.repo.Count(ctx, userID)
}
