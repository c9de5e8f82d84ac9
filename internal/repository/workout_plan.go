package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/templui/fittrack/internal/model"
)

type WorkoutPlanRepository interface {
	Replace(ctx context.Context, plan *model.WorkoutPlan) error
	Current(ctx context.Context, userID string) (*model.WorkoutPlan, error)
	Count(ctx context.Context, userID string) (int, error)
	ExerciseByID(ctx context.Context, userID, exerciseID string) (*model.Exercise, error)
}

type workoutPlanRepository struct {
	db *sqlx.DB
}

func NewWorkoutPlanRepository(db *sqlx.DB) WorkoutPlanRepository {
	return &workoutPlanRepository{db: db}
}

// Replace deletes every workout plan of plan.UserID and inserts plan with its
// days and exercises, all in one transaction. IDs and timestamps are assigned.
func (r *workoutPlanRepository) Replace(ctx context.Context, plan *model.WorkoutPlan) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		DELETE FROM exercises WHERE workout_day_id IN (
			SELECT d.id FROM workout_days d
			JOIN workout_plans p ON p.id = d.workout_plan_id
			WHERE p.user_id = $1
		)`, plan.UserID)
	if err != nil {
		return fmt.Errorf("failed to delete exercises: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
		DELETE FROM workout_days WHERE workout_plan_id IN (
			SELECT id FROM workout_plans WHERE user_id = $1
		)`, plan.UserID)
	if err != nil {
		return fmt.Errorf("failed to delete workout days: %w", err)
	}
	_, err = tx.ExecContext(ctx, `DELETE FROM workout_plans WHERE user_id = $1`, plan.UserID)
	if err != nil {
		return fmt.Errorf("failed to delete workout plans: %w", err)
	}

	now := time.Now().UTC()
	plan.ID = uuid.New().String()
	plan.CreatedAt = now

	_, err = tx.ExecContext(ctx, `
		INSERT INTO workout_plans (id, user_id, name, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, plan.ID, plan.UserID, plan.Name, plan.Description, plan.CreatedAt)
	if isUniqueViolation(err) {
		return ErrConcurrentReplace
	}
	if err != nil {
		return fmt.Errorf("failed to insert workout plan: %w", err)
	}

	for i, day := range plan.Days {
		day.ID = uuid.New().String()
		day.WorkoutPlanID = plan.ID
		day.Position = i
		day.CreatedAt = now

		_, err = tx.ExecContext(ctx, `
			INSERT INTO workout_days (id, workout_plan_id, position, name, day_of_week, target_muscle_groups, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, day.ID, day.WorkoutPlanID, day.Position, day.Name, day.DayOfWeek, day.TargetMuscleGroups, day.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert workout day %d: %w", i, err)
		}

		for j, ex := range day.Exercises {
			ex.ID = uuid.New().String()
			ex.WorkoutDayID = day.ID
			ex.Position = j
			ex.CreatedAt = now

			_, err = tx.ExecContext(ctx, `
				INSERT INTO exercises (id, workout_day_id, position, name, sets, reps_per_set, rest_seconds, muscle_groups, video_url, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			`, ex.ID, ex.WorkoutDayID, ex.Position, ex.Name, ex.Sets, ex.RepsPerSet, ex.RestSeconds, ex.MuscleGroups, ex.VideoURL, ex.CreatedAt)
			if err != nil {
				return fmt.Errorf("failed to insert exercise %q: %w", ex.Name, err)
			}
		}
	}

	err = tx.Commit()
	if isUniqueViolation(err) {
		return ErrConcurrentReplace
	}
	return err
}

// Current loads the user's plan with days and exercises in position order.
func (r *workoutPlanRepository) Current(ctx context.Context, userID string) (*model.WorkoutPlan, error) {
	plan := &model.WorkoutPlan{}
	err := r.db.GetContext(ctx, plan, `SELECT * FROM workout_plans WHERE user_id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWorkoutPlanNotFound
	}
	if err != nil {
		return nil, err
	}

	err = r.db.SelectContext(ctx, &plan.Days, `SELECT * FROM workout_days WHERE workout_plan_id = $1 ORDER BY position ASC`, plan.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load workout days: %w", err)
	}

	var exercises []*model.Exercise
	err = r.db.SelectContext(ctx, &exercises, `
		SELECT e.* FROM exercises e
		JOIN workout_days d ON d.id = e.workout_day_id
		WHERE d.workout_plan_id = $1
		ORDER BY d.position ASC, e.position ASC
	`, plan.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load exercises: %w", err)
	}

	byDay := make(map[string]*model.WorkoutDay, len(plan.Days))
	for _, day := range plan.Days {
		day.Exercises = []*model.Exercise{}
		byDay[day.ID] = day
	}
	for _, ex := range exercises {
		if day, ok := byDay[ex.WorkoutDayID]; ok {
			day.Exercises = append(day.Exercises, ex)
		}
	}

	return plan, nil
}

func (r *workoutPlanRepository) Count(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM workout_plans WHERE user_id = $1`, userID)
	return count, err
}

// ExerciseByID only finds exercises in plans owned by userID.
func (r *workoutPlanRepository) ExerciseByID(ctx context.Context, userID, exerciseID string) (*model.Exercise, error) {
	ex := &model.Exercise{}
	err := r.db.GetContext(ctx, ex, `
		SELECT e.* FROM exercises e
		JOIN workout_days d ON d.id = e.workout_day_id
		JOIN workout_plans p ON p.id = d.workout_plan_id
		WHERE e.id = $1 AND p.user_id = $2
	`, exerciseID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrExerciseNotFound
	}
	if err != nil {
		return nil, err
	}
	return ex, nil
}
