package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/templui/fittrack/internal/model"
)

// WorkoutLogRepository is append-only: logs are never updated or deleted.
type WorkoutLogRepository interface {
	Create(ctx context.Context, log *model.WorkoutLog) error
	Between(ctx context.Context, userID string, from, to time.Time) ([]*model.WorkoutLog, error)
	ByExercise(ctx context.Context, userID, exerciseID string) ([]*model.WorkoutLog, error)
	Recent(ctx context.Context, userID string, limit int) ([]*model.WorkoutLog, error)
	Count(ctx context.Context, userID string) (int, error)
}

type workoutLogRepository struct {
	db *sqlx.DB
}

func NewWorkoutLogRepository(db *sqlx.DB) WorkoutLogRepository {
	return &workoutLogRepository{db: db}
}

func (r *workoutLogRepository) Create(ctx context.Context, log *model.WorkoutLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if log.Date.IsZero() {
		log.Date = time.Now()
	}
	log.Date = log.Date.UTC()
	log.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO workout_logs (id, user_id, exercise_id, exercise_name, muscle_groups, date, sets_completed, reps_completed, weight_used, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`,
		log.ID,
		log.UserID,
		log.ExerciseID,
		log.ExerciseName,
		log.MuscleGroups,
		log.Date,
		log.SetsCompleted,
		log.RepsCompleted,
		log.WeightUsed,
		log.Notes,
		log.CreatedAt,
	)

	return err
}

// Between returns logs dated within [from, to], oldest first.
func (r *workoutLogRepository) Between(ctx context.Context, userID string, from, to time.Time) ([]*model.WorkoutLog, error) {
	logs := []*model.WorkoutLog{}
	err := r.db.SelectContext(ctx, &logs, `
		SELECT * FROM workout_logs
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC
	`, userID, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// ByExercise returns the user's logs for one exercise, newest first.
func (r *workoutLogRepository) ByExercise(ctx context.Context, userID, exerciseID string) ([]*model.WorkoutLog, error) {
	logs := []*model.WorkoutLog{}
	err := r.db.SelectContext(ctx, &logs, `
		SELECT * FROM workout_logs
		WHERE user_id = $1 AND exercise_id = $2
		ORDER BY date DESC
	`, userID, exerciseID)
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *workoutLogRepository) Recent(ctx context.Context, userID string, limit int) ([]*model.WorkoutLog, error) {
	logs := []*model.WorkoutLog{}
	err := r.db.SelectContext(ctx, &logs, `
		SELECT * FROM workout_logs
		WHERE user_id = $1
		ORDER BY date DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *workoutLogRepository) Count(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM workout_logs WHERE user_id = $1`, userID)
	return count, err
}
