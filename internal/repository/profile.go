package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/templui/fittrack/internal/model"
)

type ProfileRepository interface {
	ByUserID(ctx context.Context, userID string) (*model.FitnessProfile, error)
	Upsert(ctx context.Context, profile *model.FitnessProfile) (*model.FitnessProfile, error)
}

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) ByUserID(ctx context.Context, userID string) (*model.FitnessProfile, error) {
	var profile model.FitnessProfile
	err := r.db.GetContext(ctx, &profile, `SELECT * FROM fitness_profiles WHERE user_id = $1`, userID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// Upsert writes the profile keyed by user id and returns the stored row. The
// id and created_at of an existing row are kept.
func (r *profileRepository) Upsert(ctx context.Context, profile *model.FitnessProfile) (*model.FitnessProfile, error) {
	now := time.Now().UTC()
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO fitness_profiles (
			id, user_id, skill_level, goal, workout_duration, target_muscle_groups,
			height_cm, weight_kg, age, gender, dietary_restrictions,
			workouts_per_week, split_count, split_details, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (user_id) DO UPDATE SET
			skill_level = excluded.skill_level,
			goal = excluded.goal,
			workout_duration = excluded.workout_duration,
			target_muscle_groups = excluded.target_muscle_groups,
			height_cm = excluded.height_cm,
			weight_kg = excluded.weight_kg,
			age = excluded.age,
			gender = excluded.gender,
			dietary_restrictions = excluded.dietary_restrictions,
			workouts_per_week = excluded.workouts_per_week,
			split_count = excluded.split_count,
			split_details = excluded.split_details,
			updated_at = excluded.updated_at
	`,
		profile.ID,
		profile.UserID,
		profile.SkillLevel,
		profile.Goal,
		profile.WorkoutDuration,
		profile.TargetMuscleGroups,
		profile.HeightCM,
		profile.WeightKG,
		profile.Age,
		profile.Gender,
		profile.DietaryRestrictions,
		profile.WorkoutsPerWeek,
		profile.SplitCount,
		profile.SplitDetails,
		now,
		now,
	)
	if err != nil {
		return nil, err
	}

	return r.ByUserID(ctx, profile.UserID)
}
