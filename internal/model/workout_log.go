package model

import "time"

// WorkoutLog is append-only. ExerciseName and MuscleGroups are copied from the
// exercise when the log is written, so logs outlive plan regeneration.
type WorkoutLog struct {
	ID            string       `db:"id" json:"id"`
	UserID        string       `db:"user_id" json:"user_id"`
	ExerciseID    string       `db:"exercise_id" json:"exercise_id"`
	ExerciseName  string       `db:"exercise_name" json:"exercise_name"`
	MuscleGroups  MuscleGroups `db:"muscle_groups" json:"muscle_groups"`
	Date          time.Time    `db:"date" json:"date"`
	SetsCompleted int          `db:"sets_completed" json:"sets_completed"`
	RepsCompleted string       `db:"reps_completed" json:"reps_completed"`
	WeightUsed    float64      `db:"weight_used" json:"weight_used"`
	Notes         *string      `db:"notes" json:"notes,omitempty"`
	CreatedAt     time.Time    `db:"created_at" json:"created_at"`
}
