package model

import "time"

type WorkoutPlan struct {
	ID          string        `db:"id" json:"id"`
	UserID      string        `db:"user_id" json:"user_id"`
	Name        string        `db:"name" json:"name"`
	Description string        `db:"description" json:"description"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	Days        []*WorkoutDay `db:"-" json:"days"`
}

type WorkoutDay struct {
	ID                 string       `db:"id" json:"id"`
	WorkoutPlanID      string       `db:"workout_plan_id" json:"workout_plan_id"`
	Position           int          `db:"position" json:"position"`
	Name               string       `db:"name" json:"name"`
	DayOfWeek          int          `db:"day_of_week" json:"day_of_week"` // 0 = Sunday
	TargetMuscleGroups MuscleGroups `db:"target_muscle_groups" json:"target_muscle_groups"`
	CreatedAt          time.Time    `db:"created_at" json:"created_at"`
	Exercises          []*Exercise  `db:"-" json:"exercises"`
}

type Exercise struct {
	ID           string       `db:"id" json:"id"`
	WorkoutDayID string       `db:"workout_day_id" json:"workout_day_id"`
	Position     int          `db:"position" json:"position"`
	Name         string       `db:"name" json:"name"`
	Sets         int          `db:"sets" json:"sets"`
	RepsPerSet   string       `db:"reps_per_set" json:"reps_per_set"`
	RestSeconds  int          `db:"rest_seconds" json:"rest_seconds"`
	MuscleGroups MuscleGroups `db:"muscle_groups" json:"muscle_groups"`
	VideoURL     string       `db:"video_url" json:"video_url"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
}

// ExerciseCount returns the number of exercises across all days.
func (p *WorkoutPlan) ExerciseCount() int {
	n := 0
	for _, d := range p.Days {
		n += len(d.Exercises)
	}
	return n
}
