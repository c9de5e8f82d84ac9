package model

import "time"

type FitnessProfile struct {
	ID                  string              `db:"id" json:"id"`
	UserID              string              `db:"user_id" json:"user_id"`
	SkillLevel          SkillLevel          `db:"skill_level" json:"skill_level"`
	Goal                Goal                `db:"goal" json:"goal"`
	WorkoutDuration     int                 `db:"workout_duration" json:"workout_duration"`
	TargetMuscleGroups  MuscleGroups        `db:"target_muscle_groups" json:"target_muscle_groups"`
	HeightCM            *float64            `db:"height_cm" json:"height_cm,omitempty"`
	WeightKG            *float64            `db:"weight_kg" json:"weight_kg,omitempty"`
	Age                 *int                `db:"age" json:"age,omitempty"`
	Gender              *Gender             `db:"gender" json:"gender,omitempty"`
	DietaryRestrictions DietaryRestrictions `db:"dietary_restrictions" json:"dietary_restrictions"`
	WorkoutsPerWeek     *int                `db:"workouts_per_week" json:"workouts_per_week,omitempty"`
	SplitCount          *int                `db:"split_count" json:"split_count,omitempty"`
	SplitDetails        SplitDetails        `db:"split_details" json:"split_details,omitempty"`
	CreatedAt           time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time           `db:"updated_at" json:"updated_at"`
}

// Biometrics is the complete biometric group needed for nutrition targets.
type Biometrics struct {
	HeightCM float64
	WeightKG float64
	Age      int
	Gender   Gender
}

// Biometrics returns the biometric group only when every field is present and positive.
func (p *FitnessProfile) Biometrics() (Biometrics, bool) {
	if p.HeightCM == nil || p.WeightKG == nil || p.Age == nil || p.Gender == nil {
		return Biometrics{}, false
	}
	if *p.HeightCM <= 0 || *p.WeightKG <= 0 || *p.Age <= 0 || *p.Gender == "" {
		return Biometrics{}, false
	}
	return Biometrics{
		HeightCM: *p.HeightCM,
		WeightKG: *p.WeightKG,
		Age:      *p.Age,
		Gender:   *p.Gender,
	}, true
}

func (p *FitnessProfile) IsBeginner() bool {
	return p.SkillLevel == SkillBeginner
}
