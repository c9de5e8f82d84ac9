package validation

import (
	"github.com/templui/fittrack/internal/model"
)

const (
	MinWorkoutDuration = 30
	MaxWorkoutDuration = 120
	MaxWorkoutsPerWeek = 7
	MaxSplitCount      = 6
)

// ValidateProfile checks a fitness profile before it is stored.
func ValidateProfile(p *model.FitnessProfile) error {
	if !p.SkillLevel.Valid() {
		return Newf("skill_level", "invalid skill level %q", p.SkillLevel)
	}
	if !p.Goal.Valid() {
		return Newf("goal", "invalid fitness goal %q", p.Goal)
	}
	if p.WorkoutDuration < MinWorkoutDuration || p.WorkoutDuration > MaxWorkoutDuration {
		return Newf("workout_duration", "must be between %d and %d minutes", MinWorkoutDuration, MaxWorkoutDuration)
	}

	err := validateMuscleGroups("target_muscle_groups", p.TargetMuscleGroups)
	if err != nil {
		return err
	}

	err = validateBiometrics(p)
	if err != nil {
		return err
	}

	for _, d := range p.DietaryRestrictions {
		if !d.Valid() {
			return Newf("dietary_restrictions", "invalid dietary restriction %q", d)
		}
	}

	if p.WorkoutsPerWeek != nil && (*p.WorkoutsPerWeek < 1 || *p.WorkoutsPerWeek > MaxWorkoutsPerWeek) {
		return Newf("workouts_per_week", "must be between 1 and %d", MaxWorkoutsPerWeek)
	}
	if p.SplitCount != nil && (*p.SplitCount < 1 || *p.SplitCount > MaxSplitCount) {
		return Newf("split_count", "must be between 1 and %d", MaxSplitCount)
	}
	if p.SplitCount != nil && p.SplitDetails != nil && len(p.SplitDetails) != *p.SplitCount {
		return Newf("split_details", "expected %d split days, got %d", *p.SplitCount, len(p.SplitDetails))
	}
	for _, split := range p.SplitDetails {
		err := validateMuscleGroups("split_details", split.MuscleGroups)
		if err != nil {
			return err
		}
	}

	if !p.IsBeginner() {
		if p.WorkoutsPerWeek == nil {
			return New("workouts_per_week", "required for intermediate and advanced users")
		}
		if len(p.SplitDetails) == 0 {
			return New("split_details", "required for intermediate and advanced users")
		}
	}

	return nil
}

func validateMuscleGroups(field string, groups model.MuscleGroups) error {
	if len(groups) == 0 {
		return New(field, "at least one muscle group is required")
	}
	for _, g := range groups {
		if !g.Valid() {
			return Newf(field, "invalid muscle group %q", g)
		}
	}
	return nil
}

func validateBiometrics(p *model.FitnessProfile) error {
	if p.HeightCM != nil && *p.HeightCM <= 0 {
		return New("height_cm", "must be positive")
	}
	if p.WeightKG != nil && *p.WeightKG <= 0 {
		return New("weight_kg", "must be positive")
	}
	if p.Age != nil && *p.Age <= 0 {
		return New("age", "must be positive")
	}
	if p.Gender != nil && !p.Gender.Valid() {
		return Newf("gender", "invalid gender %q", *p.Gender)
	}
	return nil
}

// NormalizeRestrictions makes "none" exclusive: it is dropped when real
// restrictions are present, and an empty set becomes {none}. Duplicates are removed.
func NormalizeRestrictions(in model.DietaryRestrictions) model.DietaryRestrictions {
	seen := make(map[model.DietaryRestriction]bool, len(in))
	out := model.DietaryRestrictions{}
	for _, d := range in {
		if d == model.DietNone || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	if len(out) == 0 {
		return model.DietaryRestrictions{model.DietNone}
	}
	return out
}

// NormalizeMuscleGroups removes duplicates while keeping the first-seen order.
func NormalizeMuscleGroups(in model.MuscleGroups) model.MuscleGroups {
	seen := make(map[model.MuscleGroup]bool, len(in))
	out := make(model.MuscleGroups, 0, len(in))
	for _, g := range in {
		if seen[g] {
			continue
		}
		seen[g] = true
		out = append(out, g)
	}
	return out
}
