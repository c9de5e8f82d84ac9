// Package nutrition derives daily calorie and macro targets from biometrics.
package nutrition

import (
	"math"

	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/validation"
)

const (
	// ActivityMultiplier is the fixed moderate-activity TDEE factor.
	ActivityMultiplier = 1.55

	deficitLoseWeight = 500
	surplusGainMuscle = 300

	kcalPerGramProtein = 4
	kcalPerGramCarb    = 4
	kcalPerGramFat     = 9
)

// MacroSplit holds the share of calories from each macronutrient.
type MacroSplit struct {
	Protein float64
	Fat     float64
	Carb    float64
}

type Targets struct {
	BMR      int `json:"bmr"`
	TDEE     int `json:"tdee"`
	Calories int `json:"calories"`
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}

// Calculate returns rounded targets for the goal. Weight, height and age must be positive.
func Calculate(b model.Biometrics, goal model.Goal) (Targets, error) {
	if b.WeightKG <= 0 {
		return Targets{}, validation.New("weight_kg", "weight is required")
	}
	if b.HeightCM <= 0 {
		return Targets{}, validation.New("height_cm", "height is required")
	}
	if b.Age <= 0 {
		return Targets{}, validation.New("age", "age is required")
	}

	split, err := MacroSplitFor(goal)
	if err != nil {
		return Targets{}, err
	}

	bmr := BMR(b)
	tdee := bmr * ActivityMultiplier

	var calories float64
	switch goal {
	case model.GoalLoseWeight:
		calories = tdee - deficitLoseWeight
	case model.GoalGainMuscle:
		calories = tdee + surplusGainMuscle
	case model.GoalGainStrength:
		calories = tdee
	}
	if calories < 0 {
		calories = 0
	}

	// Only the outputs are rounded.
	return Targets{
		BMR:      int(math.Round(bmr)),
		TDEE:     int(math.Round(tdee)),
		Calories: int(math.Round(calories)),
		ProteinG: int(math.Round(calories * split.Protein / kcalPerGramProtein)),
		CarbsG:   int(math.Round(calories * split.Carb / kcalPerGramCarb)),
		FatG:     int(math.Round(calories * split.Fat / kcalPerGramFat)),
	}, nil
}

// BMR is the Mifflin-St Jeor basal metabolic rate.
func BMR(b model.Biometrics) float64 {
	base := 10*b.WeightKG + 6.25*b.HeightCM - 5*float64(b.Age)
	if b.Gender == model.GenderMale {
		return base + 5
	}
	return base - 161
}

func MacroSplitFor(goal model.Goal) (MacroSplit, error) {
	switch goal {
	case model.GoalGainMuscle:
		return MacroSplit{Protein: 0.30, Fat: 0.25, Carb: 0.45}, nil
	case model.GoalGainStrength:
		return MacroSplit{Protein: 0.35, Fat: 0.30, Carb: 0.35}, nil
	case model.GoalLoseWeight:
		return MacroSplit{Protein: 0.40, Fat: 0.30, Carb: 0.30}, nil
	default:
		return MacroSplit{}, validation.Newf("goal", "invalid fitness goal %q", goal)
	}
}

// Portion scales calories and macros by share, rounding each value.
func (t Targets) Portion(share float64) Targets {
	return Targets{
		Calories: int(math.Round(float64(t.Calories) * share)),
		ProteinG: int(math.Round(float64(t.ProteinG) * share)),
		CarbsG:   int(math.Round(float64(t.CarbsG) * share)),
		FatG:     int(math.Round(float64(t.FatG) * share)),
	}
}
