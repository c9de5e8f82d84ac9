package nutrition

import (
	"math"
	"testing"

	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/validation"
)

func TestCalculateMaleGainMuscle(t *testing.T) {
	got, err := Calculate(model.Biometrics{
		WeightKG: 70,
		HeightCM: 175,
		Age:      30,
		Gender:   model.GenderMale,
	}, model.GoalGainMuscle)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}

	// BMR = 700 + 1093.75 - 150 + 5 = 1648.75, TDEE = 2555.5625
	want := Targets{BMR: 1649, TDEE: 2556, Calories: 2856, ProteinG: 214, CarbsG: 321, FatG: 79}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

// Grams come from the unrounded calorie target. Here 1902.625 kcal gives
// 166.48 g protein, while the rounded 1903 kcal would give 166.51 g.
func TestCalculateGramsUseUnroundedCalories(t *testing.T) {
	got, err := Calculate(model.Biometrics{
		WeightKG: 40,
		HeightCM: 150,
		Age:      23,
		Gender:   model.GenderMale,
	}, model.GoalGainStrength)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}

	want := Targets{BMR: 1228, TDEE: 1903, Calories: 1903, ProteinG: 166, CarbsG: 166, FatG: 63}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestCalculateByGoal(t *testing.T) {
	female := model.Biometrics{WeightKG: 60, HeightCM: 165, Age: 28, Gender: model.GenderFemale}
	// BMR = 600 + 1031.25 - 140 - 161 = 1330.25, TDEE = 2061.8875
	tests := []struct {
		name     string
		goal     model.Goal
		calories int
		protein  int
		fat      int
		carbs    int
	}{
		{"lose weight", model.GoalLoseWeight, 1562, 156, 52, 117},
		{"gain strength", model.GoalGainStrength, 2062, 180, 69, 180},
		{"gain muscle", model.GoalGainMuscle, 2362, 177, 66, 266},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(female, tt.goal)
			if err != nil {
				t.Fatalf("calculate: %v", err)
			}
			if got.Calories != tt.calories || got.ProteinG != tt.protein || got.FatG != tt.fat || got.CarbsG != tt.carbs {
				t.Fatalf("expected %d kcal %dP %dF %dC, got %+v", tt.calories, tt.protein, tt.fat, tt.carbs, got)
			}
		})
	}
}

func TestCalculateOtherGenderUsesFemaleConstant(t *testing.T) {
	b := model.Biometrics{WeightKG: 80, HeightCM: 180, Age: 40, Gender: model.GenderOther}
	if got := BMR(b); got != 10*80+6.25*180-5*40-161 {
		t.Fatalf("unexpected bmr %v", got)
	}
}

func TestCalculateRequiresBiometrics(t *testing.T) {
	tests := []struct {
		name string
		in   model.Biometrics
	}{
		{"no weight", model.Biometrics{HeightCM: 170, Age: 30}},
		{"no height", model.Biometrics{WeightKG: 70, Age: 30}},
		{"no age", model.Biometrics{WeightKG: 70, HeightCM: 170}},
		{"negative weight", model.Biometrics{WeightKG: -1, HeightCM: 170, Age: 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Calculate(tt.in, model.GoalLoseWeight)
			if !validation.IsError(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCalculateRejectsUnknownGoal(t *testing.T) {
	_, err := Calculate(model.Biometrics{WeightKG: 70, HeightCM: 170, Age: 30}, model.Goal("bulk"))
	if !validation.IsError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

// Per-macro rounding can move the energy sum by at most 0.5*(4+9+4) kcal.
func TestMacrosAddUpToCalories(t *testing.T) {
	const tolerance = 8.5
	goals := []model.Goal{model.GoalLoseWeight, model.GoalGainMuscle, model.GoalGainStrength}
	genders := []model.Gender{model.GenderMale, model.GenderFemale}

	for w := 45.0; w <= 140; w += 7.5 {
		for h := 150.0; h <= 205; h += 5 {
			for age := 18; age <= 75; age += 9 {
				for _, g := range genders {
					for _, goal := range goals {
						got, err := Calculate(model.Biometrics{WeightKG: w, HeightCM: h, Age: age, Gender: g}, goal)
						if err != nil {
							t.Fatalf("calculate: %v", err)
						}
						if got.Calories < 0 || got.ProteinG < 0 || got.FatG < 0 || got.CarbsG < 0 {
							t.Fatalf("negative target %+v", got)
						}
						sum := float64(got.ProteinG*4 + got.FatG*9 + got.CarbsG*4)
						if math.Abs(sum-float64(got.Calories)) > tolerance {
							t.Fatalf("macros sum to %v kcal, target %d (%v/%v/%d/%s/%s)", sum, got.Calories, w, h, age, g, goal)
						}
					}
				}
			}
		}
	}
}

func TestMacrosWithinThreeKcal(t *testing.T) {
	female := model.Biometrics{WeightKG: 60, HeightCM: 165, Age: 28, Gender: model.GenderFemale}
	for _, goal := range []model.Goal{model.GoalLoseWeight, model.GoalGainStrength} {
		got, err := Calculate(female, goal)
		if err != nil {
			t.Fatalf("calculate: %v", err)
		}
		sum := got.ProteinG*4 + got.FatG*9 + got.CarbsG*4
		if d := sum - got.Calories; d < -3 || d > 3 {
			t.Fatalf("%s: macros sum to %d kcal, target %d", goal, sum, got.Calories)
		}
	}

	male, err := Calculate(model.Biometrics{WeightKG: 70, HeightCM: 175, Age: 30, Gender: model.GenderMale}, model.GoalGainMuscle)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if sum := male.ProteinG*4 + male.FatG*9 + male.CarbsG*4; sum != 2851 {
		t.Fatalf("expected macros to sum to 2851 kcal, got %d", sum)
	}
}

func TestPortion(t *testing.T) {
	daily := Targets{Calories: 2856, ProteinG: 214, CarbsG: 321, FatG: 79}
	got := daily.Portion(0.25)
	want := Targets{Calories: 714, ProteinG: 54, CarbsG: 80, FatG: 20}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}
