package model

import (
	"fmt"
	"strings"
)

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

func (s SkillLevel) Valid() bool {
	switch s {
	case SkillBeginner, SkillIntermediate, SkillAdvanced:
		return true
	}
	return false
}

func ParseSkillLevel(v string) (SkillLevel, error) {
	s := SkillLevel(strings.TrimSpace(v))
	if !s.Valid() {
		return "", fmt.Errorf("invalid skill level %q", v)
	}
	return s, nil
}

func (s *SkillLevel) UnmarshalText(text []byte) error {
	v, err := ParseSkillLevel(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

type Goal string

const (
	GoalLoseWeight   Goal = "lose_weight"
	GoalGainMuscle   Goal = "gain_muscle"
	GoalGainStrength Goal = "gain_strength"
)

func (g Goal) Valid() bool {
	switch g {
	case GoalLoseWeight, GoalGainMuscle, GoalGainStrength:
		return true
	}
	return false
}

// Label returns the human form used in plan names ("lose weight").
func (g Goal) Label() string {
	return strings.ReplaceAll(string(g), "_", " ")
}

func ParseGoal(v string) (Goal, error) {
	g := Goal(strings.TrimSpace(v))
	if !g.Valid() {
		return "", fmt.Errorf("invalid fitness goal %q", v)
	}
	return g, nil
}

func (g *Goal) UnmarshalText(text []byte) error {
	v, err := ParseGoal(string(text))
	if err != nil {
		return err
	}
	*g = v
	return nil
}

type MuscleGroup string

const (
	MuscleArms      MuscleGroup = "arms"
	MuscleBack      MuscleGroup = "back"
	MuscleShoulders MuscleGroup = "shoulders"
	MuscleChest     MuscleGroup = "chest"
	MuscleAbs       MuscleGroup = "abs"
	MuscleQuads     MuscleGroup = "quads"
	MuscleHams      MuscleGroup = "hams"
	MuscleGlutes    MuscleGroup = "glutes"
	MuscleCalves    MuscleGroup = "calves"
)

// AllMuscleGroups is the canonical display order.
var AllMuscleGroups = []MuscleGroup{
	MuscleArms,
	MuscleBack,
	MuscleShoulders,
	MuscleChest,
	MuscleAbs,
	MuscleQuads,
	MuscleHams,
	MuscleGlutes,
	MuscleCalves,
}

func (m MuscleGroup) Valid() bool {
	switch m {
	case MuscleArms, MuscleBack, MuscleShoulders, MuscleChest, MuscleAbs,
		MuscleQuads, MuscleHams, MuscleGlutes, MuscleCalves:
		return true
	}
	return false
}

func ParseMuscleGroup(v string) (MuscleGroup, error) {
	m := MuscleGroup(strings.TrimSpace(v))
	if !m.Valid() {
		return "", fmt.Errorf("invalid muscle group %q", v)
	}
	return m, nil
}

func (m *MuscleGroup) UnmarshalText(text []byte) error {
	v, err := ParseMuscleGroup(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealTypes lists the daily slots in serving order.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

func (m *MealType) UnmarshalText(text []byte) error {
	v := MealType(strings.TrimSpace(string(text)))
	if !v.Valid() {
		return fmt.Errorf("invalid meal type %q", string(text))
	}
	*m = v
	return nil
}

type DietaryRestriction string

const (
	DietNone       DietaryRestriction = "none"
	DietVegetarian DietaryRestriction = "vegetarian"
	DietVegan      DietaryRestriction = "vegan"
	DietKeto       DietaryRestriction = "keto"
	DietPaleo      DietaryRestriction = "paleo"
	DietGlutenFree DietaryRestriction = "gluten_free"
	DietDairyFree  DietaryRestriction = "dairy_free"
	DietNutFree    DietaryRestriction = "nut_free"
)

func (d DietaryRestriction) Valid() bool {
	switch d {
	case DietNone, DietVegetarian, DietVegan, DietKeto, DietPaleo,
		DietGlutenFree, DietDairyFree, DietNutFree:
		return true
	}
	return false
}

func ParseDietaryRestriction(v string) (DietaryRestriction, error) {
	d := DietaryRestriction(strings.TrimSpace(v))
	if !d.Valid() {
		return "", fmt.Errorf("invalid dietary restriction %q", v)
	}
	return d, nil
}

func (d *DietaryRestriction) UnmarshalText(text []byte) error {
	v, err := ParseDietaryRestriction(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

func (g *Gender) UnmarshalText(text []byte) error {
	v := Gender(strings.TrimSpace(string(text)))
	if !v.Valid() {
		return fmt.Errorf("invalid gender %q", string(text))
	}
	*g = v
	return nil
}
