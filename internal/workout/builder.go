// Package workout builds weekly workout plans from a fitness profile.
package workout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/samber/lo"
	"github.com/templui/fittrack/internal/catalog"
	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/validation"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	beginnerPerGroup = 2
	splitPerGroup    = 3

	videoSearchURL = "https://www.youtube.com/results?search_query="
)

// Monday, Wednesday, Friday.
var beginnerDays = []int{1, 3, 5}

// Monday through Sunday as time.Weekday values.
var weekOrder = []int{1, 2, 3, 4, 5, 6, 0}

type Builder struct {
	catalog *catalog.Catalog
}

func NewBuilder(c *catalog.Catalog) *Builder {
	return &Builder{catalog: c}
}

// Build returns an unsaved plan for the profile. Selection is deterministic:
// the same profile and catalog always give the same plan.
func (b *Builder) Build(p *model.FitnessProfile) (*model.WorkoutPlan, error) {
	if !p.Goal.Valid() {
		return nil, validation.Newf("goal", "invalid fitness goal %q", p.Goal)
	}

	plan := &model.WorkoutPlan{
		UserID:      p.UserID,
		Name:        fmt.Sprintf("%s Plan", p.Goal.Label()),
		Description: fmt.Sprintf("Custom workout plan for %s", p.Goal.Label()),
	}

	var err error
	switch p.SkillLevel {
	case model.SkillBeginner:
		plan.Days, err = b.beginnerDays(p)
	case model.SkillIntermediate, model.SkillAdvanced:
		plan.Days, err = b.splitDays(p)
	default:
		err = validation.Newf("skill_level", "invalid skill level %q", p.SkillLevel)
	}
	if err != nil {
		return nil, err
	}

	return plan, nil
}

func (b *Builder) beginnerDays(p *model.FitnessProfile) ([]*model.WorkoutDay, error) {
	if len(p.TargetMuscleGroups) == 0 {
		return nil, validation.New("target_muscle_groups", "at least one muscle group is required")
	}
	params, err := BeginnerParams(p.Goal)
	if err != nil {
		return nil, err
	}

	days := make([]*model.WorkoutDay, 0, len(beginnerDays))
	for i, weekday := range beginnerDays {
		day := &model.WorkoutDay{
			Position:           i,
			Name:               fmt.Sprintf("Day %d: Full Body", i+1),
			DayOfWeek:          weekday,
			TargetMuscleGroups: append(model.MuscleGroups(nil), p.TargetMuscleGroups...),
		}
		for _, group := range p.TargetMuscleGroups {
			for _, entry := range b.catalog.Select(group, beginnerPerGroup, true) {
				day.Exercises = append(day.Exercises, newExercise(entry, params, len(day.Exercises)))
			}
		}
		days = append(days, day)
	}

	return days, nil
}

func (b *Builder) splitDays(p *model.FitnessProfile) ([]*model.WorkoutDay, error) {
	if len(p.SplitDetails) == 0 || p.WorkoutsPerWeek == nil {
		return nil, validation.New("split_details", "split details and workouts per week are required for intermediate and advanced users")
	}
	perWeek := *p.WorkoutsPerWeek
	if perWeek < 1 || perWeek > len(weekOrder) {
		return nil, validation.Newf("workouts_per_week", "must be between 1 and %d", len(weekOrder))
	}
	params, err := SplitParams(p.Goal, p.SkillLevel)
	if err != nil {
		return nil, err
	}

	// Casers are stateful; one per build keeps Builder safe for concurrent use.
	title := cases.Title(language.English)
	weekdays := weekOrder[:perWeek]
	days := make([]*model.WorkoutDay, 0, len(p.SplitDetails))
	for i, split := range p.SplitDetails {
		names := lo.Map(split.MuscleGroups, func(g model.MuscleGroup, _ int) string {
			return title.String(string(g))
		})
		day := &model.WorkoutDay{
			Position:           i,
			Name:               fmt.Sprintf("Day %d: %s", i+1, strings.Join(names, "/")),
			DayOfWeek:          weekdays[i%len(weekdays)],
			TargetMuscleGroups: append(model.MuscleGroups(nil), split.MuscleGroups...),
		}
		for _, group := range split.MuscleGroups {
			for _, entry := range b.catalog.Select(group, splitPerGroup, false) {
				day.Exercises = append(day.Exercises, newExercise(entry, params, len(day.Exercises)))
			}
		}
		days = append(days, day)
	}

	return days, nil
}

func newExercise(entry catalog.Entry, params Params, position int) *model.Exercise {
	return &model.Exercise{
		Position:     position,
		Name:         entry.Name,
		Sets:         params.Sets,
		RepsPerSet:   params.Reps,
		RestSeconds:  params.RestSeconds,
		MuscleGroups: append(model.MuscleGroups(nil), entry.MuscleGroups...),
		VideoURL:     VideoURL(entry.Name),
	}
}

// VideoURL is a search link for a tutorial of the exercise. No lookup is made.
func VideoURL(name string) string {
	query := strings.ReplaceAll(url.QueryEscape(name+" exercise tutorial"), "+", "%20")
	return videoSearchURL + query
}
