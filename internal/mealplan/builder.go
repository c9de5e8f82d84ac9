// Package mealplan splits daily nutrition targets into meal slots and asks a
// recipe generator for each slot, falling back to a fixed meal per slot.
package mealplan

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/nutrition"
	"github.com/templui/fittrack/internal/recipe"
	"github.com/templui/fittrack/internal/validation"
)

const (
	DefaultSlotTimeout = 30 * time.Second

	imageURLPrefix = "/placeholder.svg?height=300&width=300&text="
)

// Shares of the daily targets per slot. They sum to 1.
var slotShares = map[model.MealType]float64{
	model.MealBreakfast: 0.25,
	model.MealLunch:     0.30,
	model.MealDinner:    0.30,
	model.MealSnack:     0.15,
}

func SlotShare(mt model.MealType) (float64, error) {
	share, ok := slotShares[mt]
	if !ok {
		return 0, fmt.Errorf("unknown meal type %q", mt)
	}
	return share, nil
}

type Builder struct {
	generator   recipe.Generator
	slotTimeout time.Duration
}

func NewBuilder(gen recipe.Generator, slotTimeout time.Duration) *Builder {
	if gen == nil {
		gen = recipe.UnavailableGenerator{}
	}
	if slotTimeout <= 0 {
		slotTimeout = DefaultSlotTimeout
	}
	return &Builder{generator: gen, slotTimeout: slotTimeout}
}

// Build returns an unsaved meal plan. Generator failures never fail the
// build; the affected slot gets its fallback meal instead.
func (b *Builder) Build(ctx context.Context, p *model.FitnessProfile) (*model.MealPlan, error) {
	bio, ok := p.Biometrics()
	if !ok {
		return nil, validation.New("biometrics", "height, weight, age and gender are required for meal plan generation")
	}
	targets, err := nutrition.Calculate(bio, p.Goal)
	if err != nil {
		return nil, err
	}

	plan := &model.MealPlan{
		UserID:        p.UserID,
		Name:          fmt.Sprintf("%s Meal Plan", p.Goal.Label()),
		Description:   fmt.Sprintf("Custom meal plan for %s", p.Goal.Label()),
		TotalCalories: targets.Calories,
		Protein:       targets.ProteinG,
		Carbs:         targets.CarbsG,
		Fat:           targets.FatG,
		Meals:         make([]*model.Meal, len(model.MealTypes)),
	}

	requests := make([]recipe.Request, len(model.MealTypes))
	for i, mt := range model.MealTypes {
		share, err := SlotShare(mt)
		if err != nil {
			return nil, err
		}
		portion := targets.Portion(share)
		requests[i] = recipe.Request{
			MealType:     mt,
			Calories:     portion.Calories,
			Protein:      portion.ProteinG,
			Carbs:        portion.CarbsG,
			Fat:          portion.FatG,
			Goal:         p.Goal,
			Restrictions: p.DietaryRestrictions,
		}
	}

	var wg sync.WaitGroup
	errs := make([]error, len(requests))
	for i := range requests {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			plan.Meals[i], errs[i] = b.slot(ctx, p.UserID, requests[i])
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return plan, nil
}

// slot only errors when even the fallback cannot be produced.
func (b *Builder) slot(ctx context.Context, userID string, req recipe.Request) (*model.Meal, error) {
	ctx, cancel := context.WithTimeout(ctx, b.slotTimeout)
	defer cancel()

	meal, err := b.generate(ctx, req)
	if err == nil {
		return meal, nil
	}

	slog.Warn("recipe generation failed, using fallback", "error", err, "user_id", userID, "meal_type", req.MealType)
	return Fallback(req)
}

func (b *Builder) generate(ctx context.Context, req recipe.Request) (*model.Meal, error) {
	reply, err := b.generator.Generate(ctx, recipe.Prompt(req))
	if err != nil {
		return nil, err
	}
	r, err := recipe.Parse(reply)
	if err != nil {
		return nil, err
	}

	return &model.Meal{
		Name:        r.Name,
		Description: r.Description,
		MealType:    req.MealType,
		Calories:    int(math.Round(r.Nutrition.Calories)),
		Protein:     int(math.Round(r.Nutrition.Protein)),
		Carbs:       int(math.Round(r.Nutrition.Carbs)),
		Fat:         int(math.Round(r.Nutrition.Fat)),
		Recipe:      r.Markdown(),
		ImageURL:    ImageURL(r.Name),
		Source:      model.MealSourceGenerated,
	}, nil
}

// Fallback builds the fixed meal for the slot with the requested values.
func Fallback(req recipe.Request) (*model.Meal, error) {
	f, err := recipe.FallbackFor(req.MealType)
	if err != nil {
		return nil, err
	}
	return &model.Meal{
		Name:        f.Name,
		Description: f.Description,
		MealType:    req.MealType,
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fat:         req.Fat,
		Recipe:      f.Recipe,
		ImageURL:    ImageURL(f.Name),
		Source:      model.MealSourceFallback,
	}, nil
}

func ImageURL(name string) string {
	return imageURLPrefix + strings.ReplaceAll(url.QueryEscape(name), "+", "%20")
}
