// Package recipe turns per-slot nutrition targets into recipe prompts and
// reads recipes back from a text-generation collaborator.
package recipe

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/templui/fittrack/internal/model"
)

// Request describes one meal slot.
type Request struct {
	MealType     model.MealType
	Calories     int
	Protein      int
	Carbs        int
	Fat          int
	Goal         model.Goal
	Restrictions model.DietaryRestrictions
}

type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Recipe is the structured reply expected from the collaborator.
type Recipe struct {
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Ingredients  []string   `json:"ingredients"`
	Instructions []string   `json:"instructions"`
	Nutrition    *Nutrition `json:"nutritionalInfo"`
}

// RestrictionClause renders the restriction set for the prompt.
func RestrictionClause(r model.DietaryRestrictions) string {
	if len(r) == 0 || r.IsNone() {
		return "no dietary restrictions"
	}
	parts := make([]string, len(r))
	for i, v := range r {
		parts[i] = string(v)
	}
	return "following dietary restrictions: " + strings.Join(parts, ", ")
}

func Prompt(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a %s recipe that meets these nutritional requirements:\n", req.MealType)
	fmt.Fprintf(&b, "- Approximately %d calories\n", req.Calories)
	fmt.Fprintf(&b, "- About %dg protein\n", req.Protein)
	fmt.Fprintf(&b, "- About %dg carbs\n", req.Carbs)
	fmt.Fprintf(&b, "- About %dg fat\n\n", req.Fat)
	fmt.Fprintf(&b, "The meal should support a %s goal and follow %s.\n\n", req.Goal.Label(), RestrictionClause(req.Restrictions))
	b.WriteString(`Format your response as a JSON object with these fields:
{
  "name": "Meal name",
  "description": "Brief description",
  "ingredients": ["ingredient 1", "ingredient 2", ...],
  "instructions": ["step 1", "step 2", ...],
  "nutritionalInfo": {
    "calories": number,
    "protein": number,
    "carbs": number,
    "fat": number
  }
}`)
	return b.String()
}

// Parse decodes a collaborator reply. Surrounding prose and a ``` fence are
// tolerated; the JSON object itself must be complete.
func Parse(text string) (*Recipe, error) {
	body := stripFence(strings.TrimSpace(text))
	start := strings.Index(body, "{")
	end := strings.LastIndex(body, "}")
	if start < 0 || end < start {
		return nil, fmt.Errorf("parse recipe: no JSON object in reply")
	}

	var r Recipe
	err := json.Unmarshal([]byte(body[start:end+1]), &r)
	if err != nil {
		return nil, fmt.Errorf("parse recipe: %w", err)
	}

	switch {
	case strings.TrimSpace(r.Name) == "":
		return nil, fmt.Errorf("parse recipe: name is missing")
	case len(r.Ingredients) == 0:
		return nil, fmt.Errorf("parse recipe: ingredients are missing")
	case len(r.Instructions) == 0:
		return nil, fmt.Errorf("parse recipe: instructions are missing")
	case r.Nutrition == nil:
		return nil, fmt.Errorf("parse recipe: nutritionalInfo is missing")
	}
	if r.Nutrition.Calories < 0 || r.Nutrition.Protein < 0 || r.Nutrition.Carbs < 0 || r.Nutrition.Fat < 0 {
		return nil, fmt.Errorf("parse recipe: negative nutrition values")
	}

	return &r, nil
}

func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSuffix(strings.TrimSpace(s), "```")
}

// Markdown renders ingredients as a bullet list and instructions as numbered steps.
func (r *Recipe) Markdown() string {
	var b strings.Builder
	b.WriteString("# Ingredients\n")
	for i, ing := range r.Ingredients {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- " + ing)
	}
	b.WriteString("\n\n# Instructions\n")
	for i, step := range r.Instructions {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s", i+1, step)
	}
	return b.String()
}
