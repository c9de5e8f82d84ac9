package recipe

import (
	"strings"
	"testing"

	"github.com/templui/fittrack/internal/model"
)

const sampleReply = `{
  "name": "Greek Yogurt Bowl",
  "description": "Creamy and filling",
  "ingredients": ["200g greek yogurt", "30g granola"],
  "instructions": ["Spoon yogurt into a bowl", "Top with granola"],
  "nutritionalInfo": {"calories": 512.4, "protein": 40, "carbs": 55.6, "fat": 12}
}`

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"plain", sampleReply},
		{"json fence", "```json\n" + sampleReply + "\n```"},
		{"bare fence", "```\n" + sampleReply + "\n```"},
		{"surrounding prose", "Here is your recipe:\n" + sampleReply + "\nEnjoy!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if r.Name != "Greek Yogurt Bowl" {
				t.Errorf("unexpected name %q", r.Name)
			}
			if len(r.Ingredients) != 2 || len(r.Instructions) != 2 {
				t.Errorf("unexpected lists: %v / %v", r.Ingredients, r.Instructions)
			}
			if r.Nutrition.Calories != 512.4 {
				t.Errorf("unexpected calories %v", r.Nutrition.Calories)
			}
		})
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not json", "I cannot help with that."},
		{"truncated", `{"name": "Toast", "ingredients": [`},
		{"missing name", `{"ingredients": ["a"], "instructions": ["b"], "nutritionalInfo": {"calories": 1}}`},
		{"missing ingredients", `{"name": "Toast", "instructions": ["b"], "nutritionalInfo": {"calories": 1}}`},
		{"missing instructions", `{"name": "Toast", "ingredients": ["a"], "nutritionalInfo": {"calories": 1}}`},
		{"missing nutrition", `{"name": "Toast", "ingredients": ["a"], "instructions": ["b"]}`},
		{"negative nutrition", `{"name": "Toast", "ingredients": ["a"], "instructions": ["b"], "nutritionalInfo": {"calories": -5}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in)
			if err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestMarkdown(t *testing.T) {
	r := &Recipe{
		Ingredients:  []string{"2 eggs", "1 slice toast"},
		Instructions: []string{"Fry the eggs", "Serve on toast"},
	}
	want := "# Ingredients\n- 2 eggs\n- 1 slice toast\n\n# Instructions\n1. Fry the eggs\n2. Serve on toast"
	if got := r.Markdown(); got != want {
		t.Fatalf("expected\n%s\ngot\n%s", want, got)
	}
}

func TestRestrictionClause(t *testing.T) {
	tests := []struct {
		in   model.DietaryRestrictions
		want string
	}{
		{model.DietaryRestrictions{model.DietNone}, "no dietary restrictions"},
		{nil, "no dietary restrictions"},
		{model.DietaryRestrictions{model.DietVegan, model.DietNutFree}, "following dietary restrictions: vegan, nut_free"},
	}
	for _, tt := range tests {
		if got := RestrictionClause(tt.in); got != tt.want {
			t.Errorf("%v: expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestPrompt(t *testing.T) {
	prompt := Prompt(Request{
		MealType:     model.MealLunch,
		Calories:     873,
		Protein:      65,
		Carbs:        98,
		Fat:          24,
		Goal:         model.GoalGainMuscle,
		Restrictions: model.DietaryRestrictions{model.DietVegetarian},
	})

	for _, want := range []string{
		"Generate a lunch recipe",
		"Approximately 873 calories",
		"About 65g protein",
		"About 98g carbs",
		"About 24g fat",
		"support a gain muscle goal",
		"following dietary restrictions: vegetarian",
		`"nutritionalInfo"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestFallbackFor(t *testing.T) {
	want := map[model.MealType]string{
		model.MealBreakfast: "Protein Oatmeal",
		model.MealLunch:     "Chicken Salad",
		model.MealDinner:    "Salmon with Vegetables",
		model.MealSnack:     "Protein Shake",
	}
	for _, mt := range model.MealTypes {
		f, err := FallbackFor(mt)
		if err != nil {
			t.Fatalf("fallback %s: %v", mt, err)
		}
		if f.Name != want[mt] {
			t.Errorf("%s: expected %q, got %q", mt, want[mt], f.Name)
		}
		if !strings.HasPrefix(f.Recipe, "# Ingredients\n") {
			t.Errorf("%s: recipe is not markdown", mt)
		}
	}

	if _, err := FallbackFor(model.MealType("brunch")); err == nil {
		t.Fatal("expected error for unknown meal type")
	}
}
