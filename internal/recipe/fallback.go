package recipe

import (
	"fmt"

	"github.com/templui/fittrack/internal/model"
)

// Fallback is the fixed meal served when a slot cannot be generated.
type Fallback struct {
	Name        string
	Description string
	Recipe      string
}

var fallbacks = map[model.MealType]Fallback{
	model.MealBreakfast: {
		Name:        "Protein Oatmeal",
		Description: "A simple, protein-rich breakfast to start your day",
		Recipe:      "# Ingredients\n- 1 cup rolled oats\n- 1 scoop protein powder\n- 1 tbsp honey\n- 1 cup milk\n- 1/2 cup berries\n\n# Instructions\n1. Cook oats with milk\n2. Stir in protein powder\n3. Top with berries and honey",
	},
	model.MealLunch: {
		Name:        "Chicken Salad",
		Description: "A balanced lunch with lean protein and vegetables",
		Recipe:      "# Ingredients\n- 4 oz grilled chicken breast\n- 2 cups mixed greens\n- 1/4 cup cherry tomatoes\n- 1/4 cup cucumber\n- 2 tbsp olive oil\n- 1 tbsp vinegar\n\n# Instructions\n1. Grill chicken breast\n2. Chop vegetables\n3. Mix all ingredients\n4. Dress with olive oil and vinegar",
	},
	model.MealDinner: {
		Name:        "Salmon with Vegetables",
		Description: "A protein-rich dinner with healthy fats",
		Recipe:      "# Ingredients\n- 6 oz salmon fillet\n- 1 cup broccoli\n- 1 cup sweet potato\n- 1 tbsp olive oil\n- Herbs and spices\n\n# Instructions\n1. Bake salmon at 400°F for 15 minutes\n2. Steam broccoli\n3. Roast sweet potato\n4. Serve with olive oil and herbs",
	},
	model.MealSnack: {
		Name:        "Protein Shake",
		Description: "A quick protein boost between meals",
		Recipe:      "# Ingredients\n- 1 scoop protein powder\n- 1 cup milk\n- 1/2 banana\n- 1 tbsp peanut butter\n\n# Instructions\n1. Blend all ingredients\n2. Serve cold",
	},
}

func FallbackFor(mealType model.MealType) (Fallback, error) {
	f, ok := fallbacks[mealType]
	if !ok {
		return Fallback{}, fmt.Errorf("no fallback for meal type %q", mealType)
	}
	return f, nil
}
