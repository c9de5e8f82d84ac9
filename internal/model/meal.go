package model

import "time"

const (
	MealSourceGenerated = "generated"
	MealSourceFallback  = "fallback"
)

type MealPlan struct {
	ID            string    `db:"id" json:"id"`
	UserID        string    `db:"user_id" json:"user_id"`
	Name          string    `db:"name" json:"name"`
	Description   string    `db:"description" json:"description"`
	TotalCalories int       `db:"total_calories" json:"total_calories"`
	Protein       int       `db:"protein" json:"protein"`
	Carbs         int       `db:"carbs" json:"carbs"`
	Fat           int       `db:"fat" json:"fat"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	Meals         []*Meal   `db:"-" json:"meals"`
}

type Meal struct {
	ID          string    `db:"id" json:"id"`
	MealPlanID  string    `db:"meal_plan_id" json:"meal_plan_id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	MealType    MealType  `db:"meal_type" json:"meal_type"`
	Calories    int       `db:"calories" json:"calories"`
	Protein     int       `db:"protein" json:"protein"`
	Carbs       int       `db:"carbs" json:"carbs"`
	Fat         int       `db:"fat" json:"fat"`
	Recipe      string    `db:"recipe" json:"recipe"` // markdown
	ImageURL    string    `db:"image_url" json:"image_url"`
	Source      string    `db:"source" json:"source"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
