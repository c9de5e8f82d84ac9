package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/templui/fittrack/internal/model"
)

// Serving order of the daily slots.
const mealOrder = `CASE meal_type
	WHEN 'breakfast' THEN 0
	WHEN 'lunch' THEN 1
	WHEN 'dinner' THEN 2
	ELSE 3
END`

type MealPlanRepository interface {
	Replace(ctx context.Context, plan *model.MealPlan) error
	Current(ctx context.Context, userID string) (*model.MealPlan, error)
	Count(ctx context.Context, userID string) (int, error)
	MealByID(ctx context.Context, userID, mealID string) (*model.Meal, error)
}

type mealPlanRepository struct {
	db *sqlx.DB
}

func NewMealPlanRepository(db *sqlx.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

// Replace deletes every meal plan of plan.UserID and inserts plan with its
// meals in one transaction.
func (r *mealPlanRepository) Replace(ctx context.Context, plan *model.MealPlan) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		DELETE FROM meals WHERE meal_plan_id IN (
			SELECT id FROM meal_plans WHERE user_id = $1
		)`, plan.UserID)
	if err != nil {
		return fmt.Errorf("failed to delete meals: %w", err)
	}
	_, err = tx.ExecContext(ctx, `DELETE FROM meal_plans WHERE user_id = $1`, plan.UserID)
	if err != nil {
		return fmt.Errorf("failed to delete meal plans: %w", err)
	}

	now := time.Now().UTC()
	plan.ID = uuid.New().String()
	plan.CreatedAt = now

	_, err = tx.ExecContext(ctx, `
		INSERT INTO meal_plans (id, user_id, name, description, total_calories, protein, carbs, fat, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, plan.ID, plan.UserID, plan.Name, plan.Description, plan.TotalCalories, plan.Protein, plan.Carbs, plan.Fat, plan.CreatedAt)
	if isUniqueViolation(err) {
		return ErrConcurrentReplace
	}
	if err != nil {
		return fmt.Errorf("failed to insert meal plan: %w", err)
	}

	for _, meal := range plan.Meals {
		meal.ID = uuid.New().String()
		meal.MealPlanID = plan.ID
		meal.CreatedAt = now

		_, err = tx.ExecContext(ctx, `
			INSERT INTO meals (id, meal_plan_id, name, description, meal_type, calories, protein, carbs, fat, recipe, image_url, source, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		`,
			meal.ID,
			meal.MealPlanID,
			meal.Name,
			meal.Description,
			meal.MealType,
			meal.Calories,
			meal.Protein,
			meal.Carbs,
			meal.Fat,
			meal.Recipe,
			meal.ImageURL,
			meal.Source,
			meal.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert %s meal: %w", meal.MealType, err)
		}
	}

	err = tx.Commit()
	if isUniqueViolation(err) {
		return ErrConcurrentReplace
	}
	return err
}

func (r *mealPlanRepository) Current(ctx context.Context, userID string) (*model.MealPlan, error) {
	plan := &model.MealPlan{}
	err := r.db.GetContext(ctx, plan, `SELECT * FROM meal_plans WHERE user_id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMealPlanNotFound
	}
	if err != nil {
		return nil, err
	}

	plan.Meals = []*model.Meal{}
	err = r.db.SelectContext(ctx, &plan.Meals, `SELECT * FROM meals WHERE meal_plan_id = $1 ORDER BY `+mealOrder, plan.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load meals: %w", err)
	}

	return plan, nil
}

func (r *mealPlanRepository) Count(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM meal_plans WHERE user_id = $1`, userID)
	return count, err
}

func (r *mealPlanRepository) MealByID(ctx context.Context, userID, mealID string) (*model.Meal, error) {
	meal := &model.Meal{}
	err := r.db.GetContext(ctx, meal, `
		SELECT m.* FROM meals m
		JOIN meal_plans p ON p.id = m.meal_plan_id
		WHERE m.id = $1 AND p.user_id = $2
	`, mealID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMealNotFound
	}
	if err != nil {
		return nil, err
	}
	return meal, nil
}
