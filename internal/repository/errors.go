package repository

import (
	"errors"
	"strings"
)

var (
	ErrProfileNotFound     = errors.New("fitness profile not found")
	ErrWorkoutPlanNotFound = errors.New("workout plan not found")
	ErrMealPlanNotFound    = errors.New("meal plan not found")
	ErrMealNotFound        = errors.New("meal not found")
	ErrExerciseNotFound    = errors.New("exercise not found")
	ErrConcurrentReplace   = errors.New("plan was replaced concurrently")
)

// isUniqueViolation works for both SQLite and PostgreSQL.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value")
}
