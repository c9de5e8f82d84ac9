package validation

import (
	"strconv"
	"strings"
)

// ValidateRepsCompleted checks a comma-separated per-set reps string ("8,8,7").
func ValidateRepsCompleted(reps string) error {
	if strings.TrimSpace(reps) == "" {
		return New("reps_completed", "reps are required")
	}
	for _, token := range strings.Split(reps, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil || n < 0 {
			return Newf("reps_completed", "invalid rep count %q", strings.TrimSpace(token))
		}
	}
	return nil
}

func ValidateWorkoutLog(setsCompleted int, reps string, weight float64) error {
	if setsCompleted < 1 {
		return New("sets_completed", "at least one set is required")
	}
	if weight < 0 {
		return New("weight_used", "must not be negative")
	}
	return ValidateRepsCompleted(reps)
}
