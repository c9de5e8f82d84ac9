package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/templui/fittrack/internal/ctxkeys"
	"github.com/templui/fittrack/internal/repository"
	"github.com/templui/fittrack/internal/ui"
	"github.com/templui/fittrack/internal/validation"
)

var notFoundMessages = []struct {
	err     error
	message string
}{
	{repository.ErrProfileNotFound, "Fitness profile not found"},
	{repository.ErrWorkoutPlanNotFound, "Workout plan not found"},
	{repository.ErrMealPlanNotFound, "Meal plan not found"},
	{repository.ErrMealNotFound, "Meal not found"},
	{repository.ErrExerciseNotFound, "Exercise not found"},
}

// respondError maps service errors onto status codes. Anything that is not a
// validation or not-found error is logged and answered with message.
func respondError(w http.ResponseWriter, r *http.Request, err error, message string) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		ui.Error(w, r, http.StatusBadRequest, verr.Error())
		return
	}

	for _, nf := range notFoundMessages {
		if errors.Is(err, nf.err) {
			ui.Error(w, r, http.StatusNotFound, nf.message)
			return
		}
	}

	slog.Error(message,
		"error", err,
		"user_id", ctxkeys.UserID(r.Context()),
		"request_id", ctxkeys.RequestID(r.Context()),
	)
	ui.Error(w, r, http.StatusInternalServerError, message)
}
