package handler

import (
	"net/http"

	"github.com/templui/fittrack/internal/ctxkeys"
	"github.com/templui/fittrack/internal/markdown"
	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/service"
	"github.com/templui/fittrack/internal/ui"
)

type PlanHandler struct {
	workoutPlanService *service.WorkoutPlanService
	mealPlanService    *service.MealPlanService
	workoutLogService  *service.WorkoutLogService
	markdown           *markdown.Parser
}

func NewPlanHandler(
	workoutPlanService *service.WorkoutPlanService,
	mealPlanService *service.MealPlanService,
	workoutLogService *service.WorkoutLogService,
	md *markdown.Parser,
) *PlanHandler {
	return &PlanHandler{
		workoutPlanService: workoutPlanService,
		mealPlanService:    mealPlanService,
		workoutLogService:  workoutLogService,
		markdown:           md,
	}
}

func (h *PlanHandler) WorkoutPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.workoutPlanService.Current(r.Context(), ctxkeys.UserID(r.Context()))
	if err != nil {
		respondError(w, r, err, "Failed to fetch workout plan")
		return
	}
	ui.JSON(w, r, http.StatusOK, plan)
}

func (h *PlanHandler) RegenerateWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.workoutPlanService.Regenerate(r.Context(), ctxkeys.UserID(r.Context()))
	if err != nil {
		respondError(w, r, err, "Failed to generate workout plan")
		return
	}
	ui.JSON(w, r, http.StatusCreated, plan)
}

func (h *PlanHandler) MealPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.mealPlanService.Current(r.Context(), ctxkeys.UserID(r.Context()))
	if err != nil {
		respondError(w, r, err, "Failed to fetch meal plan")
		return
	}
	ui.JSON(w, r, http.StatusOK, plan)
}

func (h *PlanHandler) RegenerateMealPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.mealPlanService.Regenerate(r.Context(), ctxkeys.UserID(r.Context()))
	if err != nil {
		respondError(w, r, err, "Failed to generate meal plan")
		return
	}
	ui.JSON(w, r, http.StatusCreated, plan)
}

type mealResponse struct {
	*model.Meal
	RecipeHTML string `json:"recipe_html"`
}

func (h *PlanHandler) Meal(w http.ResponseWriter, r *http.Request) {
	meal, err := h.mealPlanService.Meal(r.Context(), ctxkeys.UserID(r.Context()), r.PathValue("id"))
	if err != nil {
		respondError(w, r, err, "Failed to fetch meal")
		return
	}

	html, err := h.markdown.ParseString(meal.Recipe)
	if err != nil {
		respondError(w, r, err, "Failed to render recipe")
		return
	}

	ui.JSON(w, r, http.StatusOK, mealResponse{Meal: meal, RecipeHTML: html})
}

type exerciseResponse struct {
	*model.Exercise
	Logs []*model.WorkoutLog `json:"logs"`
}

// Exercise returns one exercise of the user's plan with its logs, newest first.
func (h *PlanHandler) Exercise(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	exerciseID := r.PathValue("id")

	exercise, err := h.workoutPlanService.Exercise(r.Context(), userID, exerciseID)
	if err != nil {
		respondError(w, r, err, "Failed to fetch exercise")
		return
	}

	logs, err := h.workoutLogService.History(r.Context(), userID, exerciseID)
	if err != nil {
		respondError(w, r, err, "Failed to fetch workout logs")
		return
	}

	ui.JSON(w, r, http.StatusOK, exerciseResponse{Exercise: exercise, Logs: logs})
}

func (h *PlanHandler) LogWorkout(w http.ResponseWriter, r *http.Request) {
	var in service.LogInput
	err := ui.Decode(r, &in)
	if err != nil {
		ui.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}

	log, err := h.workoutLogService.Log(r.Context(), ctxkeys.UserID(r.Context()), r.PathValue("id"), in)
	if err != nil {
		respondError(w, r, err, "Failed to log workout")
		return
	}

	ui.JSON(w, r, http.StatusCreated, log)
}
