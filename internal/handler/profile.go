package handler

import (
	"net/http"

	"github.com/templui/fittrack/internal/ctxkeys"
	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/service"
	"github.com/templui/fittrack/internal/ui"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

type profileRequest struct {
	SkillLevel          model.SkillLevel          `json:"skill_level"`
	Goal                model.Goal                `json:"goal"`
	WorkoutDuration     int                       `json:"workout_duration"`
	TargetMuscleGroups  model.MuscleGroups        `json:"target_muscle_groups"`
	HeightCM            *float64                  `json:"height_cm"`
	WeightKG            *float64                  `json:"weight_kg"`
	Age                 *int                      `json:"age"`
	Gender              *model.Gender             `json:"gender"`
	DietaryRestrictions model.DietaryRestrictions `json:"dietary_restrictions"`
	WorkoutsPerWeek     *int                      `json:"workouts_per_week"`
	SplitCount          *int                      `json:"split_count"`
	SplitDetails        model.SplitDetails        `json:"split_details"`
}

func (p *profileRequest) toModel() *model.FitnessProfile {
	return &model.FitnessProfile{
		SkillLevel:          p.SkillLevel,
		Goal:                p.Goal,
		WorkoutDuration:     p.WorkoutDuration,
		TargetMuscleGroups:  p.TargetMuscleGroups,
		HeightCM:            p.HeightCM,
		WeightKG:            p.WeightKG,
		Age:                 p.Age,
		Gender:              p.Gender,
		DietaryRestrictions: p.DietaryRestrictions,
		WorkoutsPerWeek:     p.WorkoutsPerWeek,
		SplitCount:          p.SplitCount,
		SplitDetails:        p.SplitDetails,
	}
}

type saveProfileResponse struct {
	Profile     *model.FitnessProfile `json:"profile"`
	WorkoutPlan *model.WorkoutPlan    `json:"workout_plan"`
	MealPlan    *model.MealPlan       `json:"meal_plan"`
	Warnings    []string              `json:"warnings"`
}

// Show returns the profile with the workout count and recent logs.
func (h *ProfileHandler) Show(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	overview, err := h.profileService.Overview(r.Context(), userID)
	if err != nil {
		respondError(w, r, err, "Failed to fetch fitness profile")
		return
	}

	ui.JSON(w, r, http.StatusOK, overview)
}

// Save stores the profile and regenerates the plans. Plan failures are
// reported as warnings, the profile itself is saved.
func (h *ProfileHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	var req profileRequest
	err := ui.Decode(r, &req)
	if err != nil {
		ui.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.profileService.Save(r.Context(), userID, req.toModel())
	if err != nil {
		respondError(w, r, err, "Failed to save fitness profile")
		return
	}

	resp := saveProfileResponse{
		Profile:     result.Profile,
		WorkoutPlan: result.WorkoutPlan,
		MealPlan:    result.MealPlan,
		Warnings:    []string{},
	}
	if result.WorkoutErr != nil {
		resp.Warnings = append(resp.Warnings, "Failed to generate workout plan")
	}
	if result.MealErr != nil {
		resp.Warnings = append(resp.Warnings, "Failed to generate meal plan")
	}
	if result.MealPlanSkipped() {
		resp.Warnings = append(resp.Warnings, "Meal plan needs height, weight, age and gender")
	}

	ui.JSON(w, r, http.StatusOK, resp)
}

func (h *ProfileHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	dashboard, err := h.profileService.Dashboard(r.Context(), userID)
	if err != nil {
		respondError(w, r, err, "Failed to load dashboard")
		return
	}

	ui.JSON(w, r, http.StatusOK, dashboard)
}
