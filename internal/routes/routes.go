package routes

import (
	"net/http"

	"github.com/templui/fittrack/internal/app"
	"github.com/templui/fittrack/internal/handler"
	"github.com/templui/fittrack/internal/middleware"
	"github.com/templui/fittrack/internal/ui"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.DB)
	catalog := handler.NewCatalogHandler(app.Catalog)
	profile := handler.NewProfileHandler(app.ProfileService)
	plan := handler.NewPlanHandler(app.WorkoutPlanService, app.MealPlanService, app.WorkoutLogService, app.Markdown)
	progress := handler.NewProgressHandler(app.ProgressService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /healthz", health.Health)
	mux.HandleFunc("GET /api/catalog", catalog.List)

	// ============================================================================
	// PROTECTED ROUTES (/api/*)
	// ============================================================================

	// Generation calls the recipe model, so it is limited per user
	generationLimiter := middleware.RateLimitGeneration(
		middleware.NewRateLimiter(app.Ctx, app.Cfg.GenerationRateLimit, app.Cfg.GenerationRateWindow),
	)

	// Profile
	mux.HandleFunc("GET /api/profile", middleware.RequireAuth(profile.Show))
	mux.HandleFunc("PUT /api/profile", middleware.RequireAuth(generationLimiter(profile.Save)))
	mux.HandleFunc("GET /api/dashboard", middleware.RequireAuth(profile.Dashboard))

	// Plans
	mux.HandleFunc("GET /api/workout-plan", middleware.RequireAuth(plan.WorkoutPlan))
	mux.HandleFunc("POST /api/workout-plan", middleware.RequireAuth(generationLimiter(plan.RegenerateWorkoutPlan)))
	mux.HandleFunc("GET /api/meal-plan", middleware.RequireAuth(plan.MealPlan))
	mux.HandleFunc("POST /api/meal-plan", middleware.RequireAuth(generationLimiter(plan.RegenerateMealPlan)))
	mux.HandleFunc("GET /api/meals/{id}", middleware.RequireAuth(plan.Meal))

	// Exercises & logs
	mux.HandleFunc("GET /api/exercises/{id}", middleware.RequireAuth(plan.Exercise))
	mux.HandleFunc("POST /api/exercises/{id}/logs", middleware.RequireAuth(plan.LogWorkout))

	// Analytics
	mux.HandleFunc("GET /api/progress", middleware.RequireAuth(progress.Progress))

	// ============================================================================
	// FALLBACK
	// ============================================================================

	// 404
	mux.HandleFunc("/{path...}", func(w http.ResponseWriter, r *http.Request) {
		ui.Error(w, r, http.StatusNotFound, "Not found")
	})

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Config(app.Cfg), // Sanitized config for handlers
		middleware.RequestID,
		middleware.CORS(app.Cfg.CORSAllowedOrigins),
		middleware.AuthMiddleware(app.AuthService),
		middleware.RequestLogging, // After auth so the user id is logged
	)

	return handler
}
