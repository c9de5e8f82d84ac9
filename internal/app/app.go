package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/templui/fittrack/internal/catalog"
	"github.com/templui/fittrack/internal/config"
	"github.com/templui/fittrack/internal/db"
	"github.com/templui/fittrack/internal/markdown"
	"github.com/templui/fittrack/internal/mealplan"
	"github.com/templui/fittrack/internal/recipe"
	"github.com/templui/fittrack/internal/repository"
	"github.com/templui/fittrack/internal/service"
	"github.com/templui/fittrack/internal/workout"
)

type App struct {
	Cfg                *config.Config
	DB                 *sqlx.DB
	Catalog            *catalog.Catalog
	Markdown           *markdown.Parser
	AuthService        *service.AuthService
	ProfileService     *service.ProfileService
	WorkoutPlanService *service.WorkoutPlanService
	MealPlanService    *service.MealPlanService
	WorkoutLogService  *service.WorkoutLogService
	ProgressService    *service.ProgressService

	// Ctx is cancelled by Close; background loops (rate limiter cleanup) stop with it.
	Ctx    context.Context
	cancel context.CancelFunc
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	if cfg.AutoMigrate {
		err = db.RunMigrations(database.DB, cfg.DBDriver)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to run migrations: %v", err)
		}
	}

	app, err := NewWithDB(cfg, database)
	if err != nil {
		database.Close()
		return nil, err
	}
	return app, nil
}

// NewWithDB wires the application around an already migrated database.
func NewWithDB(cfg *config.Config, database *sqlx.DB) (*App, error) {
	exercises, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load exercise catalog: %v", err)
	}

	// Repositories
	profileRepository := repository.NewProfileRepository(database)
	workoutPlanRepository := repository.NewWorkoutPlanRepository(database)
	mealPlanRepository := repository.NewMealPlanRepository(database)
	workoutLogRepository := repository.NewWorkoutLogRepository(database)

	// Generators
	generator := recipe.NewGenerator(recipe.OpenAIConfig{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.OpenAIModel,
		Timeout: cfg.RecipeTimeout,
	})
	workoutBuilder := workout.NewBuilder(exercises)
	mealBuilder := mealplan.NewBuilder(generator, cfg.RecipeTimeout)

	// Services
	authService := service.NewAuthService(cfg.JWTSecret, cfg.JWTExpiry)
	workoutPlanService := service.NewWorkoutPlanService(workoutPlanRepository, profileRepository, workoutBuilder)
	mealPlanService := service.NewMealPlanService(mealPlanRepository, profileRepository, mealBuilder)
	workoutLogService := service.NewWorkoutLogService(workoutLogRepository, workoutPlanRepository)
	progressService := service.NewProgressService(workoutLogRepository, cfg.ProgressDefaultDays)
	profileService := service.NewProfileService(profileRepository, workoutPlanService, mealPlanService, workoutLogService)

	ctx, cancel := context.WithCancel(context.Background())

	return &App{
		Cfg:                cfg,
		DB:                 database,
		Catalog:            exercises,
		Markdown:           markdown.NewParser(),
		AuthService:        authService,
		ProfileService:     profileService,
		WorkoutPlanService: workoutPlanService,
		MealPlanService:    mealPlanService,
		WorkoutLogService:  workoutLogService,
		ProgressService:    progressService,
		Ctx:                ctx,
		cancel:             cancel,
	}, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	c, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}
	slog.Info("exercise catalog loaded", "path", path, "exercises", c.Len())
	return c, nil
}

func (a *App) Close() error {
	if a.cancel != nil {
		a.cancel()
	}
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
