package service

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/templui/fittrack/internal/catalog"
	"github.com/templui/fittrack/internal/db"
	"github.com/templui/fittrack/internal/mealplan"
	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/recipe"
	"github.com/templui/fittrack/internal/repository"
	"github.com/templui/fittrack/internal/validation"
	"github.com/templui/fittrack/internal/workout"
)

type testServices struct {
	profiles *ProfileService
	workouts *WorkoutPlanService
	meals    *MealPlanService
	logs     *WorkoutLogService
	progress *ProgressService
}

func newTestServices(t *testing.T, gen recipe.Generator) *testServices {
	t.Helper()
	conn, err := db.Init(db.DriverSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	t.Cleanup(func() { db.Close(conn) })
	err = db.RunMigrations(conn.DB, db.DriverSQLite)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	profileRepo := repository.NewProfileRepository(conn)
	planRepo := repository.NewWorkoutPlanRepository(conn)
	logRepo := repository.NewWorkoutLogRepository(conn)

	ts := &testServices{
		workouts: NewWorkoutPlanService(planRepo, profileRepo, workout.NewBuilder(c)),
		meals:    NewMealPlanService(repository.NewMealPlanRepository(conn), profileRepo, mealplan.NewBuilder(gen, time.Second)),
		logs:     NewWorkoutLogService(logRepo, planRepo),
		progress: NewProgressService(logRepo, 30),
	}
	ts.profiles = NewProfileService(profileRepo, ts.workouts, ts.meals, ts.logs)
	return ts
}

func ptr[T any](v T) *T { return &v }

func beginnerProfile() *model.FitnessProfile {
	return &model.FitnessProfile{
		SkillLevel:         model.SkillBeginner,
		Goal:               model.GoalGainMuscle,
		WorkoutDuration:    60,
		TargetMuscleGroups: model.MuscleGroups{model.MuscleChest, model.MuscleBack, model.MuscleChest},
	}
}

func withBiometrics(p *model.FitnessProfile) *model.FitnessProfile {
	p.HeightCM = ptr(175.0)
	p.WeightKG = ptr(70.0)
	p.Age = ptr(30)
	p.Gender = ptr(model.GenderMale)
	return p
}

func TestSaveWithoutBiometricsSkipsMealPlan(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t, recipe.UnavailableGenerator{})

	res, err := s.profiles.Save(ctx, "user-1", beginnerProfile())
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if res.WorkoutErr != nil {
		t.Fatalf("workout generation: %v", res.WorkoutErr)
	}
	if len(res.WorkoutPlan.Days) != 3 {
		t.Fatalf("expected 3 beginner days, got %d", len(res.WorkoutPlan.Days))
	}
	if !res.MealPlanSkipped() {
		t.Fatal("expected meal plan to be skipped without biometrics")
	}
	if got := res.Profile.TargetMuscleGroups; len(got) != 2 {
		t.Errorf("expected deduplicated muscle groups, got %v", got)
	}
	if !res.Profile.DietaryRestrictions.IsNone() {
		t.Errorf("expected default {none} restrictions, got %v", res.Profile.DietaryRestrictions)
	}

	count, err := s.meals.Count(ctx, "user-1")
	if err != nil {
		t.Fatalf("count meal plans: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no meal plan, got %d", count)
	}
}

func TestSaveTwiceKeepsOnePlanEach(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t, recipe.UnavailableGenerator{})

	first, err := s.profiles.Save(ctx, "user-1", withBiometrics(beginnerProfile()))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	p := withBiometrics(beginnerProfile())
	p.Goal = model.GoalLoseWeight
	second, err := s.profiles.Save(ctx, "user-1", p)
	if err != nil {
		t.Fatalf("save again: %v", err)
	}

	if second.Profile.ID != first.Profile.ID {
		t.Errorf("expected a single profile row, ids %s and %s", first.Profile.ID, second.Profile.ID)
	}
	if second.MealErr != nil || second.MealPlan == nil {
		t.Fatalf("expected meal plan, got err %v", second.MealErr)
	}
	for _, m := range second.MealPlan.Meals {
		if m.Source != model.MealSourceFallback {
			t.Errorf("%s: expected fallback without a generator, got %s", m.MealType, m.Source)
		}
	}

	workouts, err := s.workouts.Count(ctx, "user-1")
	if err != nil {
		t.Fatalf("count workout plans: %v", err)
	}
	meals, err := s.meals.Count(ctx, "user-1")
	if err != nil {
		t.Fatalf("count meal plans: %v", err)
	}
	if workouts != 1 || meals != 1 {
		t.Fatalf("expected one plan of each, got %d workout and %d meal plans", workouts, meals)
	}

	current, err := s.workouts.Current(ctx, "user-1")
	if err != nil {
		t.Fatalf("current workout plan: %v", err)
	}
	if current.Name != "lose weight Plan" {
		t.Fatalf("expected the regenerated plan, got %q", current.Name)
	}
}

func TestSaveRejectsInvalidProfile(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t, recipe.UnavailableGenerator{})

	p := beginnerProfile()
	p.SkillLevel = model.SkillIntermediate
	_, err := s.profiles.Save(ctx, "user-1", p)
	if !validation.IsError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	_, err = s.profiles.ByUserID(ctx, "user-1")
	if !errors.Is(err, repository.ErrProfileNotFound) {
		t.Fatalf("expected nothing stored, got %v", err)
	}
}

func TestSaveSplitProfileDerivesSplitCount(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t, recipe.UnavailableGenerator{})

	p := beginnerProfile()
	p.SkillLevel = model.SkillAdvanced
	p.WorkoutsPerWeek = ptr(2)
	p.SplitDetails = model.SplitDetails{
		{Day: 1, MuscleGroups: model.MuscleGroups{model.MuscleChest}},
		{Day: 2, MuscleGroups: model.MuscleGroups{model.MuscleBack}},
		{Day: 3, MuscleGroups: model.MuscleGroups{model.MuscleQuads}},
	}

	res, err := s.profiles.Save(ctx, "user-1", p)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if res.Profile.SplitCount == nil || *res.Profile.SplitCount != 3 {
		t.Fatalf("expected split count 3, got %v", res.Profile.SplitCount)
	}
	if len(res.WorkoutPlan.Days) != 3 || res.WorkoutPlan.Days[2].DayOfWeek != 1 {
		t.Fatalf("unexpected split days %+v", res.WorkoutPlan.Days)
	}
}

func TestRegenerateWithoutProfile(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t, recipe.UnavailableGenerator{})

	_, err := s.workouts.Regenerate(ctx, "nobody")
	if !errors.Is(err, repository.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
	_, err = s.meals.Regenerate(ctx, "nobody")
	if !errors.Is(err, repository.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestMealRegenerateRequiresBiometrics(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t, recipe.UnavailableGenerator{})

	_, err := s.profiles.Save(ctx, "user-1", beginnerProfile())
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	_, err = s.meals.Regenerate(ctx, "user-1")
	if !validation.IsError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestConcurrentRegenerateLeavesOnePlan(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t, recipe.UnavailableGenerator{})

	_, err := s.profiles.Save(ctx, "user-1", beginnerProfile())
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	var wg sync.WaitGroup
	errs := make([]error, 5)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.workouts.Regenerate(ctx, "user-1")
		}(i)
	}
	wg.Wait()

	var ok int
	for _, err := range errs {
		if err == nil {
			ok++
		}
	}
	if ok == 0 {
		t.Fatalf("every regeneration failed: %v", errs)
	}

	count, err := s.workouts.Count(ctx, "user-1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one plan, got %d", count)
	}
}

func TestLogWorkoutAndProgress(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t, recipe.UnavailableGenerator{})

	res, err := s.profiles.Save(ctx, "user-1", beginnerProfile())
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	exercise := res.WorkoutPlan.Days[0].Exercises[0]

	_, err = s.logs.Log(ctx, "user-1", exercise.ID, LogInput{SetsCompleted: 3, RepsCompleted: "10,ten,8", WeightUsed: 50})
	if !validation.IsError(err) {
		t.Fatalf("expected validation error for bad reps, got %v", err)
	}
	_, err = s.logs.Log(ctx, "user-2", exercise.ID, LogInput{SetsCompleted: 3, RepsCompleted: "10,10,8", WeightUsed: 50})
	if !errors.Is(err, repository.ErrExerciseNotFound) {
		t.Fatalf("expected ErrExerciseNotFound for another user, got %v", err)
	}

	log, err := s.logs.Log(ctx, "user-1", exercise.ID, LogInput{SetsCompleted: 3, RepsCompleted: " 10,10,8 ", WeightUsed: 50, Notes: "  felt strong "})
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if log.ExerciseName != exercise.Name || log.Notes == nil || *log.Notes != "felt strong" {
		t.Fatalf("unexpected log %+v", log)
	}

	// Logs survive regeneration.
	_, err = s.workouts.Regenerate(ctx, "user-1")
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}

	result, err := s.progress.Progress(ctx, "user-1", 0)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if result.Days != 30 {
		t.Errorf("expected default window of 30 days, got %d", result.Days)
	}
	if len(result.Volume) != 1 || result.Volume[0].Volume != 1400 {
		t.Fatalf("unexpected volume %+v", result.Volume)
	}
	if result.CurrentStreak != 1 || result.LongestStreak != 1 {
		t.Errorf("unexpected streaks %d/%d", result.CurrentStreak, result.LongestStreak)
	}
	if len(result.MuscleGroups) == 0 || result.MuscleGroups[0].Name != "Chest" {
		t.Errorf("unexpected distribution %+v", result.MuscleGroups)
	}

	overview, err := s.profiles.Overview(ctx, "user-1")
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if overview.TotalWorkouts != 1 || len(overview.RecentLogs) != 1 {
		t.Fatalf("unexpected overview %+v", overview)
	}

	_, err = s.progress.Progress(ctx, "user-1", MaxProgressDays+1)
	if !validation.IsError(err) {
		t.Fatalf("expected validation error for oversized window, got %v", err)
	}
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t, recipe.UnavailableGenerator{})

	_, err := s.profiles.Dashboard(ctx, "user-1")
	if !errors.Is(err, repository.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}

	_, err = s.profiles.Save(ctx, "user-1", withBiometrics(beginnerProfile()))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	d, err := s.profiles.Dashboard(ctx, "user-1")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if d.Targets == nil || d.Targets.Calories != 2856 {
		t.Fatalf("unexpected targets %+v", d.Targets)
	}
	if d.WorkoutPlan == nil || d.MealPlan == nil || len(d.MealPlan.Meals) != 4 {
		t.Fatalf("expected both plans on the dashboard, got %+v", d)
	}
}
