package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	root := Root()
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRootHelp(t *testing.T) {
	out, err := execute(t, "--help")
	if err != nil {
		t.Fatalf("execute root help: %v", err)
	}
	for _, sub := range []string{"migrate", "catalog", "preview", "token"} {
		if !strings.Contains(out, sub) {
			t.Fatalf("expected %q in help output:\n%s", sub, out)
		}
	}
}

func TestCatalogGroup(t *testing.T) {
	out, err := execute(t, "catalog", "--group", "calves")
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if !strings.Contains(out, "Calves") || !strings.Contains(out, "• Jump Rope [beginner]") {
		t.Fatalf("unexpected catalog output:\n%s", out)
	}
	if strings.Contains(out, "Bench Press") {
		t.Fatalf("group filter ignored:\n%s", out)
	}
}

func TestCatalogRejectsUnknownGroup(t *testing.T) {
	if _, err := execute(t, "catalog", "--group", "neck"); err == nil {
		t.Fatal("expected error for unknown group")
	}
}

func TestPreviewBeginner(t *testing.T) {
	path := writeFile(t, "profile.toml", `
skill_level = "beginner"
goal = "gain_muscle"
workout_duration = 60
target_muscle_groups = ["chest", "back"]
height_cm = 175.0
weight_kg = 70.0
age = 30
gender = "male"
`)

	out, err := execute(t, "preview", "--profile", path)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}

	for _, want := range []string{
		"gain muscle Plan",
		"Day 1: Full Body  Monday  Chest, Back",
		"Day 3: Full Body  Friday",
		"• Push-Ups: 3 × 8-12, rest 60s",
		"Calories: 2856 kcal",
		"Protein: 214g  Carbs: 321g  Fat: 79g",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in preview output:\n%s", want, out)
		}
	}
}

func TestPreviewSplitWithoutBiometrics(t *testing.T) {
	path := writeFile(t, "profile.toml", `
skill_level = "advanced"
goal = "gain_strength"
workout_duration = 90
target_muscle_groups = ["chest"]
workouts_per_week = 2

[[split]]
muscle_groups = ["chest", "arms"]

[[split]]
muscle_groups = ["back"]
`)

	out, err := execute(t, "preview", "--profile", path)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	for _, want := range []string{
		"Day 1: Chest/Arms  Monday",
		"Day 2: Back  Tuesday",
		"• Pull-Ups: 5 × 3-5, rest 180s",
		"No nutrition targets",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in preview output:\n%s", want, out)
		}
	}
}

func TestPreviewRejectsUnknownGoal(t *testing.T) {
	path := writeFile(t, "profile.toml", `
skill_level = "beginner"
goal = "get_fast"
workout_duration = 60
target_muscle_groups = ["chest"]
`)
	if _, err := execute(t, "preview", "--profile", path); err == nil {
		t.Fatal("expected decode error for unknown goal")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", "test-secret-test-secret-test-secret")

	out, err := execute(t, "token", "user-42")
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if strings.Count(strings.TrimSpace(out), ".") != 2 {
		t.Fatalf("expected a JWT, got %q", out)
	}
}
