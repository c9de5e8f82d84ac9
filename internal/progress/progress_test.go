package progress

import (
	"testing"
	"time"

	"github.com/templui/fittrack/internal/model"
)

var testNow = time.Date(2026, time.March, 12, 18, 30, 0, 0, time.UTC) // Thursday

func logOn(daysAgo int, groups ...model.MuscleGroup) *model.WorkoutLog {
	return &model.WorkoutLog{
		Date:          testNow.AddDate(0, 0, -daysAgo).Add(-time.Hour),
		SetsCompleted: 3,
		RepsCompleted: "10,10,8",
		WeightUsed:    50,
		MuscleGroups:  groups,
	}
}

func TestBuildEmpty(t *testing.T) {
	r := Build(nil, testNow)
	if len(r.Volume) != 0 || len(r.Frequency) != 0 || len(r.MuscleGroups) != 0 {
		t.Fatalf("expected empty report, got %+v", r)
	}
	if r.Volume == nil || r.Frequency == nil || r.MuscleGroups == nil {
		t.Fatal("expected empty slices, not nil")
	}
	if r.CurrentStreak != 0 || r.LongestStreak != 0 {
		t.Fatalf("expected zero streaks, got %d/%d", r.CurrentStreak, r.LongestStreak)
	}
}

func TestVolumeSingleLog(t *testing.T) {
	r := Build([]*model.WorkoutLog{logOn(0)}, testNow)
	if len(r.Volume) != 1 {
		t.Fatalf("expected 1 point, got %d", len(r.Volume))
	}
	if r.Volume[0] != (VolumePoint{Date: "2026-03-12", Volume: 1400}) {
		t.Fatalf("unexpected point %+v", r.Volume[0])
	}
}

func TestVolumeSumsPerDateAscending(t *testing.T) {
	second := logOn(2)
	second.RepsCompleted = "5,5"
	second.WeightUsed = 100
	r := Build([]*model.WorkoutLog{logOn(0), second, logOn(2)}, testNow)

	want := []VolumePoint{
		{Date: "2026-03-10", Volume: 1500 + 1400},
		{Date: "2026-03-12", Volume: 1400},
	}
	if len(r.Volume) != len(want) {
		t.Fatalf("expected %d points, got %+v", len(want), r.Volume)
	}
	for i := range want {
		if r.Volume[i] != want[i] {
			t.Errorf("point %d: expected %+v, got %+v", i, want[i], r.Volume[i])
		}
	}
}

func TestMeanRepsTolerant(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"10,10,8", 28.0 / 3, true},
		{" 12 , 10 ", 11, true},
		{"8,x,10", 9, true},
		{"", 0, false},
		{"fail,fail", 0, false},
	}
	for _, tt := range tests {
		got, ok := MeanReps(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("%q: expected %v/%v, got %v/%v", tt.in, tt.want, tt.ok, got, ok)
		}
	}

	l := logOn(0)
	l.RepsCompleted = "n/a"
	if v := LogVolume(l); v != 0 {
		t.Fatalf("expected 0 volume for unreadable reps, got %v", v)
	}
}

func TestStreaks(t *testing.T) {
	tests := []struct {
		name             string
		daysAgo          []int
		current, longest int
	}{
		{"gap at D-3", []int{0, 1, 2, 4}, 3, 3},
		{"ends yesterday", []int{1, 2, 5, 6, 7, 8}, 2, 4},
		{"stale", []int{3, 4, 5}, 0, 3},
		{"single today", []int{0}, 1, 1},
		{"duplicates on one day", []int{0, 0, 1}, 2, 2},
		{"unordered input", []int{4, 0, 2, 1}, 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs []*model.WorkoutLog
			for _, d := range tt.daysAgo {
				logs = append(logs, logOn(d))
			}
			r := Build(logs, testNow)
			if r.CurrentStreak != tt.current || r.LongestStreak != tt.longest {
				t.Fatalf("expected %d/%d, got %d/%d", tt.current, tt.longest, r.CurrentStreak, r.LongestStreak)
			}
		})
	}
}

func TestStreaksUseLocalDates(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	now := time.Date(2026, time.March, 12, 9, 0, 0, 0, loc)
	logs := []*model.WorkoutLog{
		// 03:00 UTC on the 12th is still the 11th in UTC-5.
		{Date: time.Date(2026, time.March, 12, 3, 0, 0, 0, time.UTC)},
		{Date: time.Date(2026, time.March, 12, 13, 0, 0, 0, time.UTC)},
	}
	current, longest := Streaks(logs, now)
	if current != 2 || longest != 2 {
		t.Fatalf("expected 2/2, got %d/%d", current, longest)
	}
}

func TestFrequencyMondayToSunday(t *testing.T) {
	// testNow is Thursday 2026-03-12; its week runs 03-09 to 03-15.
	logs := []*model.WorkoutLog{logOn(10), logOn(3), logOn(0), logOn(1)}
	r := Build(logs, testNow)

	// Ten days before is Monday 03-02; the rest fall in the current week.
	want := []WeekCount{
		{Week: "2026-03-02 to 2026-03-08", Count: 1},
		{Week: "2026-03-09 to 2026-03-15", Count: 3},
	}
	if len(r.Frequency) != len(want) {
		t.Fatalf("expected %d weeks, got %+v", len(want), r.Frequency)
	}
	for i := range want {
		if r.Frequency[i] != want[i] {
			t.Errorf("week %d: expected %+v, got %+v", i, want[i], r.Frequency[i])
		}
	}
}

func TestWeekLabelSunday(t *testing.T) {
	sunday := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	if got := WeekLabel(sunday); got != "2026-03-09 to 2026-03-15" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestDistribution(t *testing.T) {
	logs := []*model.WorkoutLog{
		logOn(2, model.MuscleBack, model.MuscleArms),
		logOn(1, model.MuscleChest),
		logOn(0, model.MuscleArms, model.MuscleHams),
	}
	r := Build(logs, testNow)

	want := []MuscleCount{
		{Name: "Back", Value: 1},
		{Name: "Arms", Value: 2},
		{Name: "Chest", Value: 1},
		{Name: "Hams", Value: 1},
	}
	if len(r.MuscleGroups) != len(want) {
		t.Fatalf("expected %d groups, got %+v", len(want), r.MuscleGroups)
	}
	for i := range want {
		if r.MuscleGroups[i] != want[i] {
			t.Errorf("group %d: expected %+v, got %+v", i, want[i], r.MuscleGroups[i])
		}
	}
}
