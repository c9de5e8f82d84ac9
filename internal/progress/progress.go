// Package progress derives training analytics from workout logs. Everything
// here is a pure function of the logs and the reference time.
package progress

import (
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/templui/fittrack/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const dateLayout = "2006-01-02"

type VolumePoint struct {
	Date   string `json:"date"`
	Volume int    `json:"volume"`
}

type WeekCount struct {
	Week  string `json:"week"`
	Count int    `json:"count"`
}

type MuscleCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type Report struct {
	Volume        []VolumePoint `json:"workout_volume"`
	Frequency     []WeekCount   `json:"workout_frequency"`
	CurrentStreak int           `json:"current_streak"`
	LongestStreak int           `json:"longest_streak"`
	MuscleGroups  []MuscleCount `json:"muscle_group_distribution"`
}

// Build computes the report. Logs may be in any order; calendar dates are
// taken in now's location.
func Build(logs []*model.WorkoutLog, now time.Time) Report {
	loc := now.Location()
	sorted := slices.Clone(logs)
	slices.SortStableFunc(sorted, func(a, b *model.WorkoutLog) int {
		return a.Date.Compare(b.Date)
	})

	current, longest := Streaks(sorted, now)
	return Report{
		Volume:        Volume(sorted, loc),
		Frequency:     Frequency(sorted, loc),
		CurrentStreak: current,
		LongestStreak: longest,
		MuscleGroups:  Distribution(sorted),
	}
}

// MeanReps averages a comma-separated reps string. Tokens that are not
// non-negative integers are skipped; ok is false when none remain.
func MeanReps(reps string) (mean float64, ok bool) {
	var sum, n int
	for _, tok := range strings.Split(reps, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil || v < 0 {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

// LogVolume is sets x weight x mean reps, or 0 when reps cannot be read.
func LogVolume(l *model.WorkoutLog) float64 {
	mean, ok := MeanReps(l.RepsCompleted)
	if !ok {
		return 0
	}
	return float64(l.SetsCompleted) * l.WeightUsed * mean
}

// Volume sums log volume per calendar date, ascending by date.
func Volume(logs []*model.WorkoutLog, loc *time.Location) []VolumePoint {
	byDate := map[string]float64{}
	for _, l := range logs {
		byDate[l.Date.In(loc).Format(dateLayout)] += LogVolume(l)
	}

	dates := lo.Keys(byDate)
	slices.Sort(dates)

	points := make([]VolumePoint, 0, len(dates))
	for _, d := range dates {
		points = append(points, VolumePoint{Date: d, Volume: int(math.Round(byDate[d]))})
	}
	return points
}

// WeekLabel is "start to end" of the Monday to Sunday week containing t.
func WeekLabel(t time.Time) string {
	start := localDay(t, t.Location())
	start = start.AddDate(0, 0, -((int(start.Weekday()) + 6) % 7))
	end := start.AddDate(0, 0, 6)
	return start.Format(dateLayout) + " to " + end.Format(dateLayout)
}

// Frequency counts logs per week in first-seen order.
func Frequency(logs []*model.WorkoutLog, loc *time.Location) []WeekCount {
	out := []WeekCount{}
	index := map[string]int{}
	for _, l := range logs {
		label := WeekLabel(l.Date.In(loc))
		i, ok := index[label]
		if !ok {
			i = len(out)
			index[label] = i
			out = append(out, WeekCount{Week: label})
		}
		out[i].Count++
	}
	return out
}

// Streaks returns the run of consecutive workout days ending today or
// yesterday, and the longest run of consecutive workout days overall.
func Streaks(logs []*model.WorkoutLog, now time.Time) (current, longest int) {
	loc := now.Location()
	days := lo.UniqBy(lo.Map(logs, func(l *model.WorkoutLog, _ int) time.Time {
		return localDay(l.Date, loc)
	}), func(d time.Time) string {
		return d.Format(dateLayout)
	})
	if len(days) == 0 {
		return 0, 0
	}
	slices.SortFunc(days, func(a, b time.Time) int { return a.Compare(b) })

	today := localDay(now, loc)
	last := days[len(days)-1]
	if last.Equal(today) || last.Equal(today.AddDate(0, 0, -1)) {
		current = 1
		for i := len(days) - 2; i >= 0; i-- {
			if !days[i].Equal(days[i+1].AddDate(0, 0, -1)) {
				break
			}
			current++
		}
	}

	run := 1
	longest = 1
	for i := 1; i < len(days); i++ {
		if days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}

	return current, longest
}

// Distribution counts every muscle group tag of every log, in first-seen order.
func Distribution(logs []*model.WorkoutLog) []MuscleCount {
	title := cases.Title(language.English)
	out := []MuscleCount{}
	index := map[model.MuscleGroup]int{}
	for _, l := range logs {
		for _, g := range l.MuscleGroups {
			i, ok := index[g]
			if !ok {
				i = len(out)
				index[g] = i
				out = append(out, MuscleCount{Name: title.String(string(g))})
			}
			out[i].Value++
		}
	}
	return out
}

func localDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
