package analytics

import (
	"strings"
	"testing"
	"time"

	"github.com/solunahq/soluna/internal/dates"
	"github.com/solunahq/soluna/internal/models"
)

var testClock = dates.At(time.Date(2025, 7, 10, 15, 0, 0, 0, time.UTC))

func habit(title, category string, streak int, completions int, days ...string) models.Habit {
	return models.Habit{
		ID:               title,
		Title:            title,
		Emoji:            "🎯",
		Category:         category,
		Streak:           streak,
		TotalCompletions: completions,
		CompletedDates:   days,
	}
}

func TestComputeEmptyCollection(t *testing.T) {
	snap := Compute(nil, testClock)

	if snap.SuccessRate != 0 {
		t.Errorf("SuccessRate = %d, want 0 for empty collection", snap.SuccessRate)
	}
	if snap.AverageStreak != 0 {
		t.Errorf("AverageStreak = %v, want 0", snap.AverageStreak)
	}
	if snap.TotalHabits != 0 || snap.CompletedToday != 0 || snap.ActiveHabits != 0 {
		t.Errorf("unexpected non-zero counts: %+v", snap)
	}
	if len(snap.WeeklyData) != 7 {
		t.Errorf("WeeklyData length = %d, want 7", len(snap.WeeklyData))
	}
}

func TestComputeAggregates(t *testing.T) {
	habits := []models.Habit{
		habit("Meditate", "Mindfulness", 3, 10, "2025-07-10", "2025-07-09"),
		habit("Gym", "Fitness", 0, 4, "2025-07-08"),
		habit("Read", "Learning", 5, 20, "2025-07-10"),
	}

	snap := Compute(habits, testClock)

	if snap.CompletedToday != 2 {
		t.Errorf("CompletedToday = %d, want 2", snap.CompletedToday)
	}
	if snap.ActiveHabits != 2 {
		t.Errorf("ActiveHabits = %d, want 2", snap.ActiveHabits)
	}
	if snap.TotalCompletions != 34 {
		t.Errorf("TotalCompletions = %d, want 34", snap.TotalCompletions)
	}
	// (3+0+5)/3 = 2.666... rounds to 2.7
	if snap.AverageStreak != 2.7 {
		t.Errorf("AverageStreak = %v, want 2.7", snap.AverageStreak)
	}
	// round(2/3*100) = 67
	if snap.SuccessRate != 67 {
		t.Errorf("SuccessRate = %d, want 67", snap.SuccessRate)
	}
	if snap.CategoryData["Fitness"] != 1 || len(snap.CategoryData) != 3 {
		t.Errorf("CategoryData = %v", snap.CategoryData)
	}
}

func TestComputeWeeklyData(t *testing.T) {
	habits := []models.Habit{
		habit("Read", "Learning", 2, 3, "2025-07-10", "2025-07-09", "2025-07-04"),
	}

	snap := Compute(habits, testClock)

	if len(snap.WeeklyData) != 7 {
		t.Fatalf("WeeklyData length = %d, want 7", len(snap.WeeklyData))
	}
	if snap.WeeklyData[0].Date != "2025-07-04" || snap.WeeklyData[0].Completed != 1 {
		t.Errorf("oldest day = %+v, want 2025-07-04 with 1 completion", snap.WeeklyData[0])
	}
	if snap.WeeklyData[6].Date != "2025-07-10" || snap.WeeklyData[6].Completed != 1 {
		t.Errorf("newest day = %+v, want 2025-07-10 with 1 completion", snap.WeeklyData[6])
	}
	if snap.WeeklyData[3].Completed != 0 {
		t.Errorf("2025-07-07 should have no completions, got %d", snap.WeeklyData[3].Completed)
	}
}

func TestTopStreaksStableOrderAndCap(t *testing.T) {
	habits := []models.Habit{
		habit("A", "x", 3, 0),
		habit("B", "x", 7, 0),
		habit("C", "x", 3, 0), // ties with A; A must stay first
		habit("D", "x", 1, 0),
		habit("E", "x", 9, 0),
		habit("F", "x", 2, 0),
		habit("G", "x", 0, 0),
	}

	snap := Compute(habits, testClock)

	if len(snap.TopStreaks) != 5 {
		t.Fatalf("TopStreaks length = %d, want 5", len(snap.TopStreaks))
	}
	wantOrder := []string{"E", "B", "A", "C", "F"}
	for i, want := range wantOrder {
		if snap.TopStreaks[i].Name != want {
			t.Errorf("TopStreaks[%d] = %s, want %s", i, snap.TopStreaks[i].Name, want)
		}
	}
}

func TestAnalyzePatterns(t *testing.T) {
	if p := AnalyzePatterns(nil); p.StrongestHabit != "No habits yet" || p.OverallTrend != TrendStable {
		t.Errorf("empty patterns = %+v", p)
	}

	habits := []models.Habit{
		habit("Low", "x", 1, 0),
		habit("High", "x", 12, 0),
	}
	p := AnalyzePatterns(habits)
	if p.StrongestHabit != "High" || p.WeakestHabit != "Low" {
		t.Errorf("patterns = %+v", p)
	}
	if p.OverallTrend != TrendImproving { // avg 6.5 >= 5
		t.Errorf("OverallTrend = %s, want improving", p.OverallTrend)
	}
}

func TestMotivationalMessageBuckets(t *testing.T) {
	tests := []struct {
		rate int
		want string
	}{
		{95, "🔥"},
		{75, "💪"},
		{55, "🌱"},
		{35, "🎯"},
		{10, "🌟"},
	}
	for _, tt := range tests {
		msg := MotivationalMessage(tt.rate)
		if !strings.HasPrefix(msg, tt.want) {
			t.Errorf("MotivationalMessage(%d) = %q, want prefix %q", tt.rate, msg, tt.want)
		}
	}
}
