package retention

import (
	"strings"
	"testing"
	"time"

	"github.com/solunahq/soluna/internal/dates"
	"github.com/solunahq/soluna/internal/models"
)

func TestAchievementsEmptyCollection(t *testing.T) {
	achievements := Achievements(nil)
	if len(achievements) != 4 {
		t.Fatalf("expected 4 achievements, got %d", len(achievements))
	}
	for _, a := range achievements {
		if a.Unlocked {
			t.Errorf("%s should be locked with no habits", a.ID)
		}
		if a.Progress != 0 {
			t.Errorf("%s progress = %d, want 0", a.ID, a.Progress)
		}
	}
}

func TestAchievementsUnlockThresholds(t *testing.T) {
	habits := []models.Habit{
		{ID: "1", BestStreak: 8, TotalCompletions: 60},
		{ID: "2", BestStreak: 2, TotalCompletions: 45},
	}

	byID := map[string]Achievement{}
	for _, a := range Achievements(habits) {
		byID[a.ID] = a
	}

	if !byID["first_habit"].Unlocked {
		t.Error("first_habit should unlock with one habit")
	}
	if !byID["week_warrior"].Unlocked {
		t.Error("week_warrior should unlock at best streak 8")
	}
	if byID["month_master"].Unlocked {
		t.Error("month_master should stay locked below 30")
	}
	if got := byID["month_master"].Progress; got != 8 {
		t.Errorf("month_master progress = %d, want 8", got)
	}
	if !byID["habit_hunter"].Unlocked { // 60 + 45 completions
		t.Error("habit_hunter should unlock at 105 completions")
	}
}

func TestNextMilestone(t *testing.T) {
	tests := []struct {
		streak int
		want   int
		ok     bool
	}{
		{0, 3, true},
		{3, 7, true},
		{29, 30, true},
		{100, 365, true},
		{365, 0, false},
	}
	for _, tt := range tests {
		got, ok := NextMilestone(tt.streak)
		if got != tt.want || ok != tt.ok {
			t.Errorf("NextMilestone(%d) = (%d, %v), want (%d, %v)", tt.streak, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNudgeMatchesTimeOfDay(t *testing.T) {
	morning := dates.At(time.Date(2025, 7, 10, 7, 0, 0, 0, time.UTC))
	if msg := Nudge(morning); !strings.Contains(msg, "🌅") && !strings.Contains(msg, "⚡") && !strings.Contains(msg, "🎯") && !strings.Contains(msg, "☀️") {
		t.Errorf("morning nudge from wrong pool: %q", msg)
	}

	evening := dates.At(time.Date(2025, 7, 10, 21, 0, 0, 0, time.UTC))
	if msg := Nudge(evening); !strings.Contains(msg, "🌙") && !strings.Contains(msg, "📝") && !strings.Contains(msg, "😴") && !strings.Contains(msg, "✨") {
		t.Errorf("evening nudge from wrong pool: %q", msg)
	}
}

func TestMilestoneMessageStableWithinHour(t *testing.T) {
	clock := dates.At(time.Date(2025, 7, 10, 13, 5, 0, 0, time.UTC))
	if MilestoneMessage(clock) != MilestoneMessage(clock) {
		t.Error("milestone message should be deterministic for a fixed clock")
	}
}
