// Package analytics computes derived aggregates over the habit collection.
// All functions are pure: they read the habits they are given and touch no
// persistent state.
package analytics

import (
	"math"
	"sort"

	"github.com/solunahq/soluna/internal/dates"
	"github.com/solunahq/soluna/internal/models"
)

// WeeklyCount is one day's completion tally.
type WeeklyCount struct {
	Date      dates.Day `json:"date"`
	Completed int       `json:"completed"`
	Total     int       `json:"total"`
}

// StreakEntry is a leaderboard row.
type StreakEntry struct {
	Name   string `json:"name"`
	Streak int    `json:"streak"`
	Emoji  string `json:"emoji"`
}

type Snapshot struct {
	CompletedToday   int            `json:"completed_today"`
	TotalHabits      int            `json:"total_habits"`
	ActiveHabits     int            `json:"active_habits"`
	TotalCompletions int            `json:"total_completions"`
	AverageStreak    float64        `json:"average_streak"` // one decimal place
	SuccessRate      int            `json:"success_rate"`   // rounded percent, 0 when no habits
	WeeklyData       []WeeklyCount  `json:"weekly_data"`    // last 7 days, oldest first
	CategoryData     map[string]int `json:"category_data"`
	TopStreaks       []StreakEntry  `json:"top_streaks"` // top 5 by streak, ties keep collection order
}

// Compute builds a Snapshot from the habit collection as of the clock's today.
func Compute(habits []models.Habit, clock dates.Clock) Snapshot {
	today := string(dates.Today(clock))
	total := len(habits)

	completedToday := 0
	activeHabits := 0
	totalCompletions := 0
	streakSum := 0
	categoryData := make(map[string]int)

	for _, h := range habits {
		if h.CompletedOn(today) {
			completedToday++
		}
		if h.Streak > 0 {
			activeHabits++
		}
		totalCompletions += h.TotalCompletions
		streakSum += h.Streak
		categoryData[h.Category]++
	}

	averageStreak := 0.0
	successRate := 0
	if total > 0 {
		averageStreak = math.Round(float64(streakSum)/float64(total)*10) / 10
		successRate = int(math.Round(float64(completedToday) / float64(total) * 100))
	}

	last7 := dates.LastN(clock, 7)
	weeklyData := make([]WeeklyCount, 0, len(last7))
	for _, day := range last7 {
		completed := 0
		for _, h := range habits {
			if h.CompletedOn(string(day)) {
				completed++
			}
		}
		weeklyData = append(weeklyData, WeeklyCount{Date: day, Completed: completed, Total: total})
	}

	ranked := make([]models.Habit, len(habits))
	copy(ranked, habits)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Streak > ranked[j].Streak
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	topStreaks := make([]StreakEntry, 0, len(ranked))
	for _, h := range ranked {
		topStreaks = append(topStreaks, StreakEntry{Name: h.Title, Streak: h.Streak, Emoji: h.Emoji})
	}

	return Snapshot{
		CompletedToday:   completedToday,
		TotalHabits:      total,
		ActiveHabits:     activeHabits,
		TotalCompletions: totalCompletions,
		AverageStreak:    averageStreak,
		SuccessRate:      successRate,
		WeeklyData:       weeklyData,
		CategoryData:     categoryData,
		TopStreaks:       topStreaks,
	}
}
