// Package retention derives achievements and engagement nudges from the
// habit collection.
package retention

import (
	"github.com/solunahq/soluna/internal/dates"
	"github.com/solunahq/soluna/internal/models"
	"github.com/solunahq/soluna/internal/wisdom"
)

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

type Achievement struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Rarity      Rarity
	Reward      string
	Unlocked    bool
	Progress    int
	MaxProgress int
}

// StreakMilestones are the streak lengths worth celebrating.
var StreakMilestones = []int{3, 7, 14, 21, 30, 60, 90, 100, 365}

// NextMilestone returns the first milestone above the given streak.
func NextMilestone(streak int) (int, bool) {
	for _, m := range StreakMilestones {
		if streak < m {
			return m, true
		}
	}
	return 0, false
}

// Achievements evaluates the fixed achievement set against the collection.
// Progress is computed fresh on every call; nothing is persisted.
func Achievements(habits []models.Habit) []Achievement {
	bestStreak := 0
	totalCompletions := 0
	for _, h := range habits {
		if h.BestStreak > bestStreak {
			bestStreak = h.BestStreak
		}
		totalCompletions += h.TotalCompletions
	}

	return []Achievement{
		{
			ID:          "first_habit",
			Title:       "Getting Started",
			Description: "Created your first habit",
			Icon:        "🎯",
			Rarity:      RarityCommon,
			Reward:      "Unlock AI insights",
			Unlocked:    len(habits) >= 1,
			Progress:    min(len(habits), 1),
			MaxProgress: 1,
		},
		{
			ID:          "week_warrior",
			Title:       "Week Warrior",
			Description: "Achieved a 7-day streak",
			Icon:        "🏆",
			Rarity:      RarityRare,
			Reward:      "Premium analytics",
			Unlocked:    bestStreak >= 7,
			Progress:    min(bestStreak, 7),
			MaxProgress: 7,
		},
		{
			ID:          "month_master",
			Title:       "Month Master",
			Description: "Achieved a 30-day streak",
			Icon:        "👑",
			Rarity:      RarityLegendary,
			Reward:      "Elite status",
			Unlocked:    bestStreak >= 30,
			Progress:    min(bestStreak, 30),
			MaxProgress: 30,
		},
		{
			ID:          "habit_hunter",
			Title:       "Habit Hunter",
			Description: "Completed 100 habits",
			Icon:        "🎖️",
			Rarity:      RarityEpic,
			Reward:      "Custom themes",
			Unlocked:    totalCompletions >= 100,
			Progress:    min(totalCompletions, 100),
			MaxProgress: 100,
		},
	}
}

var messages = map[string][]string{
	"morning": {
		"Good morning! Ready to conquer today? 🌅",
		"Your habits are waiting for you! ⚡",
		"Start your day with a win! 🎯",
		"Morning habits = better day ahead! ☀️",
	},
	"evening": {
		"How did your day go? Check in with your habits! 🌙",
		"Evening reflection time! 📝",
		"Complete your habits before bed! 😴",
		"End your day on a high note! ✨",
	},
	"milestone": {
		"Amazing! You've hit a new streak! 🔥",
		"Incredible progress! Keep it up! 🚀",
		"You're on fire! This streak is legendary! 👑",
		"Outstanding! You're in the top 1%! 🏆",
	},
	"motivational": {
		"Consistency is the key to success! 💪",
		"Every small step counts! 🌟",
		"You're building something amazing! 🏗️",
		"Progress, not perfection! 📈",
	},
}

// MilestoneMessage returns a celebration line, rotating with the hour.
func MilestoneMessage(clock dates.Clock) string {
	pool := messages["milestone"]
	return pool[clock.Now().Hour()%len(pool)]
}

// Nudge returns a check-in message appropriate for the time of day. The
// afternoon falls back to the motivational pool.
func Nudge(clock dates.Clock) string {
	var pool []string
	switch wisdom.TimeOfDayAt(clock) {
	case wisdom.Morning:
		pool = messages["morning"]
	case wisdom.Evening:
		pool = messages["evening"]
	default:
		pool = messages["motivational"]
	}
	return pool[clock.Now().Hour()%len(pool)]
}
