package analytics

import "github.com/solunahq/soluna/internal/models"

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// Patterns summarizes where a user is strongest and weakest.
type Patterns struct {
	StrongestHabit string
	WeakestHabit   string
	OverallTrend   Trend
}

// AnalyzePatterns ranks habits by current streak and classifies the overall
// trend by average streak.
func AnalyzePatterns(habits []models.Habit) Patterns {
	if len(habits) == 0 {
		return Patterns{
			StrongestHabit: "No habits yet",
			WeakestHabit:   "No habits yet",
			OverallTrend:   TrendStable,
		}
	}

	strongest := habits[0]
	weakest := habits[0]
	streakSum := 0
	for _, h := range habits {
		if h.Streak > strongest.Streak {
			strongest = h
		}
		if h.Streak < weakest.Streak {
			weakest = h
		}
		streakSum += h.Streak
	}

	avgStreak := float64(streakSum) / float64(len(habits))
	trend := TrendDeclining
	switch {
	case avgStreak >= 5:
		trend = TrendImproving
	case avgStreak >= 2:
		trend = TrendStable
	}

	return Patterns{
		StrongestHabit: strongest.Title,
		WeakestHabit:   weakest.Title,
		OverallTrend:   trend,
	}
}

// MotivationalMessage picks an encouragement line for a completion rate
// expressed as a percentage.
func MotivationalMessage(completionRate int) string {
	switch {
	case completionRate >= 90:
		return "🔥 You're absolutely crushing it! This level of consistency is building unstoppable momentum."
	case completionRate >= 70:
		return "💪 Great progress! You're building strong habits that will transform your life."
	case completionRate >= 50:
		return "🌱 You're on the right track! Every small step is moving you closer to your goals."
	case completionRate >= 30:
		return "🎯 Keep going! Remember, progress isn't about perfection. It's about consistency."
	default:
		return "🌟 Every journey begins with a single step. Today is a perfect day to start fresh!"
	}
}
