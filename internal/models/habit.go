package models

import "time"

// Habit represents a recurring practice to track
type Habit struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Emoji            string     `json:"emoji"`
	Category         string     `json:"category"`
	Streak           int        `json:"streak"`
	CompletedDates   []string   `json:"completed_dates"` // YYYY-MM-DD format, each day at most once
	CreatedAt        time.Time  `json:"created_at"`
	LastCompletedAt  *time.Time `json:"last_completed_at,omitempty"`
	IsCompleted      bool       `json:"is_completed"` // whether today is in CompletedDates
	BestStreak       int        `json:"best_streak"`
	TotalCompletions int        `json:"total_completions"`
}

// CompletedOn reports whether the habit was completed on the given day.
func (h Habit) CompletedOn(day string) bool {
	for _, d := range h.CompletedDates {
		if d == day {
			return true
		}
	}
	return false
}
