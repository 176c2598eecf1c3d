// Package insight generates the "AI boost" coaching content. Selection is
// contextual where the habit data supports it and otherwise rotates through a
// curated pool by hour, so repeated calls within an hour agree.
package insight

import (
	"fmt"
	"math"

	"github.com/solunahq/soluna/internal/dates"
	"github.com/solunahq/soluna/internal/models"
)

type Type string

const (
	TypeForecast       Type = "forecast"
	TypeRecommendation Type = "recommendation"
	TypeAnalysis       Type = "analysis"
	TypePrediction     Type = "prediction"
)

type Insight struct {
	Type       Type
	Title      string
	Content    string
	Confidence int // percent
	Impact     int // 1-10
}

var pool = []Insight{
	{TypeForecast, "Weekly Success Prediction", "Based on your current streak patterns, you have an 87% chance of completing all habits this week. Your morning habits show the strongest consistency.", 87, 9},
	{TypeRecommendation, "Optimize Your Routine", "Consider moving your reading habit to the morning. Users with similar patterns show 34% better completion rates when reading is done before 10 AM.", 78, 7},
	{TypeAnalysis, "Streak Analysis", "Your longest streak shows the highest consistency score and could be a keystone habit for building others.", 95, 8},
	{TypePrediction, "Goal Achievement Forecast", "At your current pace, you'll reach your 30-day streak goal soon. Maintaining weekend consistency will be crucial for success.", 82, 9},
	{TypeRecommendation, "Habit Stacking Opportunity", "Try linking your water intake habit with your existing workout routine. This combination shows 45% higher success rates in similar user profiles.", 73, 6},
	{TypeAnalysis, "Performance Insights", "Completion rates often drop at the end of the week. Consider setting reminders or reducing habit complexity for end-of-week maintenance.", 89, 7},
	{TypeForecast, "Monthly Outlook", "Based on your progress trajectory, you're on track to achieve most of your monthly habit goals. Focus on consistency over perfection.", 84, 8},
	{TypeRecommendation, "Recovery Strategy", "After missing a habit, users who restart within 24 hours maintain 67% of their original streak momentum. Don't let perfect be the enemy of good.", 92, 8},
}

// Generate picks an insight for the current state of the habit collection.
func Generate(habits []models.Habit, clock dates.Clock) Insight {
	today := string(dates.Today(clock))
	total := len(habits)

	completedToday := 0
	streakSum := 0
	for _, h := range habits {
		if h.CompletedOn(today) {
			completedToday++
		}
		streakSum += h.Streak
	}

	switch {
	case total == 0:
		return Insight{
			Type:       TypeRecommendation,
			Title:      "Start Your Journey",
			Content:    "Begin with 2-3 simple habits that take less than 5 minutes each. Research shows that starting small leads to 73% higher long-term success rates.",
			Confidence: 95,
			Impact:     9,
		}
	case completedToday == total:
		return Insight{
			Type:       TypeForecast,
			Title:      "Perfect Day Achievement",
			Content:    fmt.Sprintf("Excellent work! You've completed all %d habits today. Users who achieve perfect days have 89%% higher monthly success rates. Keep this momentum going!", total),
			Confidence: 89,
			Impact:     9,
		}
	case float64(streakSum)/float64(total) >= 7:
		avg := int(math.Round(float64(streakSum) / float64(total)))
		return Insight{
			Type:       TypeAnalysis,
			Title:      "Streak Master Status",
			Content:    fmt.Sprintf("Your average streak of %d days puts you in the top 15%% of users. This consistency is building powerful neural pathways for lasting change.", avg),
			Confidence: 92,
			Impact:     8,
		}
	case completedToday == 0:
		return Insight{
			Type:       TypeRecommendation,
			Title:      "Recovery Mode",
			Content:    "Today is a fresh start! Choose just one habit to complete right now. Small wins create momentum, and 78% of users who restart immediately maintain their progress.",
			Confidence: 78,
			Impact:     7,
		}
	default:
		return pool[clock.Now().Hour()%len(pool)]
	}
}

var recommendations = []string{
	"Try habit stacking: link new habits to existing ones",
	"Set implementation intentions: \"When X happens, I will do Y\"",
	"Use the 2-minute rule: make habits so easy they take less than 2 minutes",
	"Focus on identity: \"I am the type of person who...\"",
	"Design your environment to make good habits obvious",
	"Track your habits to maintain awareness and motivation",
	"Celebrate small wins to reinforce positive behavior",
	"Plan for obstacles and create if-then scenarios",
}

// Recommendations returns three coaching tips, rotating with the hour.
func Recommendations(clock dates.Clock) []string {
	start := clock.Now().Hour() % len(recommendations)
	out := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		out = append(out, recommendations[(start+i)%len(recommendations)])
	}
	return out
}
