package cli

import (
	"fmt"
	"strings"

	"github.com/solunahq/soluna/internal/analytics"
	"github.com/solunahq/soluna/internal/retention"
)

type StatsCmd struct {
	Achievements bool `short:"a" help:"Include achievement progress."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.loadStore(); err != nil {
		return err
	}

	snap := ctx.Store.Analytics()
	fmt.Println("Today:")
	fmt.Printf("  Completed: %d/%d habits\n", snap.CompletedToday, snap.TotalHabits)
	fmt.Printf("  Success rate: %d%%\n", snap.SuccessRate)
	fmt.Printf("  Active streaks: %d\n", snap.ActiveHabits)
	fmt.Printf("  Average streak: %.1f days\n", snap.AverageStreak)
	fmt.Printf("  Total completions: %d\n", snap.TotalCompletions)

	fmt.Println("\nLast 7 days:")
	for _, day := range snap.WeeklyData {
		bar := strings.Repeat("█", day.Completed)
		fmt.Printf("  %s  %2d/%2d %s\n", day.Date, day.Completed, day.Total, bar)
	}

	if len(snap.TopStreaks) > 0 {
		fmt.Println("\nTop streaks:")
		for i, entry := range snap.TopStreaks {
			fmt.Printf("  %d. %s %s - %d days\n", i+1, entry.Emoji, entry.Name, entry.Streak)
		}
	}

	if len(snap.CategoryData) > 0 {
		fmt.Println("\nCategories:")
		for category, count := range snap.CategoryData {
			fmt.Printf("  %s: %d\n", category, count)
		}
	}

	patterns := analytics.AnalyzePatterns(ctx.Store.Habits())
	fmt.Println("\nPatterns:")
	fmt.Printf("  Strongest: %s\n", patterns.StrongestHabit)
	fmt.Printf("  Weakest: %s\n", patterns.WeakestHabit)
	fmt.Printf("  Trend: %s\n", patterns.OverallTrend)

	fmt.Printf("\n%s\n", analytics.MotivationalMessage(snap.SuccessRate))

	if c.Achievements {
		fmt.Println("\nAchievements:")
		for _, a := range retention.Achievements(ctx.Store.Habits()) {
			mark := " "
			if a.Unlocked {
				mark = "✓"
			}
			fmt.Printf("  [%s] %s %s (%d/%d, %s)\n", mark, a.Icon, a.Title, a.Progress, a.MaxProgress, a.Rarity)
			fmt.Printf("      %s - reward: %s\n", a.Description, a.Reward)
		}
	}

	return nil
}
