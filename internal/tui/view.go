package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/solunahq/soluna/internal/analytics"
	"github.com/solunahq/soluna/internal/retention"
	"github.com/solunahq/soluna/internal/wisdom"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = m.viewToday()
	case StateStats:
		content = m.viewStats()
	case StateProfile:
		content = m.viewProfile()
	case StateAddHabit:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	case StateBoost:
		content = m.viewBoost()
	}

	sections := []string{m.viewTabs(), content}
	if msg := m.store.Err(); msg != "" {
		sections = append(sections, errorBarStyle.Render(msg))
	}
	sections = append(sections, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Today", "Stats", "Profile"} {
		state := m.state
		if state >= tabCount {
			state = m.previousState
		}
		if state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	greeting := wisdom.Greeting(wisdom.TimeOfDayAt(m.clock))
	quote := wisdom.QuoteAt(m.clock)

	header := lipgloss.JoinVertical(lipgloss.Left,
		headingStyle.Render(fmt.Sprintf("%s, %s", greeting, m.store.User().Name)),
		mutedStyle.Render(fmt.Sprintf("\"%s\" — %s", quote.Text, quote.Author)),
	)
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", m.habitList.View()))
}

func (m Model) viewStats() string {
	snap := m.store.Analytics()
	patterns := analytics.AnalyzePatterns(m.store.Habits())

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", headingStyle.Render("Your progress"))
	fmt.Fprintf(&b, "Completed today:   %d/%d\n", snap.CompletedToday, snap.TotalHabits)
	fmt.Fprintf(&b, "Success rate:      %d%%\n", snap.SuccessRate)
	fmt.Fprintf(&b, "Active streaks:    %d\n", snap.ActiveHabits)
	fmt.Fprintf(&b, "Average streak:    %.1f days\n", snap.AverageStreak)
	fmt.Fprintf(&b, "Total completions: %d\n", snap.TotalCompletions)

	b.WriteString("\nLast 7 days\n")
	for _, day := range snap.WeeklyData {
		fmt.Fprintf(&b, "  %s  %2d/%2d %s\n", day.Date, day.Completed, day.Total, strings.Repeat("█", day.Completed))
	}

	if len(snap.TopStreaks) > 0 {
		b.WriteString("\nTop streaks\n")
		for i, entry := range snap.TopStreaks {
			fmt.Fprintf(&b, "  %d. %s %s - %d days\n", i+1, entry.Emoji, entry.Name, entry.Streak)
		}
	}

	fmt.Fprintf(&b, "\nStrongest: %s\n", patterns.StrongestHabit)
	fmt.Fprintf(&b, "Weakest:   %s\n", patterns.WeakestHabit)
	fmt.Fprintf(&b, "Trend:     %s\n", patterns.OverallTrend)
	fmt.Fprintf(&b, "\n%s\n", analytics.MotivationalMessage(snap.SuccessRate))

	return docStyle.Render(b.String())
}

func (m Model) viewProfile() string {
	user := m.store.User()
	tier := "Free"
	if user.IsPremium {
		tier = "Premium ⭐"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", headingStyle.Render(user.Name))
	fmt.Fprintf(&b, "Email:     %s\n", user.Email)
	fmt.Fprintf(&b, "Tier:      %s\n", tier)
	fmt.Fprintf(&b, "Joined:    %s\n", user.JoinedAt)
	fmt.Fprintf(&b, "AI boosts: %d today\n", m.store.DailyAIBoosts())

	b.WriteString("\nAchievements\n")
	for _, a := range retention.Achievements(m.store.Habits()) {
		mark := " "
		if a.Unlocked {
			mark = "✓"
		}
		fmt.Fprintf(&b, "  [%s] %s %s (%d/%d)\n", mark, a.Icon, a.Title, a.Progress, a.MaxProgress)
	}

	return docStyle.Render(b.String())
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete this habit and its history?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func (m Model) viewBoost() string {
	if m.boostInsight == nil {
		return lipgloss.Place(m.width, m.height-4,
			lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center,
				"No AI boosts left today.",
				mutedStyle.Render("Boosts reset tomorrow. Premium gets 50 per day."),
				"",
				mutedStyle.Render("press any key to go back"),
			),
		)
	}

	in := m.boostInsight
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			headingStyle.Render("✨ "+in.Title),
			"",
			lipgloss.NewStyle().Width(60).Render(in.Content),
			"",
			mutedStyle.Render(fmt.Sprintf("confidence %d%% | impact %d/10", in.Confidence, in.Impact)),
			"",
			mutedStyle.Render("press any key to go back"),
		),
	)
}
