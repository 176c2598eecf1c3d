package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/solunahq/soluna/internal/insight"
	"github.com/solunahq/soluna/internal/tui/components/habitlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.habitList.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case habitlist.AddHabitMsg:
		m.previousState = m.state
		m.state = StateAddHabit
		m.newHabitForm()
		return m, m.form.Init()

	case habitlist.ToggleHabitMsg:
		m.store.ToggleHabit(msg.ID)
		m.refreshHabits()
		return m, nil

	case habitlist.DeleteHabitMsg:
		m.previousState = m.state
		m.state = StateConfirmDelete
		m.habitToDeleteID = msg.ID
		return m, nil
	}

	switch m.state {
	case StateAddHabit:
		return m.updateAddHabit(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	case StateBoost:
		return m.updateBoost(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Boost):
			if m.state == StateToday {
				return m.startBoost()
			}
		}
	}

	if m.state == StateToday {
		var cmd tea.Cmd
		m.habitList, cmd = m.habitList.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.state = m.previousState
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.store.AddHabit(m.habitForm.Title, "", m.habitForm.Category)
		m.refreshHabits()
		m.state = m.previousState
		m.form = nil
		return m, nil
	}

	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "y", "Y":
			m.store.DeleteHabit(m.habitToDeleteID)
			m.refreshHabits()
			m.habitToDeleteID = ""
			m.state = m.previousState
		case "n", "N", "esc", "q":
			m.habitToDeleteID = ""
			m.state = m.previousState
		}
	}
	return m, nil
}

func (m Model) startBoost() (tea.Model, tea.Cmd) {
	m.previousState = m.state
	m.state = StateBoost
	if m.store.UseAIBoost() {
		result := insight.Generate(m.store.Habits(), m.clock)
		m.boostInsight = &result
	} else {
		m.boostInsight = nil
	}
	return m, nil
}

func (m Model) updateBoost(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		m.boostInsight = nil
		m.state = m.previousState
	}
	return m, nil
}
