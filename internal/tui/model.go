package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/solunahq/soluna/internal/dates"
	"github.com/solunahq/soluna/internal/insight"
	"github.com/solunahq/soluna/internal/store"
	"github.com/solunahq/soluna/internal/tui/components/habitlist"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateStats
	StateProfile
	StateAddHabit
	StateConfirmDelete
	StateBoost
)

// tabCount is the number of top-level tabs cycled by tab/shift+tab.
const tabCount = 3

type HabitFormModel struct {
	Title    string
	Category string
}

type Model struct {
	store         *store.Store
	clock         dates.Clock
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	habitList     habitlist.Model
	form          *huh.Form
	habitForm     *HabitFormModel
	boostInsight  *insight.Insight
	quitting      bool
	width         int
	height        int

	habitToDeleteID string
}

func NewModel(s *store.Store, clock dates.Clock) Model {
	today := string(dates.Today(clock))

	m := Model{
		store:     s,
		clock:     clock,
		state:     StateToday,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		habitList: habitlist.New(s.Habits(), today, 0, 0),
	}
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateToday {
		keys = append(keys, m.keys.Add, m.keys.Enter, m.keys.Delete, m.keys.Boost)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	if m.state == StateToday {
		actions = []key.Binding{m.keys.Add, m.keys.Delete, m.keys.Boost}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refreshHabits pushes the store's current collection into the list.
func (m *Model) refreshHabits() {
	m.habitList.SetHabits(m.store.Habits(), string(dates.Today(m.clock)))
}

// newHabitForm builds the add-habit form bound to m.habitForm.
func (m *Model) newHabitForm() {
	m.habitForm = &HabitFormModel{Category: store.DefaultCategory}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit").
				Placeholder("Morning meditation").
				Value(&m.habitForm.Title),
			huh.NewInput().
				Title("Category").
				Value(&m.habitForm.Category),
		),
	)
}
