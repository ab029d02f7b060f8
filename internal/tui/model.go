// Package tui is the terminal front end: a journal view over the workout
// history, an exercise picker, and a set entry form. It is display and input
// glue only; all state lives in the journal.
package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/claude/ironlog/internal/journal"
	"github.com/claude/ironlog/internal/models"
)

// ViewMode determines which view is active.
type ViewMode int

const (
	JournalView ViewMode = iota
	PickerView
	EntryView
)

// JournalChangedMsg signals that the journal mutated and the display should
// re-read its snapshot. The main program sends it from the journal
// subscription.
type JournalChangedMsg struct{}

// Input bounds. Entry is structurally limited here so the journal never sees
// an out-of-range value.
const (
	maxReps   = 999
	maxWeight = 2000
)

// exerciseItem adapts an Exercise for the picker list.
type exerciseItem struct {
	exercise models.Exercise
}

func (i exerciseItem) Title() string       { return string(i.exercise) }
func (i exerciseItem) Description() string { return "" }
func (i exerciseItem) FilterValue() string { return string(i.exercise) }

// Model is the top-level Bubble Tea model.
type Model struct {
	journal *journal.Journal
	styles  Styles

	mode ViewMode

	// Journal view
	viewport viewport.Model
	ready    bool

	// Picker view
	picker list.Model

	// Entry form
	exercise    models.Exercise
	repsInput   textinput.Model
	weightInput textinput.Model
	focusIndex  int // 0 = reps, 1 = weight
	formErr     string

	width  int
	height int
}

// New creates the TUI over the given journal.
func New(j *journal.Journal) Model {
	items := make([]list.Item, 0, len(models.Exercises()))
	for _, e := range models.Exercises() {
		items = append(items, exerciseItem{exercise: e})
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false

	picker := list.New(items, delegate, 0, 0)
	picker.Title = "Choose an exercise"
	picker.SetShowStatusBar(false)
	picker.SetFilteringEnabled(false)

	reps := textinput.New()
	reps.Placeholder = "reps"
	reps.CharLimit = 3
	reps.Width = 8
	reps.Validate = digitsOnly

	weight := textinput.New()
	weight.Placeholder = "weight (lb)"
	weight.CharLimit = 4
	weight.Width = 12
	weight.Validate = digitsOnly

	return Model{
		journal:     j,
		styles:      DefaultStyles(),
		mode:        JournalView,
		picker:      picker,
		repsInput:   reps,
		weightInput: weight,
	}
}

func digitsOnly(s string) error {
	for _, r := range s {
		if r < '0' || r > '9' {
			return fmt.Errorf("digits only")
		}
	}
	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		bodyHeight := msg.Height - 6
		if bodyHeight < 3 {
			bodyHeight = 3
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, bodyHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = bodyHeight
		}
		m.picker.SetSize(msg.Width, bodyHeight)
		m.refreshJournal()
		return m, nil

	case JournalChangedMsg:
		m.refreshJournal()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case JournalView:
			return m.updateJournal(msg)
		case PickerView:
			return m.updatePicker(msg)
		case EntryView:
			return m.updateEntry(msg)
		}
	}

	return m, nil
}

func (m Model) updateJournal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "n":
		m.mode = PickerView
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.mode = JournalView
		return m, nil
	case "enter":
		item, ok := m.picker.SelectedItem().(exerciseItem)
		if !ok {
			return m, nil
		}
		m.exercise = item.exercise
		m.repsInput.SetValue("")
		m.weightInput.SetValue("")
		m.formErr = ""
		m.focusIndex = 0
		m.repsInput.Focus()
		m.weightInput.Blur()
		m.mode = EntryView
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m Model) updateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.mode = JournalView
		return m, nil
	case "tab", "shift+tab", "up", "down":
		m.focusIndex = 1 - m.focusIndex
		if m.focusIndex == 0 {
			m.repsInput.Focus()
			m.weightInput.Blur()
		} else {
			m.weightInput.Focus()
			m.repsInput.Blur()
		}
		return m, nil
	case "enter":
		if m.focusIndex == 0 {
			m.focusIndex = 1
			m.repsInput.Blur()
			m.weightInput.Focus()
			return m, nil
		}
		return m.submitSet()
	}

	var cmd tea.Cmd
	if m.focusIndex == 0 {
		m.repsInput, cmd = m.repsInput.Update(msg)
	} else {
		m.weightInput, cmd = m.weightInput.Update(msg)
	}
	return m, cmd
}

// submitSet parses and bounds the form input, records the set, and returns to
// the journal view. The journal itself does not validate; everything is
// checked here.
func (m Model) submitSet() (tea.Model, tea.Cmd) {
	reps, err := strconv.Atoi(m.repsInput.Value())
	if err != nil || reps < 1 || reps > maxReps {
		m.formErr = fmt.Sprintf("reps must be 1-%d", maxReps)
		return m, nil
	}
	weight, err := strconv.Atoi(m.weightInput.Value())
	if err != nil || weight < 1 || weight > maxWeight {
		m.formErr = fmt.Sprintf("weight must be 1-%d lb", maxWeight)
		return m, nil
	}

	m.journal.RecordSet(m.exercise, reps, weight)
	m.mode = JournalView
	m.refreshJournal()
	return m, nil
}
