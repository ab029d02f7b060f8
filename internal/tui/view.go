package tui

import (
	"fmt"
	"strings"

	"github.com/claude/ironlog/internal/models"
)

// View implements tea.Model.
func (m Model) View() string {
	switch m.mode {
	case PickerView:
		return m.picker.View()
	case EntryView:
		return m.entryView()
	default:
		return m.journalView()
	}
}

func (m Model) journalView() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("IronLog"))
	b.WriteString("\n")
	if m.ready {
		b.WriteString(m.viewport.View())
	}
	b.WriteString("\n")

	stats := m.journal.Stats()
	b.WriteString(m.styles.Label.Render(fmt.Sprintf(
		"%d workouts · %d sets · %s lb lifetime", stats.Days, stats.Sets, groupDigits(stats.Volume))))
	b.WriteString(m.styles.Help.Render("\nn: new set · ↑/↓: scroll · q: quit"))
	return b.String()
}

func (m Model) entryView() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(string(m.exercise)))
	b.WriteString("\n")
	b.WriteString(m.styles.Label.Render("Reps") + "\n")
	b.WriteString(m.repsInput.View() + "\n\n")
	b.WriteString(m.styles.Label.Render("Weight (lb)") + "\n")
	b.WriteString(m.weightInput.View() + "\n")
	if m.formErr != "" {
		b.WriteString("\n" + m.styles.Error.Render(m.formErr) + "\n")
	}
	b.WriteString(m.styles.Help.Render("\nenter: next/save · tab: switch field · esc: cancel"))
	return b.String()
}

// refreshJournal rebuilds the viewport content from a fresh journal snapshot,
// newest day first.
func (m *Model) refreshJournal() {
	if !m.ready {
		return
	}

	days := m.journal.Workouts()
	if len(days) == 0 {
		m.viewport.SetContent(m.styles.Label.Render("No workouts yet. Press n to log your first set."))
		return
	}

	var b strings.Builder
	for i := len(days) - 1; i >= 0; i-- {
		day := days[i]
		b.WriteString(m.styles.DayHeader.Render(day.Date.Format("Monday, Jan 2 2006")))
		b.WriteString("\n")
		for _, set := range day.Sets {
			b.WriteString(m.styles.SetRow.Render(renderSet(set)))
			b.WriteString("\n")
		}
		b.WriteString(m.styles.Total.Render(
			fmt.Sprintf("Total weight moved: %s lb", groupDigits(day.TotalWeightMoved()))))
		b.WriteString("\n\n")
	}
	m.viewport.SetContent(b.String())
}

func renderSet(set models.LoggedSet) string {
	return fmt.Sprintf("%-15s %3d × %d lb", set.Exercise, set.Reps, set.Weight)
}

// groupDigits formats n with thousands separators (12345 → "12,345").
func groupDigits(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
