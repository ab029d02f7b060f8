package tui

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/claude/ironlog/internal/journal"
	"github.com/claude/ironlog/internal/storage"
)

func newTestModel(t *testing.T) (Model, *journal.Journal) {
	t.Helper()
	kv, err := storage.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open error: %v", err)
	}
	t.Cleanup(func() { kv.Close() })

	j := journal.New(kv, time.UTC, slog.New(slog.NewTextHandler(io.Discard, nil)))
	m := New(j)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model), j
}

// press feeds a sequence of key presses through Update. Multi-character
// strings other than the named keys are sent rune by rune.
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, key := range keys {
		var msg tea.KeyMsg
		switch key {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			for _, r := range key {
				next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
				m = next.(Model)
			}
			continue
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

// TestNewSetFlow walks the whole entry path: open the picker, choose the
// first exercise, enter reps and weight, and confirm the set lands in the
// journal and the display returns to the journal view.
func TestNewSetFlow(t *testing.T) {
	m, j := newTestModel(t)

	m = press(t, m, "n")
	if m.mode != PickerView {
		t.Fatalf("mode = %v after n, want PickerView", m.mode)
	}

	m = press(t, m, "enter") // first item: Bench Press
	if m.mode != EntryView {
		t.Fatalf("mode = %v after picking, want EntryView", m.mode)
	}

	m = press(t, m, "5", "enter", "135", "enter")
	if m.mode != JournalView {
		t.Fatalf("mode = %v after save, want JournalView", m.mode)
	}

	days := j.Workouts()
	if len(days) != 1 || len(days[0].Sets) != 1 {
		t.Fatalf("journal = %+v, want one day with one set", days)
	}
	set := days[0].Sets[0]
	if string(set.Exercise) != "Bench Press" || set.Reps != 5 || set.Weight != 135 {
		t.Errorf("recorded set = %+v, want Bench Press 5x135", set)
	}
}

// TestEntryRejectsOutOfRange verifies the structural input bound: a zero rep
// count never reaches the journal and the form reports the problem.
func TestEntryRejectsOutOfRange(t *testing.T) {
	m, j := newTestModel(t)

	m = press(t, m, "n", "enter", "0", "enter", "135", "enter")
	if m.mode != EntryView {
		t.Fatalf("mode = %v, want EntryView (form should not submit)", m.mode)
	}
	if m.formErr == "" {
		t.Error("no form error reported for zero reps")
	}
	if len(j.Workouts()) != 0 {
		t.Error("out-of-range input reached the journal")
	}
}

// TestEntryRejectsNonNumeric verifies the digit filter keeps letters out of
// the numeric fields entirely.
func TestEntryRejectsNonNumeric(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "n", "enter", "abc")
	if got := m.repsInput.Value(); got != "" {
		t.Errorf("reps input = %q, want empty after non-digit keys", got)
	}
}

// TestEscCancelsEntry verifies that backing out of the form records nothing.
func TestEscCancelsEntry(t *testing.T) {
	m, j := newTestModel(t)

	m = press(t, m, "n", "enter", "5", "esc")
	if m.mode != JournalView {
		t.Fatalf("mode = %v after esc, want JournalView", m.mode)
	}
	if len(j.Workouts()) != 0 {
		t.Error("cancelled entry recorded a set")
	}
}

// TestJournalViewShowsRecordedSets verifies the journal view renders the
// day's sets and the total weight moved after a refresh message.
func TestJournalViewShowsRecordedSets(t *testing.T) {
	m, j := newTestModel(t)

	m = press(t, m, "n", "enter", "5", "enter", "135", "enter")

	j.RecordSet("Squat", 5, 185)
	next, _ := m.Update(JournalChangedMsg{})
	m = next.(Model)

	view := m.View()
	for _, want := range []string{"Bench Press", "Squat", "1,600"} {
		if !strings.Contains(view, want) {
			t.Errorf("journal view missing %q", want)
		}
	}
}

// TestGroupDigits verifies thousands grouping for the volume display.
func TestGroupDigits(t *testing.T) {
	cases := map[int]string{
		0:       "0",
		905:     "905",
		2035:    "2,035",
		1234567: "1,234,567",
	}
	for n, want := range cases {
		if got := groupDigits(n); got != want {
			t.Errorf("groupDigits(%d) = %q, want %q", n, got, want)
		}
	}
}
