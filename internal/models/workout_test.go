package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

// TestExerciseValid verifies membership checks against the fixed movement list.
// The picker relies on this to reject anything outside the closed set.
func TestExerciseValid(t *testing.T) {
	for _, e := range Exercises() {
		if !e.Valid() {
			t.Errorf("%q should be valid", e)
		}
	}
	if Exercise("Cable Fly").Valid() {
		t.Error("unknown exercise reported as valid")
	}
}

// TestLoggedSetMarshalExcludesID verifies that the persisted form carries
// exactly exercise, reps, and weight. The ID is session-scoped and must never
// leak into storage.
func TestLoggedSetMarshalExcludesID(t *testing.T) {
	set := NewLoggedSet(BenchPress, 5, 135)
	data, err := json.Marshal(set)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if len(fields) != 3 {
		t.Errorf("persisted fields = %v, want exercise/reps/weight only", fields)
	}
	for _, key := range []string{"exercise", "reps", "weight"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("missing persisted field %q", key)
		}
	}
}

// TestLoggedSetUnmarshalRegeneratesID verifies that decoding stamps a fresh ID
// and that two decodes of the same bytes get distinct IDs.
func TestLoggedSetUnmarshalRegeneratesID(t *testing.T) {
	raw := []byte(`{"exercise":"Squat","reps":5,"weight":185}`)

	var a, b LoggedSet
	if err := json.Unmarshal(raw, &a); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if err := json.Unmarshal(raw, &b); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}

	if a.ID == uuid.Nil || b.ID == uuid.Nil {
		t.Error("decoded set has nil ID")
	}
	if a.ID == b.ID {
		t.Error("two decodes produced the same ID")
	}
	if a.Exercise != Squat || a.Reps != 5 || a.Weight != 185 {
		t.Errorf("decoded set = %+v, want Squat 5x185", a)
	}
}

// TestWorkoutDayRoundTrip verifies that date, exercise, reps, weight, and set
// order survive an encode/decode cycle while IDs are regenerated.
func TestWorkoutDayRoundTrip(t *testing.T) {
	date := time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)
	day := NewWorkoutDay(date)
	day.Sets = append(day.Sets,
		NewLoggedSet(BenchPress, 5, 135),
		NewLoggedSet(Deadlift, 3, 315),
	)

	data, err := json.Marshal(day)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	var got WorkoutDay
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}

	if !got.Date.Equal(date) {
		t.Errorf("date = %v, want %v", got.Date, date)
	}
	if got.ID == day.ID {
		t.Error("day ID survived the round trip; it must be regenerated")
	}
	if len(got.Sets) != 2 {
		t.Fatalf("sets = %d, want 2", len(got.Sets))
	}
	if got.Sets[0].Exercise != BenchPress || got.Sets[1].Exercise != Deadlift {
		t.Errorf("set order changed: %v then %v", got.Sets[0].Exercise, got.Sets[1].Exercise)
	}
	if got.Sets[0].ID == day.Sets[0].ID {
		t.Error("set ID survived the round trip; it must be regenerated")
	}
}

// TestSameDay verifies day-granularity comparison: same date matches at any
// hour, adjacent dates do not, and the comparison respects the location.
func TestSameDay(t *testing.T) {
	day := NewWorkoutDay(time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC))

	if !day.SameDay(time.Date(2026, 3, 14, 1, 0, 0, 0, time.UTC), time.UTC) {
		t.Error("same UTC date should match regardless of hour")
	}
	if day.SameDay(time.Date(2026, 3, 15, 1, 0, 0, 0, time.UTC), time.UTC) {
		t.Error("next UTC date should not match")
	}

	// 2026-03-14 23:00 UTC is already 2026-03-15 in UTC+2.
	plus2 := time.FixedZone("UTC+2", 2*3600)
	if !day.SameDay(time.Date(2026, 3, 15, 0, 30, 0, 0, plus2), plus2) {
		t.Error("comparison should follow the configured location, not UTC")
	}
}

// TestTotalWeightMoved verifies the volume sum, including the degenerate
// empty day which must yield zero rather than error.
func TestTotalWeightMoved(t *testing.T) {
	day := NewWorkoutDay(time.Now())
	if got := day.TotalWeightMoved(); got != 0 {
		t.Errorf("empty day volume = %d, want 0", got)
	}

	day.Sets = append(day.Sets,
		NewLoggedSet(BenchPress, 5, 100),
		NewLoggedSet(Squat, 3, 135),
	)
	if got := day.TotalWeightMoved(); got != 905 {
		t.Errorf("volume = %d, want 905", got)
	}
}
