package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Exercise is one of the fixed movements the journal tracks.
type Exercise string

const (
	BenchPress    Exercise = "Bench Press"
	Deadlift      Exercise = "Deadlift"
	Squat         Exercise = "Squat"
	ShoulderPress Exercise = "Shoulder Press"
	BarbellRow    Exercise = "Barbell Row"
)

// Exercises returns the closed, ordered list of supported movements.
func Exercises() []Exercise {
	return []Exercise{BenchPress, Deadlift, Squat, ShoulderPress, BarbellRow}
}

// Valid reports whether e is one of the supported movements.
func (e Exercise) Valid() bool {
	for _, known := range Exercises() {
		if e == known {
			return true
		}
	}
	return false
}

// LoggedSet is one recorded exercise performance. The ID identifies the set
// within the running session only; it is excluded from the persisted form and
// stamped fresh on every decode.
type LoggedSet struct {
	ID       uuid.UUID `json:"-"`
	Exercise Exercise  `json:"exercise"`
	Reps     int       `json:"reps"`
	Weight   int       `json:"weight"` // pounds
}

// NewLoggedSet creates a set with a fresh ID. Sets are immutable after this.
func NewLoggedSet(exercise Exercise, reps, weight int) LoggedSet {
	return LoggedSet{
		ID:       uuid.New(),
		Exercise: exercise,
		Reps:     reps,
		Weight:   weight,
	}
}

// UnmarshalJSON decodes the persisted fields and stamps a fresh ID.
func (s *LoggedSet) UnmarshalJSON(data []byte) error {
	type alias LoggedSet
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = LoggedSet(a)
	s.ID = uuid.New()
	return nil
}

// WorkoutDay is every set logged on one calendar day. Sets keep entry order.
type WorkoutDay struct {
	ID   uuid.UUID   `json:"-"`
	Date time.Time   `json:"date"`
	Sets []LoggedSet `json:"sets"`
}

// NewWorkoutDay creates an empty day stamped with date.
func NewWorkoutDay(date time.Time) WorkoutDay {
	return WorkoutDay{ID: uuid.New(), Date: date}
}

// UnmarshalJSON decodes the persisted fields and stamps a fresh ID.
func (d *WorkoutDay) UnmarshalJSON(data []byte) error {
	type alias WorkoutDay
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*d = WorkoutDay(a)
	d.ID = uuid.New()
	return nil
}

// SameDay reports whether t falls on d's calendar day in loc. Day granularity
// only — an entry at 23:59 and one at 00:01 belong to different days.
func (d WorkoutDay) SameDay(t time.Time, loc *time.Location) bool {
	y1, m1, day1 := d.Date.In(loc).Date()
	y2, m2, day2 := t.In(loc).Date()
	return y1 == y2 && m1 == m2 && day1 == day2
}

// TotalWeightMoved is the day's volume: the sum of reps times weight over
// every set. Zero for a day with no sets.
func (d WorkoutDay) TotalWeightMoved() int {
	total := 0
	for _, s := range d.Sets {
		total += s.Reps * s.Weight
	}
	return total
}
