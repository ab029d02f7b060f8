// Package journal owns the workout history: an ordered collection of workout
// days loaded once from local storage and rewritten in full after every
// mutation. It is the only writer of the stored history.
package journal

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/claude/ironlog/internal/models"
	"github.com/claude/ironlog/internal/storage"
)

// storageKey is the single key the whole history lives under.
const storageKey = "Workouts"

// Journal is the single source of truth for logged workouts. All methods run
// on one goroutine (the UI event loop or the MCP handler); there is no
// internal locking.
type Journal struct {
	kv   *storage.KV
	log  *slog.Logger
	loc  *time.Location
	now  func() time.Time
	days []models.WorkoutDay
	subs []func()
}

// New creates a Journal with day boundaries in loc and loads any persisted
// history. Missing or malformed stored data yields an empty history; New
// never fails.
func New(kv *storage.KV, loc *time.Location, log *slog.Logger) *Journal {
	j := &Journal{kv: kv, log: log, loc: loc, now: time.Now}
	j.load()
	return j
}

func (j *Journal) load() {
	data, ok, err := j.kv.Get(storageKey)
	if err != nil {
		j.log.Warn("reading workout history failed, starting empty", "error", err)
		return
	}
	if !ok {
		return
	}
	days, ok := decodeDays(data)
	if !ok {
		j.log.Warn("stored workout history is malformed, starting empty")
		return
	}
	j.days = days
}

// decodeDays attempts to decode a stored history blob. ok is false for any
// malformed input, in which case the caller falls back to an empty history.
func decodeDays(data []byte) ([]models.WorkoutDay, bool) {
	var days []models.WorkoutDay
	if err := json.Unmarshal(data, &days); err != nil {
		return nil, false
	}
	return days, true
}

// RecordSet appends one logged set to today's workout, creating the day if
// this is the first set logged today. The whole history is rewritten to
// storage afterwards; a write failure keeps the in-memory state and is only
// logged. Input validation is the caller's job.
func (j *Journal) RecordSet(exercise models.Exercise, reps, weight int) {
	set := models.NewLoggedSet(exercise, reps, weight)

	// One timestamp for both the day lookup and the new day's stamp, so a
	// save straddling midnight cannot match one day and stamp another.
	now := j.now()

	idx := -1
	for i := range j.days {
		if j.days[i].SameDay(now, j.loc) {
			idx = i
			break
		}
	}
	if idx == -1 {
		j.days = append(j.days, models.NewWorkoutDay(now))
		idx = len(j.days) - 1
	}
	j.days[idx].Sets = append(j.days[idx].Sets, set)

	j.persist()
	j.notify()
}

func (j *Journal) persist() {
	data, err := json.Marshal(j.days)
	if err != nil {
		j.log.Warn("encoding workout history failed, keeping in-memory state", "error", err)
		return
	}
	if err := j.kv.Put(storageKey, data); err != nil {
		j.log.Warn("writing workout history failed, keeping in-memory state", "error", err)
	}
}

// Workouts returns a snapshot of the history, oldest day first. Mutating the
// returned slice does not affect the journal.
func (j *Journal) Workouts() []models.WorkoutDay {
	out := make([]models.WorkoutDay, len(j.days))
	for i, d := range j.days {
		sets := make([]models.LoggedSet, len(d.Sets))
		copy(sets, d.Sets)
		d.Sets = sets
		out[i] = d
	}
	return out
}

// Today returns a snapshot of the workout day containing the current time,
// or false if nothing has been logged today.
func (j *Journal) Today() (models.WorkoutDay, bool) {
	now := j.now()
	for _, d := range j.days {
		if d.SameDay(now, j.loc) {
			sets := make([]models.LoggedSet, len(d.Sets))
			copy(sets, d.Sets)
			d.Sets = sets
			return d, true
		}
	}
	return models.WorkoutDay{}, false
}

// TotalWeightMoved returns the day's volume: the sum of reps times weight
// over every set.
func (j *Journal) TotalWeightMoved(day models.WorkoutDay) int {
	return day.TotalWeightMoved()
}

// Subscribe registers fn to run after every mutation. Callbacks run on the
// mutating goroutine and should hand off, not block.
func (j *Journal) Subscribe(fn func()) {
	j.subs = append(j.subs, fn)
}

func (j *Journal) notify() {
	for _, fn := range j.subs {
		fn()
	}
}

// Stats summarizes the whole history.
type Stats struct {
	Days   int `json:"days"`
	Sets   int `json:"sets"`
	Volume int `json:"volume"` // lifetime pounds moved
}

// Stats returns day and set counts plus lifetime volume.
func (j *Journal) Stats() Stats {
	s := Stats{Days: len(j.days)}
	for _, d := range j.days {
		s.Sets += len(d.Sets)
		s.Volume += d.TotalWeightMoved()
	}
	return s
}
