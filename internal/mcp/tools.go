package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/claude/ironlog/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolRecordSet = mcp.NewTool("record_set",
	mcp.WithDescription("Record one weightlifting set. The set is appended to today's workout, creating it if this is the first set of the day."),
	mcp.WithString("exercise", mcp.Required(),
		mcp.Description("Exercise name"),
		mcp.Enum("Bench Press", "Deadlift", "Squat", "Shoulder Press", "Barbell Row")),
	mcp.WithNumber("reps", mcp.Required(), mcp.Description("Repetitions performed (positive integer)")),
	mcp.WithNumber("weight", mcp.Required(), mcp.Description("Weight in pounds (positive integer)")),
)

var toolGetWorkouts = mcp.NewTool("get_workouts",
	mcp.WithDescription("Retrieve the workout history, newest day first. Each day lists its sets in entry order plus the total weight moved (sum of reps × weight)."),
	mcp.WithNumber("limit", mcp.Description("Maximum number of days to return. Defaults to all.")),
)

var toolGetVolumeStats = mcp.NewTool("get_volume_stats",
	mcp.WithDescription("Lifetime training summary: workout day count, set count, and total pounds moved, plus per-day volume."),
)

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List the fixed set of supported exercises."),
)

// --- Response shapes ---

type setResult struct {
	Exercise string `json:"exercise"`
	Reps     int    `json:"reps"`
	Weight   int    `json:"weight"`
}

type dayResult struct {
	Date             string      `json:"date"`
	Sets             []setResult `json:"sets"`
	TotalWeightMoved int         `json:"total_weight_moved"`
}

func toDayResult(d models.WorkoutDay) dayResult {
	out := dayResult{
		Date:             d.Date.Format(time.RFC3339),
		Sets:             make([]setResult, 0, len(d.Sets)),
		TotalWeightMoved: d.TotalWeightMoved(),
	}
	for _, s := range d.Sets {
		out.Sets = append(out.Sets, setResult{Exercise: string(s.Exercise), Reps: s.Reps, Weight: s.Weight})
	}
	return out
}

// --- Handlers ---

func (h *handlers) recordSet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}
	exercise := models.Exercise(name)
	if !exercise.Valid() {
		return mcp.NewToolResultError("unknown exercise: " + name), nil
	}

	reps, err := req.RequireInt("reps")
	if err != nil || reps <= 0 {
		return mcp.NewToolResultError("reps must be a positive integer"), nil
	}
	weight, err := req.RequireInt("weight")
	if err != nil || weight <= 0 {
		return mcp.NewToolResultError("weight must be a positive integer"), nil
	}

	h.journal.RecordSet(exercise, reps, weight)
	h.log.Info("set recorded via mcp", "exercise", exercise, "reps", reps, "weight", weight)

	day, _ := h.journal.Today()
	data, err := json.Marshal(toDayResult(day))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (h *handlers) getWorkouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	days := h.journal.Workouts()

	// Newest first for display.
	results := make([]dayResult, 0, len(days))
	for i := len(days) - 1; i >= 0; i-- {
		results = append(results, toDayResult(days[i]))
	}

	if limit := req.GetInt("limit", 0); limit > 0 && limit < len(results) {
		results = results[:limit]
	}

	data, err := json.Marshal(results)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (h *handlers) getVolumeStats(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type dayVolume struct {
		Date   string `json:"date"`
		Volume int    `json:"volume"`
	}
	result := struct {
		Lifetime any         `json:"lifetime"`
		PerDay   []dayVolume `json:"per_day"`
	}{Lifetime: h.journal.Stats()}

	for _, d := range h.journal.Workouts() {
		result.PerDay = append(result.PerDay, dayVolume{
			Date:   d.Date.Format("2006-01-02"),
			Volume: d.TotalWeightMoved(),
		})
	}

	data, err := json.Marshal(result)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (h *handlers) listExercises(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(models.Exercises())
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
