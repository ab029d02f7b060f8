package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// --- Resource definitions ---

var resJournal = mcp.NewResource(
	"ironlog://journal",
	"Workout Journal",
	mcp.WithResourceDescription("The full workout history, one entry per calendar day, with per-day total weight moved"),
	mcp.WithMIMEType("application/json"),
)

var resToday = mcp.NewResource(
	"ironlog://today",
	"Today's Workout",
	mcp.WithResourceDescription("Sets logged today and the running total weight moved; empty when nothing has been logged yet"),
	mcp.WithMIMEType("application/json"),
)

func (h *handlers) journalResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	days := h.journal.Workouts()
	results := make([]dayResult, 0, len(days))
	for i := len(days) - 1; i >= 0; i-- {
		results = append(results, toDayResult(days[i]))
	}

	data, err := json.Marshal(results)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) todayResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	summary := map[string]any{"logged": false}
	if day, ok := h.journal.Today(); ok {
		summary["logged"] = true
		summary["workout"] = toDayResult(day)
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
