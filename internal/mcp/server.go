// Package mcp exposes the workout journal to MCP clients over stdio, so an
// assistant can record sets and read the history without touching the TUI.
package mcp

import (
	"log/slog"

	"github.com/claude/ironlog/internal/journal"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(j *journal.Journal, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("IronLog", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("IronLog weightlifting journal. Record sets (exercise, reps, weight in pounds) and query the workout history. All data is stored locally; sets recorded on the same calendar day merge into one workout."),
	)

	h := &handlers{journal: j, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolRecordSet, Handler: h.recordSet},
		server.ServerTool{Tool: toolGetWorkouts, Handler: h.getWorkouts},
		server.ServerTool{Tool: toolGetVolumeStats, Handler: h.getVolumeStats},
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
	)

	s.AddResources(
		server.ServerResource{Resource: resJournal, Handler: h.journalResource},
		server.ServerResource{Resource: resToday, Handler: h.todayResource},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	journal *journal.Journal
	log     *slog.Logger
}
