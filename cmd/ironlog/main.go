package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/claude/ironlog/internal/config"
	"github.com/claude/ironlog/internal/journal"
	"github.com/claude/ironlog/internal/mcp"
	"github.com/claude/ironlog/internal/storage"
	"github.com/claude/ironlog/internal/tui"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (defaults to <data dir>/config.yaml)")
	mcpMode := flag.Bool("mcp", false, "serve the MCP interface on stdio instead of running the TUI")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ironlog: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns stdout (and MCP mode owns stdout/stdin), so logs go to a
	// file in the data directory.
	if err := os.MkdirAll(cfg.Storage.Dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "ironlog: creating data dir: %v\n", err)
		os.Exit(1)
	}
	logFile, err := os.OpenFile(cfg.LogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ironlog: opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		level = slog.LevelInfo
	}
	log := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: level}))
	log.Info("IronLog starting", "version", Version, "mcp", *mcpMode)

	loc, err := cfg.Journal.Location()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ironlog: %v\n", err)
		os.Exit(1)
	}

	kv, err := storage.Open(cfg.Storage.Dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ironlog: %v\n", err)
		os.Exit(1)
	}
	defer kv.Close()

	j := journal.New(kv, loc, log)

	if *mcpMode {
		srv := mcp.New(j, Version, log)
		if err := mcpserver.ServeStdio(srv); err != nil {
			log.Error("mcp server error", "error", err)
			os.Exit(1)
		}
		return
	}

	p := tea.NewProgram(tui.New(j), tea.WithAltScreen())
	j.Subscribe(func() {
		go p.Send(tui.JournalChangedMsg{})
	})

	if _, err := p.Run(); err != nil {
		log.Error("tui error", "error", err)
		os.Exit(1)
	}
	log.Info("IronLog stopped")
}
