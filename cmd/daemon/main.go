package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/reportgrid/internal/config"
	"github.com/thenoetrevino/reportgrid/internal/daemon"
	"github.com/thenoetrevino/reportgrid/internal/logging"
)

func main() {
	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	os.Exit(run(ctx))
}

func run(ctx context.Context) int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	logger := logging.New(os.Stderr, level).With("component", "daemon")

	socketPath := cfg.SocketPath()
	server, err := daemon.NewServer(socketPath, logger)
	if err != nil {
		logger.Error("failed to create daemon", "error", err)
		return 1
	}

	logger.Info("reportgrid daemon starting", "socket_path", socketPath, "pid", os.Getpid())

	// Start the daemon (blocks until shutdown)
	if err := server.Start(ctx); err != nil {
		logger.Error("daemon error", "error", err)
		return 1
	}

	m := server.Metrics().GetSnapshot()
	logger.Info("reportgrid daemon shutting down gracefully",
		"events_received", m.EventsReceived,
		"events_broadcast", m.EventsBroadcast,
		"messages_sent", m.MessagesSent,
		"messages_dropped", m.MessagesDropped,
		"uptime", m.Uptime,
	)
	return 0
}
