package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-event-planner/internal/client"
	"github.com/MKhiriev/go-event-planner/internal/logger"
	"github.com/joho/godotenv"
)

func main() {
	// a missing .env is fine: flags and the environment still apply
	_ = godotenv.Load()

	log := logger.NewLogger("event-planner-client")

	// stdout carries command output (e.g. the token from login), so only
	// warnings are logged unless asked otherwise
	level := os.Getenv("PLANNER_LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	if err := logger.SetLevel(level); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var app client.Client = client.NewApp(os.Stdout, log)
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
