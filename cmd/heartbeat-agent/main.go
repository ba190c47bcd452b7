// heartbeat-agent keeps a user's last-seen timestamp fresh against a running
// portal, standing in for the browser's periodic activity ping during
// development.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clipworks/video-portal-api/shared/heartbeat"
	"github.com/clipworks/video-portal-api/shared/logger"
)

func main() {
	endpoint := flag.String("endpoint", "http://localhost:8080/api/v1/users/heartbeat", "heartbeat endpoint URL")
	userID := flag.String("user", "", "user identifier to report for")
	interval := flag.Duration("interval", heartbeat.DefaultInterval, "beat interval")
	flag.Parse()

	if *userID == "" {
		log.Fatal("missing required -user flag")
	}

	appLogger := logger.New(logger.Config{Level: "info", Format: "console"})

	reporter := heartbeat.NewReporter(*endpoint, *userID, *interval, appLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		reporter.Stop()
		cancel()
	}()

	appLogger.Info().
		Str("endpoint", *endpoint).
		Str("user", *userID).
		Dur("interval", *interval).
		Msg("heartbeat agent started")

	reporter.Start(ctx)

	// Give an in-flight beat a moment before the process exits.
	time.Sleep(100 * time.Millisecond)
}
