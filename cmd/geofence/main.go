package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/getsentry/sentry-go"

	"geofence.urbanatlas.org/internal/app"
	"geofence.urbanatlas.org/internal/config"
	"geofence.urbanatlas.org/internal/models"
	"geofence.urbanatlas.org/internal/report"
)

// Declare a string containing the application version number. For now we'll
// just store the version number as a hard-coded global constant.
const version = "1.0.0"

// maxConfigRetries bounds the exponential backoff when fetching remote
// configuration or GTFS feeds.
const maxConfigRetries = 5

func main() {
	var (
		port = flag.Int("port", 4000, "API server port")
		env  = flag.String("env", "development", "Environment (development|staging|production)")

		configFile = flag.String("config-file", "", "Path to a local JSON configuration file")
		configURL  = flag.String("config-url", "", "URL to a remote JSON configuration file")
	)

	flag.Parse()

	configAuthUser := os.Getenv("CONFIG_AUTH_USER")
	configAuthPass := os.Getenv("CONFIG_AUTH_PASS")

	if err := config.ValidateConfigFlags(configFile, configURL); err != nil {
		fmt.Println("Error:", err)
		flag.Usage()
		os.Exit(1)
	}

	report.SetupSentry()
	defer report.FlushSentry()
	report.ConfigureScope(*env, version)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := &http.Client{Timeout: 30 * time.Second}

	var (
		regions []models.Region
		err     error
	)
	if *configFile != "" {
		regions, err = config.LoadConfigFromFile(*configFile)
	} else {
		regions, err = config.LoadConfigFromURL(ctx, client, *configURL, configAuthUser, configAuthPass, maxConfigRetries)
	}
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if len(regions) == 0 {
		fmt.Println("Error: No regions found in configuration.")
		os.Exit(1)
	}

	cfg := config.NewConfig(*port, *env, regions)

	application := app.New(cfg, logger, client, version)

	// Publish corner-configured boundaries immediately, then resolve the
	// GTFS-backed ones before accepting traffic.
	application.SeedConfiguredBoundaries(regions)
	application.GtfsService.ResolveBoundaries(ctx, regions, maxConfigRetries)

	// Cron job to re-resolve GTFS-derived boundaries every 24 hours
	go application.GtfsService.RefreshBoundaries(ctx, regions, 24*time.Hour, maxConfigRetries)

	// If a remote URL is specified, refresh the configuration every minute
	if *configURL != "" {
		go application.ConfigService.RefreshConfig(ctx, *configURL, configAuthUser, configAuthPass, time.Minute, maxConfigRetries)
	}

	application.StartMetricsCollection(ctx, 30*time.Second)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      application.Routes(ctx),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env)
	err = srv.ListenAndServe()
	report.ReportError(err, sentry.LevelFatal)
	report.FlushSentry()
	logger.Error(err.Error())
	os.Exit(1)
}
