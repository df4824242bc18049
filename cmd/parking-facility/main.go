package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"parking-facility/internal/config"
	"parking-facility/internal/parking"
	"parking-facility/internal/server"
)

var (
	mode = flag.String("mode", "cli", "Mode to run: cli, server, or both")
	port = flag.String("port", "", "Port for HTTP server (overrides APP_PORT)")
)

func main() {
	flag.Parse()

	cfg := config.Load()
	if *port != "" {
		cfg.Port = *port
	}

	log := zerolog.New(os.Stderr).With().
		Timestamp().
		Str("service", cfg.OTelServiceName).
		Logger()
	if cfg.Environment == "development" {
		log = log.Level(zerolog.DebugLevel)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	telemetry, err := parking.NewTelemetryProvider(cfg.OTelServiceName, cfg.OTelEndpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}

	facility, err := parking.NewInstrumentedFacility(
		parking.NewFacility(cfg.Floors, cfg.CarSlotsPerFloor, cfg.BikeSlotsPerFloor, log),
		telemetry,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create facility")
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	switch *mode {
	case "cli":
		runCLI(ctx, cancel, facility, telemetry, sigChan, log)
	case "server":
		runServer(ctx, cancel, cfg, facility, telemetry, sigChan, log)
	case "both":
		runBoth(ctx, cancel, cfg, facility, telemetry, sigChan, log)
	default:
		log.Fatal().Str("mode", *mode).Msg("invalid mode, must be cli, server, or both")
	}
}

func runCLI(ctx context.Context, cancel context.CancelFunc, facility *parking.InstrumentedFacility, telemetry *parking.TelemetryProvider, sigChan chan os.Signal, log zerolog.Logger) {
	go func() {
		<-sigChan
		log.Info().Msg("shutting down")
		cancel()
	}()

	shell := parking.NewShell(facility, os.Stdin, os.Stdout, telemetry)
	shell.Run(ctx)

	shutdownTelemetry(telemetry, log)
}

func runServer(ctx context.Context, cancel context.CancelFunc, cfg *config.Config, facility *parking.InstrumentedFacility, telemetry *parking.TelemetryProvider, sigChan chan os.Signal, log zerolog.Logger) {
	srv := server.NewServer(cfg.Port, facility, cfg.OTelServiceName, log)

	go func() {
		<-sigChan
		log.Info().Msg("received shutdown signal")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown error")
		}

		cancel()
	}()

	if err := srv.Start(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("server error")
	}

	shutdownTelemetry(telemetry, log)
}

func runBoth(ctx context.Context, cancel context.CancelFunc, cfg *config.Config, facility *parking.InstrumentedFacility, telemetry *parking.TelemetryProvider, sigChan chan os.Signal, log zerolog.Logger) {
	srv := server.NewServer(cfg.Port, facility, cfg.OTelServiceName, log)

	serverDone := make(chan error, 1)
	go func() {
		serverDone <- srv.Start()
	}()

	cliDone := make(chan bool, 1)
	go func() {
		shell := parking.NewShell(facility, os.Stdin, os.Stdout, telemetry)
		shell.Run(ctx)
		cliDone <- true
	}()

	go func() {
		<-sigChan
		log.Info().Msg("received shutdown signal")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown error")
		}

		cancel()
	}()

	select {
	case err := <-serverDone:
		if err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server error")
		}
	case <-cliDone:
		log.Info().Msg("CLI exited")
	case <-ctx.Done():
	}

	shutdownTelemetry(telemetry, log)
}

func shutdownTelemetry(telemetry *parking.TelemetryProvider, log zerolog.Logger) {
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error shutting down telemetry")
	}
}
