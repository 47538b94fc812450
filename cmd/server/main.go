package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"vector3/internal/api"
	"vector3/internal/config"
	"vector3/internal/env"
	"vector3/internal/logging"
	"vector3/internal/sim"
)

var (
	configPath = flag.String("config", "", "Path to a YAML config file")
	port       = flag.Int("port", 0, "Port to listen on (overrides config)")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
	}
	if *port != 0 {
		cfg.Port = *port
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	os.Exit(finish(logger, run(cfg, logger)))
}

// finish logs the outcome of run, flushes the logger and returns the exit code.
func finish(logger *zap.Logger, err error) int {
	code := 0
	if err != nil {
		logger.Error("server failed", zap.Error(err))
		code = 1
	} else {
		logger.Info("shutdown complete")
	}
	_ = logger.Sync()
	return code
}

func run(cfg *config.Config, logger *zap.Logger) error {
	// order matters: turbulence perturbs air velocity before wind drifts the track
	envChain := &env.Chain{
		Effects: []env.Environment{
			env.Turbulence{Intensity: cfg.Env.Turbulence},
			env.Wind{Velocity: cfg.Env.Wind.Vec3d},
			env.Terrain{SafetyMarginM: cfg.Env.SafetyMarginM},
		},
	}

	tuning := sim.DefaultTuning()
	tuning.DefaultSpeed = cfg.Sim.DefaultSpeed

	simEngine := sim.New(sim.Config{
		OriginLat:   cfg.Origin.Lat,
		OriginLon:   cfg.Origin.Lon,
		TickHz:      cfg.Sim.TickHz,
		StartAltM:   cfg.Sim.StartAltM,
		Tuning:      tuning,
		Environment: envChain,
		Logger:      logger,
	})

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: api.NewServer(simEngine, logger).Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return simEngine.Run(ctx)
	})

	g.Go(func() error {
		logger.Info("starting HTTP server", zap.String("addr", httpServer.Addr), zap.Stringer("wind", cfg.Env.Wind))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
