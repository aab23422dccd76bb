package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/equinor/radix-job-dashboard/api"
	dashboardControllers "github.com/equinor/radix-job-dashboard/api/controllers/dashboard"
	filtersControllers "github.com/equinor/radix-job-dashboard/api/controllers/filters"
	liveControllers "github.com/equinor/radix-job-dashboard/api/controllers/live"
	dashboardApi "github.com/equinor/radix-job-dashboard/api/dashboard"
	"github.com/equinor/radix-job-dashboard/models"
	"github.com/equinor/radix-job-dashboard/pkg/backend"
	"github.com/equinor/radix-job-dashboard/pkg/filterstore"
	"github.com/equinor/radix-job-dashboard/pkg/session"
	"github.com/equinor/radix-job-dashboard/router"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

const shutdownTimeout = 10 * time.Second

func main() {
	fs := initializeFlagSet()
	var (
		configFile = fs.StringP("config", "c", os.Getenv("DASHBOARD_CONFIG_FILE"), "Path to a TOML config file")
		port       = fs.StringP("port", "p", "", "Port where API will be served, overrides the config")
	)
	parseFlagsFromArgs(fs)

	cfg, err := models.NewConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(1)
	}
	if len(*port) > 0 {
		cfg.Port = *port
	}
	initLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	store, err := getFilterStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open filter store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close filter store")
		}
	}()

	dashboardSession := session.New(ctx, cfg, backend.NewClient(cfg.BackendAPIURL, cfg.BackendTimeout), store)
	if err := dashboardSession.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start dashboard session")
	}
	defer dashboardSession.Stop()

	runApiServer(ctx, cfg, getControllers(dashboardSession, cfg))
}

func runApiServer(ctx context.Context, cfg *models.Config, controllers []api.Controller) {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           router.NewServer(controllers...),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errsChan := make(chan error, 1)
	go func() {
		log.Info().Msgf("Job dashboard API is serving on port %s", cfg.Port)
		errsChan <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down job dashboard API")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Job dashboard API shutdown failed")
		}
	case err := <-errsChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Job dashboard API server crashed")
		}
	}
}

func getFilterStore(cfg *models.Config) (filterstore.Store, error) {
	if len(cfg.FilterStorePath) == 0 {
		log.Info().Msg("Filter store path is not set, filters are kept in memory")
		return filterstore.NewMemoryStore(), nil
	}
	log.Info().Str("path", cfg.FilterStorePath).Msg("Using filter store")
	return filterstore.NewBadgerStore(cfg.FilterStorePath)
}

func getControllers(dashboardSession *session.Session, cfg *models.Config) []api.Controller {
	handler := dashboardApi.New(dashboardSession, cfg.ManualRefreshMinInterval)
	return []api.Controller{
		dashboardControllers.New(handler),
		filtersControllers.New(handler),
		liveControllers.New(handler),
	}
}

func initLogger(cfg *models.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.DurationFieldUnit = time.Millisecond
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	}
	zerolog.DefaultContextLogger = &log.Logger
	if err != nil {
		log.Warn().Msgf("Invalid log level %q, using %s", cfg.LogLevel, level)
	}
}

func initializeFlagSet() *pflag.FlagSet {
	// Flag domain.
	fs := pflag.NewFlagSet("default", pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, "DESCRIPTION\n")
		fmt.Fprint(os.Stderr, "Job dashboard API server.\n")
		fmt.Fprint(os.Stderr, "\n")
		fmt.Fprint(os.Stderr, "FLAGS\n")
		fs.PrintDefaults()
	}
	return fs
}

func parseFlagsFromArgs(fs *pflag.FlagSet) {
	err := fs.Parse(os.Args[1:])
	switch {
	case errors.Is(err, pflag.ErrHelp):
		os.Exit(0)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %s\n\n", err.Error())
		fs.Usage()
		os.Exit(2)
	}
}
