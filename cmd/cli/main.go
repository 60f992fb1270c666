package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/vaccination-hubs/cmd/cli/commands"
	"github.com/jakechorley/vaccination-hubs/internal/config"
	"github.com/jakechorley/vaccination-hubs/pkg/core/services"
	"github.com/jakechorley/vaccination-hubs/pkg/metrics"
	"github.com/jakechorley/vaccination-hubs/pkg/utils/logging"
)

var (
	env         string
	configPath  string
	peoplePath  string
	metricsAddr string
	verbose     bool
	app         = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "Vaccination hubs CLI - Allocate people to vaccination slots",
		Long:  `A CLI tool for registering people, staffing vaccination hubs and allocating weekly vaccination slots, oldest age interval first.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				_ = app.Logger.Sync()
			}
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (defaults to vaccination_config.<env>.yaml)")
	rootCmd.PersistentFlags().StringVarP(&peoplePath, "people", "p", "", "People file to load (overrides peopleFile in config)")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to the console")

	rootCmd.AddCommand(commands.PeopleCmd(app))
	rootCmd.AddCommand(commands.LoadCmd(app))
	rootCmd.AddCommand(commands.IntervalsCmd(app))
	rootCmd.AddCommand(commands.MembersCmd(app))
	rootCmd.AddCommand(commands.HubsCmd(app))
	rootCmd.AddCommand(commands.CapacityCmd(app))
	rootCmd.AddCommand(commands.AvailableCmd(app))
	rootCmd.AddCommand(commands.SlotsCmd(app))
	rootCmd.AddCommand(commands.AllocateCmd(app))
	rootCmd.AddCommand(commands.WeekAllocateCmd(app))
	rootCmd.AddCommand(commands.ClearAllocationCmd(app))
	rootCmd.AddCommand(commands.StatsCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, campaign and the metrics endpoint
func initApp() error {
	var err error

	app.Logger, err = logging.New(logging.Options{Env: env, Verbose: verbose})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Logger.Info("Loading configuration")
	if configPath != "" {
		app.Cfg, err = config.LoadFromPath(configPath)
	} else {
		app.Cfg, err = config.LoadWithEnv(env)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	app.Campaign, err = services.NewCampaign(app.Cfg, time.Now(), app.Logger)
	if err != nil {
		return fmt.Errorf("failed to build campaign: %w", err)
	}

	path := peoplePath
	if path == "" {
		path = app.Cfg.PeopleFile
	}
	if path != "" {
		result, err := services.LoadPeople(app.Campaign, app.Logger, path)
		if err != nil {
			return err
		}
		for _, rejected := range result.Rejected {
			app.Logger.Warn("Skipped people file line",
				zap.Int("line", rejected.Line),
				zap.String("raw", rejected.Raw))
		}
	}

	if metricsAddr != "" {
		serveMetrics(metricsAddr)
	}

	return nil
}

// serveMetrics exposes the campaign registry on /metrics in the background
func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		app.Logger.Info("Serving metrics", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.Logger.Error("Metrics server failed", zap.Error(err))
		}
	}()
}
