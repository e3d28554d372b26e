package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"weatherwidget.app/internal/adapters/cli"
	"weatherwidget.app/internal/app"
	"weatherwidget.app/internal/config"
)

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the weather widget HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	rootCmd := &cobra.Command{
		Use:           "weather-widget",
		Short:         "Current weather and a 5-day forecast from OpenWeatherMap",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serveCmd.RunE,
	}

	rootCmd.AddCommand(serveCmd, newLookupCommand())
	return rootCmd
}

func newLookupCommand() *cobra.Command {
	var (
		lat, lon float64
		opts     cli.LookupOptions
	)

	lookupCmd := &cobra.Command{
		Use:   "lookup [city]",
		Short: "Print the widget for a city or a coordinate pair",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.City = args[0]
			}
			if cmd.Flags().Changed("lat") {
				opts.Lat = &lat
			}
			if cmd.Flags().Changed("lon") {
				opts.Lon = &lon
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			return lookup(cmd.Context(), opts)
		},
	}

	lookupCmd.Flags().Float64Var(&lat, "lat", 0, "Latitude of the place to look up")
	lookupCmd.Flags().Float64Var(&lon, "lon", 0, "Longitude of the place to look up")
	lookupCmd.Flags().StringVarP(&opts.Unit, "unit", "u", "C", "Temperature unit (C, F)")
	lookupCmd.Flags().StringVarP(&opts.Output, "output", "o", cli.OutputText, "Output format (text, json)")

	return lookupCmd
}

func serve() error {
	application, err := app.NewApplication()
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}

	slog.Info("Configuration loaded successfully")
	slog.Info("Server configuration",
		"port", application.Config().Server.Port,
		"defaultCity", application.Config().Widget.DefaultCity,
		"store", application.Config().Store.Type.String())

	// Set up graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupGracefulShutdown(cancel, application)

	slog.Info("Starting Weather Widget...")
	return application.Start(ctx)
}

// lookup runs one interaction in-process; sessions never outlive the command
func lookup(ctx context.Context, opts cli.LookupOptions) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	cfg.Store.Type = config.StoreTypeMemory
	cfg.Tracing.Enabled = false
	// keep stdout for the rendered widget
	cfg.LogLevel = "error"

	application, err := app.NewApplicationWithConfig(cfg)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}
	defer func() {
		if err := application.Close(context.Background()); err != nil {
			slog.Warn("Error releasing resources", "error", err)
		}
	}()

	return cli.Lookup(ctx, application.GetWidgetUseCase(), opts, os.Stdout)
}

func setupGracefulShutdown(cancel context.CancelFunc, app *app.Application) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		slog.Info("Received shutdown signal...")

		// Cancel the context to stop the application
		cancel()

		// Give the application time to shut down gracefully
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := app.Shutdown(shutdownCtx); err != nil {
			slog.Error("Error during graceful shutdown", "error", err)
		}

		os.Exit(0)
	}()
}
