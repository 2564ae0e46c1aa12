package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	_ "github.com/joho/godotenv/autoload"
	"github.com/leighmacdonald/review-tui/internal/config"
	"github.com/leighmacdonald/review-tui/internal/dashboard"
	"github.com/leighmacdonald/review-tui/internal/metrics"
	"github.com/leighmacdonald/review-tui/internal/reviewapi"
	"github.com/leighmacdonald/review-tui/internal/ui"
	"github.com/leighmacdonald/review-tui/internal/ui/pages"
	"github.com/spf13/cobra"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgFile        string
	rootCmd        = &cobra.Command{
		Use:   "review-tui",
		Short: "Review dashboard TUI",
		Long:  `review-tui - Browse collected good and bad reviews from the review api`,
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about review-tui",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}
)

var errApp = errors.New("application error")

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file path")
	rootCmd.AddCommand(versionCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("review-tui - Review Dashboard Terminal UI\n\n") //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)                 //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)                  //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)                    //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion)             //nolint:forbidigo
}

// run is the main entry point of review-tui.
func run(cmd *cobra.Command, _ []string) error {
	// If PROFILE is set, it will be used as the output file path for the profiler.
	if len(os.Getenv("PROFILE")) > 0 {
		f, err := os.Create(os.Getenv("PROFILE"))
		if err != nil {
			return errors.Join(err, errApp)
		}

		if errStart := pprof.StartCPUProfile(f); errStart != nil {
			return errors.Join(errStart, errApp)
		}
		defer pprof.StopCPUProfile()
	}

	// Make sure our config home exists.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return errors.Join(err, errApp)
	}

	configUpdates := make(chan config.Config)

	configLoader := config.NewLoader(cfgFile, configUpdates)
	userConfig, errConfig := configLoader.Read()
	if errConfig != nil {
		return errors.Join(errApp, errConfig)
	}

	logLevel := slog.LevelInfo
	if userConfig.Debug {
		logLevel = slog.LevelDebug
	}

	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	logFile, errLogger := config.LoggerInit(config.DefaultLogName, logLevel)
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting review-tui", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	collector := metrics.New()
	if userConfig.MetricsAddress != "" {
		go func() {
			if err := collector.Serve(ctx, userConfig.MetricsAddress); err != nil {
				slog.Error("Metrics listener stopped", slog.String("error", err.Error()))
			}
		}()
	}

	factory := sourceFactory(collector)
	build := pages.BuildInfo{Version: BuildVersion, Commit: BuildCommit, Date: BuildDate}

	userInterface, errUI := ui.New(ctx, userConfig, factory, configLoader, collector, build,
		path.Join(xdg.ConfigHome, config.ConfigDirName, config.DefaultLogName))
	if errUI != nil {
		return errors.Join(errUI, errApp)
	}

	app := NewApp(userInterface, configUpdates)
	go app.Start(ctx)

	configLoader.Watch()

	if err := userInterface.Run(); err != nil {
		return errors.Join(err, errApp)
	}

	return nil
}

// sourceFactory builds a fresh api client for each config, picking up url and timeout changes.
func sourceFactory(collector *metrics.Collector) ui.SourceFactory {
	return func(conf config.Config) (dashboard.DataSource, error) {
		client, err := reviewapi.NewClient(conf.APIBaseURL,
			reviewapi.WithHTTPClient(&http.Client{Timeout: conf.Timeout()}),
			reviewapi.WithMetrics(collector))
		if err != nil {
			return nil, err
		}

		return client, nil
	}
}
