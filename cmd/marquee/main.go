package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/mmcdole/marquee/internal/adapter"
	"github.com/mmcdole/marquee/internal/adapter/tmdb"
	"github.com/mmcdole/marquee/internal/service"
	"github.com/mmcdole/marquee/internal/store"
	"github.com/mmcdole/marquee/internal/tui"
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags
var Version = "dev"

var logLevel string

func main() {
	rootCmd := &cobra.Command{
		Use:   "marquee",
		Short: "Browse the film and series catalogue from the terminal",
		Long: "Marquee is a streaming-style catalogue browser backed by TMDB.\n" +
			"Run it without arguments to open the interactive home page.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return run()
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level (DEBUG, INFO, WARN, ERROR)")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(
		newVersionCmd(),
		newSearchCmd(),
		newDetailsCmd(),
		newThemeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("marquee %s\n", Version)
		},
	}
}

// app holds everything the commands share
type app struct {
	cfg      *adapter.Config
	logger   *slog.Logger
	closers  []io.Closer
	prefs    *store.PreferenceStore
	themes   *service.ThemeService
	catalog  *service.CatalogService
	launcher *adapter.TrailerLauncher
}

// newApp loads the configuration, sets up logging and builds the services.
// requireKey is false for commands that never reach the catalogue.
func newApp(requireKey bool) (*app, error) {
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	a := &app{cfg: cfg}

	// Setup logger
	logger, closer, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	} else {
		a.closers = append(a.closers, closer)
	}
	slog.SetDefault(logger)
	a.logger = logger

	if requireKey && !cfg.IsConfigured() {
		printSetupGuidance()
		return nil, fmt.Errorf("no TMDB api key configured")
	}

	prefs, err := store.NewPreferenceStore(cfg.Storage.Path)
	if err != nil {
		logger.Warn("preferences kept in memory", "path", cfg.Storage.Path, "error", err)
		prefs, err = store.NewPreferenceStore("")
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to open preferences: %w", err)
		}
	}
	a.prefs = prefs
	a.closers = append(a.closers, prefs)
	a.themes = service.NewThemeService(prefs, logger)

	gw := tmdb.NewGateway(tmdb.GatewayConfig{
		BaseURL:      cfg.TMDB.BaseURL,
		APIKey:       cfg.TMDB.APIKey,
		Language:     cfg.TMDB.Language,
		Region:       cfg.TMDB.Region,
		IncludeAdult: cfg.TMDB.IncludeAdult,
	}, &http.Client{Timeout: cfg.TMDB.Timeout}, logger)
	client := tmdb.NewClient(gw, cfg.TMDB.ImageBaseURL)

	a.catalog = service.NewCatalogService(client, service.CatalogOptions{
		SectionLimit: cfg.UI.SectionLimit,
		RowLimit:     cfg.UI.RowLimit,
		HeroLimit:    cfg.UI.HeroLimit,
		Genres:       cfg.UI.Genres,
	}, logger)
	a.launcher = adapter.NewTrailerLauncher(cfg.Player.Command, cfg.Player.Args, logger)
	return a, nil
}

// Close releases the store and the log file, newest first
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i].Close()
	}
}

func run() error {
	a, err := newApp(true)
	if err != nil {
		return err
	}
	defer a.Close()

	a.logger.Info("starting marquee", "version", Version)

	if !isTerminal(os.Stdout) {
		a.logger.Info("stdout is not a terminal, printing the home sections")
		return printHome(os.Stdout, a.catalog)
	}

	model := tui.NewModel(a.catalog, a.themes, a.launcher, a.logger, tui.Options{
		HeroInterval:   a.cfg.EffectiveHeroInterval(),
		SearchDebounce: a.cfg.UI.SearchDebounce,
		SmoothScroll:   a.cfg.UI.SmoothScroll && !a.cfg.UI.ReducedMotion,
	})

	// Run the TUI
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	a.logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		a.logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	a.logger.Info("shutting down")
	return nil
}

// printSetupGuidance explains how to provide an api key
func printSetupGuidance() {
	fmt.Println()
	fmt.Println("Welcome to Marquee!")
	fmt.Println()
	fmt.Println("A TMDB api key is required. Get one at https://www.themoviedb.org/settings/api")
	fmt.Println("then provide it in one of these ways:")
	fmt.Println()
	fmt.Println("  export TMDB_API_KEY=<key>")
	fmt.Println("  echo 'TMDB_API_KEY=<key>' >> .env")
	fmt.Printf("  add 'tmdb: {api_key: <key>}' to %s/config.yaml\n", adapter.ConfigDir())
	fmt.Println()
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
