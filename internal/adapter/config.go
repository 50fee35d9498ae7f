package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	TMDB    TMDBConfig    `mapstructure:"tmdb"`
	UI      UIConfig      `mapstructure:"ui"`
	Player  PlayerConfig  `mapstructure:"player"`
	Storage StorageConfig `mapstructure:"storage"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TMDBConfig holds metadata API configuration
type TMDBConfig struct {
	APIKey       string        `mapstructure:"api_key"`
	BaseURL      string        `mapstructure:"base_url"`
	ImageBaseURL string        `mapstructure:"image_base_url"`
	Language     string        `mapstructure:"language"`
	Region       string        `mapstructure:"region"`
	IncludeAdult bool          `mapstructure:"include_adult"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	HeroInterval        time.Duration `mapstructure:"hero_interval"`
	HeroIntervalReduced time.Duration `mapstructure:"hero_interval_reduced"`
	ReducedMotion       bool          `mapstructure:"reduced_motion"`
	SearchDebounce      time.Duration `mapstructure:"search_debounce"`
	SmoothScroll        bool          `mapstructure:"smooth_scroll"`
	RowLimit            int           `mapstructure:"row_limit"`
	SectionLimit        int           `mapstructure:"section_limit"`
	HeroLimit           int           `mapstructure:"hero_limit"`
	Genres              []string      `mapstructure:"genres"`
}

// PlayerConfig holds the external player used for trailers
type PlayerConfig struct {
	Command string   `mapstructure:"command"`
	Args    []string `mapstructure:"args"`
}

// StorageConfig holds the preference database location
type StorageConfig struct {
	Path string `mapstructure:"path"` // "" keeps preferences in memory only
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// DefaultGenres are the genre rows shown on the home page, matched against the API genre list
var DefaultGenres = []string{
	"Action", "Aventure", "Comédie", "Drame", "Science-Fiction",
	"Animation", "Horreur", "Romance", "Thriller",
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		TMDB: TMDBConfig{
			BaseURL:      "https://api.themoviedb.org/3",
			ImageBaseURL: "https://image.tmdb.org/t/p",
			Language:     "fr-FR",
			Region:       "FR",
			Timeout:      15 * time.Second,
		},
		UI: UIConfig{
			HeroInterval:        3 * time.Second,
			HeroIntervalReduced: 12 * time.Second,
			SearchDebounce:      250 * time.Millisecond,
			SmoothScroll:        true,
			RowLimit:            20,
			SectionLimit:        12,
			HeroLimit:           6,
			Genres:              append([]string(nil), DefaultGenres...),
		},
		Player: PlayerConfig{
			Command: "mpv",
			Args:    []string{},
		},
		Storage: StorageConfig{
			Path: filepath.Join(dataDir(), "prefs.db"),
		},
		Logging: LoggingConfig{
			File:       filepath.Join(dataDir(), "marquee.log"),
			Level:      "INFO",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// dataDir returns the per-user data directory for the current OS
func dataDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "marquee")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "marquee")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "marquee")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "marquee")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "marquee")
	}
}

// LoadConfig loads configuration from .env, the config file and the environment
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env: %w", err)
	}
	return loadConfig(defaultConfigPath(), ".")
}

func loadConfig(paths ...string) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	setDefaults(v, cfg)

	// Environment variable overrides (MARQUEE_TMDB_API_KEY, MARQUEE_UI_REDUCED_MOTION...)
	v.SetEnvPrefix("MARQUEE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("tmdb.api_key", "MARQUEE_TMDB_API_KEY", "TMDB_API_KEY"); err != nil {
		return nil, err
	}

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	cfg.Storage.Path = expandHome(cfg.Storage.Path)
	cfg.Logging.File = expandHome(cfg.Logging.File)
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it during Unmarshal
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("tmdb.api_key", cfg.TMDB.APIKey)
	v.SetDefault("tmdb.base_url", cfg.TMDB.BaseURL)
	v.SetDefault("tmdb.image_base_url", cfg.TMDB.ImageBaseURL)
	v.SetDefault("tmdb.language", cfg.TMDB.Language)
	v.SetDefault("tmdb.region", cfg.TMDB.Region)
	v.SetDefault("tmdb.include_adult", cfg.TMDB.IncludeAdult)
	v.SetDefault("tmdb.timeout", cfg.TMDB.Timeout)

	v.SetDefault("ui.hero_interval", cfg.UI.HeroInterval)
	v.SetDefault("ui.hero_interval_reduced", cfg.UI.HeroIntervalReduced)
	v.SetDefault("ui.reduced_motion", cfg.UI.ReducedMotion)
	v.SetDefault("ui.search_debounce", cfg.UI.SearchDebounce)
	v.SetDefault("ui.smooth_scroll", cfg.UI.SmoothScroll)
	v.SetDefault("ui.row_limit", cfg.UI.RowLimit)
	v.SetDefault("ui.section_limit", cfg.UI.SectionLimit)
	v.SetDefault("ui.hero_limit", cfg.UI.HeroLimit)
	v.SetDefault("ui.genres", cfg.UI.Genres)

	v.SetDefault("player.command", cfg.Player.Command)
	v.SetDefault("player.args", cfg.Player.Args)

	v.SetDefault("storage.path", cfg.Storage.Path)

	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.max_size_mb", cfg.Logging.MaxSizeMB)
	v.SetDefault("logging.max_backups", cfg.Logging.MaxBackups)
	v.SetDefault("logging.max_age_days", cfg.Logging.MaxAgeDays)
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// IsConfigured returns true if an API key is set
func (c *Config) IsConfigured() bool {
	return strings.TrimSpace(c.TMDB.APIKey) != ""
}

// EffectiveHeroInterval returns the rotation interval honouring reduced motion
func (c *Config) EffectiveHeroInterval() time.Duration {
	if c.UI.ReducedMotion {
		return c.UI.HeroIntervalReduced
	}
	return c.UI.HeroInterval
}

// ConfigDir returns the directory searched for config.yaml
func ConfigDir() string {
	return defaultConfigPath()
}
