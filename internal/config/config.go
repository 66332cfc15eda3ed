package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"

	"github.com/mazilong/tui.chart/internal/logger"
)

// Storage modes
const (
	StorageLocal = "local"
	StorageGCS   = "gcs"
)

// Config holds all configuration for the chart planning service
type Config struct {
	// Server configuration
	Port string `env:"PORT,default=8981"`

	// Artifact storage
	OutputDir   string `env:"OUTPUT_DIR,default=./charts"`
	StorageMode string `env:"STORAGE_MODE,default=local"`
	GCSBucket   string `env:"GCS_BUCKET"`

	// Scale and rendering defaults
	DefaultTickCount int    `env:"DEFAULT_TICK_COUNT,default=5"`
	RenderFormat     string `env:"RENDER_FORMAT,default=html"`
	ChartWidth       int    `env:"CHART_WIDTH,default=800"`
	ChartHeight      int    `env:"CHART_HEIGHT,default=400"`

	// Remote definitions
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT,default=10s"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=json"`
}

// Load reads an optional .env file and then the process environment
func Load(ctx context.Context, envFiles ...string) (*Config, error) {
	if err := loadDotEnv(envFiles...); err != nil {
		return nil, err
	}
	return LoadWithLookuper(ctx, envconfig.OsLookuper())
}

// LoadWithLookuper processes configuration from l
func LoadWithLookuper(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadDotEnv loads the given files, or .env when none are named. Missing
// files are skipped and variables already set are kept.
func loadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return nil
}

// Validate checks enumerated values and ranges
func (c *Config) Validate() error {
	switch c.StorageMode {
	case StorageLocal:
	case StorageGCS:
		if c.GCSBucket == "" {
			return fmt.Errorf("GCS_BUCKET is required when STORAGE_MODE is %s", StorageGCS)
		}
	default:
		return fmt.Errorf("unsupported STORAGE_MODE %q", c.StorageMode)
	}

	switch strings.ToLower(c.RenderFormat) {
	case "html", "png":
	default:
		return fmt.Errorf("unsupported RENDER_FORMAT %q", c.RenderFormat)
	}

	if c.DefaultTickCount < 2 {
		return fmt.Errorf("DEFAULT_TICK_COUNT must be at least 2, got %d", c.DefaultTickCount)
	}
	if c.ChartWidth <= 0 || c.ChartHeight <= 0 {
		return fmt.Errorf("chart size must be positive, got %dx%d", c.ChartWidth, c.ChartHeight)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := logger.ParseFormat(c.LogFormat); err != nil {
		return err
	}
	return nil
}

// ApplyLogging configures the global logger from LogLevel and LogFormat
func (c *Config) ApplyLogging() {
	level, _ := logger.ParseLevel(c.LogLevel)
	format, _ := logger.ParseFormat(c.LogFormat)
	logger.Configure(level, format, nil)
}
