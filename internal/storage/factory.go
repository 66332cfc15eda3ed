package storage

import (
	"context"
	"fmt"

	"github.com/mazilong/tui.chart/internal/config"
)

// NewStore creates a store for cfg.StorageMode
func NewStore(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StorageMode {
	case config.StorageLocal, "":
		outputDir := cfg.OutputDir
		if outputDir == "" {
			outputDir = "charts"
		}

		local, err := NewLocalStore(outputDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage: %w", err)
		}
		return local, nil

	case config.StorageGCS:
		gcs, err := NewGCSStore(ctx, cfg.GCSBucket)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize GCS storage: %w", err)
		}
		return gcs, nil

	default:
		return nil, fmt.Errorf("unsupported storage mode: %s", cfg.StorageMode)
	}
}
