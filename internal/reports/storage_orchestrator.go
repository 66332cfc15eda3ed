package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/mazilong/tui.chart/internal/storage"
)

// StorageOrchestrator saves rendered charts with their plan
type StorageOrchestrator struct {
	store storage.Store
}

// NewStorageOrchestrator creates an orchestrator over store
func NewStorageOrchestrator(store storage.Store) *StorageOrchestrator {
	return &StorageOrchestrator{store: store}
}

// StoreChart writes the chart, its plan as JSON and its description when
// present into one folder and returns the keys written
func (so *StorageOrchestrator) StoreChart(ctx context.Context, r *Rendered) ([]string, error) {
	planJSON, err := EncodeFrame(r.Frame, EncodingJSON)
	if err != nil {
		return nil, err
	}

	artifacts := []storage.Artifact{
		{Name: "chart" + r.Extension, Data: r.Data},
		{Name: "plan.json", Data: planJSON},
	}
	if r.Frame != nil && r.Frame.Description != "" {
		artifacts = append(artifacts, storage.Artifact{Name: "description.md", Data: []byte(r.Frame.Description)})
	}

	keys, err := storage.SaveChart(ctx, so.store, r.ChartID, time.Now(), artifacts...)
	if err != nil {
		return keys, fmt.Errorf("failed to store chart %s: %w", r.ChartID, err)
	}
	return keys, nil
}

// Location returns the address of a stored key
func (so *StorageOrchestrator) Location(key string) string {
	return so.store.Location(key)
}

// Store returns the underlying store
func (so *StorageOrchestrator) Store() storage.Store {
	return so.store
}
