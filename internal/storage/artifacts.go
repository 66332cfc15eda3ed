package storage

import (
	"context"
	"fmt"
	"time"
)

// Artifact is one file produced by a chart build
type Artifact struct {
	Name string
	Data []byte
}

// SaveChart stores artifacts in the folder of one chart build and returns
// their keys in the order given
func SaveChart(ctx context.Context, s Store, chartID string, at time.Time, artifacts ...Artifact) ([]string, error) {
	folder := ChartFolderPath(at, chartID)
	keys := make([]string, 0, len(artifacts))

	for _, a := range artifacts {
		key := folder + "/" + a.Name
		if err := s.Save(ctx, key, a.Data); err != nil {
			return keys, fmt.Errorf("failed to save %s: %w", a.Name, err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}
