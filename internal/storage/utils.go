package storage

import (
	"fmt"
	"path"
	"sort"
	"strings"
	"time"
)

// ChartFolderPath generates the folder holding the artifacts of one chart build.
// Format: YYYY/MM/DD/Chart-YYYY-MM-DD-HH-MM-SS-<id prefix>
func ChartFolderPath(timestamp time.Time, chartID string) string {
	t := timestamp.UTC()
	id := chartID
	if len(id) > 8 {
		id = id[:8]
	}
	folder := fmt.Sprintf("%04d/%02d/%02d/Chart-%04d-%02d-%02d-%02d-%02d-%02d",
		t.Year(), t.Month(), t.Day(),
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second())
	if id != "" {
		folder += "-" + id
	}
	return folder
}

// GetContentType determines the MIME content type based on file extension
func GetContentType(filename string) string {
	switch strings.ToLower(path.Ext(filename)) {
	case ".json":
		return "application/json"
	case ".msgpack":
		return "application/msgpack"
	case ".yaml", ".yml":
		return "application/yaml"
	case ".html":
		return "text/html"
	case ".md":
		return "text/markdown"
	case ".png":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}

// cleanKey normalizes a storage key to a slash separated relative path
func cleanKey(key string) (string, error) {
	cleaned := path.Clean("/" + strings.ReplaceAll(key, "\\", "/"))
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" || cleaned == "." {
		return "", fmt.Errorf("empty storage key %q", key)
	}
	return cleaned, nil
}

// newestFirst sorts keys in reverse order and applies limit. Folder names
// embed the timestamp so reverse lexical order is newest first.
func newestFirst(keys []string, limit int) []string {
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	if limit > 0 && limit < len(keys) {
		keys = keys[:limit]
	}
	return keys
}
