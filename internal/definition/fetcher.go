package definition

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mazilong/tui.chart/internal/chart"
	"github.com/mazilong/tui.chart/internal/logger"
)

// Fetcher downloads chart definitions over HTTP
type Fetcher struct {
	client *resty.Client
}

// NewFetcher creates a fetcher with the given request timeout
func NewFetcher(timeout time.Duration) *Fetcher {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetRetryCount(2)
	client.SetRetryWaitTime(500 * time.Millisecond)

	return &Fetcher{client: client}
}

// Fetch downloads and parses the definition at url
func (f *Fetcher) Fetch(ctx context.Context, url string) (chart.Definition, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json, application/yaml;q=0.9, text/yaml;q=0.8").
		Get(url)
	if err != nil {
		return chart.Definition{}, fmt.Errorf("failed to fetch definition: %w", err)
	}

	if resp.StatusCode() != 200 {
		bodyLen := len(resp.Body())
		if bodyLen > 200 {
			bodyLen = 200
		}
		logger.Warn("Definition source returned an error", map[string]interface{}{
			"url":    url,
			"status": resp.StatusCode(),
			"body":   string(resp.Body()[:bodyLen]),
		})
		return chart.Definition{}, fmt.Errorf("definition source returned status %d", resp.StatusCode())
	}

	return Parse(resp.Body(), formatFromContentType(resp.Header().Get("Content-Type"), url))
}

// Load reads source as a URL when it has an http scheme and as a file path otherwise
func Load(ctx context.Context, f *Fetcher, source string) (chart.Definition, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return f.Fetch(ctx, source)
	}
	return LoadFile(source)
}

func formatFromContentType(contentType, url string) string {
	switch {
	case strings.Contains(contentType, "json"):
		return FormatJSON
	case strings.Contains(contentType, "yaml"):
		return FormatYAML
	default:
		return formatFromPath(url)
	}
}
