// Command chartplan plans and renders combo charts from YAML or JSON
// definitions and serves the same operations over HTTP.
package main

import (
	"os"

	"github.com/mazilong/tui.chart/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error("Command failed", err)
		os.Exit(1)
	}
}
