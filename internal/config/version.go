package config

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
)

const fallbackVersion = "0.1.0"

// GetVersion returns APP_VERSION, the nearest VERSION file, the module build
// version, or the fallback, in that order
func GetVersion() string {
	if envVersion := os.Getenv("APP_VERSION"); envVersion != "" {
		return envVersion
	}

	if dir, err := os.Getwd(); err == nil {
		if v := findVersionFile(dir, 3); v != "" {
			return v
		}
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		v := strings.TrimPrefix(info.Main.Version, "v")
		if v != "" && v != "(devel)" {
			return v
		}
	}

	return fallbackVersion
}

// findVersionFile looks for VERSION in dir and up to levels parents
func findVersionFile(dir string, levels int) string {
	for i := 0; i <= levels; i++ {
		content, err := os.ReadFile(filepath.Join(dir, "VERSION"))
		if err == nil {
			if v := strings.TrimSpace(string(content)); v != "" {
				return v
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
