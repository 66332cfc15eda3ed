package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetVersionFromEnv(t *testing.T) {
	t.Setenv("APP_VERSION", "2.0.0-beta.1")

	if v := GetVersion(); v != "2.0.0-beta.1" {
		t.Errorf("expected version from APP_VERSION, got %q", v)
	}
}

func TestGetVersionNotEmpty(t *testing.T) {
	t.Setenv("APP_VERSION", "")

	if v := GetVersion(); v == "" {
		t.Error("version should not be empty")
	}
}

func TestFindVersionFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("failed to create dirs: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "VERSION"), []byte("1.5.0\n"), 0644); err != nil {
		t.Fatalf("failed to write VERSION: %v", err)
	}

	tests := []struct {
		name   string
		dir    string
		levels int
		want   string
	}{
		{"same directory", root, 0, "1.5.0"},
		{"two levels up", nested, 2, "1.5.0"},
		{"out of reach", nested, 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := findVersionFile(tt.dir, tt.levels); got != tt.want {
				t.Errorf("findVersionFile() = %q, want %q", got, tt.want)
			}
		})
	}
}
