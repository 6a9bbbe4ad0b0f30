package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/nfrund/resumio/internal/config"
)

// ConfigForTests builds a config from the .env.test file at the project root,
// with overrides applied on top. The process environment is not consulted.
func ConfigForTests(t *testing.T, overrides map[string]string) *config.Config {
	t.Helper()

	// Find project root by looking for go.mod to reliably locate .env.test.
	path, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			break
		}
		if path == filepath.Dir(path) {
			t.Fatalf("could not find project root with go.mod")
		}
		path = filepath.Dir(path)
	}

	env, err := godotenv.Read(filepath.Join(path, ".env.test"))
	if err != nil {
		t.Fatalf("failed to load .env.test file: %v", err)
	}
	for key, value := range overrides {
		env[key] = value
	}

	cfg, err := config.FromEnv(func(key string) string { return env[key] })
	if err != nil {
		t.Fatalf("invalid test configuration: %v", err)
	}
	return cfg
}
