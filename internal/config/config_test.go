package config

import (
	"strings"
	"testing"
)

// TestLoadMissingVariables verifies loading fails with a message naming every
// missing required variable
func TestLoadMissingVariables(t *testing.T) {
	t.Setenv("MYSQL_HOST", "")
	t.Setenv("MYSQL_USER", "")
	t.Setenv("MYSQL_PASSWORD", "")
	t.Setenv("MYSQL_DATABASE", "")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected error for missing database settings, got nil")
	}

	for _, name := range []string{"MYSQL_HOST", "MYSQL_USER", "MYSQL_PASSWORD", "MYSQL_DATABASE"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("Expected error to name %s, got %q", name, err.Error())
		}
	}
}

// TestLoadDefaults verifies port and environment defaults
func TestLoadDefaults(t *testing.T) {
	t.Setenv("MYSQL_HOST", "localhost")
	t.Setenv("MYSQL_USER", "app")
	t.Setenv("MYSQL_PASSWORD", "secret")
	t.Setenv("MYSQL_DATABASE", "people")
	t.Setenv("PORT", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("MYSQL_PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("Expected default port 8000, got %s", cfg.Port)
	}
	if cfg.Environment != "development" {
		t.Errorf("Expected default environment 'development', got %s", cfg.Environment)
	}
	if cfg.Database.Port != "3306" {
		t.Errorf("Expected default MySQL port 3306, got %s", cfg.Database.Port)
	}
	if cfg.IsProduction() {
		t.Error("Expected development config to not be production")
	}
}

// TestDSN verifies the connection string format
func TestDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "db.internal",
		Port:     "3306",
		User:     "app",
		Password: "secret",
		Name:     "people",
	}

	expected := "app:secret@tcp(db.internal:3306)/people?parseTime=true&loc=UTC"
	if dsn := db.DSN(); dsn != expected {
		t.Errorf("Expected DSN %q, got %q", expected, dsn)
	}
}

// TestDeploymentMode verifies the mode string stays in lockstep with Lambda
// detection
func TestDeploymentMode(t *testing.T) {
	mode := GetDeploymentMode()
	if IsServerlessMode() && mode != "serverless" {
		t.Errorf("Expected serverless mode, got %q", mode)
	}
	if !IsServerlessMode() && mode != "server" {
		t.Errorf("Expected server mode, got %q", mode)
	}
}
