package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`app:
  reserved_admin_email: admin@example.com

database:
  host: localhost
  port: 15432
  user: portal
  password: secret
  name: jobportal
  ssl_mode: disable
  max_open_conns: 10
  max_idle_conns: 5
  conn_max_lifetime: "15m"
  conn_max_idle_time: "5m"
`)

	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.App.ReservedAdminEmail != "admin@example.com" {
		t.Errorf("unexpected reserved admin email: %s", cfg.App.ReservedAdminEmail)
	}

	if cfg.App.MigrationsDir != "assets/migrations" {
		t.Errorf("expected migrations dir default, got %s", cfg.App.MigrationsDir)
	}

	if cfg.Database.ConnMaxLifetime != 15*time.Minute {
		t.Errorf("expected ConnMaxLifetime 15m, got %v", cfg.Database.ConnMaxLifetime)
	}

	if cfg.Database.ConnMaxIdleTime != 5*time.Minute {
		t.Errorf("expected ConnMaxIdleTime 5m, got %v", cfg.Database.ConnMaxIdleTime)
	}
}

func TestLoad_MissingField(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte("{}"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error when required fields are missing")
	}
}

func TestDatabaseConfigDSN_EscapesCredentials(t *testing.T) {
	t.Parallel()

	cfg := DatabaseConfig{
		Host:     "db.local",
		Port:     5432,
		User:     "user@domain",
		Password: "p@ss:word",
		Name:     "jobportal",
		SSLMode:  "require",
	}

	dsn := cfg.DSN()

	if strings.Contains(dsn, "p@ss:word") {
		t.Fatalf("expected escaped password in DSN, got %s", dsn)
	}
	if !strings.HasPrefix(dsn, "postgres://") {
		t.Fatalf("unexpected DSN scheme: %s", dsn)
	}
	if !strings.Contains(dsn, "sslmode=require") {
		t.Fatalf("expected sslmode in DSN, got %s", dsn)
	}
}
