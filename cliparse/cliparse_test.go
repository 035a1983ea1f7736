// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
	"time"
)

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3000 {
		t.Errorf("expected port 3000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("expected sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "file:quickpoll.db" {
		t.Errorf("expected default sqlite file, got %s", cfg.DatabaseURL)
	}
	if cfg.StreamInterval != 1500*time.Millisecond {
		t.Errorf("expected 1.5s stream interval, got %s", cfg.StreamInterval)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("DATABASE_TYPE", "postgres")
	os.Setenv("STREAM_INTERVAL_MS", "500")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.StreamInterval != 500*time.Millisecond {
		t.Errorf("expected 500ms stream interval, got %s", cfg.StreamInterval)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
}

func TestParseFlags_RejectsUnknownDatabaseType(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-t", "mongo"}); err == nil {
		t.Error("expected error for unknown database type")
	}
}

func TestParseFlags_PostgresRequiresURL(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-t", "postgres"}); err == nil {
		t.Error("expected error when postgres has no database URL")
	}
}
