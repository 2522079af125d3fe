// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default type sqlite, got %q", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "fanboard.db" {
		t.Errorf("expected default URL fanboard.db, got %q", cfg.DatabaseURL)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "file:test.db")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "file:test.db" {
		t.Errorf("expected URL file:test.db, got %q", cfg.DatabaseURL)
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

func TestParseFlags_PostgresRequiresURL(t *testing.T) {
	os.Clearenv()

	_, err := ParseFlags([]string{"-t", "postgres"})
	if err == nil {
		t.Error("expected error for postgres without database URL")
	}
}

func TestParseFlags_RejectsUnknownType(t *testing.T) {
	os.Clearenv()

	_, err := ParseFlags([]string{"-t", "mysql"})
	if err == nil {
		t.Error("expected error for unsupported database type")
	}
}

func TestDriverName(t *testing.T) {
	if (Config{DatabaseType: "sqlite"}).DriverName() != "sqlite" {
		t.Error("expected sqlite driver name")
	}
	if (Config{DatabaseType: "postgres"}).DriverName() != "postgres" {
		t.Error("expected postgres driver name")
	}
}
