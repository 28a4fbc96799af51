// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-env-file", ""})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("expected port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected sqlite, got %q", cfg.DatabaseType)
	}
	if cfg.SessionTTL != DefaultSessionTTL {
		t.Errorf("expected default session TTL, got %v", cfg.SessionTTL)
	}
	if cfg.Persistent() {
		t.Error("expected memory-only config without a database URL")
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("DATABASE_TYPE", "postgres")
	os.Setenv("ADMIN_KEY", "test-key")
	os.Setenv("SESSION_TTL", "5m")
	os.Setenv("DEBUG", "true")
	os.Setenv("WALLET_CHAIN_ID", "0x1")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-env-file", ""})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.AdminKey != "test-key" {
		t.Errorf("expected admin key from env, got %q", cfg.AdminKey)
	}
	if cfg.SessionTTL != 5*time.Minute {
		t.Errorf("expected 5m TTL, got %v", cfg.SessionTTL)
	}
	if !cfg.Debug {
		t.Error("expected debug from env")
	}
	if cfg.WalletChainID != "0x1" {
		t.Errorf("expected chain id 0x1, got %q", cfg.WalletChainID)
	}
	if !cfg.Persistent() {
		t.Error("expected persistent config")
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-admin-key", "k1", "-env-file", ""})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.AdminKey != "k1" {
		t.Errorf("expected admin key k1, got %q", cfg.AdminKey)
	}
}

func TestParseFlags_DotEnvFile(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PORT=7777\nADMIN_KEY=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	os.Setenv("ADMIN_KEY", "from-env")

	cfg, err := ParseFlags([]string{"-env-file", path})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 7777 {
		t.Errorf("expected port from .env, got %d", cfg.Port)
	}
	if cfg.AdminKey != "from-env" {
		t.Errorf("existing env must win over .env, got %q", cfg.AdminKey)
	}
}

func TestParseFlags_MissingDotEnvIgnored(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	if _, err := ParseFlags([]string{"-env-file", filepath.Join(t.TempDir(), "absent.env")}); err != nil {
		t.Fatalf("missing env file should be ignored: %v", err)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"bad port", map[string]string{"PORT": "abc"}, nil},
		{"bad ttl", map[string]string{"SESSION_TTL": "soon"}, nil},
		{"bad debug", map[string]string{"DEBUG": "maybe"}, nil},
		{"bad database type", nil, []string{"-t", "oracle"}},
		{"negative ttl", nil, []string{"-session-ttl", "-1m"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			defer os.Clearenv()
			for k, v := range tt.env {
				os.Setenv(k, v)
			}

			args := append([]string{"-env-file", ""}, tt.args...)
			if _, err := ParseFlags(args); err == nil {
				t.Error("expected error")
			}
		})
	}
}
