package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexbotov/turk/pkg/turk"
)

func TestLoad_EnvDefaults(t *testing.T) {
	t.Setenv("TURK_ACCESS_KEY_ID", "AKID-ENV")
	t.Setenv("TURK_SECRET_KEY", "secret-env")
	t.Setenv("TURK_MODE", "sandbox")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.AccessKeyID != "AKID-ENV" {
		t.Errorf("Expected access key from env, got %q", cfg.AccessKeyID)
	}
	if cfg.Mode != "sandbox" {
		t.Errorf("Expected sandbox mode, got %q", cfg.Mode)
	}
	if cfg.Listen.Addr != ":8085" {
		t.Errorf("Expected default listen addr, got %q", cfg.Listen.Addr)
	}
}

func TestLoad_AWSEnvFallback(t *testing.T) {
	t.Setenv("TURK_ACCESS_KEY_ID", "")
	t.Setenv("AWS_ACCESS_KEY_ID", "AKID-AWS")
	t.Setenv("TURK_SECRET_KEY", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret-aws")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.AccessKeyID != "AKID-AWS" {
		t.Errorf("Expected AWS env fallback, got %q", cfg.AccessKeyID)
	}
	if cfg.SecretKey != "secret-aws" {
		t.Errorf("Expected AWS secret fallback, got %q", cfg.SecretKey)
	}
}

func TestLoad_YAMLOverlay(t *testing.T) {
	t.Setenv("TURK_ACCESS_KEY_ID", "AKID-ENV")
	t.Setenv("TURK_MODE", "production")

	path := filepath.Join(t.TempDir(), "turk.yaml")
	body := `access_key_id: AKID-FILE
mode: sandbox
listen:
  addr: ":9000"
defaults:
  production:
    ResponseGroup: Minimal
  sandbox:
    PageSize: "10"
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.AccessKeyID != "AKID-FILE" {
		t.Errorf("Expected file to override env, got %q", cfg.AccessKeyID)
	}
	if cfg.Mode != "sandbox" {
		t.Errorf("Expected sandbox mode, got %q", cfg.Mode)
	}
	if cfg.Listen.Addr != ":9000" {
		t.Errorf("Expected listen addr ':9000', got %q", cfg.Listen.Addr)
	}

	cc := cfg.ClientConfig()
	if cc.Mode != turk.ModeSandbox {
		t.Errorf("Expected sandbox client mode, got %q", cc.Mode)
	}
	if cc.ProductionDefaults["ResponseGroup"] != "Minimal" {
		t.Errorf("Expected production default, got %v", cc.ProductionDefaults)
	}
	if cc.SandboxDefaults["PageSize"] != "10" {
		t.Errorf("Expected sandbox default, got %v", cc.SandboxDefaults)
	}
}

func TestLoad_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("TURK_ACCESS_KEY_ID", "AKID-ENV")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.AccessKeyID != "AKID-ENV" {
		t.Errorf("Expected env value, got %q", cfg.AccessKeyID)
	}
}

func TestLoad_UnknownMode(t *testing.T) {
	t.Setenv("TURK_MODE", "staging")

	if _, err := Load(""); err == nil {
		t.Fatal("Expected error for unknown mode, got nil")
	}
}
