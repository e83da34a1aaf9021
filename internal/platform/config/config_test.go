package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func noEnvFile(t *testing.T) Option {
	t.Helper()
	return WithEnvFile(filepath.Join(t.TempDir(), "absent.env"))
}

func TestLoadRequiresCatalogEndpoint(t *testing.T) {
	_, err := Load(noEnvFile(t), WithoutSystemEnv(), WithEnvMap(map[string]string{}))
	if err == nil {
		t.Fatalf("expected validation error")
	}

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	found := false
	for _, field := range validationErr.Fields() {
		if field == "Catalog.EndpointURL" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected Catalog.EndpointURL in %v", validationErr.Fields())
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(noEnvFile(t), WithoutSystemEnv(), WithEnvMap(map[string]string{
		"API_SHEETS_ENDPOINT": "https://script.example/exec",
	}))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Fatalf("unexpected port %q", cfg.Server.Port)
	}
	if cfg.Catalog.Timeout != 5*time.Second {
		t.Fatalf("unexpected catalog timeout %v", cfg.Catalog.Timeout)
	}
	if cfg.WhatsApp.Number != "558899310129" {
		t.Fatalf("unexpected whatsapp number %q", cfg.WhatsApp.Number)
	}
	if cfg.WhatsApp.BaseURL != "https://wa.me" {
		t.Fatalf("unexpected whatsapp base %q", cfg.WhatsApp.BaseURL)
	}
	if cfg.WhatsApp.HandoffDelay != time.Second {
		t.Fatalf("unexpected handoff delay %v", cfg.WhatsApp.HandoffDelay)
	}
}

func TestLoadLeadsEndpointDefaultsToCatalog(t *testing.T) {
	cfg, err := Load(noEnvFile(t), WithoutSystemEnv(), WithEnvMap(map[string]string{
		"API_SHEETS_ENDPOINT": "https://script.example/exec",
	}))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Leads.EndpointURL != cfg.Catalog.EndpointURL {
		t.Fatalf("expected leads endpoint to mirror catalog, got %q", cfg.Leads.EndpointURL)
	}

	cfg, err = Load(noEnvFile(t), WithoutSystemEnv(), WithEnvMap(map[string]string{
		"API_SHEETS_ENDPOINT": "https://script.example/exec",
		"API_LEADS_ENDPOINT":  "https://script.example/leads",
	}))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Leads.EndpointURL != "https://script.example/leads" {
		t.Fatalf("expected explicit leads endpoint, got %q", cfg.Leads.EndpointURL)
	}
}

func TestLoadParsesDurations(t *testing.T) {
	cfg, err := Load(noEnvFile(t), WithoutSystemEnv(), WithEnvMap(map[string]string{
		"API_SHEETS_ENDPOINT":        "https://script.example/exec",
		"API_CATALOG_TIMEOUT":        "750ms",
		"API_WHATSAPP_HANDOFF_DELAY": "2s",
		"API_SERVER_READ_TIMEOUT":    "not-a-duration",
	}))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Catalog.Timeout != 750*time.Millisecond {
		t.Fatalf("unexpected catalog timeout %v", cfg.Catalog.Timeout)
	}
	if cfg.WhatsApp.HandoffDelay != 2*time.Second {
		t.Fatalf("unexpected handoff delay %v", cfg.WhatsApp.HandoffDelay)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Fatalf("expected default for unparseable duration, got %v", cfg.Server.ReadTimeout)
	}
}

func TestLoadReadsDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	contents := "# local overrides\nexport API_SHEETS_ENDPOINT=\"https://script.example/exec\"\nAPI_SERVER_PORT=9090\n"
	if err := os.WriteFile(envFile, []byte(contents), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(WithEnvFile(envFile), WithoutSystemEnv())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Catalog.EndpointURL != "https://script.example/exec" {
		t.Fatalf("unexpected endpoint %q", cfg.Catalog.EndpointURL)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("unexpected port %q", cfg.Server.Port)
	}
}

func TestLoadEnvMapOverridesDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("API_SHEETS_ENDPOINT=https://dotenv.example\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(WithEnvFile(envFile), WithoutSystemEnv(), WithEnvMap(map[string]string{
		"API_SHEETS_ENDPOINT": "https://map.example",
	}))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Catalog.EndpointURL != "https://map.example" {
		t.Fatalf("expected explicit map to win, got %q", cfg.Catalog.EndpointURL)
	}
}
