package config_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/hermesvox/hermesvox/internal/config"
)

func TestLoadFromReader_Valid(t *testing.T) {
	t.Parallel()
	yaml := `
mqtt:
  broker_address: localhost:1883
sites:
  - id: kitchen
    display_name: Kitchen
  - id: hall
`
	cfg, err := config.LoadFromReader(strings.NewReader(yaml))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mqtt.BrokerAddress != "localhost:1883" {
		t.Errorf("broker address = %q", cfg.Mqtt.BrokerAddress)
	}
	if len(cfg.Sites) != 2 {
		t.Fatalf("expected 2 sites, got %d", len(cfg.Sites))
	}
}

func TestLoadFromReader_MissingBrokerAddress(t *testing.T) {
	t.Parallel()
	_, err := config.LoadFromReader(strings.NewReader("sites: []\n"))
	if err == nil {
		t.Fatal("expected error for missing broker address, got nil")
	}
	if !strings.Contains(err.Error(), "broker_address") {
		t.Errorf("error should mention broker_address, got: %v", err)
	}
}

func TestLoadFromReader_TLSMaterialWithoutHostname(t *testing.T) {
	t.Parallel()
	yaml := `
mqtt:
  broker_address: localhost:1883
  tls_ca_file: /tmp/ca.pem
`
	_, err := config.LoadFromReader(strings.NewReader(yaml))
	if err == nil {
		t.Fatal("expected error for TLS material without hostname, got nil")
	}
}

func TestLoadFromReader_DuplicateSiteId(t *testing.T) {
	t.Parallel()
	yaml := `
mqtt:
  broker_address: localhost:1883
sites:
  - id: kitchen
  - id: kitchen
`
	_, err := config.LoadFromReader(strings.NewReader(yaml))
	if err == nil {
		t.Fatal("expected error for duplicate site id, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := config.Load("/nonexistent/hermesvox.yaml")
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got: %v", err)
	}
}

func TestMqttConfig_ToOptions(t *testing.T) {
	t.Parallel()
	yaml := `
mqtt:
  broker_address: localhost:1883
  username: bob
  tls_hostname: mqtt.example.com
`
	cfg, err := config.LoadFromReader(strings.NewReader(yaml))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	opts := cfg.Mqtt.ToOptions()
	if opts.BrokerAddress != "localhost:1883" || opts.Username != "bob" || opts.TLSHostname != "mqtt.example.com" {
		t.Errorf("unexpected options: %+v", opts)
	}
}
