package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hermesvox/hermesvox/pkg/transport/mqtt"
)

// Load reads the YAML configuration file at path and returns a validated
// [Config]. It is a convenience wrapper around [LoadFromReader].
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: %q does not exist: %w", path, err)
		}
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r and validates the result.
// Useful in tests where configs are constructed from string literals.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values, returning a
// joined error listing every failure found.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Mqtt.BrokerAddress == "" {
		errs = append(errs, errors.New("mqtt.broker_address is required"))
	}
	if cfg.Mqtt.TLSHostname == "" {
		if cfg.Mqtt.TLSCAFile != "" || cfg.Mqtt.TLSCAPath != "" || cfg.Mqtt.TLSClientCert != "" || cfg.Mqtt.TLSClientKey != "" || cfg.Mqtt.TLSDisableRootStore {
			errs = append(errs, errors.New("mqtt: TLS material set without tls_hostname"))
		}
	}
	if (cfg.Mqtt.TLSClientCert == "") != (cfg.Mqtt.TLSClientKey == "") {
		errs = append(errs, errors.New("mqtt.tls_client_cert and mqtt.tls_client_key must be set together"))
	}

	seen := make(map[string]int, len(cfg.Sites))
	for i, s := range cfg.Sites {
		prefix := fmt.Sprintf("sites[%d]", i)
		if s.Id == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
			continue
		}
		if prev, ok := seen[s.Id]; ok {
			errs = append(errs, fmt.Errorf("%s.id %q is a duplicate of sites[%d]", prefix, s.Id, prev))
		}
		seen[s.Id] = i
	}

	return errors.Join(errs...)
}

// ToOptions converts the on-disk [MqttConfig] to an [mqtt.Options] ready
// to pass to [mqtt.NewClient].
func (m MqttConfig) ToOptions() mqtt.Options {
	return mqtt.Options{
		BrokerAddress:       m.BrokerAddress,
		Username:            m.Username,
		Password:            m.Password,
		TLSHostname:         m.TLSHostname,
		TLSCAFile:           m.TLSCAFile,
		TLSCAPath:           m.TLSCAPath,
		TLSClientCert:       m.TLSClientCert,
		TLSClientKey:        m.TLSClientKey,
		TLSDisableRootStore: m.TLSDisableRootStore,
	}
}
