// Package config provides the YAML configuration schema and loader for
// hermesvox deployments: the MQTT broker connection options and the
// registry of sites a deployment knows about.
package config

// Config is the root configuration structure for a hermesvox deployment.
// It is typically loaded from a YAML file using [Load] or [LoadFromReader].
type Config struct {
	Mqtt  MqttConfig   `yaml:"mqtt"`
	Sites []SiteConfig `yaml:"sites"`
}

// MqttConfig mirrors [mqtt.Options] (§6.3) as the on-disk representation;
// [MqttConfig.ToOptions] converts it to the transport package's type.
type MqttConfig struct {
	// BrokerAddress is the host:port to dial.
	BrokerAddress string `yaml:"broker_address"`

	// Username and Password are optional SASL-PLAIN-style credentials.
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	// TLSHostname enables TLS when non-empty.
	TLSHostname string `yaml:"tls_hostname"`

	TLSCAFile           string `yaml:"tls_ca_file"`
	TLSCAPath           string `yaml:"tls_ca_path"`
	TLSClientCert       string `yaml:"tls_client_cert"`
	TLSClientKey        string `yaml:"tls_client_key"`
	TLSDisableRootStore bool   `yaml:"tls_disable_root_store"`
}

// SiteConfig describes one physical site (speaker/microphone pair) known
// to this deployment.
type SiteConfig struct {
	// Id is the siteId embedded in every site-scoped topic (§4.2).
	Id string `yaml:"id"`

	// DisplayName is a human-readable label for logs and UIs; purely
	// cosmetic, never embedded in a topic or payload.
	DisplayName string `yaml:"display_name"`

	// HotwordModelId, when set, is the default wake-word model this site
	// listens for.
	HotwordModelId string `yaml:"hotword_model_id"`
}
