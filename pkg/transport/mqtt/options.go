package mqtt

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"

	"github.com/hermesvox/hermesvox/pkg/transport"
)

// maxPacketBytes is the hard per-packet ceiling of §4.3: messages larger
// than this are refused rather than handed to the broker.
const maxPacketBytes = 10 * 1024 * 1024

// truncateLogBytes is the payload size above which inbound-message logging
// switches from the full payload to a size + prefix summary (§4.3).
const truncateLogBytes = 2 * 1024

// Options configures a [Client] (§6.3's MqttOptions).
type Options struct {
	// BrokerAddress is the host:port to dial.
	BrokerAddress string

	// Username and Password are optional SASL-PLAIN-style credentials.
	Username string
	Password string

	// TLSHostname enables TLS when non-empty, and is used as both the SNI
	// and certificate-verification hostname.
	TLSHostname string

	// TLSCAFile and TLSCAPath name additional CA sources to trust, beyond
	// the system root store (unless TLSDisableRootStore is set).
	TLSCAFile string
	TLSCAPath string

	// TLSClientCert and TLSClientKey configure an optional mTLS identity.
	TLSClientCert string
	TLSClientKey  string

	// TLSDisableRootStore, when true, skips loading system CAs: only
	// TLSCAFile/TLSCAPath are trusted.
	TLSDisableRootStore bool
}

// tlsEnabled reports whether o requests a TLS connection.
func (o Options) tlsEnabled() bool {
	return o.TLSHostname != ""
}

// validate checks o for internal consistency (§7 InvalidOption).
func (o Options) validate() error {
	if o.BrokerAddress == "" {
		return fmt.Errorf("mqtt: brokerAddress is required: %w", transport.ErrInvalidOption)
	}
	if !o.tlsEnabled() {
		if o.TLSCAFile != "" || o.TLSCAPath != "" || o.TLSClientCert != "" || o.TLSClientKey != "" || o.TLSDisableRootStore {
			return fmt.Errorf("mqtt: TLS material set without tlsHostname: %w", transport.ErrInvalidOption)
		}
	}
	if (o.TLSClientCert == "") != (o.TLSClientKey == "") {
		return fmt.Errorf("mqtt: tlsClientCert and tlsClientKey must be set together: %w", transport.ErrInvalidOption)
	}
	return nil
}

// tlsConfig builds the *tls.Config implied by o. Only called when
// tlsEnabled reports true.
func (o Options) tlsConfig() (*tls.Config, error) {
	cfg := &tls.Config{
		ServerName: o.TLSHostname,
		MinVersion: tls.VersionTLS12,
	}

	var pool *x509.CertPool
	if o.TLSDisableRootStore {
		pool = x509.NewCertPool()
	} else {
		var err error
		pool, err = x509.SystemCertPool()
		if err != nil || pool == nil {
			pool = x509.NewCertPool()
		}
	}

	if o.TLSCAFile != "" {
		pem, err := os.ReadFile(o.TLSCAFile)
		if err != nil {
			return nil, fmt.Errorf("mqtt: read tlsCaFile: %w", err)
		}
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("mqtt: tlsCaFile contains no usable certificates: %w", transport.ErrInvalidOption)
		}
	}
	if o.TLSCAPath != "" {
		if err := appendCertsFromDir(pool, o.TLSCAPath); err != nil {
			return nil, fmt.Errorf("mqtt: read tlsCaPath: %w", err)
		}
	}
	cfg.RootCAs = pool

	if o.TLSClientCert != "" {
		cert, err := tls.LoadX509KeyPair(o.TLSClientCert, o.TLSClientKey)
		if err != nil {
			return nil, fmt.Errorf("mqtt: load client certificate: %w", err)
		}
		cfg.Certificates = []tls.Certificate{cert}
	}

	return cfg, nil
}

// appendCertsFromDir loads every regular file in dir as a PEM-encoded CA
// certificate and adds it to pool.
func appendCertsFromDir(pool *x509.CertPool, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		pem, err := os.ReadFile(dir + "/" + e.Name())
		if err != nil {
			return err
		}
		pool.AppendCertsFromPEM(pem)
	}
	return nil
}
