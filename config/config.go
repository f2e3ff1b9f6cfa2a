// Package config loads client configuration from TOML or YAML files.
package config

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"go.hashgraph.tech/core/client"
	"go.hashgraph.tech/core/ops"
	"go.hashgraph.tech/core/types"
	"gopkg.in/yaml.v3"
)

// Key types accepted for the operator's private key.
const (
	KeyTypeEd25519   = "ed25519"
	KeyTypeSecp256k1 = "secp256k1"
)

// ed25519PKCS8Prefix precedes the 32-byte seed in the PKCS#8 DER export of
// an Ed25519 private key.
var ed25519PKCS8Prefix = []byte{0x30, 0x2e, 0x02, 0x01, 0x00, 0x30, 0x05, 0x06, 0x03, 0x2b, 0x65, 0x70, 0x04, 0x22, 0x04, 0x20}

type (
	// Operator is the account that pays for requests, and its key.
	Operator struct {
		Account types.Address `toml:"account" yaml:"account"`
		// KeyType is either "ed25519" (the default) or "secp256k1".
		KeyType string `toml:"keyType,omitempty" yaml:"keyType,omitempty"`
		// PrivateKey is hex-encoded: a 32-byte seed or scalar, or the
		// PKCS#8 DER export of an Ed25519 key.
		PrivateKey string `toml:"privateKey" yaml:"privateKey"`
	}

	// Node is a network node and the gRPC endpoint that reaches it.
	Node struct {
		Account types.Address `toml:"account" yaml:"account"`
		Address string        `toml:"address" yaml:"address"`
	}

	// Config contains the configuration of a client. Zero fee and
	// duration values select the client's defaults.
	Config struct {
		Network                  string        `toml:"network" yaml:"network"`
		Operator                 Operator      `toml:"operator" yaml:"operator"`
		DefaultMaxTransactionFee types.Hbar    `toml:"defaultMaxTransactionFee,omitempty" yaml:"defaultMaxTransactionFee,omitempty"`
		DefaultMaxQueryPayment   types.Hbar    `toml:"defaultMaxQueryPayment,omitempty" yaml:"defaultMaxQueryPayment,omitempty"`
		TransactionValidDuration time.Duration `toml:"transactionValidDuration,omitempty" yaml:"transactionValidDuration,omitempty"`
		Nodes                    []Node        `toml:"nodes" yaml:"nodes"`
	}
)

// Format is a configuration file format.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported config extension %q", filepath.Ext(path))
	}
}

// Load reads and validates the config file at path, choosing the format
// from its extension.
func Load(path string) (Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Config{}, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(b, format)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a config in the given format.
func Parse(b []byte, format Format) (cfg Config, err error) {
	switch format {
	case FormatTOML:
		var md toml.MetaData
		md, err = toml.Decode(string(b), &cfg)
		if err == nil {
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				err = fmt.Errorf("unknown keys %v", undecoded)
			}
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		err = dec.Decode(&cfg)
	default:
		err = fmt.Errorf("unsupported config format %q", format)
	}
	if err != nil {
		return Config{}, err
	} else if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode encodes cfg in the given format.
func Encode(cfg Config, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, err
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		if err := enc.Encode(cfg); err != nil {
			return nil, err
		} else if err := enc.Close(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
	return buf.Bytes(), nil
}

func checkAccount(name string, a types.Address) error {
	if a.IsNone() {
		return fmt.Errorf("%s is required", name)
	} else if a.IsAlias() {
		return fmt.Errorf("%s must be numeric, got %v", name, a)
	}
	return nil
}

// Validate reports the first missing or invalid value in cfg.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Network) == "" {
		return errors.New("network is required")
	} else if err := checkAccount("operator account", cfg.Operator.Account); err != nil {
		return err
	} else if _, err := cfg.Operator.Signer(); err != nil {
		return fmt.Errorf("operator key: %w", err)
	}

	switch {
	case cfg.DefaultMaxTransactionFee < 0:
		return fmt.Errorf("default max transaction fee must not be negative, got %v", cfg.DefaultMaxTransactionFee)
	case cfg.DefaultMaxQueryPayment < 0:
		return fmt.Errorf("default max query payment must not be negative, got %v", cfg.DefaultMaxQueryPayment)
	case cfg.TransactionValidDuration != 0 && (cfg.TransactionValidDuration < time.Second || cfg.TransactionValidDuration > ops.MaxValidDuration):
		return fmt.Errorf("transaction valid duration must be between 1s and %v, got %v", ops.MaxValidDuration, cfg.TransactionValidDuration)
	case len(cfg.Nodes) == 0:
		return errors.New("at least one node is required")
	}

	seen := make(map[types.Address]bool)
	for i, n := range cfg.Nodes {
		if err := checkAccount(fmt.Sprintf("node %d account", i), n.Account); err != nil {
			return err
		} else if seen[n.Account] {
			return fmt.Errorf("node %d: duplicate account %v", i, n.Account)
		} else if _, _, err := net.SplitHostPort(n.Address); err != nil {
			return fmt.Errorf("node %d: invalid address %q: %w", i, n.Address, err)
		}
		seen[n.Account] = true
	}
	return nil
}

// Signer returns a signer for the operator's private key.
func (o Operator) Signer() (client.Signer, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(o.PrivateKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("private key must be hex-encoded: %w", err)
	}
	switch o.KeyType {
	case "", KeyTypeEd25519:
		switch {
		case len(b) == ed25519.SeedSize:
			return client.Ed25519Signer(ed25519.NewKeyFromSeed(b)), nil
		case len(b) == ed25519.PrivateKeySize:
			return client.Ed25519Signer(ed25519.PrivateKey(b)), nil
		case len(b) == len(ed25519PKCS8Prefix)+ed25519.SeedSize && bytes.HasPrefix(b, ed25519PKCS8Prefix):
			return client.Ed25519Signer(ed25519.NewKeyFromSeed(b[len(ed25519PKCS8Prefix):])), nil
		}
		return nil, fmt.Errorf("ed25519 private key must be a 32-byte seed, a 64-byte key, or a PKCS#8 export, got %d bytes", len(b))
	case KeyTypeSecp256k1:
		if len(b) != secp256k1.PrivKeyBytesLen {
			return nil, fmt.Errorf("secp256k1 private key must be %d bytes, got %d", secp256k1.PrivKeyBytesLen, len(b))
		}
		return client.Secp256k1Signer(secp256k1.PrivKeyFromBytes(b)), nil
	default:
		return nil, fmt.Errorf("unknown key type %q", o.KeyType)
	}
}

// ClientOptions returns the client options implied by cfg.
func (cfg Config) ClientOptions() []client.Option {
	var opts []client.Option
	if cfg.DefaultMaxTransactionFee != 0 {
		opts = append(opts, client.WithMaxTransactionFee(cfg.DefaultMaxTransactionFee))
	}
	if cfg.DefaultMaxQueryPayment != 0 {
		opts = append(opts, client.WithMaxQueryPayment(cfg.DefaultMaxQueryPayment))
	}
	if cfg.TransactionValidDuration != 0 {
		opts = append(opts, client.WithValidDuration(cfg.TransactionValidDuration))
	}
	return opts
}
