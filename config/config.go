// Package config handles klingnet-keygen configuration.
//
// Settings come from three layers, later layers winning:
//   - Built-in defaults for the selected network
//   - An optional TOML config file
//   - Command-line flags
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// NetworkType identifies mainnet or testnet.
type NetworkType string

const (
	Mainnet NetworkType = "mainnet"
	Testnet NetworkType = "testnet"
)

// BIP-44 style constants used by the defaults.
const (
	// PurposeP2WPKH is the BIP-84 purpose for native segwit key hashes.
	PurposeP2WPKH = 84

	// MaxAddressCount caps how many addresses one run may derive.
	MaxAddressCount = 10000
)

// Config holds runtime configuration for the key generator.
type Config struct {
	Network NetworkType `toml:"network"`

	// EntropyBits is the entropy size used by "generate" and the
	// interactive flow when no bit string is supplied.
	EntropyBits int `toml:"entropy_bits"`

	Derivation DerivationConfig `toml:"derivation"`
	Log        LogConfig        `toml:"log"`
}

// DerivationConfig selects which addresses are derived from a seed.
type DerivationConfig struct {
	Purpose  uint32 `toml:"purpose"`
	CoinType uint32 `toml:"coin_type"`
	Account  uint32 `toml:"account"`
	Change   uint32 `toml:"change"`
	Count    int    `toml:"count"`
}

// BasePath returns the derivation path of the address chain, without the
// final address index.
func (d DerivationConfig) BasePath() string {
	return fmt.Sprintf("m/%d'/%d'/%d'/%d", d.Purpose, d.CoinType, d.Account, d.Change)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
	File  string `toml:"file"`  // Empty means stderr only
	JSON  bool   `toml:"json"`
}

// DefaultDataDir returns the default directory for the config file.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".klingnet-keygen"
	}

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "KlingnetKeygen")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "KlingnetKeygen")
	default:
		return filepath.Join(home, ".klingnet-keygen")
	}
}

// DefaultConfigFile returns the config file read when --config is not given.
func DefaultConfigFile() string {
	return filepath.Join(DefaultDataDir(), "keygen.toml")
}
