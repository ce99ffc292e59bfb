package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors Config with pointer fields so that keys absent from
// the file leave the current values untouched.
type fileConfig struct {
	Network     *string `toml:"network"`
	EntropyBits *int    `toml:"entropy_bits"`
	Derivation  struct {
		Purpose  *uint32 `toml:"purpose"`
		CoinType *uint32 `toml:"coin_type"`
		Account  *uint32 `toml:"account"`
		Change   *uint32 `toml:"change"`
		Count    *int    `toml:"count"`
	} `toml:"derivation"`
	Log struct {
		Level *string `toml:"level"`
		File  *string `toml:"file"`
		JSON  *bool   `toml:"json"`
	} `toml:"log"`
}

// LoadFile reads a TOML config file and returns the resulting configuration.
// The selected network picks the defaults that the file's other keys are
// applied over. A non-empty network overrides the file's network key; when
// neither is set the network is mainnet. A missing file yields the defaults.
func LoadFile(path string, network NetworkType) (*Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if network == "" {
				network = Mainnet
			}
			return Default(network), nil
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if network == "" && raw.Network != nil {
		network = NetworkType(strings.TrimSpace(*raw.Network))
	}
	if network == "" {
		network = Mainnet
	}
	cfg := Default(network)
	cfg.Network = network
	applyFileConfig(cfg, &raw)
	return cfg, nil
}

func applyFileConfig(cfg *Config, raw *fileConfig) {
	if raw.EntropyBits != nil {
		cfg.EntropyBits = *raw.EntropyBits
	}

	d := &raw.Derivation
	if d.Purpose != nil {
		cfg.Derivation.Purpose = *d.Purpose
	}
	if d.CoinType != nil {
		cfg.Derivation.CoinType = *d.CoinType
	}
	if d.Account != nil {
		cfg.Derivation.Account = *d.Account
	}
	if d.Change != nil {
		cfg.Derivation.Change = *d.Change
	}
	if d.Count != nil {
		cfg.Derivation.Count = *d.Count
	}

	l := &raw.Log
	if l.Level != nil {
		cfg.Log.Level = strings.TrimSpace(*l.Level)
	}
	if l.File != nil {
		cfg.Log.File = strings.TrimSpace(*l.File)
	}
	if l.JSON != nil {
		cfg.Log.JSON = *l.JSON
	}
}
