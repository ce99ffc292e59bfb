package config

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-keygen/internal/log"
	"github.com/Klingon-tech/klingnet-keygen/pkg/bip39"
)

// hardened is the first hardened BIP-32 child index.
const hardened = 1 << 31

// Validate checks the config for obvious operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.Network != Mainnet && cfg.Network != Testnet {
		return fmt.Errorf("network must be %q or %q", Mainnet, Testnet)
	}

	if cfg.EntropyBits <= 0 || cfg.EntropyBits%32 != 0 || cfg.EntropyBits > bip39.MaxEntropyBits {
		return fmt.Errorf("entropy_bits must be a positive multiple of 32 up to %d, got %d",
			bip39.MaxEntropyBits, cfg.EntropyBits)
	}

	d := cfg.Derivation
	for _, c := range []struct {
		name  string
		value uint32
	}{
		{"derivation.purpose", d.Purpose},
		{"derivation.coin_type", d.CoinType},
		{"derivation.account", d.Account},
		{"derivation.change", d.Change},
	} {
		if c.value >= hardened {
			return fmt.Errorf("%s must be below %d", c.name, uint32(hardened))
		}
	}
	if d.Count < 1 || d.Count > MaxAddressCount {
		return fmt.Errorf("derivation.count must be in range [1, %d]", MaxAddressCount)
	}

	if !log.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn, or error")
	}

	return nil
}
