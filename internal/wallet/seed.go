package wallet

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-keygen/internal/log"
	"github.com/Klingon-tech/klingnet-keygen/pkg/bip39"
)

// SeedFromMnemonic derives a 512-bit seed from a mnemonic and optional passphrase
// using PBKDF2-SHA512 as specified in BIP-39. Abbreviated words are resolved first.
func SeedFromMnemonic(mnemonic, passphrase string) ([]byte, error) {
	defer log.Benchmark("seed_from_mnemonic")()

	seed, err := bip39.MnemonicToSeed(mnemonic, passphrase)
	if err != nil {
		return nil, fmt.Errorf("derive seed: %w", err)
	}
	log.Wallet.Debug().Bool("passphrase", passphrase != "").Msg("Derived seed")
	return seed, nil
}
