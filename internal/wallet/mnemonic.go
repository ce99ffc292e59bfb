// Package wallet turns entropy and mnemonics into seeds, HD keys and
// P2WPKH addresses.
package wallet

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/Klingon-tech/klingnet-keygen/internal/log"
	"github.com/Klingon-tech/klingnet-keygen/pkg/bip39"
)

// DefaultEntropyBits is the entropy size for 12-word mnemonics.
const DefaultEntropyBits = 128

// GenerateEntropy returns bits of random entropy from crypto/rand.
func GenerateEntropy(bits int) ([]byte, error) {
	if bits <= 0 || bits%32 != 0 || bits > bip39.MaxEntropyBits {
		return nil, &bip39.EntropyLengthError{Bits: bits}
	}
	entropy := make([]byte, bits/8)
	if _, err := rand.Read(entropy); err != nil {
		return nil, fmt.Errorf("generate entropy: %w", err)
	}
	return entropy, nil
}

// GenerateMnemonic creates a mnemonic from fresh random entropy and returns
// both. The entropy is returned so it can be backed up as a bit string.
func GenerateMnemonic(bits int) (string, []byte, error) {
	entropy, err := GenerateEntropy(bits)
	if err != nil {
		return "", nil, err
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", nil, fmt.Errorf("generate mnemonic: %w", err)
	}
	log.Wallet.Debug().Int("bits", bits).Int("words", len(strings.Fields(mnemonic))).Msg("Generated mnemonic")
	return mnemonic, entropy, nil
}

// ResolveMnemonic validates a possibly abbreviated mnemonic and returns it
// with every word expanded to its full wordlist entry.
func ResolveMnemonic(mnemonic string) (string, error) {
	valid, err := bip39.IsMnemonicValid(mnemonic)
	if err != nil {
		return "", err
	}
	if !valid {
		return "", fmt.Errorf("invalid mnemonic: %w", bip39.ErrChecksumMismatch)
	}
	words, err := bip39.FillMnemonicWords(mnemonic)
	if err != nil {
		return "", err
	}
	return strings.Join(words, " "), nil
}

// ValidateMnemonic reports whether a mnemonic resolves and has a valid
// checksum.
func ValidateMnemonic(mnemonic string) bool {
	valid, err := bip39.IsMnemonicValid(mnemonic)
	return err == nil && valid
}
