package bip39

import (
	"crypto/sha512"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// SeedSize is the length of a derived seed in bytes (512 bits).
const SeedSize = 64

const (
	seedIterations = 2048
	seedSaltPrefix = "mnemonic"
)

// MnemonicToSeed derives a 64-byte seed with PBKDF2-HMAC-SHA512.
// The key is the resolved, space-joined mnemonic and the salt is
// "mnemonic" followed by password. Invalid mnemonics are rejected with
// ErrChecksumMismatch.
func (c *Codec) MnemonicToSeed(mnemonic, password string) ([]byte, error) {
	words, err := c.FillMnemonicWords(mnemonic)
	if err != nil {
		return nil, err
	}
	_, ok, err := c.checkedEntropy(words)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrChecksumMismatch
	}
	sentence := strings.Join(words, " ")
	return pbkdf2.Key([]byte(sentence), []byte(seedSaltPrefix+password), seedIterations, SeedSize, sha512.New), nil
}

// MnemonicToSeed derives a seed using the English wordlist.
func MnemonicToSeed(mnemonic, password string) ([]byte, error) {
	return defaultCodec.MnemonicToSeed(mnemonic, password)
}
