// Package types defines the address formats printed by the key generator.
package types

import (
	"encoding/hex"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/Klingon-tech/klingnet-keygen/pkg/crypto"
)

// AddressSize is the length of a P2WPKH witness program in bytes.
const AddressSize = crypto.Hash160Size

// Address HRP (human-readable part) constants for bech32 encoding.
const (
	MainnetHRP = "bc"
	TestnetHRP = "tb"
)

// WitnessPubKeyHash is the HASH160 of a compressed public key, the
// program of a pay-to-witness-pubkey-hash (BIP-84) output.
type WitnessPubKeyHash [AddressSize]byte

// NewWitnessPubKeyHash validates a compressed secp256k1 public key and
// returns its witness program.
func NewWitnessPubKeyHash(pubKey []byte) (WitnessPubKeyHash, error) {
	if len(pubKey) != secp256k1.PubKeyBytesLenCompressed {
		return WitnessPubKeyHash{}, fmt.Errorf("public key must be %d bytes compressed, got %d",
			secp256k1.PubKeyBytesLenCompressed, len(pubKey))
	}
	pk, err := secp256k1.ParsePubKey(pubKey)
	if err != nil {
		return WitnessPubKeyHash{}, fmt.Errorf("parse public key: %w", err)
	}
	return WitnessPubKeyHash(crypto.Hash160(pk.SerializeCompressed())), nil
}

// Encode returns the bech32 address for the given HRP.
func (a WitnessPubKeyHash) Encode(hrp string) (string, error) {
	return EncodeSegwit(hrp, 0, a[:])
}

// String returns the mainnet address.
func (a WitnessPubKeyHash) String() string {
	s, err := a.Encode(MainnetHRP)
	if err != nil {
		// Unreachable: a 20-byte v0 program always encodes.
		return MainnetHRP + ":" + a.Hex()
	}
	return s
}

// Hex returns the raw hex-encoded public key hash.
func (a WitnessPubKeyHash) Hex() string {
	return hex.EncodeToString(a[:])
}

// ParseWitnessPubKeyHash decodes a P2WPKH bech32 address for the given HRP.
func ParseWitnessPubKeyHash(hrp, addr string) (WitnessPubKeyHash, error) {
	version, program, err := DecodeSegwit(hrp, addr)
	if err != nil {
		return WitnessPubKeyHash{}, fmt.Errorf("invalid address: %w", err)
	}
	if version != 0 || len(program) != AddressSize {
		return WitnessPubKeyHash{}, fmt.Errorf("not a P2WPKH address: version %d, %d-byte program", version, len(program))
	}
	var a WitnessPubKeyHash
	copy(a[:], program)
	return a, nil
}

// HRPForNetwork returns the address HRP for "mainnet" or "testnet".
func HRPForNetwork(network string) (string, error) {
	switch network {
	case "mainnet", "":
		return MainnetHRP, nil
	case "testnet":
		return TestnetHRP, nil
	default:
		return "", fmt.Errorf("unknown network %q", network)
	}
}
