package wallet

import (
	"errors"
	"fmt"

	"github.com/Klingon-tech/klingnet-keygen/pkg/base58check"
	"github.com/Klingon-tech/klingnet-keygen/pkg/crypto"
)

// WIF version bytes.
const (
	WIFMainnet byte = 0x80
	WIFTestnet byte = 0xef
)

// wifCompressed marks a WIF key whose public key is serialized compressed.
const wifCompressed = 0x01

// ErrInvalidWIF is returned by ParseWIF for malformed keys.
var ErrInvalidWIF = errors.New("invalid WIF private key")

// WIFVersion returns the WIF version byte for "mainnet" or "testnet".
func WIFVersion(network string) (byte, error) {
	switch network {
	case "mainnet", "":
		return WIFMainnet, nil
	case "testnet":
		return WIFTestnet, nil
	default:
		return 0, fmt.Errorf("unknown network %q", network)
	}
}

// EncodeWIF encodes a private key in wallet import format, flagged
// compressed.
func EncodeWIF(key *crypto.PrivateKey, version byte) string {
	payload := make([]byte, 0, 2+crypto.PrivateKeySize)
	payload = append(payload, version)
	payload = append(payload, key.Serialize()...)
	payload = append(payload, wifCompressed)
	return base58check.EncodeBytes(payload)
}

// ParseWIF decodes a wallet import format key. Both compressed and
// uncompressed encodings are accepted.
func ParseWIF(s string) (key *crypto.PrivateKey, version byte, compressed bool, err error) {
	payload, err := base58check.DecodeBytes(s)
	if err != nil {
		return nil, 0, false, fmt.Errorf("%w: %w", ErrInvalidWIF, err)
	}
	switch {
	case len(payload) == 2+crypto.PrivateKeySize && payload[len(payload)-1] == wifCompressed:
		compressed = true
	case len(payload) == 1+crypto.PrivateKeySize:
	default:
		return nil, 0, false, fmt.Errorf("%w: %d-byte payload", ErrInvalidWIF, len(payload))
	}
	version = payload[0]
	if version != WIFMainnet && version != WIFTestnet {
		return nil, 0, false, fmt.Errorf("%w: unknown version 0x%02x", ErrInvalidWIF, version)
	}
	key, err = crypto.PrivateKeyFromBytes(payload[1 : 1+crypto.PrivateKeySize])
	if err != nil {
		return nil, 0, false, fmt.Errorf("%w: %w", ErrInvalidWIF, err)
	}
	return key, version, compressed, nil
}

// PrivateKey returns this key's secp256k1 private key.
// Returns error if this is a public-only key.
func (k *HDKey) PrivateKey() (*crypto.PrivateKey, error) {
	priv := k.PrivateKeyBytes()
	if priv == nil {
		return nil, fmt.Errorf("cannot export private key from public key")
	}
	return crypto.PrivateKeyFromBytes(priv)
}

// WIF returns the private key in wallet import format.
func (k *HDKey) WIF(version byte) (string, error) {
	priv, err := k.PrivateKey()
	if err != nil {
		return "", err
	}
	defer priv.Zero()
	return EncodeWIF(priv, version), nil
}
