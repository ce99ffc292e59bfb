// Package base58check encodes payloads as Base58 text with a trailing
// four-byte double-SHA-256 checksum.
package base58check

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/Klingon-tech/klingnet-keygen/pkg/crypto"
)

var (
	// ErrOddLengthHex is returned when a hex payload has an odd number of characters.
	ErrOddLengthHex = errors.New("base58check: hex length is odd")

	// ErrInvalidHex is returned when a hex payload contains non-hex characters.
	ErrInvalidHex = errors.New("base58check: invalid hex")

	// ErrMalformedEncoding is returned when the input is not valid Base58.
	ErrMalformedEncoding = errors.New("base58check: malformed encoding")

	// ErrChecksumMismatch is returned when the trailing four bytes do not
	// match the payload.
	ErrChecksumMismatch = errors.New("base58check: checksum mismatch")
)

// EncodeBytes appends the checksum to payload and renders it as Base58.
func EncodeBytes(payload []byte) string {
	sum := crypto.Checksum4(payload)
	buf := make([]byte, 0, len(payload)+crypto.ChecksumSize)
	buf = append(buf, payload...)
	buf = append(buf, sum[:]...)
	return base58.Encode(buf)
}

// DecodeBytes decodes s, verifies its checksum and returns the payload.
func DecodeBytes(s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrMalformedEncoding)
	}
	raw, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}
	if len(raw) < crypto.ChecksumSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the checksum", ErrChecksumMismatch, len(raw))
	}
	payload := raw[:len(raw)-crypto.ChecksumSize]
	want := crypto.Checksum4(payload)
	var got [crypto.ChecksumSize]byte
	copy(got[:], raw[len(payload):])
	if got != want {
		return nil, ErrChecksumMismatch
	}
	return payload, nil
}

// Encode hex-decodes payloadHex and returns its Base58Check form.
// The hex string must have even length.
func Encode(payloadHex string) (string, error) {
	if len(payloadHex)%2 != 0 {
		return "", fmt.Errorf("%w: %d characters", ErrOddLengthHex, len(payloadHex))
	}
	payload, err := hex.DecodeString(payloadHex)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return EncodeBytes(payload), nil
}

// Decode verifies a Base58Check string and returns its payload as lowercase hex.
func Decode(s string) (string, error) {
	payload, err := DecodeBytes(s)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(payload), nil
}
