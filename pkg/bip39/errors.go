package bip39

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidEntropyLength is returned for entropy that is not a positive
	// multiple of 32 bits, or longer than MaxEntropyBits.
	ErrInvalidEntropyLength = errors.New("bip39: invalid entropy length")

	// ErrInvalidEntropyBit is returned when a bit string contains a
	// character other than '0' or '1'.
	ErrInvalidEntropyBit = errors.New("bip39: invalid entropy bit")

	// ErrUnknownWord is returned when a word or prefix matches no wordlist entry.
	ErrUnknownWord = errors.New("bip39: unknown word")

	// ErrAmbiguousWord is returned when a prefix matches several wordlist entries.
	ErrAmbiguousWord = errors.New("bip39: ambiguous word")

	// ErrChecksumMismatch is returned when the embedded checksum bits of a
	// mnemonic do not match its entropy.
	ErrChecksumMismatch = errors.New("bip39: checksum mismatch")

	// ErrInvalidWordlist is returned by NewWordlist.
	ErrInvalidWordlist = errors.New("bip39: invalid wordlist")
)

// EntropyLengthError reports the offending entropy length in bits.
type EntropyLengthError struct {
	Bits int
}

func (e *EntropyLengthError) Error() string {
	return fmt.Sprintf("bip39: entropy must be a positive multiple of 32 bits up to %d, got %d",
		MaxEntropyBits, e.Bits)
}

func (e *EntropyLengthError) Unwrap() error {
	return ErrInvalidEntropyLength
}

// WordError reports a word that could not be resolved against the wordlist.
// Candidates is non-empty only for ambiguous prefixes.
type WordError struct {
	Word       string
	Candidates []string
}

func (e *WordError) Error() string {
	if len(e.Candidates) > 1 {
		return fmt.Sprintf("bip39: ambiguous incomplete word %q, possible entries: %s",
			e.Word, strings.Join(e.Candidates, ", "))
	}
	return fmt.Sprintf("bip39: unknown word %q", e.Word)
}

func (e *WordError) Unwrap() error {
	if len(e.Candidates) > 1 {
		return ErrAmbiguousWord
	}
	return ErrUnknownWord
}
