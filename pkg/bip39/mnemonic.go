// Package bip39 converts entropy to BIP-39 mnemonic sentences and back,
// and derives seeds from them.
//
// Entropy enters either as packed bytes or as a string of '0'/'1'
// characters. Words of four or more characters may be abbreviated to any
// unique prefix; shorter words must be spelled in full.
package bip39

import (
	"strings"
	"unicode/utf8"

	"github.com/Klingon-tech/klingnet-keygen/pkg/crypto"
)

// MaxEntropyBits bounds entropy so that the checksum fits in one SHA-256 digest.
const MaxEntropyBits = 32 * 256

// minPrefixLen is the shortest word that is treated as an abbreviation.
const minPrefixLen = 4

// Codec converts between entropy, mnemonics and seeds using one wordlist.
// A Codec is safe for concurrent use.
type Codec struct {
	wl *Wordlist
}

// NewCodec returns a codec over wl.
func NewCodec(wl *Wordlist) *Codec {
	return &Codec{wl: wl}
}

var defaultCodec = NewCodec(english)

// Default returns the codec over the English wordlist.
func Default() *Codec {
	return defaultCodec
}

// Wordlist returns the codec's wordlist.
func (c *Codec) Wordlist() *Wordlist {
	return c.wl
}

func checkEntropyBits(n int) error {
	if n <= 0 || n%32 != 0 || n > MaxEntropyBits {
		return &EntropyLengthError{Bits: n}
	}
	return nil
}

// EntropyToMnemonic converts a '0'/'1' entropy string into a mnemonic.
func (c *Codec) EntropyToMnemonic(entropy string) (string, error) {
	if err := checkEntropyBits(len(entropy)); err != nil {
		return "", err
	}
	ent, err := ParseBitString(entropy)
	if err != nil {
		return "", err
	}
	return c.NewMnemonic(ent)
}

// NewMnemonic converts entropy bytes into a mnemonic. The sentence has
// (bits + bits/32) / 11 words.
func (c *Codec) NewMnemonic(entropy []byte) (string, error) {
	entBits := len(entropy) * 8
	if err := checkEntropyBits(entBits); err != nil {
		return "", err
	}
	csBits := entBits / 32
	digest := crypto.SHA256(entropy)

	bits := newBitString(entBits + csBits)
	bits.appendBytes(entropy)
	bits.appendPrefix(digest[:], csBits)

	words := make([]string, bits.bitLen()/wordBits)
	for i := range words {
		words[i] = c.wl.words[bits.readUint(i*wordBits, wordBits)]
	}
	return strings.Join(words, " "), nil
}

// FillMnemonicWords splits mnemonic on single spaces and expands every
// word of four or more characters to the unique wordlist entry it
// prefixes. Shorter words are returned unchanged.
func (c *Codec) FillMnemonicWords(mnemonic string) ([]string, error) {
	parts := strings.Split(mnemonic, " ")
	filled := make([]string, 0, len(parts))
	for _, w := range parts {
		if utf8.RuneCountInString(w) < minPrefixLen {
			filled = append(filled, w)
			continue
		}
		candidates := c.wl.Complete(w)
		switch len(candidates) {
		case 0:
			return nil, &WordError{Word: w}
		case 1:
			filled = append(filled, candidates[0])
		default:
			return nil, &WordError{Word: w, Candidates: candidates}
		}
	}
	return filled, nil
}

// IsMnemonicValid reports whether the mnemonic's checksum matches its
// entropy. Abbreviated words are resolved first; an error is returned only
// when a word cannot be resolved.
func (c *Codec) IsMnemonicValid(mnemonic string) (bool, error) {
	words, err := c.FillMnemonicWords(mnemonic)
	if err != nil {
		return false, err
	}
	_, ok, err := c.checkedEntropy(words)
	return ok, err
}

// MnemonicToEntropy returns the entropy encoded by a valid mnemonic.
func (c *Codec) MnemonicToEntropy(mnemonic string) ([]byte, error) {
	words, err := c.FillMnemonicWords(mnemonic)
	if err != nil {
		return nil, err
	}
	ent, ok, err := c.checkedEntropy(words)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrChecksumMismatch
	}
	return ent, nil
}

// checkedEntropy rebuilds the seed bit string from resolved words and
// verifies the trailing checksum. ok is false for a structurally invalid
// length or a checksum mismatch.
func (c *Codec) checkedEntropy(words []string) (entropy []byte, ok bool, err error) {
	bits := newBitString(len(words) * wordBits)
	for _, w := range words {
		idx, found := c.wl.index[w]
		if !found {
			return nil, false, &WordError{Word: w}
		}
		bits.appendBits(uint32(idx), wordBits)
	}

	// total = 32k entropy bits + k checksum bits.
	total := bits.bitLen()
	if total%33 != 0 {
		return nil, false, nil
	}
	csBits := total / 33
	entBits := total - csBits
	if checkEntropyBits(entBits) != nil {
		return nil, false, nil
	}

	entropy = bits.leadingBytes(entBits)
	digest := crypto.SHA256(entropy)
	for i := 0; i < csBits; i++ {
		if bits.bit(entBits+i) != (digest[i/8]>>uint(7-i%8))&1 {
			return nil, false, nil
		}
	}
	return entropy, true, nil
}

// EntropyToMnemonic converts a '0'/'1' entropy string using the English wordlist.
func EntropyToMnemonic(entropy string) (string, error) {
	return defaultCodec.EntropyToMnemonic(entropy)
}

// NewMnemonic converts entropy bytes using the English wordlist.
func NewMnemonic(entropy []byte) (string, error) {
	return defaultCodec.NewMnemonic(entropy)
}

// FillMnemonicWords resolves abbreviations against the English wordlist.
func FillMnemonicWords(mnemonic string) ([]string, error) {
	return defaultCodec.FillMnemonicWords(mnemonic)
}

// IsMnemonicValid checks a mnemonic against the English wordlist.
func IsMnemonicValid(mnemonic string) (bool, error) {
	return defaultCodec.IsMnemonicValid(mnemonic)
}

// MnemonicToEntropy decodes a mnemonic using the English wordlist.
func MnemonicToEntropy(mnemonic string) ([]byte, error) {
	return defaultCodec.MnemonicToEntropy(mnemonic)
}
