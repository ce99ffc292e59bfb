package wallet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tyler-smith/go-bip32"

	"github.com/Klingon-tech/klingnet-keygen/pkg/bip39"
	"github.com/Klingon-tech/klingnet-keygen/pkg/types"
)

// BIP-84 derivation path constants.
// Full path: m/84'/coin'/account'/change/index
const (
	// PurposeBIP84 is the BIP-84 purpose field (hardened).
	PurposeBIP84 = bip32.FirstHardenedChild + 84

	// ChangeExternal is for receiving addresses.
	ChangeExternal = 0

	// ChangeInternal is for change addresses.
	ChangeInternal = 1
)

// ErrInvalidPath is returned for malformed derivation paths.
var ErrInvalidPath = errors.New("invalid derivation path")

// HDKey represents a hierarchical deterministic key (BIP-32).
type HDKey struct {
	key *bip32.Key
}

// NewMasterKey creates a master HD key from a 64-byte seed.
func NewMasterKey(seed []byte) (*HDKey, error) {
	if len(seed) != bip39.SeedSize {
		return nil, fmt.Errorf("seed must be %d bytes, got %d", bip39.SeedSize, len(seed))
	}
	master, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("create master key: %w", err)
	}
	return &HDKey{key: master}, nil
}

// DeriveChild derives a child key at the given index.
// For hardened derivation, add bip32.FirstHardenedChild to the index.
func (k *HDKey) DeriveChild(index uint32) (*HDKey, error) {
	child, err := k.key.NewChildKey(index)
	if err != nil {
		return nil, fmt.Errorf("derive child %s: %w", formatIndex(index), err)
	}
	return &HDKey{key: child}, nil
}

// DerivePath derives a key along a sequence of indices.
func (k *HDKey) DerivePath(indices ...uint32) (*HDKey, error) {
	current := k
	for _, idx := range indices {
		child, err := current.DeriveChild(idx)
		if err != nil {
			return nil, err
		}
		current = child
	}
	return current, nil
}

// DerivePathString derives the key at a textual path such as
// "m/84'/0'/0'/0/5". The path must start at the master key.
func (k *HDKey) DerivePathString(path string) (*HDKey, error) {
	indices, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	if k.Depth() != 0 && len(indices) > 0 {
		return nil, fmt.Errorf("%w: %q is absolute but key has depth %d", ErrInvalidPath, path, k.Depth())
	}
	return k.DerivePath(indices...)
}

// ParsePath parses a BIP-32 path. Hardened levels are marked with a
// trailing ', h or H. "m" alone yields no indices.
func ParsePath(path string) ([]uint32, error) {
	parts := strings.Split(strings.TrimSpace(path), "/")
	if parts[0] != "m" && parts[0] != "M" {
		return nil, fmt.Errorf("%w: %q must start with m", ErrInvalidPath, path)
	}

	indices := make([]uint32, 0, len(parts)-1)
	for _, p := range parts[1:] {
		hardened := false
		if n := len(p); n > 0 && (p[n-1] == '\'' || p[n-1] == 'h' || p[n-1] == 'H') {
			hardened = true
			p = p[:n-1]
		}
		if p == "" || p[0] == '+' || p[0] == '-' {
			return nil, fmt.Errorf("%w: bad level in %q", ErrInvalidPath, path)
		}
		v, err := strconv.ParseUint(p, 10, 32)
		if err != nil || v >= uint64(bip32.FirstHardenedChild) {
			return nil, fmt.Errorf("%w: bad level %q in %q", ErrInvalidPath, p, path)
		}
		idx := uint32(v)
		if hardened {
			idx += bip32.FirstHardenedChild
		}
		indices = append(indices, idx)
	}
	return indices, nil
}

// FormatPath renders indices in the ' notation used by ParsePath.
func FormatPath(indices []uint32) string {
	var b strings.Builder
	b.WriteString("m")
	for _, idx := range indices {
		b.WriteByte('/')
		b.WriteString(formatIndex(idx))
	}
	return b.String()
}

func formatIndex(idx uint32) string {
	if idx >= bip32.FirstHardenedChild {
		return strconv.FormatUint(uint64(idx-bip32.FirstHardenedChild), 10) + "'"
	}
	return strconv.FormatUint(uint64(idx), 10)
}

// PrivateKeyBytes returns the raw 32-byte private key.
// Returns nil if this is a public-only key.
func (k *HDKey) PrivateKeyBytes() []byte {
	if !k.key.IsPrivate {
		return nil
	}
	// bip32 Key.Key is 33 bytes with a leading 0x00 for private keys.
	raw := k.key.Key
	if len(raw) == 33 && raw[0] == 0 {
		return raw[1:]
	}
	return raw
}

// PublicKeyBytes returns the compressed 33-byte public key.
func (k *HDKey) PublicKeyBytes() []byte {
	pub := k.key.PublicKey()
	return pub.Key
}

// WitnessPubKeyHash returns the P2WPKH program for this key's public key.
func (k *HDKey) WitnessPubKeyHash() (types.WitnessPubKeyHash, error) {
	return types.NewWitnessPubKeyHash(k.PublicKeyBytes())
}

// Address returns the bech32 P2WPKH address for the given HRP.
func (k *HDKey) Address(hrp string) (string, error) {
	h, err := k.WitnessPubKeyHash()
	if err != nil {
		return "", err
	}
	return h.Encode(hrp)
}

// IsPrivate returns true if this key contains a private key.
func (k *HDKey) IsPrivate() bool {
	return k.key.IsPrivate
}

// Depth returns the derivation depth (0 for master).
func (k *HDKey) Depth() uint8 {
	return k.key.Depth
}

// Neuter returns a public-key-only copy.
func (k *HDKey) Neuter() *HDKey {
	return &HDKey{key: k.key.PublicKey()}
}

// String returns the base58 extended key (xprv or xpub).
func (k *HDKey) String() string {
	return k.key.String()
}
