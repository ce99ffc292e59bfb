package wallet

import (
	"fmt"

	"github.com/tyler-smith/go-bip32"

	"github.com/Klingon-tech/klingnet-keygen/internal/log"
	"github.com/Klingon-tech/klingnet-keygen/pkg/types"
)

// DerivedAddress is one receive address of an address chain.
type DerivedAddress struct {
	Path      string
	Address   string
	Hash160   types.WitnessPubKeyHash
	PublicKey []byte
}

// DeriveAddresses derives count consecutive P2WPKH addresses below
// basePath, starting at index start. basePath names the address chain,
// e.g. "m/84'/0'/0'/0"; the address index is appended unhardened.
func DeriveAddresses(seed []byte, basePath string, start uint32, count int, hrp string) ([]DerivedAddress, error) {
	if count < 0 {
		return nil, fmt.Errorf("address count must not be negative, got %d", count)
	}
	if uint64(start)+uint64(count) > uint64(bip32.FirstHardenedChild) {
		return nil, fmt.Errorf("address indices %d..%d exceed the unhardened range", start, uint64(start)+uint64(count)-1)
	}
	baseIndices, err := ParsePath(basePath)
	if err != nil {
		return nil, err
	}

	defer log.Benchmark("derive_addresses")()

	master, err := NewMasterKey(seed)
	if err != nil {
		return nil, err
	}
	chain, err := master.DerivePath(baseIndices...)
	if err != nil {
		return nil, err
	}

	out := make([]DerivedAddress, 0, count)
	for i := 0; i < count; i++ {
		index := start + uint32(i)
		key, err := chain.DeriveChild(index)
		if err != nil {
			return nil, err
		}
		hash, err := key.WitnessPubKeyHash()
		if err != nil {
			return nil, fmt.Errorf("address %d: %w", index, err)
		}
		addr, err := hash.Encode(hrp)
		if err != nil {
			return nil, fmt.Errorf("address %d: %w", index, err)
		}
		out = append(out, DerivedAddress{
			Path:      FormatPath(append(baseIndices[:len(baseIndices):len(baseIndices)], index)),
			Address:   addr,
			Hash160:   hash,
			PublicKey: key.PublicKeyBytes(),
		})
	}

	log.Wallet.Debug().
		Str("path", FormatPath(baseIndices)).
		Uint32("start", start).
		Int("count", count).
		Str("hrp", hrp).
		Msg("Derived addresses")
	return out, nil
}
