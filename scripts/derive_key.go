// derive_key.go prints the pubkey and P2WPKH address for a private key file.
// The file holds either a WIF key or a hex-encoded 32-byte secret.
// Usage: go run scripts/derive_key.go [--testnet] <keyfile>
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/Klingon-tech/klingnet-keygen/internal/wallet"
	"github.com/Klingon-tech/klingnet-keygen/pkg/crypto"
	"github.com/Klingon-tech/klingnet-keygen/pkg/types"
)

func main() {
	args := os.Args[1:]
	hrp := types.MainnetHRP
	if len(args) > 0 && args[0] == "--testnet" {
		hrp = types.TestnetHRP
		args = args[1:]
	}
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: derive_key [--testnet] <keyfile>")
		os.Exit(1)
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	key, err := parseKey(strings.TrimSpace(string(data)))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer key.Zero()

	pub := key.PublicKey()
	hash, err := types.NewWitnessPubKeyHash(pub)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	addr, err := hash.Encode(hrp)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("pubkey=%s\n", hex.EncodeToString(pub))
	fmt.Printf("hash160=%s\n", hash.Hex())
	fmt.Printf("address=%s\n", addr)
}

func parseKey(s string) (*crypto.PrivateKey, error) {
	if raw, err := hex.DecodeString(s); err == nil {
		return crypto.PrivateKeyFromBytes(raw)
	}
	key, _, _, err := wallet.ParseWIF(s)
	return key, err
}
