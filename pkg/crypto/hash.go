// Package crypto provides the hash primitives and secp256k1 keys used by the
// keygen codecs.
package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // HASH160 is fixed by the address format.
)

// ChecksumSize is the length of a Base58Check checksum in bytes.
const ChecksumSize = 4

// Hash160Size is the length of a HASH160 digest in bytes.
const Hash160Size = ripemd160.Size

// SHA256 computes the SHA-256 digest of data.
func SHA256(data []byte) [sha256.Size]byte {
	return sha256.Sum256(data)
}

// DoubleSHA256 computes SHA256(SHA256(data)).
func DoubleSHA256(data []byte) [sha256.Size]byte {
	first := SHA256(data)
	return SHA256(first[:])
}

// Checksum4 returns the first four bytes of DoubleSHA256(data).
func Checksum4(data []byte) [ChecksumSize]byte {
	h := DoubleSHA256(data)
	var sum [ChecksumSize]byte
	copy(sum[:], h[:ChecksumSize])
	return sum
}

// Hash160 computes RIPEMD160(SHA256(data)).
// Used for public key hashes in witness programs.
func Hash160(data []byte) [Hash160Size]byte {
	sha := SHA256(data)
	r := ripemd160.New()
	r.Write(sha[:])
	var out [Hash160Size]byte
	copy(out[:], r.Sum(nil))
	return out
}
