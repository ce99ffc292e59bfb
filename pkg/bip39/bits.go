package bip39

import (
	"fmt"
	"strings"
)

// bitString is a packed, MSB-first sequence of bits.
type bitString struct {
	buf []byte
	n   int
}

func newBitString(capBits int) *bitString {
	return &bitString{buf: make([]byte, 0, (capBits+7)/8)}
}

func (b *bitString) bitLen() int {
	return b.n
}

func (b *bitString) appendBit(bit byte) {
	if b.n%8 == 0 {
		b.buf = append(b.buf, 0)
	}
	if bit != 0 {
		b.buf[b.n/8] |= 0x80 >> uint(b.n%8)
	}
	b.n++
}

// appendBits appends the low width bits of v, most significant first.
func (b *bitString) appendBits(v uint32, width int) {
	for i := width - 1; i >= 0; i-- {
		b.appendBit(byte(v>>uint(i)) & 1)
	}
}

func (b *bitString) appendBytes(p []byte) {
	if b.n%8 == 0 {
		b.buf = append(b.buf, p...)
		b.n += 8 * len(p)
		return
	}
	for _, c := range p {
		b.appendBits(uint32(c), 8)
	}
}

// appendPrefix appends the first n bits of p.
func (b *bitString) appendPrefix(p []byte, n int) {
	for i := 0; i < n; i++ {
		b.appendBit((p[i/8] >> uint(7-i%8)) & 1)
	}
}

func (b *bitString) bit(i int) byte {
	return (b.buf[i/8] >> uint(7-i%8)) & 1
}

// readUint reads width bits starting at off as an unsigned integer.
func (b *bitString) readUint(off, width int) uint32 {
	var v uint32
	for i := 0; i < width; i++ {
		v = v<<1 | uint32(b.bit(off+i))
	}
	return v
}

// leadingBytes returns a copy of the first n bits, n a multiple of 8.
func (b *bitString) leadingBytes(n int) []byte {
	out := make([]byte, n/8)
	copy(out, b.buf)
	return out
}

// ParseBitString converts a string of '0'/'1' characters into bytes,
// most significant bit first. The length must be a multiple of 8.
func ParseBitString(s string) ([]byte, error) {
	if len(s)%8 != 0 {
		return nil, fmt.Errorf("bip39: bit string length %d is not a whole number of bytes", len(s))
	}
	bits := newBitString(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			bits.appendBit(0)
		case '1':
			bits.appendBit(1)
		default:
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidEntropyBit, s[i], i)
		}
	}
	return bits.buf, nil
}

// FormatBitString renders bytes as a string of '0'/'1' characters.
func FormatBitString(p []byte) string {
	var sb strings.Builder
	sb.Grow(len(p) * 8)
	for _, c := range p {
		for i := 7; i >= 0; i-- {
			sb.WriteByte('0' + (c>>uint(i))&1)
		}
	}
	return sb.String()
}
