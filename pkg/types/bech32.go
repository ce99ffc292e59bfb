package types

import (
	"fmt"
	"strings"
)

// Bech32 charset used for encoding (BIP-173).
const bech32Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// bech32MaxLength is the BIP-173 limit on a full bech32 string.
const bech32MaxLength = 90

// bech32CharsetRev maps bech32 characters to their 5-bit values. -1 = invalid.
var bech32CharsetRev [128]int8

func init() {
	for i := range bech32CharsetRev {
		bech32CharsetRev[i] = -1
	}
	for i, c := range bech32Charset {
		bech32CharsetRev[c] = int8(i)
	}
}

// EncodeSegwit encodes a witness program as a segwit v0 bech32 address.
func EncodeSegwit(hrp string, version byte, program []byte) (string, error) {
	if err := checkWitness(version, program); err != nil {
		return "", err
	}
	conv, err := convertBits(program, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("segwit: convert bits: %w", err)
	}
	return bech32Encode(hrp, append([]byte{version}, conv...))
}

// DecodeSegwit decodes a segwit v0 address, requiring the given HRP.
func DecodeSegwit(hrp, addr string) (version byte, program []byte, err error) {
	gotHRP, data, err := bech32Decode(addr)
	if err != nil {
		return 0, nil, err
	}
	if gotHRP != hrp {
		return 0, nil, fmt.Errorf("segwit: hrp %q, want %q", gotHRP, hrp)
	}
	if len(data) < 1 {
		return 0, nil, fmt.Errorf("segwit: missing witness version")
	}
	program, err = convertBits(data[1:], 5, 8, false)
	if err != nil {
		return 0, nil, fmt.Errorf("segwit: convert bits: %w", err)
	}
	if err := checkWitness(data[0], program); err != nil {
		return 0, nil, err
	}
	return data[0], program, nil
}

// checkWitness accepts only version 0 programs of 20 or 32 bytes; later
// versions use the bech32m checksum.
func checkWitness(version byte, program []byte) error {
	if version != 0 {
		return fmt.Errorf("segwit: unsupported witness version %d", version)
	}
	if len(program) != 20 && len(program) != 32 {
		return fmt.Errorf("segwit: v0 program must be 20 or 32 bytes, got %d", len(program))
	}
	return nil
}

// bech32Encode encodes an HRP and 5-bit data groups.
func bech32Encode(hrp string, data5 []byte) (string, error) {
	if len(hrp) == 0 {
		return "", fmt.Errorf("bech32: empty HRP")
	}
	for _, c := range hrp {
		if c < 33 || c > 126 {
			return "", fmt.Errorf("bech32: invalid HRP character %q", c)
		}
	}
	hrp = strings.ToLower(hrp)

	chk := bech32CreateChecksum(hrp, data5)

	var sb strings.Builder
	sb.Grow(len(hrp) + 1 + len(data5) + len(chk))
	sb.WriteString(hrp)
	sb.WriteByte('1')
	for _, b := range data5 {
		sb.WriteByte(bech32Charset[b])
	}
	for _, b := range chk {
		sb.WriteByte(bech32Charset[b])
	}
	if sb.Len() > bech32MaxLength {
		return "", fmt.Errorf("bech32: encoded length %d exceeds %d", sb.Len(), bech32MaxLength)
	}
	return sb.String(), nil
}

// bech32Decode returns the HRP and 5-bit data groups, checksum stripped.
func bech32Decode(s string) (string, []byte, error) {
	if len(s) == 0 {
		return "", nil, fmt.Errorf("bech32: empty string")
	}
	if len(s) > bech32MaxLength {
		return "", nil, fmt.Errorf("bech32: length %d exceeds %d", len(s), bech32MaxLength)
	}
	if strings.ToLower(s) != s && strings.ToUpper(s) != s {
		return "", nil, fmt.Errorf("bech32: mixed case")
	}
	s = strings.ToLower(s)

	sep := strings.LastIndexByte(s, '1')
	if sep < 1 {
		return "", nil, fmt.Errorf("bech32: missing separator")
	}
	if sep+7 > len(s) {
		return "", nil, fmt.Errorf("bech32: too short")
	}

	hrp := s[:sep]
	data5 := make([]byte, 0, len(s)-sep-1)
	for _, c := range s[sep+1:] {
		if c > 127 || bech32CharsetRev[c] < 0 {
			return "", nil, fmt.Errorf("bech32: invalid character %q", c)
		}
		data5 = append(data5, byte(bech32CharsetRev[c]))
	}

	if bech32Polymod(append(bech32HRPExpand(hrp), data5...)) != 1 {
		return "", nil, fmt.Errorf("bech32: invalid checksum")
	}
	return hrp, data5[:len(data5)-6], nil
}

// bech32Polymod computes the bech32 polynomial modulus.
func bech32Polymod(values []byte) uint32 {
	gen := [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}
	chk := uint32(1)
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (top>>uint(i))&1 == 1 {
				chk ^= gen[i]
			}
		}
	}
	return chk
}

// bech32HRPExpand expands the HRP for checksum computation.
func bech32HRPExpand(hrp string) []byte {
	ret := make([]byte, 0, len(hrp)*2+1)
	for _, c := range hrp {
		ret = append(ret, byte(c>>5))
	}
	ret = append(ret, 0)
	for _, c := range hrp {
		ret = append(ret, byte(c&31))
	}
	return ret
}

func bech32CreateChecksum(hrp string, data []byte) []byte {
	values := append(bech32HRPExpand(hrp), data...)
	values = append(values, 0, 0, 0, 0, 0, 0)
	polymod := bech32Polymod(values) ^ 1
	ret := make([]byte, 6)
	for i := range ret {
		ret[i] = byte((polymod >> uint(5*(5-i))) & 31)
	}
	return ret
}

// convertBits regroups data from fromBits-wide to toBits-wide groups.
// pad controls whether an incomplete trailing group is zero-padded.
func convertBits(data []byte, fromBits, toBits uint, pad bool) ([]byte, error) {
	acc := uint32(0)
	bits := uint(0)
	maxv := uint32((1 << toBits) - 1)
	var ret []byte

	for _, b := range data {
		if uint32(b)>>fromBits != 0 {
			return nil, fmt.Errorf("invalid data byte: %d", b)
		}
		acc = acc<<fromBits | uint32(b)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			ret = append(ret, byte((acc>>bits)&maxv))
		}
	}

	if pad {
		if bits > 0 {
			ret = append(ret, byte((acc<<(toBits-bits))&maxv))
		}
	} else if bits >= fromBits || (acc<<(toBits-bits))&maxv != 0 {
		return nil, fmt.Errorf("non-zero padding")
	}

	return ret, nil
}
