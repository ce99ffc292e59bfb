package bip39

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Klingon-tech/klingnet-keygen/pkg/crypto"
)

func sha256Bits(data []byte) string {
	d := crypto.SHA256(data)
	return FormatBitString(d[:])
}

func flipLast(s string) string {
	b := []byte(s)
	if b[len(b)-1] == '0' {
		b[len(b)-1] = '1'
	} else {
		b[len(b)-1] = '0'
	}
	return string(b)
}

func TestParseBitString(t *testing.T) {
	tests := []struct {
		in   string
		want []byte
	}{
		{"", []byte{}},
		{"00000000", []byte{0x00}},
		{"10000000", []byte{0x80}},
		{"00000001", []byte{0x01}},
		{"1111111100001111", []byte{0xff, 0x0f}},
	}

	for _, tt := range tests {
		got, err := ParseBitString(tt.in)
		if err != nil {
			t.Fatalf("ParseBitString(%q) error: %v", tt.in, err)
		}
		if !bytes.Equal(got, tt.want) {
			t.Errorf("ParseBitString(%q) = %x, want %x", tt.in, got, tt.want)
		}
	}
}

func TestParseBitString_Errors(t *testing.T) {
	if _, err := ParseBitString("0101"); err == nil {
		t.Error("expected error for partial byte")
	}
	if _, err := ParseBitString("0101010a"); !errors.Is(err, ErrInvalidEntropyBit) {
		t.Errorf("error = %v, want ErrInvalidEntropyBit", err)
	}
}

func TestFormatBitString_RoundTrip(t *testing.T) {
	in := []byte{0x00, 0x7f, 0x80, 0xff, 0xa5}
	s := FormatBitString(in)
	if s != "0000000001111111100000001111111110100101" {
		t.Fatalf("FormatBitString = %s", s)
	}
	out, err := ParseBitString(s)
	if err != nil {
		t.Fatalf("ParseBitString() error: %v", err)
	}
	if !bytes.Equal(in, out) {
		t.Errorf("round trip = %x, want %x", out, in)
	}
}

func TestBitString_ReadUint(t *testing.T) {
	b := newBitString(33)
	b.appendBits(2047, 11)
	b.appendBits(0, 11)
	b.appendBits(1029, 11)

	if b.bitLen() != 33 {
		t.Fatalf("bitLen = %d, want 33", b.bitLen())
	}
	for i, want := range []uint32{2047, 0, 1029} {
		if got := b.readUint(i*11, 11); got != want {
			t.Errorf("word %d = %d, want %d", i, got, want)
		}
	}
}

func TestBitString_AppendUnaligned(t *testing.T) {
	b := newBitString(12)
	b.appendBits(0b101, 3)
	b.appendBytes([]byte{0xff})
	b.appendPrefix([]byte{0x80}, 1)

	if got := b.readUint(0, 12); got != 0b101111111111 {
		t.Errorf("bits = %b", got)
	}
}
