package base58check

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"testing"

	btcbase58 "github.com/btcsuite/btcd/btcutil/base58"
	"github.com/mr-tron/base58"
)

func TestEncode_Vectors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{
			name:    "p2pkh address",
			payload: "00f54a5851e9372b87810a8e60cdd2e7cfd80b6e31",
			want:    "1PMycacnJaSqwwJqjawXBErnLsZ7RkXUAs",
		},
		{
			name:    "uncompressed WIF",
			payload: "800c28fca386c7a227600b2fe50b7cae11ec86d3bf1fbe471be89827e19d72aa1d",
			want:    "5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTJ",
		},
		{
			name:    "empty payload",
			payload: "",
			want:    "3QJmnh",
		},
		{
			name:    "single zero byte",
			payload: "00",
			want:    "1Wh4bh",
		},
		{
			name:    "leading zero bytes",
			payload: "0000ff",
			want:    "11VmypLhv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.payload)
			if err != nil {
				t.Fatalf("Encode() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Encode(%q) = %q, want %q", tt.payload, got, tt.want)
			}
			back, err := Decode(got)
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if back != tt.payload {
				t.Errorf("Decode(%q) = %q, want %q", got, back, tt.payload)
			}
		})
	}
}

func TestEncode_OddLength(t *testing.T) {
	if _, err := Encode("abc"); !errors.Is(err, ErrOddLengthHex) {
		t.Errorf("error = %v, want ErrOddLengthHex", err)
	}
}

func TestEncode_InvalidHex(t *testing.T) {
	if _, err := Encode("zz"); !errors.Is(err, ErrInvalidHex) {
		t.Errorf("error = %v, want ErrInvalidHex", err)
	}
}

func TestRoundTrip(t *testing.T) {
	for n := 0; n < 64; n++ {
		payload := make([]byte, n)
		if _, err := rand.Read(payload); err != nil {
			t.Fatalf("rand: %v", err)
		}
		h := hex.EncodeToString(payload)
		enc, err := Encode(h)
		if err != nil {
			t.Fatalf("Encode() error: %v", err)
		}
		dec, err := Decode(enc)
		if err != nil {
			t.Fatalf("Decode(%q) error: %v", enc, err)
		}
		if dec != h {
			t.Fatalf("round trip = %q, want %q", dec, h)
		}
	}
}

func TestDecode_UppercaseHexInput(t *testing.T) {
	enc, err := Encode("ABCDEF")
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	dec, err := Decode(enc)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if dec != "abcdef" {
		t.Errorf("Decode() = %q, want lowercase abcdef", dec)
	}
}

func TestDecode_ChecksumRejection(t *testing.T) {
	enc, err := Encode("00f54a5851e9372b87810a8e60cdd2e7cfd80b6e31")
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	raw, err := base58.Decode(enc)
	if err != nil {
		t.Fatalf("base58.Decode() error: %v", err)
	}

	for i := range raw {
		tampered := append([]byte(nil), raw...)
		tampered[i] ^= 0x01
		_, err := Decode(base58.Encode(tampered))
		if !errors.Is(err, ErrChecksumMismatch) {
			t.Errorf("byte %d flipped: error = %v, want ErrChecksumMismatch", i, err)
		}
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []string{
		"",
		"0OIl",
		"1PMycacnJaSqwwJqjawXBErnLsZ7RkXUA0",
		"abc+def",
	}
	for _, s := range tests {
		if _, err := Decode(s); !errors.Is(err, ErrMalformedEncoding) {
			t.Errorf("Decode(%q) error = %v, want ErrMalformedEncoding", s, err)
		}
	}
}

func TestDecode_TooShort(t *testing.T) {
	// Three bytes cannot hold a four-byte checksum.
	_, err := Decode(base58.Encode([]byte{1, 2, 3}))
	if !errors.Is(err, ErrChecksumMismatch) {
		t.Errorf("error = %v, want ErrChecksumMismatch", err)
	}
}

func TestEncodeBytes_MatchesBtcutil(t *testing.T) {
	for n := 1; n < 40; n++ {
		payload := make([]byte, n)
		if _, err := rand.Read(payload); err != nil {
			t.Fatalf("rand: %v", err)
		}
		want := btcbase58.CheckEncode(payload[1:], payload[0])
		if got := EncodeBytes(payload); got != want {
			t.Fatalf("EncodeBytes(%x) = %q, btcutil %q", payload, got, want)
		}
	}
}
