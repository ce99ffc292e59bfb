package wallet

import (
	"errors"
	"strings"
	"testing"

	"github.com/Klingon-tech/klingnet-keygen/pkg/bip39"
)

func TestGenerateMnemonic(t *testing.T) {
	tests := []struct {
		bits  int
		words int
	}{
		{128, 12},
		{160, 15},
		{256, 24},
	}
	for _, tt := range tests {
		mnemonic, entropy, err := GenerateMnemonic(tt.bits)
		if err != nil {
			t.Fatalf("GenerateMnemonic(%d) error: %v", tt.bits, err)
		}
		if got := len(strings.Fields(mnemonic)); got != tt.words {
			t.Errorf("GenerateMnemonic(%d) word count = %d, want %d", tt.bits, got, tt.words)
		}
		if len(entropy)*8 != tt.bits {
			t.Errorf("GenerateMnemonic(%d) entropy = %d bits", tt.bits, len(entropy)*8)
		}
	}
}

func TestGenerateMnemonic_Unique(t *testing.T) {
	m1, _, err := GenerateMnemonic(DefaultEntropyBits)
	if err != nil {
		t.Fatalf("GenerateMnemonic() error: %v", err)
	}
	m2, _, err := GenerateMnemonic(DefaultEntropyBits)
	if err != nil {
		t.Fatalf("GenerateMnemonic() error: %v", err)
	}

	if m1 == m2 {
		t.Error("two generated mnemonics should not be identical")
	}
}

func TestGenerateMnemonic_Valid(t *testing.T) {
	mnemonic, entropy, err := GenerateMnemonic(256)
	if err != nil {
		t.Fatalf("GenerateMnemonic() error: %v", err)
	}

	if !ValidateMnemonic(mnemonic) {
		t.Error("generated mnemonic should validate")
	}

	// The returned entropy renders to the same mnemonic.
	again, err := bip39.EntropyToMnemonic(bip39.FormatBitString(entropy))
	if err != nil || again != mnemonic {
		t.Errorf("EntropyToMnemonic(entropy) = %q, %v", again, err)
	}
}

func TestGenerateEntropy_InvalidBits(t *testing.T) {
	for _, bits := range []int{-32, 0, 100, 127, bip39.MaxEntropyBits + 32} {
		_, err := GenerateEntropy(bits)
		if !errors.Is(err, bip39.ErrInvalidEntropyLength) {
			t.Errorf("GenerateEntropy(%d) err = %v, want ErrInvalidEntropyLength", bits, err)
		}
		var lenErr *bip39.EntropyLengthError
		if errors.As(err, &lenErr) && lenErr.Bits != bits {
			t.Errorf("EntropyLengthError.Bits = %d, want %d", lenErr.Bits, bits)
		}
	}
}

func TestValidateMnemonic(t *testing.T) {
	tests := []struct {
		name     string
		mnemonic string
		valid    bool
	}{
		{
			name:     "valid 24-word BIP-39",
			mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art",
			valid:    true,
		},
		{
			name:     "valid 12-word BIP-39",
			mnemonic: testMnemonic,
			valid:    true,
		},
		{
			name:     "abbreviated words",
			mnemonic: "aban aban aban aban aban aban aban aban aban aban aban abou",
			valid:    true,
		},
		{
			name:     "empty string",
			mnemonic: "",
			valid:    false,
		},
		{
			name:     "random words",
			mnemonic: "not a valid mnemonic phrase at all",
			valid:    false,
		},
		{
			name:     "wrong checksum",
			mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon",
			valid:    false,
		},
		{
			name:     "single word",
			mnemonic: "abandon",
			valid:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateMnemonic(tt.mnemonic); got != tt.valid {
				t.Errorf("ValidateMnemonic() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestResolveMnemonic(t *testing.T) {
	got, err := ResolveMnemonic("aban aban aban aban aban aban aban aban aban aban aban abou")
	if err != nil {
		t.Fatalf("ResolveMnemonic() error: %v", err)
	}
	if got != testMnemonic {
		t.Errorf("ResolveMnemonic() = %q, want %q", got, testMnemonic)
	}
}

func TestResolveMnemonic_Errors(t *testing.T) {
	tests := []struct {
		name     string
		mnemonic string
		want     error
	}{
		{"checksum", strings.Repeat("abandon ", 11) + "above", bip39.ErrChecksumMismatch},
		{"unknown word", strings.Repeat("abandon ", 11) + "xyzzy", bip39.ErrUnknownWord},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ResolveMnemonic(tt.mnemonic); !errors.Is(err, tt.want) {
				t.Errorf("ResolveMnemonic() err = %v, want %v", err, tt.want)
			}
		})
	}
}
