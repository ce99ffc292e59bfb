package wallet

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

func TestWIF_BIP84(t *testing.T) {
	master, _ := NewMasterKey(bip84Seed(t))
	key, err := master.DerivePathString("m/84'/0'/0'/0/0")
	if err != nil {
		t.Fatalf("DerivePathString() error: %v", err)
	}

	tests := []struct {
		version byte
		want    string
	}{
		{WIFMainnet, "KyZpNDKnfs94vbrwhJneDi77V6jF64PWPF8x5cdJb8ifgg2DUc9d"},
		{WIFTestnet, "cPvoq8Ke6vqL63LD5ibmb2cB7L2ekWVCTHHRC35p6FNfwR9nfRAm"},
	}
	for _, tt := range tests {
		got, err := key.WIF(tt.version)
		if err != nil {
			t.Fatalf("WIF() error: %v", err)
		}
		if got != tt.want {
			t.Errorf("WIF(0x%02x) = %s, want %s", tt.version, got, tt.want)
		}

		priv, version, compressed, err := ParseWIF(got)
		if err != nil {
			t.Fatalf("ParseWIF() error: %v", err)
		}
		if version != tt.version || !compressed {
			t.Errorf("ParseWIF() version = 0x%02x, compressed = %v", version, compressed)
		}
		if !bytes.Equal(priv.PublicKey(), key.PublicKeyBytes()) {
			t.Error("parsed key has a different public key")
		}
	}

	// The key material itself is untouched by WIF's zeroing of its copy.
	if hex.EncodeToString(key.PrivateKeyBytes()) != "4604b4b710fe91f584fff084e1a9159fe4f8408fff380596a604948474ce4fa3" {
		t.Errorf("private key = %x", key.PrivateKeyBytes())
	}
}

func TestWIF_PublicKeyOnly(t *testing.T) {
	master, _ := NewMasterKey(testSeed(t))
	if _, err := master.Neuter().WIF(WIFMainnet); err == nil {
		t.Error("WIF() from public key should return error")
	}
}

func TestParseWIF_Uncompressed(t *testing.T) {
	priv, version, compressed, err := ParseWIF("5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTJ")
	if err != nil {
		t.Fatalf("ParseWIF() error: %v", err)
	}
	if version != WIFMainnet || compressed {
		t.Errorf("version = 0x%02x, compressed = %v", version, compressed)
	}
	want := "0c28fca386c7a227600b2fe50b7cae11ec86d3bf1fbe471be89827e19d72aa1d"
	if got := hex.EncodeToString(priv.Serialize()); got != want {
		t.Errorf("key = %s, want %s", got, want)
	}
}

func TestParseWIF_Invalid(t *testing.T) {
	for _, s := range []string{
		"",
		"KyZpNDKnfs94vbrwhJneDi77V6jF64PWPF8x5cdJb8ifgg2DUc9e", // checksum
		"1PMycacnJaSqwwJqjawXBErnLsZ7RkXUAs",                   // address payload
	} {
		if _, _, _, err := ParseWIF(s); !errors.Is(err, ErrInvalidWIF) {
			t.Errorf("ParseWIF(%q) err = %v, want ErrInvalidWIF", s, err)
		}
	}
}

func TestWIFVersion(t *testing.T) {
	if v, err := WIFVersion("testnet"); err != nil || v != WIFTestnet {
		t.Errorf("WIFVersion(testnet) = 0x%02x, %v", v, err)
	}
	if v, err := WIFVersion("mainnet"); err != nil || v != WIFMainnet {
		t.Errorf("WIFVersion(mainnet) = 0x%02x, %v", v, err)
	}
	if _, err := WIFVersion("regtest"); err == nil {
		t.Error("expected error for unknown network")
	}
}
