package wallet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Klingon-tech/klingnet-keygen/internal/log"
	"github.com/Klingon-tech/klingnet-keygen/pkg/bip39"
)

// Prompter asks the user for input.
type Prompter interface {
	// Line prints prompt and returns one line of input.
	Line(prompt string) (string, error)
	// Password is like Line but does not echo the input when possible.
	Password(prompt string) (string, error)
}

// ErrInvalidMode is returned when the input mode answer is neither e nor m.
var ErrInvalidMode = errors.New("invalid input mode")

// Prompts shown by Session.
const (
	PromptMode     = "Input mode - [E]ntropy / [m]nemonic: "
	PromptEntropy  = "Entropy (length must be a multiple of 32, Enter for random):\n"
	PromptMnemonic = "Mnemonic:\n"
	PromptPassword = "Derivation password (Enter for no password): "
)

// Session is the interactive flow that turns user-supplied entropy or a
// mnemonic, plus an optional password, into a seed.
type Session struct {
	Prompter Prompter

	// EntropyBits sizes the random entropy used when the entropy answer
	// is empty. Zero means DefaultEntropyBits.
	EntropyBits int
}

// SessionResult is the outcome of a Session.
type SessionResult struct {
	// Mnemonic has every word fully spelled out.
	Mnemonic string
	Entropy  []byte
	Seed     []byte

	// Generated is set when the entropy came from crypto/rand.
	Generated bool
}

// Words returns the mnemonic words in order.
func (r *SessionResult) Words() []string {
	return strings.Fields(r.Mnemonic)
}

// Run asks for the input mode, the entropy or mnemonic, and the password.
func (s *Session) Run() (*SessionResult, error) {
	mode, err := s.Prompter.Line(PromptMode)
	if err != nil {
		return nil, fmt.Errorf("read mode: %w", err)
	}

	res := &SessionResult{}
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "e":
		if err := s.fromEntropy(res); err != nil {
			return nil, err
		}
	case "m":
		if err := s.fromMnemonic(res); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w %q, expected 'e' or 'm'", ErrInvalidMode, mode)
	}

	password, err := s.Prompter.Password(PromptPassword)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}

	seed, err := SeedFromMnemonic(res.Mnemonic, password)
	if err != nil {
		return nil, err
	}
	res.Seed = seed
	return res, nil
}

func (s *Session) fromEntropy(res *SessionResult) error {
	answer, err := s.Prompter.Line(PromptEntropy)
	if err != nil {
		return fmt.Errorf("read entropy: %w", err)
	}
	answer = strings.TrimSpace(answer)

	if answer == "" {
		bits := s.EntropyBits
		if bits == 0 {
			bits = DefaultEntropyBits
		}
		mnemonic, entropy, err := GenerateMnemonic(bits)
		if err != nil {
			return err
		}
		res.Mnemonic, res.Entropy, res.Generated = mnemonic, entropy, true
		return nil
	}

	mnemonic, err := bip39.EntropyToMnemonic(answer)
	if err != nil {
		return err
	}
	entropy, err := bip39.ParseBitString(answer)
	if err != nil {
		return err
	}
	log.Wallet.Debug().Int("bits", len(answer)).Msg("Mnemonic from entered entropy")
	res.Mnemonic, res.Entropy = mnemonic, entropy
	return nil
}

func (s *Session) fromMnemonic(res *SessionResult) error {
	answer, err := s.Prompter.Line(PromptMnemonic)
	if err != nil {
		return fmt.Errorf("read mnemonic: %w", err)
	}
	mnemonic, err := ResolveMnemonic(answer)
	if err != nil {
		return err
	}
	entropy, err := bip39.MnemonicToEntropy(mnemonic)
	if err != nil {
		return err
	}
	res.Mnemonic, res.Entropy = mnemonic, entropy
	return nil
}
