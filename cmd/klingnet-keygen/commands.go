package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/Klingon-tech/klingnet-keygen/config"
	"github.com/Klingon-tech/klingnet-keygen/internal/log"
	"github.com/Klingon-tech/klingnet-keygen/internal/wallet"
	"github.com/Klingon-tech/klingnet-keygen/pkg/base58check"
	"github.com/Klingon-tech/klingnet-keygen/pkg/bip39"
)

var errUnknownCommand = errors.New("unknown command")

// exitStatus ends the program with the given code and no error message.
type exitStatus int

func (s exitStatus) Error() string {
	return fmt.Sprintf("exit status %d", int(s))
}

// app carries what every command needs. Results go to out; prompts and
// diagnostics go to errOut.
type app struct {
	cfg    *config.Config
	hrp    string
	out    io.Writer
	errOut io.Writer
	prompt wallet.Prompter
}

func (a *app) run(cmd string, args []string) error {
	log.CLI.Debug().Str("command", cmd).Msg("Running command")

	switch cmd {
	case "generate":
		return a.cmdGenerate(args)
	case "mnemonic":
		return a.cmdMnemonic(args)
	case "complete":
		return a.cmdComplete(args)
	case "validate":
		return a.cmdValidate(args)
	case "seed":
		return a.cmdSeed(args)
	case "addresses":
		return a.cmdAddresses(args)
	case "derive":
		return a.cmdDerive(args)
	case "b58encode":
		return a.cmdB58Encode(args)
	case "b58decode":
		return a.cmdB58Decode(args)
	case "help":
		usage(a.out)
		return nil
	default:
		return fmt.Errorf("%w %q", errUnknownCommand, cmd)
	}
}

func (a *app) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitStatus(0)
		}
		return exitStatus(2)
	}
	return nil
}

// mnemonicArg returns --mnemonic, or the positional words joined by single
// spaces when the flag is absent.
func mnemonicArg(flagValue string, fs *flag.FlagSet) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if fs.NArg() == 0 {
		return "", fmt.Errorf("%s: --mnemonic is required", fs.Name())
	}
	return strings.Join(fs.Args(), " "), nil
}

// ── Mnemonic commands ───────────────────────────────────────────────────

func (a *app) cmdGenerate(args []string) error {
	fs := a.flagSet("generate")
	bits := fs.Int("bits", a.cfg.EntropyBits, "Entropy size in bits (multiple of 32)")
	if err := parse(fs, args); err != nil {
		return err
	}

	mnemonic, entropy, err := wallet.GenerateMnemonic(*bits)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Entropy (%d bits):\n%s\n", *bits, bip39.FormatBitString(entropy))
	fmt.Fprintf(a.out, "Mnemonic:\n%s\n", mnemonic)
	return nil
}

func (a *app) cmdMnemonic(args []string) error {
	fs := a.flagSet("mnemonic")
	entropy := fs.String("entropy", "", "Entropy as a string of 0 and 1 characters")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *entropy == "" && fs.NArg() == 1 {
		*entropy = fs.Arg(0)
	}
	if *entropy == "" {
		return fmt.Errorf("mnemonic: --entropy is required")
	}

	mnemonic, err := bip39.EntropyToMnemonic(strings.TrimSpace(*entropy))
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, mnemonic)
	return nil
}

func (a *app) cmdComplete(args []string) error {
	fs := a.flagSet("complete")
	m := fs.String("mnemonic", "", "Mnemonic, words may be abbreviated to 4+ letters")
	if err := parse(fs, args); err != nil {
		return err
	}
	mnemonic, err := mnemonicArg(*m, fs)
	if err != nil {
		return err
	}

	words, err := bip39.FillMnemonicWords(mnemonic)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, strings.Join(words, " "))
	return nil
}

func (a *app) cmdValidate(args []string) error {
	fs := a.flagSet("validate")
	m := fs.String("mnemonic", "", "Mnemonic, words may be abbreviated to 4+ letters")
	if err := parse(fs, args); err != nil {
		return err
	}
	mnemonic, err := mnemonicArg(*m, fs)
	if err != nil {
		return err
	}

	valid, err := bip39.IsMnemonicValid(mnemonic)
	if err != nil {
		return err
	}
	if !valid {
		fmt.Fprintln(a.out, "invalid (checksum mismatched)")
		return exitStatus(1)
	}
	fmt.Fprintln(a.out, "valid")
	return nil
}

func (a *app) cmdSeed(args []string) error {
	fs := a.flagSet("seed")
	m := fs.String("mnemonic", "", "Mnemonic, words may be abbreviated to 4+ letters")
	password := fs.String("password", "", "Derivation password")
	ask := fs.Bool("ask-password", false, "Prompt for the derivation password")
	if err := parse(fs, args); err != nil {
		return err
	}
	mnemonic, err := mnemonicArg(*m, fs)
	if err != nil {
		return err
	}
	if *ask {
		if *password != "" {
			return fmt.Errorf("seed: --password and --ask-password are mutually exclusive")
		}
		*password, err = a.prompt.Password(wallet.PromptPassword)
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
	}

	seed, err := wallet.SeedFromMnemonic(mnemonic, *password)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, hex.EncodeToString(seed))
	return nil
}

// ── Addresses ───────────────────────────────────────────────────────────

func (a *app) cmdAddresses(args []string) error {
	d := a.cfg.Derivation

	fs := a.flagSet("addresses")
	count := fs.Int("count", d.Count, "Number of addresses to derive")
	account := fs.Uint("account", uint(d.Account), "Account index (hardened)")
	change := fs.Uint("change", uint(d.Change), "Chain: 0 receive, 1 change")
	start := fs.Uint("start", 0, "First address index")
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("addresses: unexpected argument %q", fs.Arg(0))
	}

	if *count < 1 || *count > config.MaxAddressCount {
		return fmt.Errorf("addresses: --count must be in range [1, %d]", config.MaxAddressCount)
	}
	for _, v := range []struct {
		name  string
		value uint
	}{{"account", *account}, {"change", *change}, {"start", *start}} {
		if v.value >= 1<<31 {
			return fmt.Errorf("addresses: --%s must be below %d", v.name, uint(1<<31))
		}
	}
	d.Account = uint32(*account)
	d.Change = uint32(*change)

	session := &wallet.Session{Prompter: a.prompt, EntropyBits: a.cfg.EntropyBits}
	res, err := session.Run()
	if err != nil {
		return err
	}

	if res.Generated {
		fmt.Fprintf(a.out, "> entropy (%d bits) %s\n", len(res.Entropy)*8, strings.Repeat("=", 40))
		fmt.Fprintln(a.out, bip39.FormatBitString(res.Entropy))
	}
	fmt.Fprintln(a.out, "> mnemonic seed phrase (english dictionary) =======================")
	for i, word := range res.Words() {
		fmt.Fprintf(a.out, "#%d %s\n", i+1, word)
	}

	addrs, err := wallet.DeriveAddresses(res.Seed, d.BasePath(), uint32(*start), *count, a.hrp)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "> addresses | public key hash160 ==================================")
	for _, addr := range addrs {
		fmt.Fprintf(a.out, "%s - %s | %s\n", addr.Path, addr.Address, addr.Hash160.Hex())
	}
	return nil
}

func (a *app) cmdDerive(args []string) error {
	fs := a.flagSet("derive")
	m := fs.String("mnemonic", "", "Mnemonic, words may be abbreviated to 4+ letters")
	password := fs.String("password", "", "Derivation password")
	ask := fs.Bool("ask-password", false, "Prompt for the derivation password")
	path := fs.String("path", "", "Derivation path (default: first address of the configured chain)")
	showPrivate := fs.Bool("show-private", false, "Also print the WIF private key and extended private key")
	if err := parse(fs, args); err != nil {
		return err
	}
	mnemonic, err := mnemonicArg(*m, fs)
	if err != nil {
		return err
	}
	if *path == "" {
		*path = a.cfg.Derivation.BasePath() + "/0"
	}
	if *ask {
		*password, err = a.prompt.Password(wallet.PromptPassword)
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
	}

	seed, err := wallet.SeedFromMnemonic(mnemonic, *password)
	if err != nil {
		return err
	}
	master, err := wallet.NewMasterKey(seed)
	if err != nil {
		return err
	}
	key, err := master.DerivePathString(*path)
	if err != nil {
		return err
	}
	hash, err := key.WitnessPubKeyHash()
	if err != nil {
		return err
	}
	addr, err := hash.Encode(a.hrp)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Path:     %s\n", *path)
	fmt.Fprintf(a.out, "Pubkey:   %s\n", hex.EncodeToString(key.PublicKeyBytes()))
	fmt.Fprintf(a.out, "Hash160:  %s\n", hash.Hex())
	fmt.Fprintf(a.out, "Address:  %s\n", addr)
	fmt.Fprintf(a.out, "Xpub:     %s\n", key.Neuter().String())
	if !*showPrivate {
		return nil
	}

	version, err := wallet.WIFVersion(string(a.cfg.Network))
	if err != nil {
		return err
	}
	wif, err := key.WIF(version)
	if err != nil {
		return err
	}
	log.CLI.Warn().Msg("Printing private key material")
	fmt.Fprintf(a.out, "WIF:      %s\n", wif)
	fmt.Fprintf(a.out, "Xprv:     %s\n", key.String())
	return nil
}

// ── Base58Check ─────────────────────────────────────────────────────────

func (a *app) cmdB58Encode(args []string) error {
	fs := a.flagSet("b58encode")
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: klingnet-keygen b58encode <hex>")
	}

	encoded, err := base58check.Encode(fs.Arg(0))
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, encoded)
	return nil
}

func (a *app) cmdB58Decode(args []string) error {
	fs := a.flagSet("b58decode")
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: klingnet-keygen b58decode <base58>")
	}

	decoded, err := base58check.Decode(fs.Arg(0))
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, decoded)
	return nil
}
