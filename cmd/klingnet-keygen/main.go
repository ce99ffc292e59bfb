// klingnet-keygen generates BIP-39 mnemonics, seeds and BIP-84 addresses
// locally, without touching the network.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Klingon-tech/klingnet-keygen/config"
	"github.com/Klingon-tech/klingnet-keygen/internal/log"
	"github.com/Klingon-tech/klingnet-keygen/internal/prompt"
	"github.com/Klingon-tech/klingnet-keygen/pkg/types"
)

func main() {
	flags, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			usage(os.Stdout)
			os.Exit(0)
		}
		usage(os.Stderr)
		fatal("%v", err)
	}
	if len(flags.Args) == 0 {
		usage(os.Stderr)
		os.Exit(1)
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fatal("%v", err)
	}
	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		fatal("init logging: %v", err)
	}
	hrp, err := types.HRPForNetwork(string(cfg.Network))
	if err != nil {
		fatal("%v", err)
	}
	log.Config.Debug().
		Str("network", string(cfg.Network)).
		Str("path", cfg.Derivation.BasePath()).
		Int("count", cfg.Derivation.Count).
		Msg("Configuration loaded")

	a := &app{
		cfg:    cfg,
		hrp:    hrp,
		out:    os.Stdout,
		errOut: os.Stderr,
		prompt: prompt.New(os.Stdin, os.Stderr),
	}

	if err := a.run(flags.Args[0], flags.Args[1:]); err != nil {
		var status exitStatus
		if errors.As(err, &status) {
			os.Exit(int(status))
		}
		if errors.Is(err, errUnknownCommand) {
			usage(os.Stderr)
		}
		fatal("%v", err)
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, `Usage: klingnet-keygen [global flags] <command> [flags]

Global flags:
  --config, -c <path>   Config file (default: %s)
  --network <net>       mainnet (default) or testnet
  --testnet             Shorthand for --network=testnet
  --log-level <lvl>     debug, info, warn (default), error
  --log-file <path>     Also write JSON logs to this file
  --log-json            Write logs to stderr as JSON

Commands:
  generate [--bits <n>]               Generate random entropy and its mnemonic
  mnemonic --entropy <bits>           Convert a 0/1 entropy string to a mnemonic
  complete --mnemonic "..."           Expand abbreviated mnemonic words
  validate --mnemonic "..."           Check a mnemonic's checksum (exit 1 if invalid)
  seed --mnemonic "..." [--password <p> | --ask-password]
                                      Derive the 64-byte BIP-39 seed
  addresses [--count <n>] [--account <a>] [--change <c>] [--start <i>]
                                      Interactive: entropy or mnemonic, password,
                                      then BIP-84 P2WPKH addresses
  derive --mnemonic "..." [--path <p>] [--password <p> | --ask-password] [--show-private]
                                      Show the key and address at one path
  b58encode <hex>                     Base58Check-encode a hex payload
  b58decode <base58>                  Decode and verify a Base58Check string

Examples:
  klingnet-keygen mnemonic --entropy 00000000000000000000000000000000...
  klingnet-keygen complete --mnemonic "aban aban aban aban aban aban aban aban aban aban aban abou"
  klingnet-keygen --testnet addresses --count 5
`, config.DefaultConfigFile())
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
