package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// Flags holds the global command-line flags.
type Flags struct {
	Network string
	Config  string

	LogLevel string
	LogFile  string
	LogJSON  bool

	// Set* record flags given explicitly, so a false value can override
	// a true one from the config file.
	SetLogJSON bool

	// Args holds the command and its arguments.
	Args []string
}

// ParseFlags parses global flags from args (without the program name).
// Parsing stops at the first non-flag argument, the command name.
// flag.ErrHelp is returned for -h/--help.
func ParseFlags(args []string) (*Flags, error) {
	f := &Flags{}

	fs := flag.NewFlagSet("klingnet-keygen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var testnet bool
	fs.StringVar(&f.Network, "network", "", "Network type: mainnet or testnet")
	fs.BoolVar(&testnet, "testnet", false, "Shorthand for --network=testnet")
	fs.StringVar(&f.Config, "config", "", "Config file path")
	fs.StringVar(&f.Config, "c", "", "Config file path (shorthand)")

	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file path")
	fs.BoolVar(&f.LogJSON, "log-json", false, "Output logs as JSON")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if testnet {
		if f.Network != "" && f.Network != string(Testnet) {
			return nil, fmt.Errorf("--testnet conflicts with --network=%s", f.Network)
		}
		f.Network = string(Testnet)
	}
	f.SetLogJSON = isFlagSet(fs, "log-json")
	f.Args = fs.Args()

	return f, nil
}

// ApplyFlags overlays explicitly given flags onto cfg.
func ApplyFlags(cfg *Config, f *Flags) {
	if f.Network != "" {
		cfg.Network = NetworkType(f.Network)
	}
	if f.LogLevel != "" {
		cfg.Log.Level = strings.ToLower(f.LogLevel)
	}
	if f.LogFile != "" {
		cfg.Log.File = f.LogFile
	}
	if f.SetLogJSON {
		cfg.Log.JSON = f.LogJSON
	}
}

// Load builds the effective configuration: defaults, then the config file
// (f.Config, or DefaultConfigFile when empty), then flags. The result is
// validated.
func Load(f *Flags) (*Config, error) {
	path := f.Config
	if path == "" {
		path = DefaultConfigFile()
	}

	cfg, err := LoadFile(path, NetworkType(f.Network))
	if err != nil {
		return nil, err
	}
	ApplyFlags(cfg, f)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
