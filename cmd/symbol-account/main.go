package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lightningnetwork/lnd/clock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"symbol.dev/sdk/netconfig"
	"symbol.dev/sdk/network"
)

// Environment keys consulted for flag defaults.
const (
	envFamily         = "SDK_FAMILY"
	envNetwork        = "SDK_NETWORK"
	envNetworksConfig = "SDK_NETWORKS_CONFIG"
	envLogLevel       = "SDK_LOG_LEVEL"
)

func main() {
	// A missing .env is normal; anything else is worth reporting.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(1)
	}
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// app carries what every subcommand needs once global flags are parsed.
type app struct {
	out    io.Writer
	errOut io.Writer
	log    *zap.Logger
	clock  clock.Clock

	fileEnv        map[string]string
	networksConfig string
	locator        *network.Locator
}

// newClock is replaced in tests.
var newClock = clock.NewDefaultClock

func run(args []string, out io.Writer, errOut io.Writer) int {
	gfs := flag.NewFlagSet("symbol-account", flag.ContinueOnError)
	gfs.SetOutput(errOut)
	gfs.Usage = func() { printUsage(errOut) }

	var envFile, networksConfig, logLevel string
	gfs.StringVar(&envFile, "env-file", "", "Read flag defaults from a dotenv file")
	gfs.StringVar(&networksConfig, "networks-config", "", "JSON file with additional networks (default $"+envNetworksConfig+")")
	gfs.StringVar(&logLevel, "log-level", "", "Diagnostic log level: debug, info, warn, error (default $"+envLogLevel+" or warn)")
	if err := gfs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	args = gfs.Args()

	a := &app{out: out, errOut: errOut, clock: newClock()}
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		if err != nil {
			fmt.Fprintf(errOut, "read --env-file: %v\n", err)
			return 1
		}
		a.fileEnv = m
	}
	if logLevel == "" {
		logLevel = a.getenv(envLogLevel, "warn")
	}
	log, err := newLogger(errOut, logLevel)
	if err != nil {
		fmt.Fprintf(errOut, "invalid --log-level: %v\n", err)
		return 2
	}
	defer func() { _ = log.Sync() }()
	a.log = log
	a.networksConfig = networksConfig
	if a.networksConfig == "" {
		a.networksConfig = a.getenv(envNetworksConfig, "")
	}

	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}
	switch args[0] {
	case "account":
		return a.cmdAccount(args[1:])
	case "address":
		return a.cmdAddress(args[1:])
	case "timestamp":
		return a.cmdTimestamp(args[1:])
	case "networks":
		return a.cmdNetworks(args[1:])
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "symbol-account: NEM and Symbol account tool")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  symbol-account [--env-file <file>] [--networks-config <file>] [--log-level <level>] <command> ...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  account new [--family nem|symbol] [--network <name>]")
	fmt.Fprintln(w, "  account from-key --private-key <64hex> [--family nem|symbol] [--network <name>]")
	fmt.Fprintln(w, "  address from-public-key --public-key <64hex> [--family nem|symbol] [--network <name>]")
	fmt.Fprintln(w, "  address validate --address <base32> [--family nem|symbol] [--network <name>]")
	fmt.Fprintln(w, "  timestamp to-datetime --value <n> [--family nem|symbol] [--network <name>]")
	fmt.Fprintln(w, "  timestamp from-datetime --time <rfc3339> [--family nem|symbol] [--network <name>]")
	fmt.Fprintln(w, "  timestamp now [--family nem|symbol] [--network <name>]")
	fmt.Fprintln(w, "  networks list")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - family and network default to $"+envFamily+" and $"+envNetwork+", then symbol and mainnet")
	fmt.Fprintln(w, "  - a .env file in the working directory is loaded at startup; real environment variables win")
	fmt.Fprintln(w, "  - hex input is uppercase; private keys are printed only by account commands")
}

// getenv prefers the process environment over --env-file values.
func (a *app) getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	if v := a.fileEnv[key]; v != "" {
		return v
	}
	return fallback
}

func newLogger(w io.Writer, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, err
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), lvl)), nil
}

// networkFlags registers --family and --network on fs.
type networkFlags struct {
	family  string
	network string
}

func (a *app) networkFlags(fs *flag.FlagSet) *networkFlags {
	nf := &networkFlags{}
	fs.StringVar(&nf.family, "family", a.getenv(envFamily, "symbol"), "Network family: nem or symbol")
	fs.StringVar(&nf.network, "network", a.getenv(envNetwork, "mainnet"), "Network name")
	return nf
}

func (a *app) loadLocator() (*network.Locator, error) {
	if a.locator != nil {
		return a.locator, nil
	}
	if a.networksConfig == "" {
		l, err := network.NewLocator(network.Builtins(), network.WithLogger(a.log))
		if err != nil {
			return nil, err
		}
		a.locator = l
		return l, nil
	}

	cfg, err := netconfig.LoadFile(a.networksConfig)
	if err != nil {
		return nil, err
	}
	l, err := cfg.Locator(true, network.WithLogger(a.log))
	if err != nil {
		return nil, err
	}
	a.log.Info("loaded networks config", zap.String("path", a.networksConfig), zap.Int("networks", len(cfg.Networks)))
	a.locator = l
	return l, nil
}

// resolve returns the selected network, or prints the problem and returns a
// non-zero exit code.
func (a *app) resolve(nf *networkFlags) (network.Network, int) {
	family, err := network.ParseFamily(nf.family)
	if err != nil {
		fmt.Fprintf(a.errOut, "invalid --family: %v\n", err)
		return network.Network{}, 2
	}
	l, err := a.loadLocator()
	if err != nil {
		fmt.Fprintf(a.errOut, "networks config: %v\n", err)
		return network.Network{}, 1
	}
	n, err := l.FindByName(family, nf.network)
	if err != nil {
		fmt.Fprintf(a.errOut, "invalid --network: %v\n", err)
		return network.Network{}, 2
	}
	a.log.Debug("network selected", zap.Stringer("network", n), zap.Uint8("identifier", n.Identifier()))
	return n, 0
}

func (a *app) cmdNetworks(args []string) int {
	if len(args) == 0 || args[0] != "list" {
		fmt.Fprintln(a.errOut, "usage: symbol-account networks list")
		return 2
	}
	l, err := a.loadLocator()
	if err != nil {
		fmt.Fprintf(a.errOut, "networks config: %v\n", err)
		return 1
	}
	for _, n := range l.Networks() {
		fmt.Fprintf(a.out, "%s\t0x%02X\t%s\n", n, n.Identifier(), n.Epoch().Format(time.RFC3339))
	}
	return 0
}
