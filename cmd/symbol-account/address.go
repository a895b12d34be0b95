package main

import (
	"flag"
	"fmt"
	"io"

	"symbol.dev/sdk/keys"
)

func (a *app) cmdAddress(args []string) int {
	if len(args) == 0 {
		printAddressUsage(a.errOut)
		return 2
	}
	switch args[0] {
	case "from-public-key":
		return a.cmdAddressFromPublicKey(args[1:])
	case "validate":
		return a.cmdAddressValidate(args[1:])
	case "help", "-h", "--help":
		printAddressUsage(a.out)
		return 0
	default:
		fmt.Fprintf(a.errOut, "unknown address subcommand: %s\n\n", args[0])
		printAddressUsage(a.errOut)
		return 2
	}
}

func printAddressUsage(w io.Writer) {
	fmt.Fprintln(w, "symbol-account address: derive and check addresses")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  symbol-account address from-public-key --public-key <64hex> [--family nem|symbol] [--network <name>]")
	fmt.Fprintln(w, "  symbol-account address validate --address <base32> [--family nem|symbol] [--network <name>]")
}

func (a *app) cmdAddressFromPublicKey(args []string) int {
	fs := flag.NewFlagSet("address from-public-key", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	nf := a.networkFlags(fs)
	var publicKeyHex string
	fs.StringVar(&publicKeyHex, "public-key", "", "Public key as 64 uppercase hex chars")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if publicKeyHex == "" {
		fmt.Fprintln(a.errOut, "missing --public-key")
		return 2
	}
	publicKey, err := keys.PublicKeyFromHex(publicKeyHex)
	if err != nil {
		fmt.Fprintf(a.errOut, "invalid --public-key: %v\n", err)
		return 2
	}
	n, code := a.resolve(nf)
	if code != 0 {
		return code
	}

	_, _ = fmt.Fprintln(a.out, n.PublicKeyToAddress(publicKey))
	return 0
}

func (a *app) cmdAddressValidate(args []string) int {
	fs := flag.NewFlagSet("address validate", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	nf := a.networkFlags(fs)
	var address string
	fs.StringVar(&address, "address", "", "Address in base32 text form")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if address == "" {
		fmt.Fprintln(a.errOut, "missing --address")
		return 2
	}
	n, code := a.resolve(nf)
	if code != 0 {
		return code
	}

	if !n.IsValidAddressString(address) {
		fmt.Fprintf(a.errOut, "invalid: %s is not a %s address\n", address, n)
		return 1
	}
	_, _ = fmt.Fprintln(a.out, "OK")
	return 0
}
