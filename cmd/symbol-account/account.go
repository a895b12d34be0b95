package main

import (
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"

	"symbol.dev/sdk/keys"
	"symbol.dev/sdk/network"
)

func (a *app) cmdAccount(args []string) int {
	if len(args) == 0 {
		printAccountUsage(a.errOut)
		return 2
	}
	switch args[0] {
	case "new":
		return a.cmdAccountNew(args[1:])
	case "from-key":
		return a.cmdAccountFromKey(args[1:])
	case "help", "-h", "--help":
		printAccountUsage(a.out)
		return 0
	default:
		fmt.Fprintf(a.errOut, "unknown account subcommand: %s\n\n", args[0])
		printAccountUsage(a.errOut)
		return 2
	}
}

func printAccountUsage(w io.Writer) {
	fmt.Fprintln(w, "symbol-account account: create or inspect accounts")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  symbol-account account new [--family nem|symbol] [--network <name>]")
	fmt.Fprintln(w, "  symbol-account account from-key --private-key <64hex> [--family nem|symbol] [--network <name>]")
}

func (a *app) cmdAccountNew(args []string) int {
	fs := flag.NewFlagSet("account new", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	nf := a.networkFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	n, code := a.resolve(nf)
	if code != 0 {
		return code
	}

	privateKey, err := keys.RandomPrivateKey()
	if err != nil {
		fmt.Fprintf(a.errOut, "generate private key: %v\n", err)
		return 1
	}
	a.printAccount(n, privateKey)
	return 0
}

func (a *app) cmdAccountFromKey(args []string) int {
	fs := flag.NewFlagSet("account from-key", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	nf := a.networkFlags(fs)
	var privateKeyHex string
	fs.StringVar(&privateKeyHex, "private-key", "", "Private key as 64 uppercase hex chars")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if privateKeyHex == "" {
		fmt.Fprintln(a.errOut, "missing --private-key")
		return 2
	}
	n, code := a.resolve(nf)
	if code != 0 {
		return code
	}

	privateKey, err := keys.PrivateKeyFromHex(privateKeyHex)
	if err != nil {
		fmt.Fprintf(a.errOut, "invalid --private-key: %v\n", err)
		return 2
	}
	a.printAccount(n, privateKey)
	return 0
}

func (a *app) printAccount(n network.Network, privateKey keys.PrivateKey) {
	kp := n.NewKeyPair(privateKey)
	defer kp.Erase()

	address := n.PublicKeyToAddress(kp.PublicKey())
	a.log.Info("account derived", zap.Stringer("network", n), zap.Stringer("address", address))

	fmt.Fprintf(a.out, "    address: %s\n", address)
	fmt.Fprintf(a.out, " public key: %s\n", kp.PublicKey())
	fmt.Fprintf(a.out, "private key: %s\n", kp.PrivateKey().RevealHex())
}
