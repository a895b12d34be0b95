package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"symbol.dev/sdk/timestamp"
)

func (a *app) cmdTimestamp(args []string) int {
	if len(args) == 0 {
		printTimestampUsage(a.errOut)
		return 2
	}
	switch args[0] {
	case "to-datetime":
		return a.cmdTimestampToDatetime(args[1:])
	case "from-datetime":
		return a.cmdTimestampFromDatetime(args[1:])
	case "now":
		return a.cmdTimestampNow(args[1:])
	case "help", "-h", "--help":
		printTimestampUsage(a.out)
		return 0
	default:
		fmt.Fprintf(a.errOut, "unknown timestamp subcommand: %s\n\n", args[0])
		printTimestampUsage(a.errOut)
		return 2
	}
}

func printTimestampUsage(w io.Writer) {
	fmt.Fprintln(w, "symbol-account timestamp: convert network timestamps")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  symbol-account timestamp to-datetime --value <n> [--family nem|symbol] [--network <name>]")
	fmt.Fprintln(w, "  symbol-account timestamp from-datetime --time <rfc3339> [--family nem|symbol] [--network <name>]")
	fmt.Fprintln(w, "  symbol-account timestamp now [--family nem|symbol] [--network <name>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - nem timestamps count seconds, symbol timestamps count milliseconds")
}

func (a *app) cmdTimestampToDatetime(args []string) int {
	fs := flag.NewFlagSet("timestamp to-datetime", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	nf := a.networkFlags(fs)
	var value int64
	fs.Int64Var(&value, "value", 0, "Network timestamp")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	n, code := a.resolve(nf)
	if code != 0 {
		return code
	}

	ts, err := timestamp.New(n.Family().TimestampUnit(), value)
	if err != nil {
		fmt.Fprintf(a.errOut, "timestamp: %v\n", err)
		return 1
	}
	t, err := n.ToDatetime(ts)
	if err != nil {
		fmt.Fprintf(a.errOut, "timestamp: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(a.out, t.UTC().Format(time.RFC3339Nano))
	return 0
}

func (a *app) cmdTimestampFromDatetime(args []string) int {
	fs := flag.NewFlagSet("timestamp from-datetime", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	nf := a.networkFlags(fs)
	var value string
	fs.StringVar(&value, "time", "", "Instant in RFC 3339 form")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if value == "" {
		fmt.Fprintln(a.errOut, "missing --time")
		return 2
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		fmt.Fprintf(a.errOut, "invalid --time: %v\n", err)
		return 2
	}
	n, code := a.resolve(nf)
	if code != 0 {
		return code
	}

	ts, err := n.FromDatetime(t)
	if err != nil {
		fmt.Fprintf(a.errOut, "timestamp: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(a.out, ts)
	return 0
}

func (a *app) cmdTimestampNow(args []string) int {
	fs := flag.NewFlagSet("timestamp now", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	nf := a.networkFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	n, code := a.resolve(nf)
	if code != 0 {
		return code
	}

	ts, err := n.Now(a.clock)
	if err != nil {
		fmt.Fprintf(a.errOut, "timestamp: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(a.out, ts)
	return 0
}
