// Package main is the entry point for the mnemonic demo.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/mnemonic/internal/demo"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	app, err := demo.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		app.Shutdown()
		os.Exit(1)
	}()

	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() demo.Options {
	var opts demo.Options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "mnemonic - access-key handler demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: mnemonic [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  Alt+letter   Invoke the element bound to that access key\n")
		fmt.Fprintf(os.Stderr, "  F10          Tap Alt: show mnemonics and open the menu\n")
		fmt.Fprintf(os.Stderr, "  Esc          Close the menu or dismiss the hints\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("mnemonic %s (%s)\n", version, commit)
		os.Exit(0)
	}
	return opts
}
