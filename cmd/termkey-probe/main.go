// Package main is the termkey-probe binary: a raw-mode key echo loop
// showing how each press decodes.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/dshills/termkey"
	"github.com/dshills/termkey/capability"
	"github.com/dshills/termkey/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	var termName string
	var configPath string
	var timeout time.Duration

	flag.StringVar(&termName, "term", os.Getenv("TERM"), "Terminal type to load capabilities for")
	flag.StringVar(&configPath, "config", "", "Path to a TOML options file")
	flag.DurationVar(&timeout, "timeout", -1, "Per-key timeout (negative blocks)")
	flag.Parse()

	opts, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	mapping := lookupMapping(termName)

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		fmt.Fprintln(os.Stderr, "Error: stdin is not a terminal")
		return 1
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: entering raw mode: %v\n", err)
		return 1
	}
	defer term.Restore(fd, oldState)

	session := termkey.NewSession(termkey.NewFileReader(os.Stdin), mapping, opts.SessionOptions()...)

	fmt.Print("press keys to decode them; q or Ctrl-C quits\r\n")
	for {
		ks, err := session.Inkey(timeout)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0
			}
			fmt.Fprintf(os.Stderr, "Error: %v\r\n", err)
			return 1
		}
		switch {
		case ks.Text() == "":
			fmt.Print("timeout\r\n")
		case ks.IsSequence():
			fmt.Printf("%s  bytes=%q code=%d\r\n", ks.Name(), ks.Text(), ks.Code())
		default:
			fmt.Printf("%q\r\n", ks.Text())
		}
		if ks.Text() == "q" || ks.Text() == "\x03" {
			return 0
		}
	}
}

// lookupMapping builds the resolution table for the terminal type,
// falling back to the well-known defaults when the database has no
// entry.
func lookupMapping(name string) *termkey.SequenceMapping {
	if name != "" {
		if table, err := capability.ForTerm(name); err == nil {
			return table.Mapping()
		}
		fmt.Fprintf(os.Stderr, "warning: no capabilities for %q, using defaults\n", name)
	}
	return termkey.NewSequenceMapping(nil, termkey.WithDefaults())
}
