// Package main is the entry point for the hcpconf CLI.
//
// hcpconf loads, validates, and generates the deployment configuration for
// hub clusters hosting client clusters on bare-metal infrastructure. It
// reports every problem in a document in one pass so the edit/retry cycle
// stays short.
//
// Commands: init, validate, show, version, completion.
//
// For detailed usage information, run:
//
//	hcpconf --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/hcpconf/cmd/hcpconf/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
