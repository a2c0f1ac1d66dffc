/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command epistemic loads constant tables into a registry, freezes it and
// answers lookups from the command line.
package main

import (
	"os"

	"github.com/suparena/epistemic"
)

// Build information injected via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if version != "dev" {
		epistemic.Version = version
	}
	epistemic.GitCommit = commit
	epistemic.BuildDate = date

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
