// =============================================================================
// goAML Report Validator - Main Entry Point
// =============================================================================
//
// Entry point for the goAML Report Validator CLI. Initializes the Cobra CLI
// framework and delegates command execution to the cmd package.
//
// USAGE:
//   goaml validate   - Validate all goAML reports in the input directory
//   goaml config     - Print the effective configuration
//   goaml version    - Display the application version
//
// ARCHITECTURE:
//   cmd/            : CLI command definitions (Cobra)
//   internal/       : Core engine (config, report model, validators, batch)
//   pkg/            : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/RivinJayawardhana/GoAML-dekstop-tool/cmd"
)

func main() {
	cmd.Execute()
}
