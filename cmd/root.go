// =============================================================================
// goAML Report Validator - Root Command
// =============================================================================
//
// Base command of the CLI. Subcommands:
//   validate  - run a validation batch over the input directory
//   config    - print the effective configuration
//   version   - display version information
//
// The root command owns the global flags (--config, --verbose) and the
// logger setup shared by all subcommands.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cfgFile is the path to the YAML configuration file, overridable with
// --config.
var cfgFile string

// verbose switches the logger to development output.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "goaml",
	Short: "goAML Report Validator - Check regulatory reports before submission",
	Long: `goAML Report Validator checks goAML XML reports against the reporting
entity's business-rule catalog before they are submitted to the regulator.

It validates transaction dates, amounts, report-type topology, and the
person, entity, and account records embedded in each transaction, then
writes the flagged issues and the upload ids of affected reports to the
output directory.

Example Usage:
  goaml validate                       # Validate all reports in the input directory
  goaml validate --input ./reports     # Override the configured input directory
  goaml config                         # Print the effective configuration`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "goaml.yaml", "path to the configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// newLogger builds the process logger: human-readable development output
// under --verbose, JSON production output otherwise.
func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
