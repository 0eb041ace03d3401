// =============================================================================
// goAML Report Validator - Config Command
// =============================================================================
//
// Prints the effective configuration after defaults and validation, so the
// parameters of a run can be checked before pointing the tool at a report
// directory.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/RivinJayawardhana/GoAML-dekstop-tool/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Load the configuration file, apply defaults, validate it, and print the
result. Fails with the same errors a validation run would.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to render configuration: %w", err)
		}
		fmt.Printf("Configuration Parameters (%s):\n", cfgFile)
		fmt.Print(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
