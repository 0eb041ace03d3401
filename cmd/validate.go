// =============================================================================
// goAML Report Validator - Validate Command
// =============================================================================
//
// Runs one validation batch: loads the configuration, the SWIFT lookup
// table, and the word dictionary, drives the engine over the input
// directory, and writes the issue artifacts.
//
// A missing dictionary only disables the account-number word scan; the batch
// still runs. A missing SWIFT table is fatal because the institution
// cross-check cannot run without it.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/RivinJayawardhana/GoAML-dekstop-tool/internal/artifacts"
	"github.com/RivinJayawardhana/GoAML-dekstop-tool/internal/batch"
	"github.com/RivinJayawardhana/GoAML-dekstop-tool/internal/config"
	"github.com/RivinJayawardhana/GoAML-dekstop-tool/internal/dictionary"
)

var (
	inputDir  string
	outputDir string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate all goAML reports in the input directory",
	Long: `Validate every goAML XML report in the input directory against the
configured business-rule catalog.

Flagged issues are written to the output directory as a spreadsheet (and a
CSV overflow when the row count exceeds the spreadsheet ceiling), together
with the upload ids of the reports that need correction.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&inputDir, "input", "", "input directory (overrides the configuration)")
	validateCmd.Flags().StringVar(&outputDir, "output", "", "output directory (overrides the configuration)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer logger.Sync()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if inputDir != "" {
		cfg.InputDir = inputDir
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}

	table, err := config.LoadSwiftTable(cfg.SwiftCodesFile)
	if err != nil {
		return err
	}
	logger.Info("swift lookup table loaded",
		zap.String("file", cfg.SwiftCodesFile), zap.Int("prefixes", table.Len()))

	words, err := dictionary.Load(cfg.DictionaryFile)
	if err != nil {
		logger.Warn("dictionary unavailable, account-number word scan disabled",
			zap.String("file", cfg.DictionaryFile), zap.Error(err))
		words = dictionary.New(nil)
	}

	driver := batch.New(cfg, table, words, logger)
	result, err := driver.Run()
	if err != nil {
		return err
	}

	writer := artifacts.NewWriter(cfg, logger)
	if _, err := writer.WriteIssues(result.Issues); err != nil {
		return err
	}
	if _, err := writer.WriteFlaggedUploadIDs(result.FlaggedUploadIDs); err != nil {
		return err
	}

	fmt.Printf("Processed %d of %d reports (%d skipped)\n",
		result.ReportsProcessed, result.FilesFound, result.SkippedFiles)
	fmt.Printf("Issues: %d in %d reports, invalid transactions: %d\n",
		len(result.Issues), len(result.FlaggedUploadIDs), result.InvalidTransactions)
	if result.StoppedEarly {
		fmt.Println("Batch stopped early at the memory ceiling; results are partial")
	}
	return nil
}
