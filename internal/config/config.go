// =============================================================================
// goAML Report Validator - Configuration Module
// =============================================================================
//
// Loads and validates the application configuration. Two sources exist:
//   1. The main YAML file (goaml.yaml): rule thresholds, recognized report
//      types, memory ceilings, reporting-entity identity, directories.
//   2. The SWIFT lookup table (RE_swift_codes.csv): institution SWIFT-code
//      prefixes mapped to registered institution-name variants.
//
// Loading follows read -> unmarshal over defaults -> validate. Defaults are
// applied before unmarshalling so an explicit false/zero in the file is
// honored.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the full application configuration.
type Config struct {
	// InputDir is the directory scanned for goAML XML report files.
	InputDir string `yaml:"input_dir"`

	// OutputDir is the directory where issue artifacts are written.
	OutputDir string `yaml:"output_dir"`

	// SwiftCodesFile is the path to the SWIFT prefix lookup table (CSV).
	SwiftCodesFile string `yaml:"swift_codes_file"`

	// DictionaryFile is the path to the word list used by the account-number
	// scan, one word per line. When missing the scan is disabled with a
	// warning.
	DictionaryFile string `yaml:"dictionary_file"`

	// ReportingWindow is the maximum allowed days between transaction date
	// and submission date before a report counts as late.
	ReportingWindow int `yaml:"reporting_window"`

	// ReportStartDate is the first valid transaction date under the current
	// reporting schema (YYYY-MM-DD).
	ReportStartDate string `yaml:"report_start_date"`

	// ReportEndDate is the last date of the reporting period (YYYY-MM-DD).
	// Informational; echoed by the config command.
	ReportEndDate string `yaml:"report_end_date"`

	// CTRThreshold is the extreme-value ceiling for cash amounts. Amounts
	// above it suggest an EFT submitted under a cash report code.
	CTRThreshold float64 `yaml:"ctr_threshold"`

	// ReportTypes is the set of recognized report codes. Reports carrying
	// any other code are not processed.
	ReportTypes []string `yaml:"report_types"`

	// CashRuleReportTypes lists the report codes subject to the
	// extreme-threshold and round-amount rules. Kept configurable so the
	// rules can extend to other cash-like types without a code change.
	CashRuleReportTypes []string `yaml:"cash_rule_report_types"`

	// IncorpNumberRegTypes lists the legal forms for which an entity must
	// carry an incorporation number.
	IncorpNumberRegTypes []string `yaml:"incorp_number_reg_types"`

	// InvalidAccPrefixes are account-number prefixes known to mark
	// placeholder or migrated accounts.
	InvalidAccPrefixes []string `yaml:"invalid_acc_prefixes"`

	// InvalidAccChars are characters that never appear in a real account
	// number.
	InvalidAccChars []string `yaml:"invalid_acc_chars"`

	// SwiftNameMatchThreshold is the similarity score, in [0,1], an
	// institution name must strictly exceed against a registered variant for
	// the SWIFT cross-check to accept it.
	SwiftNameMatchThreshold float64 `yaml:"swift_name_match_threshold"`

	// CheckLateSubmissions toggles the late-submission rule.
	CheckLateSubmissions bool `yaml:"check_late_submissions"`

	// DomesticCountry is the ISO country code of the reporting jurisdiction.
	DomesticCountry string `yaml:"domestic_country"`

	// LocalInstitutionSwiftPrefixes are the SWIFT prefixes of the two kinds
	// of local institutions a non-client account may belong to (banks and
	// primary dealers).
	LocalInstitutionSwiftPrefixes []string `yaml:"local_institution_swift_prefixes"`

	// MemoryThresholdBreak is the hard heap ceiling in MB: above it the
	// batch stops early after a collection pass.
	MemoryThresholdBreak int `yaml:"memory_threshold_break"`

	// MemoryThresholdClean is the soft heap ceiling in MB: above it a
	// collection pass runs and the batch continues.
	MemoryThresholdClean int `yaml:"memory_threshold_clean"`

	// MaxRowsExcel caps the rows written to the spreadsheet artifact. The
	// full row set overflows into a CSV artifact when exceeded.
	MaxRowsExcel int `yaml:"max_rows_excel"`

	// ReportingEntity identifies the institution whose reports are checked.
	ReportingEntity ReportingEntity `yaml:"reporting_entity"`
}

// ReportingEntity is the identity of the institution running the batch.
type ReportingEntity struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Swift string `yaml:"swift"`
}

// Default returns the configuration used when the file omits a key.
func Default() *Config {
	return &Config{
		InputDir:                      "./input",
		OutputDir:                     "./validation_results",
		SwiftCodesFile:                "./RE_swift_codes.csv",
		DictionaryFile:                "./words.txt",
		ReportingWindow:               31,
		ReportStartDate:               "2022-01-01",
		CTRThreshold:                  100000000,
		ReportTypes:                   []string{"CTR", "EFT", "IFT"},
		CashRuleReportTypes:           []string{"CTR"},
		SwiftNameMatchThreshold:       0.75,
		CheckLateSubmissions:          true,
		DomesticCountry:               "LK",
		LocalInstitutionSwiftPrefixes: []string{"LKLX", "LKLC"},
		MemoryThresholdBreak:          4096,
		MemoryThresholdClean:          2048,
		MaxRowsExcel:                  900000,
	}
}

// Load reads the YAML configuration at path, fills defaults, and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the engine cannot run with.
func (c *Config) Validate() error {
	if c.ReportingWindow <= 0 {
		return fmt.Errorf("reporting_window must be positive, got %d", c.ReportingWindow)
	}
	if _, err := time.Parse("2006-01-02", c.ReportStartDate); err != nil {
		return fmt.Errorf("report_start_date %q is not a YYYY-MM-DD date", c.ReportStartDate)
	}
	if c.ReportEndDate != "" {
		if _, err := time.Parse("2006-01-02", c.ReportEndDate); err != nil {
			return fmt.Errorf("report_end_date %q is not a YYYY-MM-DD date", c.ReportEndDate)
		}
	}
	if len(c.ReportTypes) == 0 {
		return fmt.Errorf("report_types must name at least one recognized report code")
	}
	if c.SwiftNameMatchThreshold < 0 || c.SwiftNameMatchThreshold > 1 {
		return fmt.Errorf("swift_name_match_threshold must be in [0,1], got %v", c.SwiftNameMatchThreshold)
	}
	if c.CTRThreshold <= 0 {
		return fmt.Errorf("ctr_threshold must be positive, got %v", c.CTRThreshold)
	}
	if c.MemoryThresholdBreak <= 0 || c.MemoryThresholdClean <= 0 {
		return fmt.Errorf("memory thresholds must be positive")
	}
	if c.MemoryThresholdClean > c.MemoryThresholdBreak {
		return fmt.Errorf("memory_threshold_clean (%d MB) must not exceed memory_threshold_break (%d MB)",
			c.MemoryThresholdClean, c.MemoryThresholdBreak)
	}
	if c.MaxRowsExcel <= 0 {
		return fmt.Errorf("max_rows_excel must be positive, got %d", c.MaxRowsExcel)
	}
	if c.DomesticCountry == "" {
		return fmt.Errorf("domestic_country must not be empty")
	}
	return nil
}

// StartDate returns the parsed report_start_date. Validate guarantees it
// parses.
func (c *Config) StartDate() time.Time {
	t, _ := time.Parse("2006-01-02", c.ReportStartDate)
	return t
}
