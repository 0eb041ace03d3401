// =============================================================================
// goAML Report Validator - Field Validation Rules
// =============================================================================
//
// Shared rule tables for the person, entity, and account validators. Each
// validator returns nil for a clean record or the ordered list of violation
// messages; checks never stop at the first failure.
//
// A panic inside a check (a nil sub-record at a depth the check did not
// guard) degrades to one diagnostic message naming the last field under
// examination. It never aborts sibling checks already completed or the
// surrounding transaction.
//
// =============================================================================

package validate

import (
	"fmt"
	"strings"

	"github.com/RivinJayawardhana/GoAML-dekstop-tool/internal/config"
	"github.com/RivinJayawardhana/GoAML-dekstop-tool/internal/dictionary"
)

// Rules carries the configured tables the field validators check against.
type Rules struct {
	// DomesticCountry is the ISO code of the reporting jurisdiction.
	DomesticCountry string

	// IncorpNumberRegTypes are the legal forms requiring an incorporation
	// number.
	IncorpNumberRegTypes []string

	// InvalidAccPrefixes and InvalidAccChars blacklist account-number shapes.
	InvalidAccPrefixes []string
	InvalidAccChars    []string

	// SwiftNameMatchThreshold is the similarity score an institution name
	// must strictly exceed against a registered variant.
	SwiftNameMatchThreshold float64

	// LocalInstitutionSwiftPrefixes are the prefixes a non-client account's
	// institution may legitimately carry (other banks and primary dealers).
	LocalInstitutionSwiftPrefixes []string

	// ReportingEntitySwift is the running institution's own SWIFT prefix.
	ReportingEntitySwift string

	// Words backs the dictionary scan over account numbers. Nil disables the
	// scan.
	Words dictionary.Dictionary

	// SwiftTable maps SWIFT prefixes to registered institution-name
	// variants, in source-file order.
	SwiftTable *config.SwiftTable
}

// FieldValidator checks person, entity, and account sub-records against the
// configured rule tables.
type FieldValidator struct {
	rules Rules
}

// NewFieldValidator returns a validator over the given rules.
func NewFieldValidator(rules Rules) *FieldValidator {
	return &FieldValidator{rules: rules}
}

// faultMessage converts a recovered panic into the diagnostic message format
// shared by all field validators.
func faultMessage(checkElement string, r any) string {
	return fmt.Sprintf("check_element: %s [Error: %v]", checkElement, r)
}

// swiftBankMatch reports whether the institution name is registered under the
// swift code's prefix. The lookup table is scanned in source-file order and
// the first variant scoring strictly above the threshold wins, so table
// ordering matters for borderline names.
func (v *FieldValidator) swiftBankMatch(swiftCode, institutionName string) bool {
	nameLower := strings.ToLower(institutionName)
	swiftUpper := strings.ToUpper(swiftCode)
	for _, entry := range v.rules.SwiftTable.Entries() {
		if !strings.HasPrefix(swiftUpper, entry.Prefix) {
			continue
		}
		for _, variant := range entry.Names {
			if SimilarityRatio(nameLower, strings.ToLower(variant)) > v.rules.SwiftNameMatchThreshold {
				return true
			}
		}
	}
	return false
}
