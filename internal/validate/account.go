// =============================================================================
// goAML Report Validator - Account Validation
// =============================================================================
//
// Checks over one account record:
//
//   - institution_name, account number, and swift code are always mandatory.
//   - account-number heuristics run in order and stop after the first group
//     that fires: blacklisted prefix, blacklisted character, internal space,
//     then dictionary words alongside three or fewer digits.
//   - the SWIFT/name cross-check (skipped for international transfers, whose
//     accounts may sit at foreign institutions): the swift code's prefix must
//     map to a registered name variant similar enough to institution_name.
//     When it does, my-client accounts must carry the reporting entity's own
//     prefix, and non-client accounts must not, while still carrying a known
//     local-institution prefix.
//   - my-client accounts need branch, currency, account type, and status,
//     and exactly one owner: an entity (corporate) or signatories (retail).
//     Both present is terminal; the owner present is validated in full.
//
// =============================================================================

package validate

import (
	"fmt"
	"strings"

	"github.com/RivinJayawardhana/GoAML-dekstop-tool/internal/dictionary"
	"github.com/RivinJayawardhana/GoAML-dekstop-tool/internal/report"
)

// Account validates one account record within a report of the given type.
// Returns nil when the record is clean.
func (v *FieldValidator) Account(rt report.Type, a *report.Account, myClient bool) (msgs []string) {
	check := ""
	defer func() {
		if r := recover(); r != nil {
			msgs = append(msgs, faultMessage(check, r))
		}
	}()

	check = "institution_name"
	institutionName := strings.TrimSpace(a.InstitutionName)
	if institutionName == "" {
		msgs = append(msgs, "account institution_name not given")
	}

	check = "account_number"
	number := strings.TrimSpace(a.Number)
	if number == "" {
		msgs = append(msgs, "account number not given")
	} else {
		msgs = append(msgs, v.accountNumberFlags(number)...)
	}

	check = "swift_code"
	swiftCode := strings.TrimSpace(a.Swift)
	if swiftCode == "" {
		msgs = append(msgs, "account swift code not given")
	}

	// Account-holding institutions of international transfers may be foreign
	// and are not in the lookup table.
	if rt != report.TypeIFT && swiftCode != "" && institutionName != "" {
		if !v.swiftBankMatch(swiftCode, institutionName) {
			msgs = append(msgs, fmt.Sprintf("account with institution swift: %s does not match with institutions name: %s", swiftCode, institutionName))
		} else if myClient {
			if !strings.HasPrefix(swiftCode, v.rules.ReportingEntitySwift) {
				msgs = append(msgs, fmt.Sprintf("my_client account institution swift: %s is not same as RE swift: %s", swiftCode, v.rules.ReportingEntitySwift))
			}
		} else if strings.HasPrefix(swiftCode, v.rules.ReportingEntitySwift) {
			msgs = append(msgs, fmt.Sprintf("RE account with institution swift: %s is submitted as not_my_client", swiftCode))
		} else if !v.localInstitution(swiftCode) {
			msgs = append(msgs, fmt.Sprintf("incorrect account with institution swift code: %s submitted in not_my_client account", swiftCode))
		}
	}

	if !myClient {
		return msgs
	}

	check = "branch"
	if !report.Present(a.Branch) {
		msgs = append(msgs, "my_client account branch not given")
	}
	check = "currency_code"
	if !report.Present(a.CurrencyCode) {
		msgs = append(msgs, "my_client account currency_code not given")
	}
	check = "account_type"
	if !report.Present(a.PersonalAccountType) {
		msgs = append(msgs, "my_client account personal_account_type not given")
	}
	check = "status"
	if !report.Present(a.StatusCode) {
		msgs = append(msgs, "my_client account status_code not given")
	}

	// An account is owned by a corporate entity or by retail signatories,
	// never both. Both present makes the owner indeterminate, so no owner
	// check can proceed.
	if a.Entity != nil && len(a.Signatories) > 0 {
		msgs = append(msgs, "t_entity and signatories both given in account")
		return msgs
	}

	if a.Entity != nil {
		check = "t_entity"
		msgs = append(msgs, v.Entity(a.Entity, true)...)
	}

	for i := range a.Signatories {
		check = "signatories"
		msgs = append(msgs, v.Person(a.Signatories[i].Person, report.RoleMyClient, "")...)
	}

	return msgs
}

// accountNumberFlags runs the account-number heuristics. Within one group
// every match contributes a message; once any group fires the later groups
// are skipped.
func (v *FieldValidator) accountNumberFlags(number string) []string {
	var msgs []string

	for _, prefix := range v.rules.InvalidAccPrefixes {
		if strings.HasPrefix(number, prefix) {
			msgs = append(msgs, fmt.Sprintf("flagged prefix: %s in account number", prefix))
		}
	}
	if len(msgs) > 0 {
		return msgs
	}

	for _, char := range v.rules.InvalidAccChars {
		if strings.Contains(number, char) {
			msgs = append(msgs, fmt.Sprintf("flagged character: %s in account number", char))
		}
	}
	if len(msgs) > 0 {
		return msgs
	}

	if strings.Contains(number, " ") {
		return []string{"flagged character: spaces in account number"}
	}

	// Real account numbers are digit-heavy; letters in them should be random
	// sequences rather than words.
	if digitCount(number) <= 3 && dictionary.ScanIdentifier(v.rules.Words, number) {
		return []string{"flagged format: English words with very few digits in account number"}
	}

	return nil
}

func (v *FieldValidator) localInstitution(swiftCode string) bool {
	for _, prefix := range v.rules.LocalInstitutionSwiftPrefixes {
		if strings.HasPrefix(swiftCode, prefix) {
			return true
		}
	}
	return false
}

func digitCount(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			n++
		}
	}
	return n
}
