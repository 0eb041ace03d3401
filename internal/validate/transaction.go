// =============================================================================
// goAML Report Validator - Transaction Validation
// =============================================================================
//
// Per-transaction orchestration. Every failing check appends one entry to
// the shared sink and flags the report's upload id; checks never short-
// circuit, so a transaction can accumulate issues from every rule at once.
//
// Check order, preserved in the sink:
//   1. transaction date parses, is on or after the schema start date, and is
//      not after the submission date
//   2. late submission against the configured reporting window
//   3. location presence for branch transactions and multi-party credit card
//      transactions
//   4. amount floor, plus extreme-value and round-amount rules for cash-type
//      reports
//   5. topology by report type (multi-party transactions are exempt)
//   6. per-side checks: country for cash-type reports, embedded person/
//      entity/account records, and the amount-equals-account-number tell
//
// =============================================================================

package validate

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/RivinJayawardhana/GoAML-dekstop-tool/internal/report"
)

// Reportable transactions start at LKR 1 million.
const minReportableAmount = 1_000_000

// TxnConfig carries the transaction-level rule settings.
type TxnConfig struct {
	// StartDate is the first valid transaction date under the current
	// reporting schema.
	StartDate time.Time

	// ReportingWindow is the maximum days between transaction and submission
	// before the report counts as late.
	ReportingWindow int

	// CheckLateSubmissions toggles the late-submission rule.
	CheckLateSubmissions bool

	// CTRThreshold is the extreme-value ceiling for cash amounts.
	CTRThreshold float64

	// CashRuleCodes marks the report codes subject to the cash-only rules.
	CashRuleCodes map[string]bool

	// DomesticCountry is the ISO code of the reporting jurisdiction.
	DomesticCountry string
}

// ReportContext is the report-level state a transaction is validated under.
type ReportContext struct {
	Code              string
	Type              report.Type
	UploadID          string
	SubmissionDate    time.Time
	HasSubmissionDate bool
}

// Name is the report_name column of issue rows.
func (c ReportContext) Name() string {
	return c.Code + ": " + c.UploadID
}

// TransactionValidator runs the per-transaction rule set and records
// violations in the shared sink.
type TransactionValidator struct {
	cfg    TxnConfig
	fields *FieldValidator
	sink   *Sink
}

// NewTransactionValidator wires the rule settings, field validators, and
// sink together.
func NewTransactionValidator(cfg TxnConfig, fields *FieldValidator, sink *Sink) *TransactionValidator {
	return &TransactionValidator{cfg: cfg, fields: fields, sink: sink}
}

// Validate runs every check against one transaction and reports overall
// validity. seq is the 1-based scan sequence used to label transactions
// without a report-supplied number.
func (v *TransactionValidator) Validate(rc ReportContext, seq int, txn *report.Transaction) bool {
	valid := true
	label := txn.Label(seq)
	record := func(category, element string, messages ...string) {
		v.sink.Record(Entry{
			ReportName:        rc.Name(),
			TransactionNumber: label,
			Category:          category,
			Element:           element,
			Messages:          messages,
		})
		v.sink.Flag(rc.UploadID)
		valid = false
	}

	cashRules := v.cfg.CashRuleCodes[rc.Code]

	// 1. Transaction date window.
	txnDate, hasDate := report.ParseDate(txn.Date)
	dateOK := hasDate && rc.HasSubmissionDate &&
		!txnDate.After(rc.SubmissionDate) && !txnDate.Before(v.cfg.StartDate)
	if !dateOK {
		record("invalid_transaction_date", "date_transaction",
			fmt.Sprintf("transaction date: %s invalid for submission date: %s",
				dateText(txnDate, hasDate), dateText(rc.SubmissionDate, rc.HasSubmissionDate)))
	}

	// 2. Late submission.
	if v.cfg.CheckLateSubmissions && hasDate && rc.HasSubmissionDate {
		days := int(rc.SubmissionDate.Sub(txnDate).Hours() / 24)
		if days > v.cfg.ReportingWindow {
			record("late_submission", "date_transaction",
				fmt.Sprintf("transaction date: %s is a late submission for submission date: %s",
					dateText(txnDate, true), dateText(rc.SubmissionDate, true)))
		}
	}

	// 3. Location. Mandatory over the counter, and for multi-party credit
	// card transactions where it must carry the merchant address.
	locationMandatory := false
	creditCard := false
	if txn.TransMode == report.ModeBranch {
		locationMandatory = true
	} else if txn.MultiParty() && strings.Contains(strings.ToLower(txn.Description), "credit card") {
		locationMandatory = true
		creditCard = true
	}
	if locationMandatory && !report.Present(txn.Location) {
		record("mandatory but missing/invalid transaction location", "transaction_location",
			fmt.Sprintf("transaction location not given for: %s and multiparty credit card transaction: %t",
				txn.TransMode, creditCard))
	}

	// 4. Amount rules.
	amount, hasAmount := report.NumericValue(txn.AmountLocal)
	if hasAmount {
		if amount < minReportableAmount {
			record("amount_below_1_million", "amount_local",
				fmt.Sprintf("amount %s below LKR 1 Mn", amountText(amount)))
		}
		if cashRules {
			if amount > v.cfg.CTRThreshold {
				record("cash_amount_above_extreme_threshold", "amount_local",
					fmt.Sprintf("%s amount %s extreme value (EFT may be submitted as %s)",
						rc.Code, amountText(amount), rc.Code))
			}
			// Genuine cash deposits come in note denominations.
			if math.Mod(amount, 5) != 0 {
				record("cash_amount_not_round_value", "amount_local",
					fmt.Sprintf("%s amount: %s not round amount (may be EFT?)", rc.Code, amountText(amount)))
			}
		}
	}

	// 5. Topology by report type.
	switch rc.Type {
	case report.TypeCTR:
		if txn.AccountsBothSides() {
			record("cash_transaction_both_From_and_To_sides_are_accounts", "transaction",
				"cash transaction both From and To sides are accounts")
		}
	case report.TypeEFT:
		if !txn.AccountAnySide() {
			record("EFT_transaction_any_of_From_and_To_side_is_not_account", "transaction",
				"EFT transaction any of From and To side is not account")
		}
	case report.TypeIFT:
		if txn.BothSidesCountry(v.cfg.DomesticCountry) {
			record("IFT_transaction_both_From_and_To_side_countries_are_LK", "transaction",
				"IFT transaction both From and To side countries are LK")
		}
	}

	// 6. Per-side checks.
	if s := txn.FromMyClient; s != nil {
		v.checkSide(record, rc, txn.TransMode, sideShape{
			myClient: true, direction: "From",
			countryElement: "from_my_client_country",
			personElement:  "from_my_client_person",
			entityElement:  "from_my_client_entity",
			accountElement: "from_my_client_account",
			country:        s.Country, person: s.Person, entity: s.Entity, account: s.Account,
		}, cashRules, amount, hasAmount)
	}
	if s := txn.From; s != nil {
		v.checkSide(record, rc, txn.TransMode, sideShape{
			direction:      "From",
			countryElement: "from_country",
			personElement:  "from_person",
			entityElement:  "from_entity",
			accountElement: "from_account",
			country:        s.Country, person: s.Person, entity: s.Entity, account: s.Account,
		}, cashRules, amount, hasAmount)
	}
	if s := txn.ToMyClient; s != nil {
		v.checkSide(record, rc, txn.TransMode, sideShape{
			myClient: true, direction: "To",
			countryElement: "to_my_client_country",
			personElement:  "to_my_client_person",
			entityElement:  "to_my_client_entity",
			accountElement: "to_my_client_account",
			country:        s.Country, person: s.Person, entity: s.Entity, account: s.Account,
		}, cashRules, amount, hasAmount)
	}
	if s := txn.To; s != nil {
		v.checkSide(record, rc, txn.TransMode, sideShape{
			direction:      "To",
			countryElement: "to_country",
			personElement:  "to_person",
			entityElement:  "to_entity",
			accountElement: "to_account",
			country:        s.Country, person: s.Person, entity: s.Entity, account: s.Account,
		}, cashRules, amount, hasAmount)
	}
	if txn.InvolvedParties != nil {
		for i := range txn.InvolvedParties.Parties {
			p := &txn.InvolvedParties.Parties[i]
			v.checkParty(record, rc, txn.TransMode, p, cashRules, amount, hasAmount)
		}
	}

	return valid
}

// sideShape flattens one bilateral side with the issue-row element names its
// checks report under.
type sideShape struct {
	myClient  bool
	direction string

	countryElement string
	personElement  string
	entityElement  string
	accountElement string

	country string
	person  *report.Person
	entity  *report.Entity
	account *report.Account
}

func (v *TransactionValidator) checkSide(record func(category, element string, messages ...string), rc ReportContext, mode report.TransMode, s sideShape, cashRules bool, amount float64, hasAmount bool) {
	// Cash moves over the counter, so both legs stay in the jurisdiction.
	if cashRules && strings.TrimSpace(s.country) != v.cfg.DomesticCountry {
		record("cash_transaction_"+s.direction+"_country_not_LK", s.countryElement,
			fmt.Sprintf("cash transaction %s country: %s not %s", s.direction, s.country, v.cfg.DomesticCountry))
	}

	role := report.RoleNotMyClient
	if s.myClient {
		role = report.RoleMyClient
	}

	if s.person != nil {
		if msgs := v.fields.Person(s.person, role, mode); len(msgs) > 0 {
			record("invalid_person_details", s.personElement, msgs...)
		}
	}
	if s.entity != nil {
		if msgs := v.fields.Entity(s.entity, s.myClient); len(msgs) > 0 {
			record("invalid_entity_details", s.entityElement, msgs...)
		}
	}
	if s.account != nil {
		if msgs := v.fields.Account(rc.Type, s.account, s.myClient); len(msgs) > 0 {
			record("invalid_account_details", s.accountElement, msgs...)
		}
		// An account number equal to the amount is a placeholder tell.
		if n, ok := report.NumericValue(s.account.Number); ok && hasAmount && n == amount {
			record("amount_equal_to_account_number", s.accountElement,
				fmt.Sprintf("amount: %s equal to account number", amountText(amount)))
		}
	}
}

// checkParty validates one multi-party participant. The embedded sub-records
// are my-client records on the wire.
func (v *TransactionValidator) checkParty(record func(category, element string, messages ...string), rc ReportContext, mode report.TransMode, p *report.Party, cashRules bool, amount float64, hasAmount bool) {
	if cashRules && strings.TrimSpace(p.Country) != v.cfg.DomesticCountry {
		record("cash_transaction_party_country_not_LK", "party_country",
			fmt.Sprintf("cash transaction party country: %s not %s", p.Country, v.cfg.DomesticCountry))
	}

	if p.Person != nil {
		if msgs := v.fields.Person(p.Person, report.RoleMyClient, mode); len(msgs) > 0 {
			record("invalid_person_details", "multi_person", msgs...)
		}
	}
	if p.Entity != nil {
		if msgs := v.fields.Entity(p.Entity, true); len(msgs) > 0 {
			record("invalid_entity_details", "multi_entity", msgs...)
		}
	}
	if p.Account != nil {
		if msgs := v.fields.Account(rc.Type, p.Account, true); len(msgs) > 0 {
			record("invalid_account_details", "multi_account", msgs...)
		}
		if n, ok := report.NumericValue(p.Account.Number); ok && hasAmount && n == amount {
			record("amount_equal_to_account_number", "multi_account",
				fmt.Sprintf("amount: %s equal to account number", amountText(amount)))
		}
	}
}

func dateText(t time.Time, ok bool) string {
	if !ok {
		return "none"
	}
	return t.Format("2006-01-02")
}

func amountText(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
