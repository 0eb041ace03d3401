package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RivinJayawardhana/GoAML-dekstop-tool/internal/report"
)

func testTxnConfig() TxnConfig {
	return TxnConfig{
		StartDate:            time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		ReportingWindow:      31,
		CheckLateSubmissions: true,
		CTRThreshold:         100000000,
		CashRuleCodes:        map[string]bool{"CTR": true},
		DomesticCountry:      "LK",
	}
}

func testContext(code string, submission string) ReportContext {
	sub, ok := report.ParseDate(submission)
	return ReportContext{
		Code:              code,
		Type:              report.TypeFromCode(code),
		UploadID:          "R1",
		SubmissionDate:    sub,
		HasSubmissionDate: ok,
	}
}

func newTxnValidator(sink *Sink) *TransactionValidator {
	return NewTransactionValidator(testTxnConfig(), testValidator(), sink)
}

func categories(issues []Issue) []string {
	var cats []string
	for _, i := range issues {
		cats = append(cats, i.Category)
	}
	return cats
}

func validTransaction() *report.Transaction {
	return &report.Transaction{
		TransactionNumber: "T1",
		Date:              "2022-06-01T00:00:00",
		TransMode:         "EFTB",
		AmountLocal:       "2000000",
	}
}

func TestTransactionValid(t *testing.T) {
	sink := NewSink()
	v := newTxnValidator(sink)

	ok := v.Validate(testContext("CTR", "2022-06-15"), 1, validTransaction())
	assert.True(t, ok)
	assert.Empty(t, sink.Issues())
	assert.Empty(t, sink.FlaggedUploadIDs())
}

func TestTransactionDateBeforeSchemaStart(t *testing.T) {
	sink := NewSink()
	v := newTxnValidator(sink)

	txn := validTransaction()
	txn.Date = "2021-12-31"
	ok := v.Validate(testContext("CTR", "2022-06-15"), 1, txn)

	assert.False(t, ok)
	require.Len(t, sink.Issues(), 1)
	issue := sink.Issues()[0]
	assert.Equal(t, "invalid_transaction_date", issue.Category)
	assert.Equal(t, "date_transaction", issue.Element)
	assert.Equal(t, "CTR: R1", issue.ReportName)
	assert.Equal(t, "T1", issue.TransactionNumber)
	assert.Equal(t, "transaction date: 2021-12-31 invalid for submission date: 2022-06-15", issue.Message)
	assert.Equal(t, []string{"R1"}, sink.FlaggedUploadIDs())
}

func TestTransactionDateAfterSubmission(t *testing.T) {
	sink := NewSink()
	v := newTxnValidator(sink)

	txn := validTransaction()
	txn.Date = "2022-06-20"
	ok := v.Validate(testContext("CTR", "2022-06-15"), 1, txn)

	assert.False(t, ok)
	assert.Equal(t, []string{"invalid_transaction_date"}, categories(sink.Issues()))
}

func TestTransactionDateUnparsable(t *testing.T) {
	sink := NewSink()
	v := newTxnValidator(sink)

	txn := validTransaction()
	txn.Date = "not a date"
	v.Validate(testContext("CTR", "2022-06-15"), 1, txn)

	issues := sink.Issues()
	require.Len(t, issues, 1)
	assert.Equal(t, "transaction date: none invalid for submission date: 2022-06-15", issues[0].Message)
}

func TestTransactionLateSubmission(t *testing.T) {
	sink := NewSink()
	v := newTxnValidator(sink)

	txn := validTransaction()
	txn.Date = "2022-01-01"
	v.Validate(testContext("CTR", "2022-02-05"), 1, txn)
	assert.Equal(t, []string{"late_submission"}, categories(sink.Issues()))

	sink = NewSink()
	v = newTxnValidator(sink)
	v.Validate(testContext("CTR", "2022-01-20"), 1, txn)
	assert.Empty(t, sink.Issues())
}

func TestTransactionLateSubmissionDisabled(t *testing.T) {
	cfg := testTxnConfig()
	cfg.CheckLateSubmissions = false
	sink := NewSink()
	v := NewTransactionValidator(cfg, testValidator(), sink)

	txn := validTransaction()
	txn.Date = "2022-01-01"
	ok := v.Validate(testContext("CTR", "2022-02-05"), 1, txn)
	assert.True(t, ok)
	assert.Empty(t, sink.Issues())
}

func TestTransactionBranchLocationMandatory(t *testing.T) {
	sink := NewSink()
	v := newTxnValidator(sink)

	txn := validTransaction()
	txn.TransMode = report.ModeBranch
	v.Validate(testContext("CTR", "2022-06-15"), 1, txn)

	issues := sink.Issues()
	require.Len(t, issues, 1)
	assert.Equal(t, "mandatory but missing/invalid transaction location", issues[0].Category)
	assert.Equal(t, "transaction location not given for: BRCH and multiparty credit card transaction: false", issues[0].Message)

	sink = NewSink()
	v = newTxnValidator(sink)
	txn.Location = "Colombo Fort Branch"
	v.Validate(testContext("CTR", "2022-06-15"), 1, txn)
	assert.Empty(t, sink.Issues())
}

func TestTransactionCreditCardLocationMandatory(t *testing.T) {
	sink := NewSink()
	v := newTxnValidator(sink)

	txn := validTransaction()
	txn.Description = "Credit Card purchase at merchant"
	txn.InvolvedParties = &report.InvolvedParties{}
	v.Validate(testContext("EFT", "2022-06-15"), 1, txn)

	issues := sink.Issues()
	require.Len(t, issues, 1)
	assert.Equal(t, "mandatory but missing/invalid transaction location", issues[0].Category)
	assert.Contains(t, issues[0].Message, "multiparty credit card transaction: true")
}

func TestTransactionAmountBelowFloor(t *testing.T) {
	sink := NewSink()
	v := newTxnValidator(sink)

	txn := validTransaction()
	txn.AmountLocal = "999995"
	v.Validate(testContext("EFT", "2022-06-15"), 1, txn)

	issues := sink.Issues()
	require.Len(t, issues, 1)
	assert.Equal(t, "amount_below_1_million", issues[0].Category)
	assert.Equal(t, "amount 999995 below LKR 1 Mn", issues[0].Message)
}

func TestTransactionCashAmountRules(t *testing.T) {
	sink := NewSink()
	v := newTxnValidator(sink)

	txn := validTransaction()
	txn.AmountLocal = "200000001"
	v.Validate(testContext("CTR", "2022-06-15"), 1, txn)

	assert.Equal(t, []string{
		"cash_amount_above_extreme_threshold",
		"cash_amount_not_round_value",
	}, categories(sink.Issues()))
}

func TestTransactionCashRulesSkippedForEFT(t *testing.T) {
	sink := NewSink()
	v := newTxnValidator(sink)

	txn := validTransaction()
	txn.AmountLocal = "200000001"
	v.Validate(testContext("EFT", "2022-06-15"), 1, txn)
	assert.Empty(t, sink.Issues())
}

func TestTransactionAbsentAmountSkipsAmountRules(t *testing.T) {
	sink := NewSink()
	v := newTxnValidator(sink)

	txn := validTransaction()
	txn.AmountLocal = " "
	v.Validate(testContext("CTR", "2022-06-15"), 1, txn)
	assert.Empty(t, sink.Issues())
}

func TestTransactionCTRBothSidesAccounts(t *testing.T) {
	sink := NewSink()
	v := newTxnValidator(sink)

	txn := validTransaction()
	txn.FromMyClient = &report.FromSide{Country: "LK", Account: validAccountRecord()}
	txn.To = &report.ToSide{Country: "LK", Account: &report.Account{
		InstitutionName: "Lanka Exchange Bank", Swift: "LKLXCOLO", Number: "555666777888",
	}}
	v.Validate(testContext("CTR", "2022-06-15"), 1, txn)

	assert.Equal(t, []string{"cash_transaction_both_From_and_To_sides_are_accounts"}, categories(sink.Issues()))
}

func TestTransactionEFTNeedsAnAccount(t *testing.T) {
	sink := NewSink()
	v := newTxnValidator(sink)

	txn := validTransaction()
	v.Validate(testContext("EFT", "2022-06-15"), 1, txn)
	assert.Equal(t, []string{"EFT_transaction_any_of_From_and_To_side_is_not_account"}, categories(sink.Issues()))
}

func TestTransactionEFTMultiPartyExempt(t *testing.T) {
	sink := NewSink()
	v := newTxnValidator(sink)

	txn := validTransaction()
	txn.InvolvedParties = &report.InvolvedParties{}
	v.Validate(testContext("EFT", "2022-06-15"), 1, txn)
	assert.Empty(t, sink.Issues())
}

func TestTransactionIFTBothSidesDomestic(t *testing.T) {
	sink := NewSink()
	v := newTxnValidator(sink)

	txn := validTransaction()
	txn.FromMyClient = &report.FromSide{Country: "LK"}
	txn.To = &report.ToSide{Country: "LK"}
	v.Validate(testContext("IFT", "2022-06-15"), 1, txn)
	assert.Equal(t, []string{"IFT_transaction_both_From_and_To_side_countries_are_LK"}, categories(sink.Issues()))

	sink = NewSink()
	v = newTxnValidator(sink)
	txn.To.Country = "GB"
	v.Validate(testContext("IFT", "2022-06-15"), 1, txn)
	assert.Empty(t, sink.Issues())
}

func TestTransactionCashCountryChecks(t *testing.T) {
	sink := NewSink()
	v := newTxnValidator(sink)

	txn := validTransaction()
	txn.FromMyClient = &report.FromSide{Country: "US"}
	txn.To = &report.ToSide{Country: "LK"}
	v.Validate(testContext("CTR", "2022-06-15"), 1, txn)

	issues := sink.Issues()
	require.Len(t, issues, 1)
	assert.Equal(t, "cash_transaction_From_country_not_LK", issues[0].Category)
	assert.Equal(t, "from_my_client_country", issues[0].Element)
	assert.Equal(t, "cash transaction From country: US not LK", issues[0].Message)
}

func TestTransactionSideRecordsValidated(t *testing.T) {
	sink := NewSink()
	v := newTxnValidator(sink)

	person := validPersonRecord()
	person.SSN = "851234567Z"
	txn := validTransaction()
	txn.FromMyClient = &report.FromSide{Country: "LK", Person: person, Account: validAccountRecord()}

	v.Validate(testContext("CTR", "2022-06-15"), 1, txn)
	issues := sink.Issues()
	require.Len(t, issues, 1)
	assert.Equal(t, "invalid_person_details", issues[0].Category)
	assert.Equal(t, "from_my_client_person", issues[0].Element)
	assert.Equal(t, "my_client LK person NIC 851234567Z invalid", issues[0].Message)
}

func TestTransactionAmountEqualsAccountNumber(t *testing.T) {
	sink := NewSink()
	v := newTxnValidator(sink)

	account := validAccountRecord()
	account.Number = "2000000"
	txn := validTransaction()
	txn.FromMyClient = &report.FromSide{Country: "LK", Account: account}

	v.Validate(testContext("CTR", "2022-06-15"), 1, txn)
	issues := sink.Issues()
	require.Len(t, issues, 1)
	assert.Equal(t, "amount_equal_to_account_number", issues[0].Category)
	assert.Equal(t, "from_my_client_account", issues[0].Element)
	assert.Equal(t, "amount: 2000000 equal to account number", issues[0].Message)
}

func TestTransactionMultiPartyRecordsValidated(t *testing.T) {
	sink := NewSink()
	v := newTxnValidator(sink)

	person := validPersonRecord()
	person.Occupation = ""
	txn := validTransaction()
	txn.InvolvedParties = &report.InvolvedParties{Parties: []report.Party{
		{Role: "0", Country: "LK", Person: person},
	}}

	v.Validate(testContext("CTR", "2022-06-15"), 1, txn)
	issues := sink.Issues()
	require.Len(t, issues, 1)
	assert.Equal(t, "invalid_person_details", issues[0].Category)
	assert.Equal(t, "multi_person", issues[0].Element)
}

func TestTransactionSequenceLabelWhenNumberMissing(t *testing.T) {
	sink := NewSink()
	v := newTxnValidator(sink)

	txn := validTransaction()
	txn.TransactionNumber = ""
	txn.Date = "2021-01-01"
	v.Validate(testContext("CTR", "2022-06-15"), 7, txn)

	issues := sink.Issues()
	require.Len(t, issues, 1)
	assert.Equal(t, "<transaction> 7", issues[0].TransactionNumber)
}

func TestTransactionValidationIsIdempotent(t *testing.T) {
	txn := validTransaction()
	txn.Date = "2021-12-31"
	txn.FromMyClient = &report.FromSide{Country: "US", Account: validAccountRecord()}
	rc := testContext("CTR", "2022-06-15")

	run := func() ([]Issue, []string) {
		sink := NewSink()
		v := newTxnValidator(sink)
		v.Validate(rc, 1, txn)
		return sink.Issues(), sink.FlaggedUploadIDs()
	}

	first, firstIDs := run()
	second, secondIDs := run()
	assert.Equal(t, first, second)
	assert.Equal(t, firstIDs, secondIDs)
}
