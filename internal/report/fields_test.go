package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"date and time", "2022-06-01T14:30:00", "2022-06-01", true},
		{"date only", "2022-06-01", "2022-06-01", true},
		{"fractional seconds dropped", "2022-06-01T14:30:00.123456", "2022-06-01", true},
		{"surrounding whitespace", " 2022-06-01 ", "2022-06-01", true},
		{"empty", "", "", false},
		{"free text", "yesterday", "", false},
		{"wrong order", "01-06-2022", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got.Format("2006-01-02"))
				assert.Equal(t, time.UTC, got.Location())
				assert.Zero(t, got.Hour())
			}
		})
	}
}

func TestNumericValue(t *testing.T) {
	v, ok := NumericValue(" 2000000.50 ")
	assert.True(t, ok)
	assert.Equal(t, 2000000.5, v)

	_, ok = NumericValue("")
	assert.False(t, ok)
	_, ok = NumericValue("12,000")
	assert.False(t, ok)
}

func TestPresent(t *testing.T) {
	assert.True(t, Present("x"))
	assert.False(t, Present(""))
	assert.False(t, Present("  \t"))
}

func TestTransactionLabel(t *testing.T) {
	txn := &Transaction{TransactionNumber: "TXN-9"}
	assert.Equal(t, "TXN-9", txn.Label(3))

	txn.TransactionNumber = " "
	assert.Equal(t, "<transaction> 3", txn.Label(3))
}

func TestTopologyHelpersPreferMyClientSide(t *testing.T) {
	// When both shapes of one side are present only the my-client shape
	// counts, so the account on t_from is not seen.
	txn := &Transaction{
		FromMyClient: &FromSide{Country: "LK"},
		From:         &FromSide{Country: "GB", Account: &Account{Number: "1"}},
		To:           &ToSide{Country: "LK", Account: &Account{Number: "2"}},
	}

	assert.False(t, txn.AccountsBothSides())
	assert.True(t, txn.AccountAnySide())
	assert.True(t, txn.BothSidesCountry("LK"))
}

func TestTopologyHelpersMultiPartyExemption(t *testing.T) {
	txn := &Transaction{
		InvolvedParties: &InvolvedParties{},
		FromMyClient:    &FromSide{Country: "LK", Account: &Account{Number: "1"}},
		ToMyClient:      &ToSide{Country: "LK", Account: &Account{Number: "2"}},
	}

	assert.True(t, txn.MultiParty())
	assert.False(t, txn.AccountsBothSides())
	assert.True(t, txn.AccountAnySide())
	assert.False(t, txn.BothSidesCountry("LK"))
}
