// =============================================================================
// goAML Report Validator - Typed Report Model
// =============================================================================
//
// Typed shapes for the goAML wire schema. Sub-records are pointers because
// absence carries meaning (a side without an account is legal, an account
// without a number is not). Scalars stay strings; a value is treated as
// present when it is non-empty after trimming.
//
// A transaction has exactly one topology: bilateral (independent From and To
// sides, each my-client or external) or multi-party (involved_parties). The
// topology helpers below encode the my-client-side precedence the engine
// relies on: when both the my-client and external shapes of one side are
// present, only the my-client shape is consulted.
//
// =============================================================================

package report

import (
	"fmt"
	"strings"
)

// Type classifies a report by its wire report_code.
type Type int

const (
	TypeUnknown Type = iota
	TypeCTR          // currency transaction report
	TypeEFT          // electronic funds transfer
	TypeIFT          // international funds transfer
)

// TypeFromCode maps a wire report_code to its Type. Codes outside the known
// set map to TypeUnknown; the scanner refuses those reports before any
// transaction is validated.
func TypeFromCode(code string) Type {
	switch strings.TrimSpace(code) {
	case "CTR":
		return TypeCTR
	case "EFT":
		return TypeEFT
	case "IFT":
		return TypeIFT
	default:
		return TypeUnknown
	}
}

func (t Type) String() string {
	switch t {
	case TypeCTR:
		return "CTR"
	case TypeEFT:
		return "EFT"
	case TypeIFT:
		return "IFT"
	default:
		return "unknown"
	}
}

// TransMode is the wire transmode_code. Codes other than the two in-person
// modes are carried verbatim.
type TransMode string

const (
	ModeBranch TransMode = "BRCH"
	ModeAgent  TransMode = "AGNT"
)

// InPerson reports whether the transaction was handled over the counter,
// either in a branch or through an agent.
func (m TransMode) InPerson() bool {
	return m == ModeBranch || m == ModeAgent
}

// ClientRole tags a person record with its relationship to the reporting
// entity.
type ClientRole int

const (
	RoleMyClient ClientRole = iota
	RoleNotMyClient
	RoleDirector
)

func (r ClientRole) String() string {
	switch r {
	case RoleMyClient:
		return "my_client"
	case RoleNotMyClient:
		return "not_my_client"
	case RoleDirector:
		return "director"
	default:
		return "unknown"
	}
}

// Transaction is one <transaction> subtree.
type Transaction struct {
	TransactionNumber string           `xml:"transactionnumber"`
	Date              string           `xml:"date_transaction"`
	TransMode         TransMode        `xml:"transmode_code"`
	AmountLocal       string           `xml:"amount_local"`
	Location          string           `xml:"transaction_location"`
	Description       string           `xml:"transaction_description"`
	FromMyClient      *FromSide        `xml:"t_from_my_client"`
	From              *FromSide        `xml:"t_from"`
	ToMyClient        *ToSide          `xml:"t_to_my_client"`
	To                *ToSide          `xml:"t_to"`
	InvolvedParties   *InvolvedParties `xml:"involved_parties"`
}

// FromSide is the sender shape, shared by t_from_my_client and t_from.
type FromSide struct {
	FundsCode string   `xml:"from_funds_code"`
	Country   string   `xml:"from_country"`
	Person    *Person  `xml:"from_person"`
	Entity    *Entity  `xml:"from_entity"`
	Account   *Account `xml:"from_account"`
}

// ToSide is the receiver shape, shared by t_to_my_client and t_to.
type ToSide struct {
	FundsCode string   `xml:"to_funds_code"`
	Country   string   `xml:"to_country"`
	Person    *Person  `xml:"to_person"`
	Entity    *Entity  `xml:"to_entity"`
	Account   *Account `xml:"to_account"`
}

// InvolvedParties is the multi-party topology.
type InvolvedParties struct {
	Parties []Party `xml:"party"`
}

// Party is one tagged participant of a multi-party transaction. The embedded
// sub-records are always my-client records on the wire.
type Party struct {
	Role      string   `xml:"role"`
	FundsCode string   `xml:"funds_code"`
	Country   string   `xml:"country"`
	Person    *Person  `xml:"person_my_client"`
	Entity    *Entity  `xml:"entity_my_client"`
	Account   *Account `xml:"account_my_client"`
}

// Person is a natural-person record.
type Person struct {
	FirstName      string     `xml:"first_name"`
	LastName       string     `xml:"last_name"`
	BirthDate      string     `xml:"birthdate"`
	Nationality1   string     `xml:"nationality1"`
	SSN            string     `xml:"ssn"`
	PassportNumber string     `xml:"passport_number"`
	Residence      string     `xml:"residence"`
	Occupation     string     `xml:"occupation"`
	Addresses      *Addresses `xml:"addresses"`
}

// Entity is a legal-entity record.
type Entity struct {
	Name                 string     `xml:"name"`
	LegalForm            string     `xml:"incorporation_legal_form"`
	IncorporationNumber  string     `xml:"incorporation_number"`
	Business             string     `xml:"business"`
	IncorporationCountry string     `xml:"incorporation_country_code"`
	Addresses            *Addresses `xml:"addresses"`
	Directors            *Directors `xml:"director_id"`
}

// Directors wraps the director person list of an entity.
type Directors struct {
	Persons []Person `xml:"t_person"`
}

// Account is a bank-account record. At most one owner may be present: an
// Entity (corporate account) or Signatories (retail account), never both.
type Account struct {
	InstitutionName     string      `xml:"institution_name"`
	Swift               string      `xml:"swift"`
	Number              string      `xml:"account"`
	Branch              string      `xml:"branch"`
	CurrencyCode        string      `xml:"currency_code"`
	PersonalAccountType string      `xml:"personal_account_type"`
	StatusCode          string      `xml:"status_code"`
	Entity              *Entity     `xml:"t_entity"`
	Signatories         []Signatory `xml:"signatory"`
}

// Signatory is one retail account holder.
type Signatory struct {
	IsPrimary string  `xml:"is_primary"`
	Role      string  `xml:"role"`
	Person    *Person `xml:"t_person"`
}

// Addresses wraps the address list of a person or entity.
type Addresses struct {
	Entries []Address `xml:"address"`
}

// Address is one postal address.
type Address struct {
	Address     string `xml:"address"`
	City        string `xml:"city"`
	CountryCode string `xml:"country_code"`
}

// First returns the first address entry, or nil when the list is empty.
func (a *Addresses) First() *Address {
	if a == nil || len(a.Entries) == 0 {
		return nil
	}
	return &a.Entries[0]
}

// MultiParty reports whether the transaction uses the involved_parties
// topology. Its presence suppresses all bilateral-only rules.
func (t *Transaction) MultiParty() bool {
	return t.InvolvedParties != nil
}

// Label identifies the transaction in issue rows: the report-supplied
// transactionnumber when given, otherwise the 1-based scan sequence.
func (t *Transaction) Label(seq int) string {
	if Present(t.TransactionNumber) {
		return t.TransactionNumber
	}
	return fmt.Sprintf("<transaction> %d", seq)
}

func (t *Transaction) fromAccount() *Account {
	if t.FromMyClient != nil {
		return t.FromMyClient.Account
	}
	if t.From != nil {
		return t.From.Account
	}
	return nil
}

func (t *Transaction) toAccount() *Account {
	if t.ToMyClient != nil {
		return t.ToMyClient.Account
	}
	if t.To != nil {
		return t.To.Account
	}
	return nil
}

func (t *Transaction) fromCountry() string {
	if t.FromMyClient != nil {
		return t.FromMyClient.Country
	}
	if t.From != nil {
		return t.From.Country
	}
	return ""
}

func (t *Transaction) toCountry() string {
	if t.ToMyClient != nil {
		return t.ToMyClient.Country
	}
	if t.To != nil {
		return t.To.Country
	}
	return ""
}

// AccountsBothSides reports whether accounts appear on both bilateral sides.
// Always false for multi-party transactions.
func (t *Transaction) AccountsBothSides() bool {
	if t.MultiParty() {
		return false
	}
	return t.fromAccount() != nil && t.toAccount() != nil
}

// AccountAnySide reports whether an account appears on at least one bilateral
// side. Always true for multi-party transactions.
func (t *Transaction) AccountAnySide() bool {
	if t.MultiParty() {
		return true
	}
	return t.fromAccount() != nil || t.toAccount() != nil
}

// BothSidesCountry reports whether both bilateral sides carry the given
// country code. Always false for multi-party transactions.
func (t *Transaction) BothSidesCountry(code string) bool {
	if t.MultiParty() {
		return false
	}
	return strings.TrimSpace(t.fromCountry()) == code &&
		strings.TrimSpace(t.toCountry()) == code
}
