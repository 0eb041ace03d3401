// =============================================================================
// goAML Report Validator - Entity Validation
// =============================================================================

package validate

import (
	"strings"

	"github.com/RivinJayawardhana/GoAML-dekstop-tool/internal/report"
)

// Government entities carry no director records.
const legalFormGovernment = "GOVT"

// Entity validates one legal-entity record. Non-client entities are checked
// for a name only; my-client entities additionally need a legal form, an
// incorporation number for the configured legal forms, business and
// incorporation country details, one full address, and (outside government
// entities) at least one director, each validated as a person in the
// director role. Returns nil when the record is clean.
func (v *FieldValidator) Entity(e *report.Entity, myClient bool) (msgs []string) {
	check := ""
	defer func() {
		if r := recover(); r != nil {
			msgs = append(msgs, faultMessage(check, r))
		}
	}()

	check = "entity_name"
	if !report.Present(e.Name) {
		msgs = append(msgs, "entity name not given")
	}

	if !myClient {
		return msgs
	}

	check = "legal_form"
	legalForm := strings.TrimSpace(e.LegalForm)
	if legalForm == "" {
		msgs = append(msgs, "my_client entity legal_form not given")
	}

	if v.incorpNumberRequired(legalForm) {
		check = "incorporation_number"
		if !report.Present(e.IncorporationNumber) {
			msgs = append(msgs, "entity incorp number not given for required types")
		}
	}

	check = "business"
	if !report.Present(e.Business) {
		msgs = append(msgs, "my_client entity business not given")
	}
	check = "incorporation_country"
	if !report.Present(e.IncorporationCountry) {
		msgs = append(msgs, "my_client entity incorporation_country not given")
	}
	msgs = append(msgs, v.address(e.Addresses, "my_client entity", &check)...)

	if legalForm != legalFormGovernment {
		check = "director_id"
		if e.Directors == nil {
			msgs = append(msgs, "my_client entity directors not given non-gov entity")
		} else {
			for i := range e.Directors.Persons {
				msgs = append(msgs, v.Person(&e.Directors.Persons[i], report.RoleDirector, "")...)
			}
		}
	}

	return msgs
}

func (v *FieldValidator) incorpNumberRequired(legalForm string) bool {
	for _, form := range v.rules.IncorpNumberRegTypes {
		if legalForm == form {
			return true
		}
	}
	return false
}
