// =============================================================================
// goAML Report Validator - Person Validation
// =============================================================================
//
// Role-aware checks over one person record. The rule table by client role:
//
//   my_client      first_name, last_name, birthdate, nationality1, residence,
//                  occupation, and one full address are mandatory; domestic
//                  nationals must carry a valid NIC in <ssn>, foreigners a
//                  passport number.
//   not_my_client  first_name and last_name always; for in-person transactions
//                  (branch or agent) nationality1 plus the same NIC/passport
//                  branching; for other modes the presence of ssn, occupation,
//                  birthdate, or an address suggests a client misreported as
//                  a non-client.
//   director       first_name, last_name, nationality1, and the NIC/passport
//                  branching.
//
// =============================================================================

package validate

import (
	"fmt"
	"strings"

	"github.com/RivinJayawardhana/GoAML-dekstop-tool/internal/report"
)

// Person validates one person record for the given client role. The
// transaction's transmode matters only for the not_my_client role. Returns
// nil when the record is clean.
func (v *FieldValidator) Person(p *report.Person, role report.ClientRole, mode report.TransMode) (msgs []string) {
	check := ""
	defer func() {
		if r := recover(); r != nil {
			msgs = append(msgs, faultMessage(check, r))
		}
	}()

	switch role {
	case report.RoleMyClient:
		check = "first_name"
		if !report.Present(p.FirstName) {
			msgs = append(msgs, "my_client person first_name not given")
		}
		check = "last_name"
		if !report.Present(p.LastName) {
			msgs = append(msgs, "my_client person last_name not given")
		}
		check = "birthdate"
		if !report.Present(p.BirthDate) {
			msgs = append(msgs, "my_client person birthdate not given")
		}

		check = "nationality1"
		if !report.Present(p.Nationality1) {
			msgs = append(msgs, "my_client person nationality1 not given")
		} else if strings.TrimSpace(p.Nationality1) == v.rules.DomesticCountry {
			// Rare exceptions exist, but domestic nationals carry a NIC in
			// general.
			check = "ssn"
			ssn := strings.TrimSpace(p.SSN)
			if ssn == "" {
				msgs = append(msgs, fmt.Sprintf("my_client %s person NIC not given in <ssn>", v.rules.DomesticCountry))
			} else if !ValidNIC(ssn) {
				msgs = append(msgs, fmt.Sprintf("my_client %s person NIC %s invalid", v.rules.DomesticCountry, ssn))
			}
		} else {
			// Passport numbers have no shared format, only presence is
			// checked.
			check = "passport_number"
			if !report.Present(p.PassportNumber) {
				msgs = append(msgs, "my_client foreign person passport not given in <passport_number>")
			}
		}

		check = "residence"
		if !report.Present(p.Residence) {
			msgs = append(msgs, "my_client person residence not given")
		}
		check = "occupation"
		if !report.Present(p.Occupation) {
			msgs = append(msgs, "my_client person occupation not given")
		}
		msgs = append(msgs, v.address(p.Addresses, "my_client person", &check)...)

	case report.RoleNotMyClient:
		check = "first_name"
		if !report.Present(p.FirstName) {
			msgs = append(msgs, "not_my_client person first_name not given")
		}
		check = "last_name"
		if !report.Present(p.LastName) {
			msgs = append(msgs, "not_my_client person last_name not given")
		}

		if mode.InPerson() {
			check = "nationality1"
			if !report.Present(p.Nationality1) {
				msgs = append(msgs, "not_my_client BRCH or AGNT person nationality1 not given")
			} else if strings.TrimSpace(p.Nationality1) == v.rules.DomesticCountry {
				check = "ssn"
				ssn := strings.TrimSpace(p.SSN)
				if ssn == "" {
					msgs = append(msgs, fmt.Sprintf("not_my_client BRCH or AGNT %s person NIC not given in <ssn>", v.rules.DomesticCountry))
				} else if !ValidNIC(ssn) {
					msgs = append(msgs, fmt.Sprintf("not_my_client BRCH or AGNT %s person NIC %s invalid", v.rules.DomesticCountry, ssn))
				}
			} else {
				check = "passport_number"
				if !report.Present(p.PassportNumber) {
					msgs = append(msgs, "not_my_client BRCH or AGNT foreign person passport not given in <passport_number>")
				}
			}
		} else if report.Present(p.SSN) || report.Present(p.Occupation) ||
			report.Present(p.BirthDate) || p.Addresses != nil {
			// Identity detail on a remote non-client record suggests the
			// institution's own client reported under the wrong role.
			msgs = append(msgs, "my_client person <<may be>> submitted as not_my_client")
		}

	case report.RoleDirector:
		check = "first_name"
		if !report.Present(p.FirstName) {
			msgs = append(msgs, "director person first_name not given")
		}
		check = "last_name"
		if !report.Present(p.LastName) {
			msgs = append(msgs, "director person last_name not given")
		}

		check = "nationality1"
		if !report.Present(p.Nationality1) {
			msgs = append(msgs, "director person nationality1 not given")
		} else if strings.TrimSpace(p.Nationality1) == v.rules.DomesticCountry {
			check = "ssn"
			ssn := strings.TrimSpace(p.SSN)
			if ssn == "" {
				msgs = append(msgs, fmt.Sprintf("director %s person NIC not given in <ssn>", v.rules.DomesticCountry))
			} else if !ValidNIC(ssn) {
				msgs = append(msgs, fmt.Sprintf("director %s person NIC %s invalid", v.rules.DomesticCountry, ssn))
			}
		} else {
			check = "passport_number"
			if !report.Present(p.PassportNumber) {
				msgs = append(msgs, "director foreign person passport not given in <passport_number>")
			}
		}
	}

	return msgs
}

// address checks the mandatory single address of a my_client person or
// entity. subject prefixes the messages, check tracks the field under
// examination for the fault diagnostic.
func (v *FieldValidator) address(a *report.Addresses, subject string, check *string) []string {
	*check = "addresses"
	addr := a.First()
	if addr == nil {
		return []string{subject + " addresses not given"}
	}

	var msgs []string
	*check = "address_address"
	if !report.Present(addr.Address) {
		msgs = append(msgs, subject+" address not given")
	}
	*check = "address_city"
	if !report.Present(addr.City) {
		msgs = append(msgs, subject+" address city not given")
	}
	*check = "address_country"
	if !report.Present(addr.CountryCode) {
		msgs = append(msgs, subject+" address country not given")
	}
	return msgs
}
