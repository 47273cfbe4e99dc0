package catalog

import "strings"

// Elective core subjects enlist under synthetic umbrella departments
// rather than the department that administers them: language electives
// under FLC, natural-science blocks under NatSc, the human-condition
// philosophy electives under PHILO 11, and the English electives under
// IE 1. Prefix matching keeps the lab variants (e.g. BIO 10.01L) with
// their lecture blocks.
var umbrellaPrefixes = []struct {
	prefix     string
	department string
}{
	{"ENE 13.03", "IE 1"},
	{"ENE 13.04", "IE 1"},
	{"ENE 13.05", "IE 1"},
	{"ENE 13.06", "IE 1"},
	{"CSP 11", "FLC"},
	{"FRE 11", "FLC"},
	{"GER 11", "FLC"},
	{"ITA 11", "FLC"},
	{"JPN 11", "FLC"},
	{"KRN 11", "FLC"},
	{"RUSS 11", "FLC"},
	{"SPA 11", "FLC"},
	{"BIO 10.01", "NatSc"},
	{"BIO 11.01", "NatSc"},
	{"BIO 12.01", "NatSc"},
	{"CHEM 10.01", "NatSc"},
	{"ENVI 10.01", "NatSc"},
	{"PHYS 10.01", "NatSc"},
	{"PHILO 11.03", "PHILO 11"},
	{"PHILO 11.04", "PHILO 11"},
	{"PHILO 11.05", "PHILO 11"},
	{"PHILO 11.06", "PHILO 11"},
}

// UmbrellaDepartment maps a subject code to its enlistment department.
// Subjects outside the fixed table keep their administrative owner.
func UmbrellaDepartment(subjectCode, department string) string {
	for _, u := range umbrellaPrefixes {
		if strings.HasPrefix(subjectCode, u.prefix) {
			return u.department
		}
	}
	return department
}
