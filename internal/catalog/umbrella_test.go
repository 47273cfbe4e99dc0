package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUmbrellaDepartment(t *testing.T) {
	cases := []struct {
		code string
		dept string
		want string
	}{
		{"ENE 13.03", "English", "IE 1"},
		{"ENE 13.04i", "English", "IE 1"},
		{"ENE 13.01", "English", "English"},
		{"SPA 11", "Modern Languages", "FLC"},
		{"SPA 111", "Modern Languages", "FLC"},
		{"SPA 12", "Modern Languages", "Modern Languages"},
		{"BIO 10.01L", "Biology", "NatSc"},
		{"BIO 10.02", "Biology", "Biology"},
		{"CHEM 10.01", "Chemistry", "NatSc"},
		{"PHILO 11.05", "Philosophy", "PHILO 11"},
		{"PHILO 11.01", "Philosophy", "Philosophy"},
		{"MATH 21", "Mathematics", "Mathematics"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, UmbrellaDepartment(tc.code, tc.dept), tc.code)
	}
}
