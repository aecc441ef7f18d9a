// Package classify buckets registrants into role and organization categories.
//
// The category tables are data, not code: an embedded categories.yaml carries
// the defaults and Load can swap in a custom file for a different survey
// year.
package classify

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Role category labels.
const (
	RoleAcademic = "Academic"
	RoleIndustry = "Industry"
	RoleOther    = "Other"
)

// Organization category labels.
const (
	OrgUniversity = "University"
	OrgCompany    = "Company"
	OrgOther      = "Other/Mixed"
)

// Categories holds the role, organization, and international tables used to
// bucket registrants.
type Categories struct {
	// Name identifies this category set
	Name string `yaml:"name" json:"name"`

	// Description documents what these categories are for
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// AcademicRoles and IndustryRoles are exact role answers; anything else
	// counts as Other
	AcademicRoles []string `yaml:"academic_roles" json:"academic_roles"`
	IndustryRoles []string `yaml:"industry_roles" json:"industry_roles"`

	// CommonRoles are frequent enough that one occurrence is unremarkable
	CommonRoles []string `yaml:"common_roles" json:"common_roles"`

	// Universities and Companies are canonical organization names
	Universities []string `yaml:"universities" json:"universities"`
	Companies    []string `yaml:"companies" json:"companies"`

	// International holds lowercase substrings marking non-Israeli affiliations
	International []string `yaml:"international_keywords" json:"international_keywords"`
}

//go:embed categories.yaml
var defaultCategoriesYAML []byte

var defaultCategories = mustParseCategories(defaultCategoriesYAML)

// Default returns the built-in category tables.
func Default() *Categories {
	return defaultCategories
}

// Load reads category tables from a YAML file.
func Load(path string) (*Categories, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading categories file: %w", err)
	}
	return Parse(data)
}

// Parse reads category tables from YAML bytes.
func Parse(data []byte) (*Categories, error) {
	var c Categories
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing categories YAML: %w", err)
	}
	return &c, nil
}

func mustParseCategories(data []byte) *Categories {
	c, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return c
}

// RoleCategory buckets a role answer. Membership is exact string comparison,
// so casing variants listed in the tables match and everything else falls
// through to Other.
func (c *Categories) RoleCategory(role string) string {
	if slices.Contains(c.AcademicRoles, role) {
		return RoleAcademic
	}
	if slices.Contains(c.IndustryRoles, role) {
		return RoleIndustry
	}
	return RoleOther
}

// OrgCategory buckets a canonical organization name.
func (c *Categories) OrgCategory(name string) string {
	if slices.Contains(c.Universities, name) {
		return OrgUniversity
	}
	if slices.Contains(c.Companies, name) {
		return OrgCompany
	}
	return OrgOther
}

// IsCommonRole reports whether a single occurrence of this role is ordinary
// rather than an oddity.
func (c *Categories) IsCommonRole(role string) bool {
	return slices.Contains(c.CommonRoles, role)
}

// IsInternational reports whether an affiliation mentions one of the
// international keywords. Matching is case-insensitive substring over the
// raw affiliation text.
func (c *Categories) IsInternational(affiliation string) bool {
	aff := strings.ToLower(affiliation)
	for _, kw := range c.International {
		if strings.Contains(aff, kw) {
			return true
		}
	}
	return false
}
