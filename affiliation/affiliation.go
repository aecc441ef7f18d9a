package affiliation

import (
	"strings"

	"github.com/iscol-meeting/iscol2025/helpers"
)

// NotSpecified is the canonical placeholder for missing affiliations.
const NotSpecified = "Not specified"

// Raw values equal to this placeholder mean the registrant declined to answer.
const placeholder = "-"

// Affiliation delimiters, tried in order; the value is split on the first one
// found.
var delimiters = []string{",", "/", " and ", "&"}

// Normalizer maps raw affiliation strings to canonical organization names.
// It is safe for concurrent use: the table is read-only after construction.
type Normalizer struct {
	table *Table
}

// NewNormalizer returns a Normalizer backed by the given table, or by the
// built-in table when table is nil.
func NewNormalizer(table *Table) *Normalizer {
	if table == nil {
		table = Default()
	}
	return &Normalizer{table: table}
}

// Table returns the alias table the normalizer matches against.
func (n *Normalizer) Table() *Table {
	return n.table
}

// Normalize maps one raw affiliation field to an ordered list of organization
// names. It is total: any input produces a non-empty result with no
// duplicates and no empty strings.
//
// Missing values and the "-" placeholder produce ["Not specified"]. A value
// that is a bare email address is matched by its mail domain. Multi-valued
// fields are split on the first delimiter found (comma, slash, " and ",
// ampersand) and each fragment resolves independently: against the alias
// table when a variant matches, or to the title-cased fragment when none
// does.
func (n *Normalizer) Normalize(raw string) []string {
	if raw == placeholder {
		return []string{NotSpecified}
	}

	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return []string{NotSpecified}
	}

	if domain, ok := helpers.EmailDomain(value); ok {
		value = domain
	}

	parts := []string{value}
	for _, sep := range delimiters {
		if strings.Contains(value, sep) {
			parts = strings.Split(value, sep)
			break
		}
	}

	var result []string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		name, matched := n.table.Match(part)
		if !matched {
			name = helpers.TitleCase(part)
		}
		if !containsString(result, name) {
			result = append(result, name)
		}
	}

	if len(result) == 0 {
		return []string{NotSpecified}
	}
	return result
}

// NormalizeAll maps Normalize over a slice of raw values.
func (n *Normalizer) NormalizeAll(raws []string) [][]string {
	out := make([][]string, len(raws))
	for i, raw := range raws {
		out[i] = n.Normalize(raw)
	}
	return out
}
