// Package affiliation normalizes free-text organization names from
// registration forms into canonical organization names using an ordered
// alias table.
package affiliation

import "strings"

// Entry maps one canonical organization name to its known lowercase textual
// variants.
type Entry struct {
	Canonical string   `yaml:"name" json:"name"`
	Variants  []string `yaml:"variants" json:"variants"`
}

// Table is an ordered list of alias entries. Order is significant: matching
// scans entries front to back and the first match wins, so more specific
// organizations must be listed before ones whose variants could shadow them.
type Table struct {
	Name        string  `yaml:"name,omitempty" json:"name,omitempty"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Entries     []Entry `yaml:"organizations" json:"organizations"`
}

// Match scans the table in order and returns the canonical name of the first
// entry with a variant that matches the fragment. A variant matches when it
// contains the fragment or the fragment contains it, so short variants can
// match inside longer unrelated fragments. The fragment must already be
// lowercased and trimmed.
func (t *Table) Match(fragment string) (string, bool) {
	for _, e := range t.Entries {
		for _, v := range e.Variants {
			if strings.Contains(fragment, v) || strings.Contains(v, fragment) {
				return e.Canonical, true
			}
		}
	}
	return "", false
}

// Lookup returns the entry for a canonical name, if present.
func (t *Table) Lookup(canonical string) (Entry, bool) {
	for _, e := range t.Entries {
		if e.Canonical == canonical {
			return e, true
		}
	}
	return Entry{}, false
}

// Canonicals returns the canonical names in table order.
func (t *Table) Canonicals() []string {
	names := make([]string, 0, len(t.Entries))
	for _, e := range t.Entries {
		names = append(names, e.Canonical)
	}
	return names
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.Entries)
}
