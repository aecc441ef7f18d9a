package affiliation

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed tables/default.yaml
var defaultTableYAML []byte

var defaultTable = mustParseTable(defaultTableYAML)

// Default returns the built-in alias table. The table is parsed once at
// package initialization and must not be mutated by callers.
func Default() *Table {
	return defaultTable
}

// Load loads an alias table from a YAML file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading alias table: %w", err)
	}
	return Parse(data)
}

// Parse parses an alias table from YAML content. Variants are lowercased so
// they can match lowercased input fragments; empty variants and entries
// without a canonical name are dropped.
func Parse(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing alias table YAML: %w", err)
	}

	entries := t.Entries[:0]
	for _, e := range t.Entries {
		if strings.TrimSpace(e.Canonical) == "" {
			continue
		}
		variants := make([]string, 0, len(e.Variants))
		for _, v := range e.Variants {
			if strings.TrimSpace(v) == "" {
				continue
			}
			variants = append(variants, strings.ToLower(v))
		}
		if len(variants) == 0 {
			continue
		}
		e.Variants = variants
		entries = append(entries, e)
	}
	t.Entries = entries

	return &t, nil
}

// Merge layers an extra table over a base table. Base entries keep their
// position; variants for a canonical both tables know are appended to the
// base entry, and new canonicals are appended after the base entries in the
// extra table's order.
func Merge(base, extra *Table) *Table {
	merged := &Table{
		Name:        base.Name,
		Description: base.Description,
		Entries:     make([]Entry, len(base.Entries)),
	}
	if extra.Name != "" {
		merged.Name = extra.Name
	}

	index := make(map[string]int, len(base.Entries))
	for i, e := range base.Entries {
		merged.Entries[i] = Entry{
			Canonical: e.Canonical,
			Variants:  append([]string(nil), e.Variants...),
		}
		index[e.Canonical] = i
	}

	for _, e := range extra.Entries {
		i, ok := index[e.Canonical]
		if !ok {
			merged.Entries = append(merged.Entries, Entry{
				Canonical: e.Canonical,
				Variants:  append([]string(nil), e.Variants...),
			})
			index[e.Canonical] = len(merged.Entries) - 1
			continue
		}
		for _, v := range e.Variants {
			if !containsString(merged.Entries[i].Variants, v) {
				merged.Entries[i].Variants = append(merged.Entries[i].Variants, v)
			}
		}
	}

	return merged
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func mustParseTable(data []byte) *Table {
	t, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("affiliation: invalid embedded alias table: %v", err))
	}
	return t
}
