package affiliation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize(t *testing.T) {
	n := NewNormalizer(nil)

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty value",
			input: "",
			want:  []string{NotSpecified},
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  []string{NotSpecified},
		},
		{
			name:  "dash placeholder",
			input: "-",
			want:  []string{NotSpecified},
		},
		{
			name:  "canonical name is a fixed point",
			input: "Google",
			want:  []string{"Google"},
		},
		{
			name:  "variant resolves to canonical",
			input: "google research",
			want:  []string{"Google"},
		},
		{
			name:  "case insensitive",
			input: "GOOGLE",
			want:  []string{"Google"},
		},
		{
			name:  "misspelled variant",
			input: "Bar Illan University",
			want:  []string{"Bar Ilan University"},
		},
		{
			name:  "typo variant",
			input: "IBM Resaerch",
			want:  []string{"IBM"},
		},
		{
			name:  "dash separated full name",
			input: "Technion - Israel Institute of Technology",
			want:  []string{"Technion"},
		},
		{
			name:  "slash separated affiliations",
			input: "Bar Ilan / Google",
			want:  []string{"Bar Ilan University", "Google"},
		},
		{
			name:  "comma separated affiliations",
			input: "Technion, Google",
			want:  []string{"Technion", "Google"},
		},
		{
			name:  "and separated affiliations",
			input: "technion and google",
			want:  []string{"Technion", "Google"},
		},
		{
			name:  "ampersand separated affiliations",
			input: "TAU & IBM",
			want:  []string{"Tel Aviv University", "IBM"},
		},
		{
			name:  "duplicate canonicals collapse",
			input: "Google, google research",
			want:  []string{"Google"},
		},
		{
			name:  "duplicate unmatched fragments collapse",
			input: "mystery lab x, mystery lab x",
			want:  []string{"Mystery Lab X"},
		},
		{
			name:  "email of unlisted org falls back to domain",
			input: "some-unlisted-lab@example.com",
			want:  []string{"Example.Com"},
		},
		{
			name:  "email domain matches alias",
			input: "student@technion.ac.il",
			want:  []string{"Technion"},
		},
		{
			name:  "unmatched value is title cased",
			input: "open university of israel",
			want:  []string{"Open University Of Israel"},
		},
		{
			name:  "only delimiters",
			input: ",",
			want:  []string{NotSpecified},
		},
		{
			name:  "leading empty fragment skipped",
			input: ", google",
			want:  []string{"Google"},
		},
		{
			name:  "untrimmed dash is not the placeholder",
			input: " - ",
			want:  []string{"Bar Ilan University"},
		},
		{
			name:  "acronym variant",
			input: "huji",
			want:  []string{"Hebrew University"},
		},
		{
			name:  "trailing whitespace trimmed before matching",
			input: "tel aviv university ",
			want:  []string{"Tel Aviv University"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Normalize(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Normalize(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

// The normalizer must be total: any input yields a non-empty list of
// non-empty, distinct strings.
func TestNormalizeIsTotal(t *testing.T) {
	n := NewNormalizer(nil)

	inputs := []string{
		"",
		"-",
		" - ",
		"   ",
		",,,",
		"###",
		"a",
		"&",
		" and ",
		"TAU, TAU, TAU",
		"one / two / three / four",
		"שלום",
		"not-an-email@",
		"a@b.c",
		"very long affiliation name that matches nothing in the table at all",
	}

	for _, input := range inputs {
		got := n.Normalize(input)
		if len(got) == 0 {
			t.Errorf("Normalize(%q) returned an empty result", input)
			continue
		}
		seen := make(map[string]bool)
		for _, name := range got {
			if name == "" {
				t.Errorf("Normalize(%q) returned an empty string in %v", input, got)
			}
			if seen[name] {
				t.Errorf("Normalize(%q) returned duplicate %q in %v", input, name, got)
			}
			seen[name] = true
		}
	}
}

func TestNormalizeCanonicalFixedPoints(t *testing.T) {
	n := NewNormalizer(nil)

	// Not every canonical is a fixed point (a shorter entry earlier in the
	// table can shadow it, e.g. "AI21" resolves to "ai2"), but these are.
	for _, name := range []string{"Google", "Technion", "Tel Aviv University", "Weizmann Institute", "Microsoft"} {
		got := n.Normalize(name)
		if len(got) != 1 || got[0] != name {
			t.Errorf("Normalize(%q) = %v, want [%q]", name, got, name)
		}
	}
}

func TestNormalizeAll(t *testing.T) {
	n := NewNormalizer(nil)

	got := n.NormalizeAll([]string{"Google", "-", "biu"})
	want := [][]string{{"Google"}, {NotSpecified}, {"Bar Ilan University"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NormalizeAll mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeWithCustomTable(t *testing.T) {
	table := &Table{
		Entries: []Entry{
			{Canonical: "Mobileye", Variants: []string{"mobileye", "mobileye vision"}},
		},
	}
	n := NewNormalizer(table)

	got := n.Normalize("Mobileye Vision Technologies")
	want := []string{"Mobileye"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Normalize mismatch (-want +got):\n%s", diff)
	}

	// The built-in table is not consulted when a custom table is supplied:
	// "google research" would resolve to "Google" against the default table.
	got = n.Normalize("google research")
	want = []string{"Google Research"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Normalize with custom table mismatch (-want +got):\n%s", diff)
	}
}
