package helpers

import "testing"

func TestTitleCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single word lowercase",
			input: "google",
			want:  "Google",
		},
		{
			name:  "all caps lowered after first letter",
			input: "GOOGLE",
			want:  "Google",
		},
		{
			name:  "domain restarts after dot",
			input: "example.com",
			want:  "Example.Com",
		},
		{
			name:  "hyphenated words",
			input: "bar-ilan university",
			want:  "Bar-Ilan University",
		},
		{
			name:  "digits do not break but do restart",
			input: "ai21 labs",
			want:  "Ai21 Labs",
		},
		{
			name:  "apostrophe starts a new word",
			input: "o'brien",
			want:  "O'Brien",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "punctuation only",
			input: "---",
			want:  "---",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TitleCase(tt.input); got != tt.want {
				t.Errorf("TitleCase(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNameKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips spaces and case",
			input: "  Dana Cohen ",
			want:  "danacohen",
		},
		{
			name:  "punctuation removed",
			input: "Dana-Cohen, Jr.",
			want:  "danacohenjr",
		},
		{
			name:  "underscore kept",
			input: "dana_cohen",
			want:  "dana_cohen",
		},
		{
			name:  "hebrew letters kept",
			input: "דנה כהן",
			want:  "דנהכהן",
		},
		{
			name:  "digits kept",
			input: "Agent 99",
			want:  "agent99",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NameKey(tt.input); got != tt.want {
				t.Errorf("NameKey(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestOr(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fallback string
		want     string
	}{
		{name: "value kept", input: "Yes", fallback: "Not specified", want: "Yes"},
		{name: "value trimmed", input: "  Yes ", fallback: "Not specified", want: "Yes"},
		{name: "empty falls back", input: "", fallback: "Not specified", want: "Not specified"},
		{name: "whitespace falls back", input: "   ", fallback: "Not specified", want: "Not specified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Or(tt.input, tt.fallback); got != tt.want {
				t.Errorf("Or(%q, %q) = %q, want %q", tt.input, tt.fallback, got, tt.want)
			}
		})
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "collapses runs", input: "a  b\t c", want: "a b c"},
		{name: "newlines become spaces", input: "a\nb\r\nc", want: "a b c"},
		{name: "trims", input: "  a  ", want: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeWhitespace(tt.input); got != tt.want {
				t.Errorf("NormalizeWhitespace(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{name: "short string unchanged", input: "hello", maxLen: 10, want: "hello"},
		{name: "truncated with ellipsis", input: "hello wonderful world", maxLen: 15, want: "hello wonder..."},
		{name: "tiny max hard cut", input: "hello", maxLen: 2, want: "he"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateText(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("TruncateText(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}
