package registration

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// cleanedHeader lists the columns of a cleaned export: the form's original
// columns followed by the computed ones.
var cleanedHeader = []string{
	"Timestamp",
	"Full Name",
	"Email Address",
	"Affiliation (University/Company)",
	"Are you attending ISCOL 2025?",
	"I identify as a:",
	"Did you submit a paper to ISCOL?",
	"Will you be driving a car?",
	"Any additional comments or requests?",
	"Affiliation_Normalized",
	"Attending",
	"Role",
	"Submitted_Paper",
	"Driving",
}

// WriteOptions configures CSV writing behavior.
type WriteOptions struct {
	// BOM prefixes the file with a UTF-8 byte order mark so Excel detects
	// the encoding. Hebrew names garble without it.
	BOM bool
}

// WriteCSV writes cleaned records to path in the cleaned-export layout.
func WriteCSV(path string, records []*Record, opts WriteOptions) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if opts.BOM {
		if _, err := f.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("writing BOM: %w", err)
		}
	}

	w := csv.NewWriter(f)
	if err := w.Write(cleanedHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.Timestamp,
			r.FullName,
			r.Email,
			r.Affiliation,
			r.Attending,
			r.Role,
			r.SubmittedPaper,
			r.Driving,
			r.Comments,
			strings.Join(r.NormalizedAffiliations, ", "),
			r.Attending,
			r.Role,
			r.SubmittedPaper,
			r.Driving,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", r.SourceRow, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// CleanedPath derives the default cleaned-export path from the input path:
// registrations.csv becomes registrations_cleaned.csv.
func CleanedPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_cleaned.csv"
}
