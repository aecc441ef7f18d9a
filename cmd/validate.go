package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/iscol-meeting/iscol2025/helpers"
	"github.com/iscol-meeting/iscol2025/registration"
)

var (
	validateInput  string
	validateStrict bool
	validateJSON   bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a registration export without cleaning it",
	Long: `Validate registration records and report problems row by row.

Default checks require a full name, verify that emails and timestamps
parse when present, and warn about suspicious values. --strict
additionally requires an email address and a timestamp.

Row numbers refer to the source spreadsheet, header included, so row 2 is
the first registration.

Examples:
  iscol validate -i registrations.csv
  iscol validate -i registrations.csv --strict
  cat registrations.csv | iscol validate`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "Registration export, CSV or XLSX (default: stdin)")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Require name, email, and timestamp")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Output findings as JSON")
}

func runValidate(cmd *cobra.Command, args []string) error {
	records, err := readRecords(validateInput)
	if err != nil {
		return err
	}

	opts := registration.DefaultValidationOptions()
	if validateStrict {
		opts = registration.StrictValidationOptions()
	}

	findings := registration.ValidateAll(records, opts)

	invalid := 0
	warned := 0
	for _, result := range findings {
		if !result.IsValid() {
			invalid++
		}
		if result.HasWarnings() {
			warned++
		}
	}

	if validateJSON {
		output, err := json.MarshalIndent(findings, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling findings: %w", err)
		}
		fmt.Println(string(output))
	} else {
		rows := make([]int, 0, len(findings))
		for row := range findings {
			rows = append(rows, row)
		}
		sort.Ints(rows)

		for _, row := range rows {
			result := findings[row]
			for _, e := range result.Errors {
				fmt.Printf("row %d: ✗ %s\n", row, e.Error())
			}
			for _, w := range result.Warnings {
				fmt.Printf("row %d: ⚠ %s\n", row, w.Error())
			}
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d records failed validation", invalid, len(records))
	}

	if !validateJSON {
		source := helpers.Or(validateInput, "stdin")
		if warned > 0 {
			fmt.Printf("✓ Valid: %d records from %s, %d with warnings\n", len(records), source, warned)
		} else {
			fmt.Printf("✓ Valid: %d records from %s\n", len(records), source)
		}
	}
	return nil
}
