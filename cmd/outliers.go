package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/iscol-meeting/iscol2025/helpers"
	"github.com/iscol-meeting/iscol2025/outliers"
)

var (
	outliersInput      string
	outliersOutput     string
	outliersCategories string
	outliersCharts     bool
	outliersJSON       bool
)

var outliersCmd = &cobra.Command{
	Use:   "outliers",
	Short: "Flag registrations that deserve a manual look",
	Long: `Scan a raw registration export for entries worth a manual look.

The scan runs on the export as submitted, before any cleaning, so duplicate
registrations and malformed values are still visible. It flags suspicious
emails, name oddities, free-text roles, generic affiliations, odd submission
times, and comments that ask for something.

Nothing flagged here is rejected. The report exists so a human can decide.

Examples:
  iscol outliers -i registrations.csv
  iscol outliers -i registrations.xlsx --charts
  iscol outliers -i registrations.csv --json -o outliers.json`,
	RunE: runOutliers,
}

func init() {
	outliersCmd.Flags().StringVarP(&outliersInput, "input", "i", "", "Registration export, CSV or XLSX (default: stdin)")
	outliersCmd.Flags().StringVarP(&outliersOutput, "output", "o", "", "Report file (default: stdout)")
	outliersCmd.Flags().StringVar(&outliersCategories, "categories", "", "Role and organization categories YAML file")
	outliersCmd.Flags().BoolVar(&outliersCharts, "charts", false, "Append terminal charts to the report")
	outliersCmd.Flags().BoolVar(&outliersJSON, "json", false, "Output the report as JSON")
}

func runOutliers(cmd *cobra.Command, args []string) error {
	records, err := readRecords(outliersInput)
	if err != nil {
		return err
	}
	slog.Info("loaded registration export",
		"source", helpers.Or(outliersInput, "stdin"),
		"records", len(records))

	cats, err := loadCategories(outliersCategories)
	if err != nil {
		return err
	}

	rep := outliers.Find(records, cats)

	var output []byte
	if outliersJSON {
		output, err = json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling report: %w", err)
		}
	} else {
		text := outliers.Render(rep)
		if outliersCharts {
			text += "\n" + outliers.Charts(rep)
		}
		output = []byte(text)
	}

	if outliersOutput != "" {
		return os.WriteFile(outliersOutput, output, 0644)
	}

	fmt.Println(string(output))
	return nil
}
