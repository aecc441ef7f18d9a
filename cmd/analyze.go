package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/iscol-meeting/iscol2025/affiliation"
	"github.com/iscol-meeting/iscol2025/classify"
	"github.com/iscol-meeting/iscol2025/helpers"
	"github.com/iscol-meeting/iscol2025/registration"
	"github.com/iscol-meeting/iscol2025/report"
)

var (
	analyzeInput      string
	analyzeOutput     string
	analyzeCleaned    string
	analyzeAliases    string
	analyzeCategories string
	analyzeBOM        bool
	analyzeCharts     bool
	analyzeJSON       bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Clean a registration export and report statistics",
	Long: `Clean a Google Forms registration export and summarize who is coming.

Cleaning trims whitespace, lowercases emails, normalizes yes/no answers,
resolves affiliations against the alias table, and drops duplicate
registrations, keeping the first submission per email address. The cleaned
CSV lands next to the input unless --cleaned points elsewhere.

Input defaults to stdin (CSV only; XLSX needs a file path).

Examples:
  iscol analyze -i registrations.csv
  iscol analyze -i registrations.xlsx --charts
  iscol analyze -i registrations.csv --json -o report.json
  iscol analyze -i registrations.csv --aliases extra-aliases.yaml --bom`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "", "Registration export, CSV or XLSX (default: stdin)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Report file (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeCleaned, "cleaned", "", "Cleaned CSV path (default: next to input)")
	analyzeCmd.Flags().StringVar(&analyzeAliases, "aliases", "", "Extra affiliation aliases YAML file")
	analyzeCmd.Flags().StringVar(&analyzeCategories, "categories", "", "Role and organization categories YAML file")
	analyzeCmd.Flags().BoolVar(&analyzeBOM, "bom", false, "Write the cleaned CSV with a UTF-8 BOM for Excel")
	analyzeCmd.Flags().BoolVar(&analyzeCharts, "charts", false, "Append terminal charts to the report")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output the report as JSON")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	records, err := readRecords(analyzeInput)
	if err != nil {
		return err
	}
	slog.Info("loaded registration export",
		"source", helpers.Or(analyzeInput, "stdin"),
		"records", len(records))

	normalizer, err := loadNormalizer(analyzeAliases)
	if err != nil {
		return err
	}
	cats, err := loadCategories(analyzeCategories)
	if err != nil {
		return err
	}

	cleaned, stats := registration.Clean(records, normalizer)

	cleanedPath := analyzeCleaned
	if cleanedPath == "" {
		cleanedPath = registration.CleanedPath(helpers.Or(analyzeInput, "registrations"))
	}
	opts := registration.WriteOptions{BOM: analyzeBOM}
	if err := registration.WriteCSV(cleanedPath, cleaned, opts); err != nil {
		return fmt.Errorf("writing cleaned CSV: %w", err)
	}
	slog.Info("wrote cleaned export",
		"path", cleanedPath,
		"records", len(cleaned),
		"duplicates_removed", stats.DuplicatesRemoved)

	summary := report.Build(cleaned, stats, cats)

	var output []byte
	if analyzeJSON {
		output, err = json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling report: %w", err)
		}
	} else {
		text := report.Render(summary)
		if analyzeCharts {
			text += "\n" + report.Charts(summary)
		}
		output = []byte(text)
	}

	if analyzeOutput != "" {
		return os.WriteFile(analyzeOutput, output, 0644)
	}

	fmt.Println(string(output))
	return nil
}

// readRecords loads a registration export from a file, or from stdin when
// no path is given. XLSX exports need a file path.
func readRecords(path string) ([]*registration.Record, error) {
	if path == "" {
		return registration.Parse(os.Stdin)
	}
	return registration.ReadFile(path)
}

// loadAliasTable builds the affiliation alias table, merging an extra
// alias file over the built-in table when given.
func loadAliasTable(path string) (*affiliation.Table, error) {
	table := affiliation.Default()
	if path == "" {
		return table, nil
	}
	extra, err := affiliation.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading aliases: %w", err)
	}
	return affiliation.Merge(table, extra), nil
}

func loadNormalizer(path string) (*affiliation.Normalizer, error) {
	table, err := loadAliasTable(path)
	if err != nil {
		return nil, err
	}
	return affiliation.NewNormalizer(table), nil
}

func loadCategories(path string) (*classify.Categories, error) {
	if path == "" {
		return classify.Default(), nil
	}
	cats, err := classify.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading categories: %w", err)
	}
	return cats, nil
}
