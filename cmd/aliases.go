package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	aliasesFile string
	aliasesJSON bool
)

var aliasesCmd = &cobra.Command{
	Use:   "aliases",
	Short: "Show the affiliation alias table",
	Long: `Show the alias table used to normalize affiliations.

Entries print in match order: the first entry with a variant matching a
fragment of an affiliation wins, so earlier entries shadow later ones.

Examples:
  iscol aliases
  iscol aliases --aliases extra-aliases.yaml
  iscol aliases --json`,
	RunE: runAliases,
}

func init() {
	aliasesCmd.Flags().StringVar(&aliasesFile, "aliases", "", "Extra affiliation aliases YAML file")
	aliasesCmd.Flags().BoolVar(&aliasesJSON, "json", false, "Output as JSON")
}

func runAliases(cmd *cobra.Command, args []string) error {
	table, err := loadAliasTable(aliasesFile)
	if err != nil {
		return err
	}

	if aliasesJSON {
		output, err := json.MarshalIndent(table, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling table: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	if table.Description != "" {
		fmt.Println(table.Description)
	}
	fmt.Printf("%d organizations:\n", table.Len())
	for _, e := range table.Entries {
		fmt.Printf("  %s - %s\n", e.Canonical, strings.Join(e.Variants, ", "))
	}

	return nil
}
