package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/iscol-meeting/iscol2025/config"
	"github.com/iscol-meeting/iscol2025/posters"
)

var (
	postersInput  string
	postersOutput string
	postersConfig string
)

var postersCmd = &cobra.Command{
	Use:   "posters",
	Short: "Generate the posters page of the conference site",
	Long: `Generate posters.html from the accepted-poster CSV.

Posters are grouped into their sessions in program order. The event name,
session times, and the canonical page URL come from the config file, so a
new edition needs new settings, not new code.

Examples:
  iscol posters -i posters.csv
  iscol posters -i posters.csv -o site/posters.html
  iscol posters -i posters.csv --config iscol.yaml`,
	RunE: runPosters,
}

func init() {
	postersCmd.Flags().StringVarP(&postersInput, "input", "i", "", "Accepted-poster CSV (default: stdin)")
	postersCmd.Flags().StringVarP(&postersOutput, "output", "o", "", "Output HTML path (default: posters.html in the output dir)")
	postersCmd.Flags().StringVar(&postersConfig, "config", "", "Event config YAML file")
}

func runPosters(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(postersConfig)
	if err != nil {
		return err
	}

	var items []posters.Poster
	if postersInput != "" {
		items, err = posters.ReadFile(postersInput)
	} else {
		items, err = posters.Parse(os.Stdin)
	}
	if err != nil {
		return err
	}

	sessions := posters.Group(items, cfg.Sessions)

	page := &posters.Page{
		EventName:    cfg.Event.Name,
		EventDate:    cfg.Event.Date,
		Venue:        cfg.Event.Venue,
		CanonicalURL: cfg.PageURL("posters.html"),
		Sessions:     sessions,
	}

	outPath := postersOutput
	if outPath == "" {
		outPath = filepath.Join(cfg.Output.Dir, "posters.html")
	}
	if err := posters.WriteFile(outPath, page); err != nil {
		return err
	}

	fmt.Printf("✓ Generated %s: %d posters across %d sessions\n", outPath, len(items), len(sessions))
	for _, s := range sessions {
		fmt.Printf("  Session %d: %d posters\n", s.ID, len(s.Posters))
	}
	return nil
}
