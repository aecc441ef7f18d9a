// Package cmd provides CLI commands for the iscol toolkit.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

var rootCmd = &cobra.Command{
	Use:   "iscol",
	Short: "Clean and analyze ISCOL registration data",
	Long: `iscol is a CLI toolkit for organizing the ISCOL conference.

It cleans Google Forms registration exports, reports attendance statistics,
flags suspicious registrations for manual review, and generates the posters
page of the conference site.

Examples:
  iscol analyze -i registrations.csv
  iscol analyze -i registrations.xlsx --charts -o report.txt
  iscol outliers -i registrations.csv
  iscol validate -i registrations.csv --strict
  iscol posters -i posters.csv -o site/posters.html
  iscol aliases`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	setupLogger()
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(outliersCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(postersCmd)
	rootCmd.AddCommand(aliasesCmd)
}
