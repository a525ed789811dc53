// Package cli provides flag binding and validation for the checksum-check CLI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Swatto86/checksum-check/internal/config"
	"github.com/Swatto86/checksum-check/internal/output"
)

// BindFlags registers all CLI flags on the given cobra command.
// The flags directly modify fields in the provided config pointer.
// Call ValidateFlags after parsing to check flag combinations.
func BindFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	// Output Selection
	flags.StringVarP(&cfg.Format, "format", "f", "text", "Output format: text, json or yaml")
	flags.StringVar(&cfg.Template, "template", "", "Line template rendered per file instead of a format")

	// Concurrency
	flags.IntVarP(&cfg.Jobs, "jobs", "j", 1, "Number of files to hash concurrently")

	// Presentation
	flags.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable debug logging")

	// Configuration
	flags.StringVar(&cfg.ConfigFile, "config", "", "Path to additional config file")
}

// ValidateFlags checks for invalid flag combinations after parsing.
// Must be called after cmd.Execute() or cmd.ParseFlags().
func ValidateFlags(cmd *cobra.Command, cfg *config.Config) error {
	// Mutual exclusion: --format and --template
	if cmd.Flags().Changed("format") && cmd.Flags().Changed("template") {
		return fmt.Errorf("--format and --template are mutually exclusive")
	}

	// --config must exist if provided
	if cfg.ConfigFile != "" {
		if _, err := os.Stat(cfg.ConfigFile); err != nil {
			return fmt.Errorf("--config: %w", err)
		}
	}

	// --jobs must be positive
	if cfg.Jobs < 1 {
		return fmt.Errorf("--jobs must be at least 1, got: %d", cfg.Jobs)
	}

	// Reject unknown format names before any file is touched
	if cmd.Flags().Changed("format") {
		if _, err := output.ParseFormat(cfg.Format); err != nil {
			return fmt.Errorf("--format: %w", err)
		}
	}

	// Reject unknown template placeholders before any file is touched
	if cfg.Template != "" {
		if err := output.ValidateTemplate(cfg.Template); err != nil {
			return fmt.Errorf("--template: %w", err)
		}
	}

	return nil
}
