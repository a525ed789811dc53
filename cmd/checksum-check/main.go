package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Swatto86/checksum-check/internal/batch"
	"github.com/Swatto86/checksum-check/internal/cli"
	"github.com/Swatto86/checksum-check/internal/config"
	"github.com/Swatto86/checksum-check/internal/exitcode"
	"github.com/Swatto86/checksum-check/internal/logging"
	"github.com/Swatto86/checksum-check/internal/output"
	sighandler "github.com/Swatto86/checksum-check/internal/signal"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cfg := config.NewDefaultConfig()

	rootCmd := &cobra.Command{
		Use:     "checksum-check [flags] FILE...",
		Short:   "Compute MD5, SHA-1, SHA-256 and SHA-512 digests in a single read",
		Long:    "checksum-check reads each file exactly once and reports four digests together with the file's size and timestamps.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate flags after parsing
			if err := cli.ValidateFlags(cmd, cfg); err != nil {
				return err
			}
			return runChecksums(cmd, cfg, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Bind all CLI flags to the config
	cli.BindFlags(rootCmd, cfg)

	// Set custom help template
	cli.SetCustomHelp(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcode.Error)
	}
}

// buildCLIOverrides creates a map of CLI flag overrides from the config.
// Uses cmd.Flags().Changed() to only include flags explicitly set by the user,
// ensuring config file values are not accidentally overridden by default values.
func buildCLIOverrides(cmd *cobra.Command, cfg *config.Config) map[string]string {
	overrides := make(map[string]string)

	if cmd.Flags().Changed("format") {
		overrides["FORMAT"] = cfg.Format
		// An explicit format choice also discards any template a config
		// file may carry; the template would otherwise always win.
		overrides["TEMPLATE"] = ""
	}
	if cmd.Flags().Changed("template") {
		overrides["TEMPLATE"] = cfg.Template
	}
	if cmd.Flags().Changed("jobs") {
		overrides["JOBS"] = strconv.Itoa(cfg.Jobs)
	}
	if cmd.Flags().Changed("no-color") {
		overrides["NO_COLOR"] = strconv.FormatBool(cfg.NoColor)
	}
	if cmd.Flags().Changed("verbose") {
		overrides["VERBOSE"] = strconv.FormatBool(cfg.Verbose)
	}

	return overrides
}

func runChecksums(cmd *cobra.Command, cfg *config.Config, paths []string) error {
	// Load config with full precedence chain. CLI flags are already bound
	// to cfg; the file-based layers slot in underneath the explicit ones.
	cliOverrides := buildCLIOverrides(cmd, cfg)

	finalCfg, err := config.LoadWithPrecedence(config.UserConfigPath(), cfg.ConfigFile, cliOverrides)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Merge CLI-only flags (not in config files)
	finalCfg.ConfigFile = cfg.ConfigFile
	cfg = finalCfg

	// Set verbose mode and color preference
	logging.SetVerbose(cfg.Verbose)
	if cfg.NoColor {
		color.NoColor = true
	}

	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// First signal: stop taking new files, let in-flight ones finish.
	// Second signal: force quit.
	sighandler.SetupSignalHandler(ctx, cancel, func() {
		logging.Warn("Interrupted - finishing files in flight (press again to force quit)")
	})

	outcomes, runErr := batch.Run(ctx, paths, cfg.Jobs)
	if runErr != nil {
		logging.Warn(fmt.Sprintf("Run interrupted, %d of %d files hashed", hashedCount(outcomes), len(outcomes)))
		os.Exit(exitcode.Interrupted)
	}

	for _, o := range outcomes {
		if o.Err != nil {
			logging.Error(o.Err.Error())
		}
	}

	if err := renderer.Render(os.Stdout, outcomes); err != nil {
		return fmt.Errorf("render output: %w", err)
	}

	logging.Debug(fmt.Sprintf("hashed %d of %d files, %s total",
		hashedCount(outcomes), len(outcomes), logging.FormatBytes(totalBytes(outcomes))))

	os.Exit(exitcode.FromError(batch.FirstError(outcomes)))
	return nil // unreachable
}

// newRenderer picks the output renderer from the merged config. A non-empty
// template wins; otherwise the format name decides.
func newRenderer(cfg *config.Config) (*output.Renderer, error) {
	if cfg.Template != "" {
		if err := output.ValidateTemplate(cfg.Template); err != nil {
			return nil, err
		}
		return &output.Renderer{Format: output.FormatTemplate, Template: cfg.Template}, nil
	}
	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	return &output.Renderer{Format: format}, nil
}

func hashedCount(outcomes []batch.Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Err == nil {
			n++
		}
	}
	return n
}

func totalBytes(outcomes []batch.Outcome) int64 {
	var n int64
	for _, o := range outcomes {
		if o.Err == nil {
			n += o.Result.FileSize
		}
	}
	return n
}
