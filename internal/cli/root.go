// Package cli provides the Cobra command structure for specvalidate.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/specvalidate/internal/configloader"
	"github.com/yaklabco/specvalidate/internal/logging"
	"github.com/yaklabco/specvalidate/pkg/config"
	"github.com/yaklabco/specvalidate/pkg/reporter"
	"github.com/yaklabco/specvalidate/pkg/runner"
	"github.com/yaklabco/specvalidate/pkg/validate"
)

// ErrValidationFailed is returned when at least one document failed validation
// or could not be read. It only signals the exit status.
var ErrValidationFailed = errors.New("validation failed")

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

type rootFlags struct {
	quick       bool
	configPath  string
	noConfig    bool
	color       string
	debug       bool
	printConfig bool
}

// NewRootCommand creates the root specvalidate command.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "specvalidate [flags] <file>...",
		Short: "Validate Markdown specification documents",
		Long: `specvalidate checks Markdown specification documents for required
sections and common quality problems.

In full mode a document must contain the Overview, User Stories, Technical,
UI/UX, Edge Cases, Security, Performance and Implementation sections. Quick
mode (--quick) only requires What, Why, How and Acceptance Criteria.

Unresolved placeholders such as [TODO] or [TBD] fail validation. Vague
language, empty tables and placeholder checkboxes produce warnings.`,
		Example: `  specvalidate docs/feature-spec.md
  specvalidate --quick docs/specs/*.md
  specvalidate --config team.yml spec.md
  specvalidate --print-config`,
		Version: fmt.Sprintf("%s (commit %s, built %s)", info.Version, info.Commit, info.Date),
		Args: func(cmd *cobra.Command, args []string) error {
			if flags.printConfig {
				return nil
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().BoolVar(&flags.quick, "quick", false, "validate against the quick section set")
	rootCmd.Flags().StringVar(&flags.configPath, "config", "", "path to config file")
	rootCmd.Flags().BoolVar(&flags.noConfig, "no-config", false, "skip user and project config discovery")
	rootCmd.Flags().StringVar(&flags.color, "color", config.ColorAuto,
		"colorize output: auto, always, never")
	rootCmd.Flags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&flags.printConfig, "print-config", false,
		"print the resolved configuration as YAML and exit")

	ApplyToCommand(rootCmd)

	return rootCmd
}

func runValidate(cmd *cobra.Command, args []string, flags *rootFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := newCommandLogger(cmd.ErrOrStderr(), flags.debug)
	ctx = logging.WithLogger(ctx, logger)

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:          workDir,
		ExplicitPath:        flags.configPath,
		IgnoreUserConfig:    flags.noConfig,
		IgnoreProjectConfig: flags.noConfig,
		CLIConfig:           flags.cliConfig(cmd),
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldConfig, loadResult.LoadedFrom)
	}

	cfg := loadResult.Config
	logger.Debug("configuration resolved",
		logging.FieldMode, cfg.Mode,
		logging.FieldColor, cfg.Color,
		logging.FieldWorkingDir, workDir,
	)

	if flags.printConfig {
		return printConfig(cmd.OutOrStdout(), cfg)
	}

	rep := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Color:       cfg.Color,
		ShowSummary: true,
	})

	logger.Debug("starting validation", logging.FieldPaths, args)

	result, err := runner.New().Run(ctx, runner.Options{
		Paths:  args,
		Config: cfg,
		Visit: func(outcome runner.FileOutcome) error {
			return rep.ReportFile(ctx, outcome)
		},
	})
	if err != nil {
		return errors.Join(errors.New("validation run failed"), err)
	}

	if err := rep.ReportSummary(ctx, result); err != nil {
		return fmt.Errorf("report summary: %w", err)
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrValidationFailed
	}

	return nil
}

// cliConfig builds the highest-precedence config layer from explicitly set flags.
func (f *rootFlags) cliConfig(cmd *cobra.Command) *config.Config {
	cfg := &config.Config{Debug: f.debug}
	if f.quick {
		cfg.Mode = config.ModeQuick
	}
	if cmd.Flags().Changed("color") {
		cfg.Color = f.color
	}
	return cfg
}

// newCommandLogger logs to the command's error stream. On stderr it reuses
// the terminal-aware default logger at the requested level.
func newCommandLogger(w io.Writer, debug bool) *log.Logger {
	level := "info"
	if debug {
		level = "debug"
	}

	if w == os.Stderr {
		logging.SetLevel(level)
		return logging.Default()
	}

	return logging.NewWithWriter(w, level, log.LogfmtFormatter)
}

// printConfig writes the effective configuration, with built-in section
// lists and thresholds filled in.
func printConfig(w io.Writer, cfg *config.Config) error {
	effective := cfg.Clone()
	effective.Sections.Full = cfg.RequiredSections(config.ModeFull)
	effective.Sections.Quick = cfg.RequiredSections(config.ModeQuick)

	th := validate.ThresholdsFromConfig(cfg)
	effective.Thresholds = config.ThresholdsConfig{
		MinCriteria:   config.IntPtr(th.MinCriteria),
		MinCodeBlocks: config.IntPtr(th.MinCodeBlocks),
		MinTableRows:  config.IntPtr(th.MinTableRows),
		MinLines:      config.IntPtr(th.MinLines),
		MaxLines:      config.IntPtr(th.MaxLines),
	}

	data, err := effective.ToYAMLWithHeader("# Resolved specvalidate configuration")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
