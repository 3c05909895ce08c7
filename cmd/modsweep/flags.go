package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/a3tools/modsweep/internal/config"
	"github.com/a3tools/modsweep/internal/inventory"
	"github.com/a3tools/modsweep/internal/model"
	"github.com/a3tools/modsweep/internal/report"
)

// addCommonFlags registers the flags shared by the size and unused
// commands: installation root, config file, and report output options.
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("arma-root", "r", config.DefaultArmaRoot,
		"Path to the Arma 3 installation directory")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .modsweep in current or home directory)")

	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().StringP("sort", "s", "",
		"Report row ordering: none, size, or name (default: none)")
}

// buildCommonConfig creates a Config from the flags registered by
// addCommonFlags and overlays the optional config file.
//
// Flag values always win over file values, so the file is applied first
// for fields the user left unset.
func buildCommonConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load the config file before flags so explicit flags override it.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently skip when no file is found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.ApplyFile(file)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	if cmd.Flags().Changed("arma-root") {
		cfg.ArmaRoot, err = cmd.Flags().GetString("arma-root")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("sort") {
		cfg.Sort, err = cmd.Flags().GetString("sort")
		if err != nil {
			return nil, err
		}
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// Reject an unknown sort mode up front, before any filesystem work.
	if _, err := inventory.ParseSortMode(cfg.Sort); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newProgressBar creates the per-mod progress indicator shown while
// folders are being measured. It writes to stderr so it never mixes with
// a report piped from stdout.
func newProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("Measuring mods"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer: "█", SaucerHead: "█", SaucerPadding: "░",
			BarStart: "[", BarEnd: "]",
		}),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(os.Stderr) }),
	)
}

// writeReport sorts and outputs the report in the requested format.
func writeReport(cfg *config.Config, rep *model.Report) error {
	mode, err := inventory.ParseSortMode(cfg.Sort)
	if err != nil {
		return err
	}
	inventory.SortRows(rep, mode)

	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.Create(cfg.ReportFile) //nolint:gosec // User-provided output path is intentional
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f

		// Escape codes belong on terminals, not in files.
		color.NoColor = true
	} else {
		output = os.Stdout
	}

	var w report.Writer
	switch {
	case cfg.JSONReport:
		w = report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		w = report.NewMarkdownWriter(output)
	default:
		w = report.NewTableWriter(output)
	}

	_, err = w.Write(rep)
	return err
}
