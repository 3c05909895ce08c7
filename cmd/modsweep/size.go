package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/a3tools/modsweep/internal/config"
	"github.com/a3tools/modsweep/internal/export"
	"github.com/a3tools/modsweep/internal/model"
	"github.com/a3tools/modsweep/internal/workshop"
)

// NewSizeCmd creates the size command.
func NewSizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "size",
		Short: "Report the disk usage of every mod in a modpack export",
		Long: `Size reads one modpack export HTML file, locates each referenced mod's
folder under <arma-root>/!Workshop, and reports the per-mod disk usage
together with the modpack's grand total in MB and GB.

Mods whose display name contains characters illegal in a folder name
(':' or '/') are located via the launcher's sanitized folder name.

Examples:
  # Report sizes for one modpack
  modsweep size -f modpack.html

  # Use a non-standard installation root
  modsweep size -f modpack.html -r "D:\Games\Arma 3"

  # Largest mods first, written to a file
  modsweep size -f modpack.html --sort size -o report.txt

  # Machine-readable output
  modsweep size -f modpack.html --json`,
		RunE: runSizeCmd,
	}

	cmd.Flags().StringP("html-file", "f", "",
		"Path to the modpack export HTML file")
	_ = cmd.MarkFlagRequired("html-file") //nolint:errcheck // Flag is registered above

	addCommonFlags(cmd)

	return cmd
}

// runSizeCmd executes the size command.
func runSizeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildCommonConfig(cmd)
	if err != nil {
		return err
	}

	htmlFile, err := cmd.Flags().GetString("html-file")
	if err != nil {
		return err
	}
	cfg.ExportFiles = []string{htmlFile}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	return runSize(cfg, logger)
}

// runSize reads the export, measures every mod, and writes the report.
func runSize(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting size report",
		"export", cfg.ExportFiles[0],
		"root", cfg.ArmaRoot,
	)

	doc, err := export.ParseFile(cfg.ExportFiles[0])
	if err != nil {
		return err
	}

	names := doc.ModNames()
	logger.Debug("extracted mod names", "count", len(names))

	resolver := workshop.NewResolver(cfg.ArmaRoot)

	var progress workshop.ProgressFunc
	if len(names) > 0 {
		bar := newProgressBar(len(names))
		progress = func(_, _ int) {
			_ = bar.Add(1) //nolint:errcheck // Progress display is best effort
		}
	}

	sizes, err := resolver.ResolveAll(names, progress)
	if err != nil {
		return err
	}

	return writeReport(cfg, model.NewReport(names, sizes))
}
