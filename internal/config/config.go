package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultArmaRoot is the stock Steam installation path of Arma 3 on
	// Windows, where the launcher this tool pairs with runs. Users with a
	// relocated Steam library (or a Proton prefix) override it with the
	// --arma-root flag or the armaRoot key of the config file.
	DefaultArmaRoot = `C:\Program Files\Steam\steamapps\common\Arma 3`

	// AppName is the application name used for XDG directory paths.
	AppName = "modsweep"
)

// Config holds all options for a single modsweep invocation.
// It is populated from CLI flags and the optional config file, then
// passed through the application via dependency injection rather than
// global state.
type Config struct {
	// ArmaRoot is the Arma 3 installation directory. Mod folders live
	// under <ArmaRoot>/!Workshop.
	ArmaRoot string

	// ExportFiles are the modpack export HTML files to read. The size
	// command takes exactly one; the unused command takes one or more
	// active-modpack exports.
	ExportFiles []string

	// AllModsFile is the export listing every mod ever downloaded.
	// Only the unused command uses it.
	AllModsFile string

	// JSONReport enables JSON report output instead of the console table.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of the
	// console table. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	ReportFile string

	// Sort selects the report row ordering: none, size, or name.
	// "none" preserves the export document's original ordering.
	Sort string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file. If empty, the
	// tool searches the usual locations (see FindConfigFile).
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because the installation root default is non-zero, and the
// constructor documents what the defaults are.
func NewConfig() *Config {
	return &Config{
		ArmaRoot: DefaultArmaRoot,
		Sort:     "none",
	}
}

// ApplyFile overlays values from a loaded config file onto c.
// Flag values already set by the user are not overwritten: the caller
// passes only the fields the user left at their defaults.
func (c *Config) ApplyFile(f *File) {
	if f == nil {
		return
	}
	if f.ArmaRoot != "" {
		c.ArmaRoot = f.ArmaRoot
	}
	if f.Sort != "" {
		c.Sort = f.Sort
	}
}

// XDGConfigDir returns the XDG config directory for modsweep.
// On Linux: ~/.config/modsweep
// On macOS: ~/Library/Application Support/modsweep
// On Windows: %APPDATA%\modsweep
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the configuration before any extraction or resolution
// work begins. Path problems abort here, never mid-scan.
//
// We return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	if len(c.ExportFiles) == 0 {
		return ErrNoExportFile
	}

	for _, path := range c.ExportFiles {
		if err := CheckFilePath(path); err != nil {
			return err
		}
	}

	if c.AllModsFile != "" {
		if err := CheckFilePath(c.AllModsFile); err != nil {
			return err
		}
	}

	if err := CheckDirPath(c.ArmaRoot); err != nil {
		return err
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}

// CheckFilePath ensures path exists and is a regular file.
func CheckFilePath(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrExportNotFound, path)
	}
	return nil
}

// CheckDirPath ensures path exists and is a directory.
func CheckDirPath(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrRootNotDir, path)
	}
	return nil
}
