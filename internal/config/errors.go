package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoExportFile is returned when no modpack export file is specified.
	ErrNoExportFile = errors.New("no modpack export file specified")

	// ErrNoAllModsFile is returned when the unused command is run without
	// an all-mods export file.
	ErrNoAllModsFile = errors.New("no all-mods export file specified")

	// ErrExportNotFound is returned when a supplied export path does not
	// exist or is not a regular file.
	ErrExportNotFound = errors.New("export file not found")

	// ErrRootNotDir is returned when the supplied Arma root path does not
	// exist or is not a directory.
	ErrRootNotDir = errors.New("arma root is not a directory")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
