package workshop

import "fmt"

// NotFoundError is returned when a mod's folder cannot be located even
// after the sanitization fallback. It carries both attempted paths so the
// user can see exactly where the tool looked.
//
// Design decision: We use a typed error rather than a sentinel because
// callers need the mod name and candidate paths for the failure message,
// and errors.As() still allows programmatic handling.
type NotFoundError struct {
	// Name is the mod display name as it appears in the export.
	Name string

	// Tried lists the candidate folder paths in attempt order.
	Tried []string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("mod folder not found for %q (tried %v)", e.Name, e.Tried)
}
