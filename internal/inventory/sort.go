package inventory

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/a3tools/modsweep/internal/model"
)

// SortMode selects the row ordering of a finished report.
type SortMode string

// Supported sort modes.
const (
	// SortNone keeps the export document's original ordering.
	SortNone SortMode = "none"

	// SortSize orders rows by size, largest first.
	SortSize SortMode = "size"

	// SortName orders rows by display name, case-insensitively.
	SortName SortMode = "name"
)

// ParseSortMode validates a user-supplied sort mode string.
func ParseSortMode(s string) (SortMode, error) {
	switch SortMode(s) {
	case SortNone, SortSize, SortName:
		return SortMode(s), nil
	default:
		return "", fmt.Errorf("unknown sort mode %q (valid: none, size, name)", s)
	}
}

// SortRows re-orders the report's rows in place according to mode and
// reassigns ordinals. SortNone leaves the report untouched.
//
// Name ordering uses Unicode collation rather than byte comparison so
// mods with accented or mixed-case names sort the way a user expects.
func SortRows(r *model.Report, mode SortMode) {
	switch mode {
	case SortSize:
		sort.SliceStable(r.Rows, func(i, j int) bool {
			return r.Rows[i].SizeMB > r.Rows[j].SizeMB
		})
	case SortName:
		c := collate.New(language.Und, collate.IgnoreCase)
		sort.SliceStable(r.Rows, func(i, j int) bool {
			return c.CompareString(r.Rows[i].Name, r.Rows[j].Name) < 0
		})
	default:
		return
	}

	r.Renumber()
}
