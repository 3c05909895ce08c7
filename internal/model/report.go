package model

import (
	"fmt"
	"math"
)

// ModRow is one line of a mod size report.
type ModRow struct {
	// Ordinal is the 1-based position of the mod in the report.
	Ordinal int `json:"ordinal"`

	// Name is the mod's display name as shown in the launcher.
	Name string `json:"name"`

	// SizeMB is the recursive size of the mod's folder in megabytes.
	// Stored unrounded; writers round for display.
	SizeMB float64 `json:"size_mb"`
}

// Report is a finished mod size report: one row per mod plus grand totals.
//
// Design decision: We keep row sizes unrounded and compute totals from the
// raw values so the totals equal the sum of the measured sizes, not the
// sum of their rounded representations.
type Report struct {
	// Rows holds one entry per mod, in input order.
	Rows []ModRow `json:"rows"`

	// TotalMB is the sum of all row sizes, rounded to 2 decimal places.
	TotalMB float64 `json:"total_mb"`

	// TotalGB is TotalMB / 1024, rounded to 3 decimal places.
	TotalGB float64 `json:"total_gb"`
}

// NewReport pairs names with sizes positionally and computes totals.
// Both slices must have equal length; a mismatch is a programming error
// in the caller, not a user-facing condition, so it panics.
func NewReport(names []string, sizes []float64) *Report {
	if len(names) != len(sizes) {
		panic(fmt.Sprintf("model: %d names paired with %d sizes", len(names), len(sizes)))
	}

	rows := make([]ModRow, 0, len(names))
	var sum float64
	for i, name := range names {
		rows = append(rows, ModRow{
			Ordinal: i + 1,
			Name:    name,
			SizeMB:  sizes[i],
		})
		sum += sizes[i]
	}

	totalMB := Round(sum, 2)
	return &Report{
		Rows:    rows,
		TotalMB: totalMB,
		TotalGB: Round(totalMB/1024.0, 3),
	}
}

// TotalBytes returns the approximate total size in bytes, reconstructed
// from the unrounded row sizes.
func (r *Report) TotalBytes() uint64 {
	var sum float64
	for _, row := range r.Rows {
		sum += row.SizeMB
	}
	if sum <= 0 {
		return 0
	}
	return uint64(sum * 1024 * 1024)
}

// Renumber reassigns 1-based ordinals in current row order.
// Used after a report has been re-sorted.
func (r *Report) Renumber() {
	for i := range r.Rows {
		r.Rows[i].Ordinal = i + 1
	}
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}
