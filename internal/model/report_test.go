package model

import "testing"

// TestNewReport tests report assembly from parallel name/size sequences.
func TestNewReport(t *testing.T) {
	t.Parallel()

	t.Run("pairs names and sizes positionally with 1-based ordinals", func(t *testing.T) {
		t.Parallel()

		r := NewReport([]string{"Alpha", "CBA_A3"}, []float64{10, 250})
		if len(r.Rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(r.Rows))
		}
		if r.Rows[0].Ordinal != 1 || r.Rows[0].Name != "Alpha" || r.Rows[0].SizeMB != 10 {
			t.Errorf("unexpected first row: %+v", r.Rows[0])
		}
		if r.Rows[1].Ordinal != 2 || r.Rows[1].Name != "CBA_A3" || r.Rows[1].SizeMB != 250 {
			t.Errorf("unexpected second row: %+v", r.Rows[1])
		}
	})

	t.Run("computes MB and GB totals with stated rounding", func(t *testing.T) {
		t.Parallel()

		r := NewReport([]string{"Alpha", "CBA_A3"}, []float64{10, 250})
		if r.TotalMB != 260.0 {
			t.Errorf("got TotalMB %v, expected 260", r.TotalMB)
		}
		// 260 / 1024 = 0.25390625, rounded to 3 decimals
		if r.TotalGB != 0.254 {
			t.Errorf("got TotalGB %v, expected 0.254", r.TotalGB)
		}
	})

	t.Run("totals come from unrounded row sizes", func(t *testing.T) {
		t.Parallel()

		r := NewReport([]string{"a", "b"}, []float64{1.0041, 1.0041})
		// Sum is 2.0082, which rounds to 2.01. Summing the per-row
		// display values (1.004 each) would give 2.008 instead.
		if r.TotalMB != 2.01 {
			t.Errorf("got TotalMB %v, expected 2.01", r.TotalMB)
		}
	})

	t.Run("empty report has zero totals", func(t *testing.T) {
		t.Parallel()

		r := NewReport(nil, nil)
		if len(r.Rows) != 0 || r.TotalMB != 0 || r.TotalGB != 0 {
			t.Errorf("unexpected report for empty input: %+v", r)
		}
	})

	t.Run("panics on length mismatch", func(t *testing.T) {
		t.Parallel()

		defer func() {
			if recover() == nil {
				t.Error("expected panic for mismatched lengths")
			}
		}()
		NewReport([]string{"a"}, nil)
	})
}

// TestReportRenumber tests ordinal reassignment after sorting.
func TestReportRenumber(t *testing.T) {
	t.Parallel()

	r := NewReport([]string{"a", "b", "c"}, []float64{1, 2, 3})
	r.Rows[0], r.Rows[2] = r.Rows[2], r.Rows[0]
	r.Renumber()

	for i, row := range r.Rows {
		if row.Ordinal != i+1 {
			t.Errorf("row %d: got ordinal %d, expected %d", i, row.Ordinal, i+1)
		}
	}
}

// TestReportTotalBytes tests byte total reconstruction.
func TestReportTotalBytes(t *testing.T) {
	t.Parallel()

	r := NewReport([]string{"a"}, []float64{2.5})
	if got := r.TotalBytes(); got != uint64(2.5*1024*1024) {
		t.Errorf("got %d bytes, expected %d", got, uint64(2.5*1024*1024))
	}

	empty := NewReport(nil, nil)
	if got := empty.TotalBytes(); got != 0 {
		t.Errorf("got %d bytes for empty report, expected 0", got)
	}
}

// TestRound tests decimal rounding.
func TestRound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		v      float64
		places int
		want   float64
	}{
		{name: "two places", v: 1.239, places: 2, want: 1.24},
		{name: "three places", v: 0.25390625, places: 3, want: 0.254},
		{name: "zero places", v: 1.5, places: 0, want: 2},
		{name: "already exact", v: 10, places: 3, want: 10},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Round(tt.v, tt.places); got != tt.want {
				t.Errorf("got %v, expected %v", got, tt.want)
			}
		})
	}
}
