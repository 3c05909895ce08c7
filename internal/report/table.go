package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/a3tools/modsweep/internal/model"
)

// TableWriter outputs a console table, the default human-readable format.
// The layout mirrors the launcher community's listing convention: a total
// line first, then one row per mod with the size column right-aligned.
type TableWriter struct {
	baseWriter

	// headerColor renders the total line label.
	headerColor *color.Color
}

// NewTableWriter creates a TableWriter that outputs to the given writer.
func NewTableWriter(output io.Writer) *TableWriter {
	return &TableWriter{
		baseWriter:  newBaseWriter(output),
		headerColor: color.New(color.FgGreen, color.Bold),
	}
}

// Write renders the report as a console table.
func (w *TableWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s %s MB (%s GB)\n",
		w.headerColor.Sprint("Total Size:"),
		formatSize(report.TotalMB, 2),
		formatSize(report.TotalGB, 3),
	))

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"No.", "Mod Name", "Size (in MB)"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignRight},
	})
	for _, row := range report.Rows {
		t.AppendRow(table.Row{
			strconv.Itoa(row.Ordinal),
			row.Name,
			formatSize(row.SizeMB, 3),
		})
	}

	sb.WriteString(t.Render())
	sb.WriteString("\n")

	return w.output.Write([]byte(sb.String()))
}
