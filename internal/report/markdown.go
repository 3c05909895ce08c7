package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/a3tools/modsweep/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing, for example
// pasting an unused-mods listing into a unit forum thread.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write renders the report as a Markdown document.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Mod Size Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Total Size (MB)", "Total Size (GB)", "Mods"},
		Rows: [][]string{
			{
				formatSize(report.TotalMB, 2),
				formatSize(report.TotalGB, 3),
				strconv.Itoa(len(report.Rows)),
			},
		},
	})
	md.PlainText("")

	md.H2("Mods")
	md.PlainText("")

	rows := make([][]string, 0, len(report.Rows))
	for _, row := range report.Rows {
		rows = append(rows, []string{
			strconv.Itoa(row.Ordinal),
			row.Name,
			formatSize(row.SizeMB, 3),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"No.", "Mod Name", "Size (in MB)"},
		Rows:   rows,
	})

	return len(md.String()), md.Build()
}
