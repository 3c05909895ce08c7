// Package report renders mod size reports in various formats.
//
// This package contains writers for different output formats:
//   - TableWriter: Console table for terminal display
//   - MarkdownWriter: GitHub Flavored Markdown for documentation and sharing
//   - JSONWriter: Structured JSON for tool integration
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed for multi-format output.
package report
