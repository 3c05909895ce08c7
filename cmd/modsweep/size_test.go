package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeExportFile writes a launcher-style export listing the given mods.
func writeExportFile(t *testing.T, dir, name string, mods ...string) string {
	t.Helper()

	var sb strings.Builder
	sb.WriteString(`<html><body><table>`)
	for _, mod := range mods {
		sb.WriteString(`<tr data-type="ModContainer">`)
		sb.WriteString(`<td data-type="DisplayName">` + mod + `</td>`)
		sb.WriteString(`<td data-type="Origin">Steam Workshop</td>`)
		sb.WriteString(`</tr>`)
	}
	sb.WriteString(`</table></body></html>`)

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(sb.String()), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

// writeModFolder creates <root>/!Workshop/@<folder> holding one sparse
// file of the given size.
func writeModFolder(t *testing.T, root, folder string, size int64) {
	t.Helper()

	dir := filepath.Join(root, "!Workshop", "@"+folder)
	if err := os.MkdirAll(dir, 0750); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(filepath.Join(dir, "addon.pbo"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := f.Truncate(size); err != nil {
		t.Fatal(err)
	}
}

// runCommand executes the CLI with the given args and returns the
// content written to the -o report file.
func runCommand(t *testing.T, outFile string, args ...string) string {
	t.Helper()

	cmd := NewRootCmd()
	cmd.SetArgs(append(args, "-o", outFile))
	if err := cmd.Execute(); err != nil {
		t.Fatalf("command failed: %v", err)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	return string(data)
}

// TestNewSizeCmd tests the size command flag surface.
func TestNewSizeCmd(t *testing.T) {
	t.Parallel()

	cmd := NewSizeCmd()

	for _, name := range []string{"html-file", "arma-root", "config", "json", "markdown", "output", "sort"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("expected %s flag", name)
		}
	}

	if flag := cmd.Flags().Lookup("html-file"); flag != nil && flag.Shorthand != "f" {
		t.Errorf("expected shorthand 'f' for html-file, got %q", flag.Shorthand)
	}
	if flag := cmd.Flags().Lookup("arma-root"); flag != nil && flag.Shorthand != "r" {
		t.Errorf("expected shorthand 'r' for arma-root, got %q", flag.Shorthand)
	}
}

// TestSizeCommand runs the size command end to end against a temporary
// workshop tree.
func TestSizeCommand(t *testing.T) {
	t.Run("reports per-mod sizes and totals", func(t *testing.T) {
		dir := t.TempDir()
		root := t.TempDir()
		exportFile := writeExportFile(t, dir, "preset.html", "Alpha", "CBA_A3")
		writeModFolder(t, root, "Alpha", 10*1024*1024)
		writeModFolder(t, root, "CBA_A3", 250*1024*1024)

		output := runCommand(t, filepath.Join(dir, "report.txt"),
			"size", "-f", exportFile, "-r", root)

		if !strings.Contains(output, "Total Size: 260.0 MB (0.254 GB)") {
			t.Errorf("expected total line, got:\n%s", output)
		}
		if !strings.Contains(output, "Alpha") || !strings.Contains(output, "CBA_A3") {
			t.Errorf("expected both mods in report, got:\n%s", output)
		}
		// Ordinals follow document order
		if strings.Index(output, "Alpha") > strings.Index(output, "CBA_A3") {
			t.Errorf("expected Alpha before CBA_A3, got:\n%s", output)
		}
	})

	t.Run("resolves names with illegal characters via fallback", func(t *testing.T) {
		dir := t.TempDir()
		root := t.TempDir()
		exportFile := writeExportFile(t, dir, "preset.html", "RHS: Escalation")
		writeModFolder(t, root, "RHS- Escalation", 1024*1024)

		output := runCommand(t, filepath.Join(dir, "report.txt"),
			"size", "-f", exportFile, "-r", root)

		if !strings.Contains(output, "RHS: Escalation") {
			t.Errorf("expected display name in report, got:\n%s", output)
		}
		if !strings.Contains(output, "1.0") {
			t.Errorf("expected fallback-resolved size, got:\n%s", output)
		}
	})

	t.Run("fails when a mod folder is missing", func(t *testing.T) {
		dir := t.TempDir()
		root := t.TempDir()
		exportFile := writeExportFile(t, dir, "preset.html", "Ghost")
		if err := os.MkdirAll(filepath.Join(root, "!Workshop"), 0750); err != nil {
			t.Fatal(err)
		}

		cmd := NewRootCmd()
		cmd.SetArgs([]string{"size", "-f", exportFile, "-r", root})
		if err := cmd.Execute(); err == nil {
			t.Error("expected error for missing mod folder")
		}
	})

	t.Run("fails for nonexistent export file", func(t *testing.T) {
		cmd := NewRootCmd()
		cmd.SetArgs([]string{"size", "-f", filepath.Join(t.TempDir(), "nope.html"), "-r", t.TempDir()})
		if err := cmd.Execute(); err == nil {
			t.Error("expected error for missing export file")
		}
	})

	t.Run("writes json when requested", func(t *testing.T) {
		dir := t.TempDir()
		root := t.TempDir()
		exportFile := writeExportFile(t, dir, "preset.html", "Alpha")
		writeModFolder(t, root, "Alpha", 1024*1024)

		output := runCommand(t, filepath.Join(dir, "report.json"),
			"size", "-f", exportFile, "-r", root, "--json")

		if !strings.Contains(output, `"total_mb"`) {
			t.Errorf("expected JSON output, got:\n%s", output)
		}
	})

	t.Run("sorts by size when requested", func(t *testing.T) {
		dir := t.TempDir()
		root := t.TempDir()
		exportFile := writeExportFile(t, dir, "preset.html", "Small", "Big")
		writeModFolder(t, root, "Small", 1024*1024)
		writeModFolder(t, root, "Big", 5*1024*1024)

		output := runCommand(t, filepath.Join(dir, "report.txt"),
			"size", "-f", exportFile, "-r", root, "--sort", "size")

		if strings.Index(output, "Big") > strings.Index(output, "Small") {
			t.Errorf("expected Big first, got:\n%s", output)
		}
	})

	t.Run("rejects unknown sort mode", func(t *testing.T) {
		dir := t.TempDir()
		exportFile := writeExportFile(t, dir, "preset.html", "Alpha")

		cmd := NewRootCmd()
		cmd.SetArgs([]string{"size", "-f", exportFile, "-r", t.TempDir(), "--sort", "biggest"})
		if err := cmd.Execute(); err == nil {
			t.Error("expected error for unknown sort mode")
		}
	})
}
