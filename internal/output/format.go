// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"taskman/internal/service"
)

// FormatTask formats a task line.
// Format: "{N:>4}  [{x| }] {TITLE}  -  {DESCRIPTION}\n"
// The description part is omitted when empty.
func FormatTask(w io.Writer, num int, task service.Task) {
	box := " "
	if task.Completed {
		box = "x"
	}
	line := fmt.Sprintf("%4d  [%s] %s", num, box, normalizeTitle(task.Title))
	if desc := normalizeText(task.Description); desc != "" {
		line += "  -  " + desc
	}
	fmt.Fprintln(w, line)
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = normalizeText(title)
	if title == "" {
		return "(untitled)"
	}
	return title
}

// normalizeText flattens newlines and trims surrounding whitespace.
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
