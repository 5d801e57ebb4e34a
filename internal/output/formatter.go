package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// ColorizeDiff applies per-line coloring to unified diff text. File headers
// (+++/---) stay uncolored so only content lines stand out.
func ColorizeDiff(diff string) string {
	if !IsTerminal() {
		return diff
	}

	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
			lines[i] = addedStyle.Render(line)
		case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---"):
			lines[i] = removedStyle.Render(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = hunkStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// Dim renders text in a muted color on terminals.
func Dim(text string) string {
	if !IsTerminal() {
		return text
	}
	return dimStyle.Render(text)
}
