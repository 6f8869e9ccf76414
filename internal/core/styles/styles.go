// Package styles provides shared lipgloss styles for CLI and REPL output.
package styles

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Prompt styles the REPL input prompt.
	Prompt = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	// Done styles completed items.
	Done = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	// Index styles the display numbering in item listings.
	Index = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	// Err styles one-line error reports.
	Err = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	// Header styles section headings.
	Header = lipgloss.NewStyle().Bold(true)
	// Muted styles secondary detail like percentages and averages.
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderMarkdown renders a markdown document for terminal display.
func RenderMarkdown(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
