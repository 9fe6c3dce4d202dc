package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	summaryTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	summaryRuleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// RenderSummary formats a generated diff summary for the terminal: a styled
// banner around the markdown-rendered text. Falls back to the raw text when
// markdown rendering is unavailable.
func RenderSummary(summary string) string {
	rule := summaryRuleStyle.Render(strings.Repeat("─", 80))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("\n")
	b.WriteString(summaryTitleStyle.Render("DIFF SUMMARY"))
	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("\n")
	b.WriteString(renderMarkdown(summary))
	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("\n")
	return b.String()
}

func renderMarkdown(text string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		return text
	}
	out, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}
