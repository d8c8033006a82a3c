package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderResult() string {
	res := a.state.result
	if res == nil {
		return a.renderWelcome()
	}

	var b strings.Builder

	// What was asked
	asked := styleSubtitle.Render(fmt.Sprintf("> %s", res.Original))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, asked))
	b.WriteString("\n")

	// Type and metrics line
	meta := styleSuccess.Render(fmt.Sprintf(
		"%s (%s)  %d → %d words (%.2fx)",
		res.PatternName, res.Type, res.OriginalWords, res.EnhancedWords, res.Ratio,
	))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, meta))
	b.WriteString("\n\n")

	// Enhanced prompt box
	enhanced := res.Enhanced
	maxHeight := a.height - 14
	if maxHeight < 5 {
		maxHeight = 5
	}
	lines := strings.Split(enhanced, "\n")
	if len(lines) > maxHeight {
		lines = lines[:maxHeight]
		enhanced = strings.Join(lines, "\n")
	}

	resultBox := styleBox.
		Width(min(70, a.width-4)).
		BorderForeground(colorSecondary).
		Render(enhanced)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, resultBox))
	b.WriteString("\n\n")

	// Input for the next prompt
	a.state.input.Placeholder = "Next prompt..."
	inputBox := styleBox.
		Width(min(70, a.width-4)).
		BorderForeground(colorMuted).
		Render(a.state.input.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inputBox))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[Enter] Enhance another  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
