package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/pattern"
)

func (a *App) renderPatterns() string {
	var b strings.Builder

	lib := pattern.NewLibrary(a.state.profile())

	title := styleTitle.Render(fmt.Sprintf("Patterns (%s profile)", lib.Profile()))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	var lines []string
	for _, t := range lib.Types() {
		p := lib.Get(t)
		lines = append(lines, fmt.Sprintf("%s — %s", strings.ToUpper(string(t)), p.Name))
		for _, step := range p.Steps {
			lines = append(lines, "  "+truncate(step, 64))
		}
		lines = append(lines, "")
	}

	listBox := styleBox.
		Width(min(72, a.width-4)).
		Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, listBox))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return b.String()
}

// truncate shortens text to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
