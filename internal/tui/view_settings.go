package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderSettings() string {
	var b strings.Builder

	title := styleTitle.Render("Settings")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	aiState := "off"
	aiDetail := ""
	if a.state.aiEnabled() {
		aiState = "on"
		aiDetail = fmt.Sprintf("    Provider: %s\n    Model:    %s",
			a.state.config.AI.Provider, a.state.config.AI.Model)
	}

	configLines := []string{
		fmt.Sprintf("  Profile:  %s", a.state.profile()),
		fmt.Sprintf("  AI mode:  %s", aiState),
	}
	if aiDetail != "" {
		configLines = append(configLines, aiDetail)
	}
	if a.state.enhancer != nil {
		configLines = append(configLines, fmt.Sprintf("  Engine:   %s", a.state.enhancer.Name()))
	}

	configBox := styleBox.
		Width(50).
		Render(strings.Join(configLines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, configBox))
	b.WriteString("\n\n")

	actions := []string{
		"  [p] Toggle profile (reasoning / improver)",
		"  [a] Toggle AI mode",
	}
	actionsBox := styleBox.
		Width(50).
		Render(strings.Join(actions, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, actionsBox))
	b.WriteString("\n\n")

	if a.state.note != "" {
		note := styleSubtitle.Render(a.state.note)
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, note))
		b.WriteString("\n\n")
	}

	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
