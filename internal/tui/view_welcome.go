package tui

import "github.com/charmbracelet/lipgloss"

const logo = `
  ██████╗ ██████╗ ████████╗
 ██╔════╝██╔═══██╗╚══██╔══╝
 ██║     ██║   ██║   ██║
 ██║     ██║   ██║   ██║
 ╚██████╗╚██████╔╝   ██║
  ╚═════╝ ╚═════╝    ╚═╝
`

func (a *App) renderWelcome() string {
	logoRendered := styleLogo.Render(logo)

	subtitle := styleSubtitle.Render("Chain-of-Thought Prompt Optimizer")

	// Mode line: active profile and enhancer
	mode := "profile: " + string(a.state.profile())
	if a.state.enhancer != nil {
		mode += "  engine: " + a.state.enhancer.Name()
	}
	modeLine := styleSubtitle.Render(mode)

	inputBox := styleBox.
		Width(min(70, a.width-4)).
		BorderForeground(colorPrimary).
		Render(a.state.input.View())

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		logoRendered,
		subtitle,
		"",
		modeLine,
		"",
		inputBox,
	)

	if a.state.note != "" {
		content = lipgloss.JoinVertical(
			lipgloss.Center,
			content,
			"",
			styleSubtitle.Render(a.state.note),
		)
	}

	if a.state.lastError != nil {
		content = lipgloss.JoinVertical(
			lipgloss.Center,
			content,
			"",
			styleError.Render(a.state.lastError.Error()),
		)
	}

	if a.state.enhancing {
		content = lipgloss.JoinVertical(
			lipgloss.Center,
			content,
			"",
			styleSubtitle.Render("Enhancing..."),
		)
	}

	statusBar := styleStatusBar.Render("[Enter] Enhance  [Esc] Quit  /patterns /settings /help")

	mainArea := lipgloss.Place(
		a.width,
		a.height-2,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	statusLine := lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, mainArea, statusLine)
}
