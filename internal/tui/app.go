// Package tui is the interactive front end: type a prompt, get the
// enhanced version with before/after metrics. It drives only the public
// enhance/pattern/report APIs.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/config"
	"github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/enhance"
)

type view int

const (
	viewWelcome view = iota
	viewResult
	viewPatterns
	viewSettings
	viewHelp
)

type App struct {
	width    int
	height   int
	view     view
	state    *state
	quitting bool
}

func NewApp(cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	return &App{
		view:  viewWelcome,
		state: newState(cfg),
	}
}

func (a *App) Init() tea.Cmd {
	a.state.input.Focus()
	return tea.Batch(
		tea.WindowSize(),
		textinput.Blink,
		a.selectEnhancer(),
	)
}

// selectEnhancer builds the enhancer off the update loop: when AI mode
// is on, enhance.New probes the provider and that can block.
func (a *App) selectEnhancer() tea.Cmd {
	cfg := a.state.config
	useAI := a.state.aiEnabled()
	return func() tea.Msg {
		enhancer, note := enhance.New(context.Background(), cfg, useAI)
		return enhancerReadyMsg{enhancer: enhancer, note: note}
	}
}

func (a *App) runEnhance(prompt string) tea.Cmd {
	enhancer := a.state.enhancer
	return func() tea.Msg {
		res, err := enhancer.Enhance(context.Background(), prompt, "")
		if err != nil {
			return enhanceErrorMsg{err}
		}
		return enhanceDoneMsg{res}
	}
}

type enhancerReadyMsg struct {
	enhancer enhance.Enhancer
	note     string
}

type enhanceDoneMsg struct{ result *enhance.Result }
type enhanceErrorMsg struct{ error }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := a.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case enhancerReadyMsg:
		a.state.enhancer = msg.enhancer
		a.state.note = msg.note

	case enhanceDoneMsg:
		a.state.enhancing = false
		a.state.result = msg.result
		a.state.lastError = nil
		a.view = viewResult

	case enhanceErrorMsg:
		a.state.enhancing = false
		a.state.lastError = msg.error
	}

	if a.view == viewWelcome || a.view == viewResult {
		var cmd tea.Cmd
		a.state.input, cmd = a.state.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		if a.view != viewWelcome {
			a.view = viewWelcome
			a.state.input.Focus()
			return textinput.Blink
		}
		a.quitting = true
		return tea.Quit

	case key.Matches(msg, keys.Enter):
		if a.view == viewWelcome || a.view == viewResult {
			return a.handleInput()
		}
	}

	if a.view == viewSettings {
		return a.handleSettingsKey(msg)
	}

	return nil
}

func (a *App) handleInput() tea.Cmd {
	input := strings.TrimSpace(a.state.input.Value())
	if input == "" || a.state.enhancer == nil {
		return nil
	}

	// Slash commands
	if strings.HasPrefix(input, "/") {
		cmd := strings.ToLower(input)
		a.state.input.Reset()
		switch {
		case cmd == "/help" || cmd == "/h":
			a.view = viewHelp
		case cmd == "/patterns" || cmd == "/p":
			a.view = viewPatterns
		case cmd == "/settings" || cmd == "/s":
			a.view = viewSettings
		case cmd == "/quit" || cmd == "/q":
			a.quitting = true
			return tea.Quit
		}
		return nil
	}

	a.state.input.Reset()
	a.state.enhancing = true
	return a.runEnhance(input)
}

func (a *App) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "p":
		if a.state.config.Profile == "improver" {
			a.state.config.Profile = "reasoning"
		} else {
			a.state.config.Profile = "improver"
		}
		return a.saveAndReload()
	case "a":
		if a.state.config.AI == nil {
			a.state.config.AI = config.DefaultConfig().AI
		}
		a.state.config.AI.Enabled = !a.state.config.AI.Enabled
		return a.saveAndReload()
	}
	return nil
}

func (a *App) saveAndReload() tea.Cmd {
	// Save failures are not fatal; the session keeps the new settings
	_ = a.state.config.Save()
	return a.selectEnhancer()
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewResult:
		return a.renderResult()
	case viewPatterns:
		return a.renderPatterns()
	case viewSettings:
		return a.renderSettings()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderWelcome()
	}
}
