package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/config"
	"github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/enhance"
	"github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/pattern"
)

type state struct {
	// Config
	config *config.Config

	// Active enhancer, selected once at startup
	enhancer enhance.Enhancer
	// Informational note when the AI path was requested but unavailable
	note string

	// Current result
	result    *enhance.Result
	enhancing bool
	lastError error

	// Input
	input textinput.Model
}

func newState(cfg *config.Config) *state {
	input := textinput.New()
	input.Placeholder = "Type a prompt to enhance, or /help for commands..."
	input.CharLimit = 500
	input.Width = 60

	return &state{
		config: cfg,
		input:  input,
	}
}

func (s *state) profile() pattern.Profile {
	p, err := pattern.ParseProfile(s.config.Profile)
	if err != nil {
		return pattern.ProfileReasoning
	}
	return p
}

func (s *state) aiEnabled() bool {
	return s.config.AI != nil && s.config.AI.Enabled
}
