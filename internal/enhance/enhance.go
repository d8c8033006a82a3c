// Package enhance turns free-text task prompts into structured prompts.
// The rule engine classifies the prompt and merges it into a static
// template; the optional AI engine asks a generative model instead and
// falls back to the rules on any failure.
package enhance

import (
	"context"

	"github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/intent"
	"github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/pattern"
)

// Enhancer produces an enhanced prompt. An empty explicit type means
// classify; a non-empty one bypasses classification and must be a valid
// intent.Type.
type Enhancer interface {
	Name() string
	Enhance(ctx context.Context, prompt string, explicit intent.Type) (*Result, error)
}

// RuleEnhancer is the always-available template engine. It is pure and
// safe for concurrent use: classification and assembly are in-memory
// string operations over immutable tables.
type RuleEnhancer struct {
	classifier *intent.Classifier
	library    *pattern.Library
}

// NewRuleEnhancer builds a rule enhancer from an explicit classifier and
// template library.
func NewRuleEnhancer(classifier *intent.Classifier, library *pattern.Library) *RuleEnhancer {
	return &RuleEnhancer{
		classifier: classifier,
		library:    library,
	}
}

func (e *RuleEnhancer) Name() string {
	return "rules"
}

// Classify exposes the detected type without enhancing
func (e *RuleEnhancer) Classify(prompt string) intent.Type {
	return e.classifier.Classify(prompt)
}

// Library returns the template library in use
func (e *RuleEnhancer) Library() *pattern.Library {
	return e.library
}

// Enhance never fails on the prompt text itself; the only error is an
// explicit type outside the enumeration.
func (e *RuleEnhancer) Enhance(_ context.Context, prompt string, explicit intent.Type) (*Result, error) {
	t, err := e.resolveType(prompt, explicit)
	if err != nil {
		return nil, err
	}

	p := e.library.Get(t)
	return newResult(prompt, p.Apply(prompt), t, p.Name, e.Name()), nil
}

func (e *RuleEnhancer) resolveType(prompt string, explicit intent.Type) (intent.Type, error) {
	if explicit == "" {
		return e.classifier.Classify(prompt), nil
	}
	return intent.ParseType(string(explicit))
}
