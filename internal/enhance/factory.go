package enhance

import (
	"context"
	"fmt"
	"time"

	"github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/config"
	"github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/intent"
	"github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/llm"
	"github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/pattern"
)

const probeTimeout = 5 * time.Second

// New selects the enhancer for a config, decided once at startup. When
// the AI path is enabled it constructs the provider and probes it; on any
// failure the rule engine is returned instead, with a note describing why.
// The note is informational, never an error: the rule engine is the
// guaranteed baseline.
func New(ctx context.Context, cfg *config.Config, useAI bool) (Enhancer, string) {
	profile, err := pattern.ParseProfile(cfg.Profile)
	if err != nil {
		profile = pattern.ProfileReasoning
	}

	classifier := intent.NewClassifier(intent.DefaultRules())
	rules := NewRuleEnhancer(classifier, pattern.NewLibrary(profile))

	if !useAI || cfg.AI == nil || !cfg.AI.Enabled {
		return rules, ""
	}

	provider, err := llm.NewProvider(cfg.AI)
	if err != nil {
		return rules, fmt.Sprintf("AI mode unavailable (%v), using rules", err)
	}

	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	if err := provider.Ping(probeCtx); err != nil {
		return rules, fmt.Sprintf("AI mode unavailable (%v), using rules", err)
	}

	ai := NewAIEnhancer(provider, cfg.AI.Model, classifier)
	return NewFallback(ai, rules), ""
}

// Fallback runs a primary enhancer and transparently recovers with the
// rule engine when it fails. The two paths share no state, so a hung
// primary never blocks the fallback of a later call.
type Fallback struct {
	primary Enhancer
	rules   *RuleEnhancer
}

func NewFallback(primary Enhancer, rules *RuleEnhancer) *Fallback {
	return &Fallback{primary: primary, rules: rules}
}

func (f *Fallback) Name() string {
	return f.primary.Name()
}

// Rules returns the underlying rule engine
func (f *Fallback) Rules() *RuleEnhancer {
	return f.rules
}

func (f *Fallback) Enhance(ctx context.Context, prompt string, explicit intent.Type) (*Result, error) {
	// Validate the explicit type up front: a caller error must fail fast,
	// not be masked by the fallback.
	if explicit != "" {
		if _, err := intent.ParseType(string(explicit)); err != nil {
			return nil, err
		}
	}

	res, err := f.primary.Enhance(ctx, prompt, explicit)
	if err == nil {
		return res, nil
	}

	return f.rules.Enhance(ctx, prompt, explicit)
}
