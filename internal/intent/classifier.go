package intent

import "strings"

// Rule maps trigger phrases to a type. A prompt matches when it contains
// any trigger as a substring (case-insensitive).
type Rule struct {
	Type     Type
	Triggers []string
}

// Rules is an ordered rule list. Order is the tie-break policy: the first
// rule with a hit wins, regardless of how many triggers other rules match.
// Changing the order silently changes classification results, so the
// default order is pinned by tests.
type Rules []Rule

// DefaultRules returns the default trigger rules in priority order:
// math, coding, analysis, decision, problem, creative, explanation.
// General has no triggers; it is the fallback when nothing matches.
func DefaultRules() Rules {
	return Rules{
		{TypeMath, []string{"calculate", "solve", "equation", "percentage", "percent", "interest", "formula"}},
		{TypeCoding, []string{"function", "code", "debug", "algorithm", "program", "implement"}},
		{TypeAnalysis, []string{"analyze", "analysis", "compare", "evaluate", "examine"}},
		{TypeDecision, []string{"should i", "choose between", "which is better", "recommend", "decide"}},
		{TypeProblem, []string{"fix", "solve this issue", "troubleshoot", "not working"}},
		{TypeCreative, []string{"write a story", "write a poem", "poem", "creative", "design a logo", "imagine"}},
		{TypeExplanation, []string{"explain", "how does", "what is", "describe", "tell me about"}},
	}
}

// Classifier assigns a Type to free text using keyword containment
type Classifier struct {
	rules Rules
}

// NewClassifier creates a classifier with an explicit rule set. Pass
// DefaultRules() for the standard behavior.
func NewClassifier(rules Rules) *Classifier {
	return &Classifier{rules: rules}
}

// Classify maps a prompt to exactly one Type. It never fails: empty or
// unrecognized prompts resolve to TypeGeneral.
func (c *Classifier) Classify(prompt string) Type {
	lower := strings.ToLower(strings.TrimSpace(prompt))
	if lower == "" {
		return TypeGeneral
	}

	for _, rule := range c.rules {
		for _, trigger := range rule.Triggers {
			if strings.Contains(lower, trigger) {
				return rule.Type
			}
		}
	}

	return TypeGeneral
}
