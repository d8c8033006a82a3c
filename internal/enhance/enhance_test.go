package enhance

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/intent"
	"github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/pattern"
)

func newTestEnhancer(profile pattern.Profile) *RuleEnhancer {
	return NewRuleEnhancer(
		intent.NewClassifier(intent.DefaultRules()),
		pattern.NewLibrary(profile),
	)
}

func TestEnhanceGrowsPrompt(t *testing.T) {
	prompts := []string{
		"Calculate 15% tip on a $45 bill",
		"Write a function to sort a list",
		"Analyze remote work trends",
		"",
		"hello",
	}

	for _, profile := range pattern.Profiles {
		e := newTestEnhancer(profile)
		for _, prompt := range prompts {
			res, err := e.Enhance(context.Background(), prompt, "")
			if err != nil {
				t.Fatalf("%s: Enhance(%q): %v", profile, prompt, err)
			}
			if res.EnhancedWords < res.OriginalWords {
				t.Errorf("%s: Enhance(%q) shrank: %d -> %d words",
					profile, prompt, res.OriginalWords, res.EnhancedWords)
			}
			if res.WordsAdded != res.EnhancedWords-res.OriginalWords {
				t.Errorf("%s: WordsAdded = %d, want %d",
					profile, res.WordsAdded, res.EnhancedWords-res.OriginalWords)
			}
			if res.Ratio < 0 {
				t.Errorf("%s: negative ratio %f", profile, res.Ratio)
			}
		}
	}
}

func TestEnhanceMetrics(t *testing.T) {
	e := newTestEnhancer(pattern.ProfileReasoning)

	res, err := e.Enhance(context.Background(), "Calculate 15% tip on a $45 bill", "")
	if err != nil {
		t.Fatalf("Enhance: %v", err)
	}

	if res.Type != intent.TypeMath {
		t.Errorf("Type = %v, want math", res.Type)
	}
	if res.OriginalWords != 7 {
		t.Errorf("OriginalWords = %d, want 7", res.OriginalWords)
	}
	if res.EnhancedWords != len(strings.Fields(res.Enhanced)) {
		t.Errorf("EnhancedWords = %d, want %d", res.EnhancedWords, len(strings.Fields(res.Enhanced)))
	}

	want := float64(res.EnhancedWords) / float64(res.OriginalWords)
	if math.Abs(res.Ratio-want) > 1e-9 {
		t.Errorf("Ratio = %f, want %f", res.Ratio, want)
	}
	if !strings.Contains(res.Enhanced, res.Original) {
		t.Errorf("enhanced text does not contain the original prompt:\n%s", res.Enhanced)
	}
}

// The zero-original sentinel is pinned: an empty prompt has ratio 0, not
// NaN or +Inf.
func TestEnhanceEmptyPrompt(t *testing.T) {
	e := newTestEnhancer(pattern.ProfileReasoning)

	res, err := e.Enhance(context.Background(), "", "")
	if err != nil {
		t.Fatalf("Enhance(\"\"): %v", err)
	}
	if res.Type != intent.TypeGeneral {
		t.Errorf("Type = %v, want general", res.Type)
	}
	if res.OriginalWords != 0 {
		t.Errorf("OriginalWords = %d, want 0", res.OriginalWords)
	}
	if res.Ratio != 0 {
		t.Errorf("Ratio = %f, want 0 sentinel for empty prompt", res.Ratio)
	}
	if res.EnhancedWords == 0 {
		t.Error("EnhancedWords = 0, template should still be applied")
	}
}

func TestEnhanceExplicitType(t *testing.T) {
	e := newTestEnhancer(pattern.ProfileReasoning)

	// "Calculate" would classify as math; the explicit type wins
	res, err := e.Enhance(context.Background(), "Calculate 15% tip", intent.TypeCreative)
	if err != nil {
		t.Fatalf("Enhance: %v", err)
	}
	if res.Type != intent.TypeCreative {
		t.Errorf("Type = %v, want creative (explicit)", res.Type)
	}
}

func TestEnhanceInvalidExplicitType(t *testing.T) {
	e := newTestEnhancer(pattern.ProfileReasoning)

	_, err := e.Enhance(context.Background(), "anything", intent.Type("bogus"))
	if err == nil {
		t.Fatal("expected error for invalid explicit type")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("error %q does not name the invalid value", err)
	}
	if !strings.Contains(err.Error(), "general") {
		t.Errorf("error %q does not list the valid set", err)
	}
}

func TestExamplesCoverAllTypes(t *testing.T) {
	e := newTestEnhancer(pattern.ProfileReasoning)
	examples := Examples()

	for _, typ := range intent.Types {
		sample, ok := examples[typ]
		if !ok || sample == "" {
			t.Errorf("no example for type %s", typ)
			continue
		}
		// Each sample should classify as its own type
		if got := e.Classify(sample); got != typ {
			t.Errorf("example for %s classifies as %s: %q", typ, got, sample)
		}
	}
}
