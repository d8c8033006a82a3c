package enhance

import (
	"context"
	"errors"
	"testing"

	"github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/intent"
	"github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/llm"
	"github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/pattern"
)

type fakeProvider struct {
	content string
	err     error
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Ping(context.Context) error { return f.err }

func (f *fakeProvider) Complete(context.Context, *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &llm.CompletionResponse{Content: f.content}, nil
}

func newFallback(provider llm.Provider) *Fallback {
	classifier := intent.NewClassifier(intent.DefaultRules())
	return NewFallback(
		NewAIEnhancer(provider, "test-model", classifier),
		NewRuleEnhancer(classifier, pattern.NewLibrary(pattern.ProfileReasoning)),
	)
}

func TestFallbackUsesAIWhenHealthy(t *testing.T) {
	f := newFallback(&fakeProvider{content: "Much improved prompt with more words"})

	res, err := f.Enhance(context.Background(), "Calculate 15% tip", "")
	if err != nil {
		t.Fatalf("Enhance: %v", err)
	}
	if res.Method != "ai/fake" {
		t.Errorf("Method = %q, want ai/fake", res.Method)
	}
	if res.Enhanced != "Much improved prompt with more words" {
		t.Errorf("Enhanced = %q, want the model output", res.Enhanced)
	}
	if res.Type != intent.TypeMath {
		t.Errorf("Type = %v, want math", res.Type)
	}
}

func TestFallbackRecoversFromProviderError(t *testing.T) {
	f := newFallback(&fakeProvider{err: errors.New("model not loaded")})

	res, err := f.Enhance(context.Background(), "Calculate 15% tip", "")
	if err != nil {
		t.Fatalf("fallback must swallow provider errors, got: %v", err)
	}
	if res.Method != "rules" {
		t.Errorf("Method = %q, want rules after fallback", res.Method)
	}
	if res.EnhancedWords <= res.OriginalWords {
		t.Error("fallback result did not grow the prompt")
	}
}

func TestFallbackRecoversFromEmptyCompletion(t *testing.T) {
	f := newFallback(&fakeProvider{content: "   "})

	res, err := f.Enhance(context.Background(), "Calculate 15% tip", "")
	if err != nil {
		t.Fatalf("Enhance: %v", err)
	}
	if res.Method != "rules" {
		t.Errorf("Method = %q, want rules after empty completion", res.Method)
	}
}

// An invalid explicit type is a caller error: it must fail fast instead
// of being masked by the fallback path.
func TestFallbackDoesNotMaskInvalidType(t *testing.T) {
	f := newFallback(&fakeProvider{err: errors.New("down")})

	_, err := f.Enhance(context.Background(), "anything", intent.Type("nope"))
	if err == nil {
		t.Fatal("expected invalid-type error through the fallback")
	}
}

func TestAIEnhancerWrapsErrors(t *testing.T) {
	classifier := intent.NewClassifier(intent.DefaultRules())
	ai := NewAIEnhancer(&fakeProvider{err: errors.New("boom")}, "m", classifier)

	_, err := ai.Enhance(context.Background(), "prompt", "")
	if !errors.Is(err, ErrAIUnavailable) {
		t.Errorf("error %v is not ErrAIUnavailable", err)
	}
}
