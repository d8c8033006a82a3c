package enhance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/intent"
	"github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/llm"
)

// ErrAIUnavailable wraps every generative-path failure. Callers that see
// it fall back to the rule engine; it never reaches the end user as an
// error.
var ErrAIUnavailable = errors.New("generative model unavailable")

const aiTimeout = 30 * time.Second

const aiSystemPrompt = "You rewrite task prompts to get better responses from AI models. " +
	"Expand the prompt with concrete requirements, structure, and reasoning guidance. " +
	"Reply with the rewritten prompt only."

// AIEnhancer asks a generative model for the rewrite. Best effort only:
// any provider error surfaces as ErrAIUnavailable for the caller to
// recover from.
type AIEnhancer struct {
	provider   llm.Provider
	model      string
	classifier *intent.Classifier
}

func NewAIEnhancer(provider llm.Provider, model string, classifier *intent.Classifier) *AIEnhancer {
	return &AIEnhancer{
		provider:   provider,
		model:      model,
		classifier: classifier,
	}
}

func (e *AIEnhancer) Name() string {
	return "ai/" + e.provider.Name()
}

func (e *AIEnhancer) Enhance(ctx context.Context, prompt string, explicit intent.Type) (*Result, error) {
	t, err := e.resolveType(prompt, explicit)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()

	user := fmt.Sprintf("Improve this prompt to make it more effective:\n\nOriginal: %q\n\nBetter version:", prompt)

	resp, err := e.provider.Complete(ctx, llm.NewRequest(e.model, aiSystemPrompt, user))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAIUnavailable, err)
	}

	enhanced := strings.TrimSpace(resp.Content)
	if enhanced == "" {
		return nil, fmt.Errorf("%w: empty completion", ErrAIUnavailable)
	}

	return newResult(prompt, enhanced, t, "Generative Rewrite", e.Name()), nil
}

func (e *AIEnhancer) resolveType(prompt string, explicit intent.Type) (intent.Type, error) {
	if explicit == "" {
		return e.classifier.Classify(prompt), nil
	}
	return intent.ParseType(string(explicit))
}
