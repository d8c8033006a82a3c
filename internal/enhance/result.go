package enhance

import (
	"strings"

	"github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/intent"
)

// Result holds an enhanced prompt plus before/after metrics. It has no
// lifecycle: it is returned to the caller and discarded.
type Result struct {
	Original    string      `json:"original_prompt"`
	Enhanced    string      `json:"enhanced_prompt"`
	Type        intent.Type `json:"prompt_type"`
	PatternName string      `json:"pattern_name"`
	Method      string      `json:"method"`

	OriginalWords int `json:"original_words"`
	EnhancedWords int `json:"enhanced_words"`
	WordsAdded    int `json:"words_added"`

	// Ratio is enhanced words / original words. When the original prompt
	// has no words the ratio is 0, so the value stays finite and
	// JSON-serializable.
	Ratio float64 `json:"improvement_ratio"`
}

func newResult(original, enhanced string, t intent.Type, patternName, method string) *Result {
	origWords := wordCount(original)
	enhWords := wordCount(enhanced)

	ratio := 0.0
	if origWords > 0 {
		ratio = float64(enhWords) / float64(origWords)
	}

	return &Result{
		Original:      original,
		Enhanced:      enhanced,
		Type:          t,
		PatternName:   patternName,
		Method:        method,
		OriginalWords: origWords,
		EnhancedWords: enhWords,
		WordsAdded:    enhWords - origWords,
		Ratio:         ratio,
	}
}

// wordCount counts whitespace-separated words
func wordCount(s string) int {
	return len(strings.Fields(s))
}
