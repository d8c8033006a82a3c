// Package report renders enhancement results for the CLI: plain text,
// JSON, and the pattern/example listings.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/enhance"
	"github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/intent"
	"github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/pattern"
)

const banner = "CHAIN-OF-THOUGHT PROMPT OPTIMIZER"

// Text renders a result as plain text. With compare set it appends the
// before/after metrics block.
func Text(res *enhance.Result, compare bool) string {
	var b strings.Builder

	b.WriteString(banner + "\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&b, "Detected Type: %s (%s)\n", res.PatternName, res.Type)
	fmt.Fprintf(&b, "Method: %s\n", res.Method)
	b.WriteString("\nENHANCED PROMPT:\n")
	b.WriteString(strings.Repeat("-", 20) + "\n")
	b.WriteString(res.Enhanced + "\n")

	if compare {
		b.WriteString("\nCOMPARISON:\n")
		b.WriteString(strings.Repeat("-", 20) + "\n")
		fmt.Fprintf(&b, "Original words: %d\n", res.OriginalWords)
		fmt.Fprintf(&b, "Enhanced words: %d\n", res.EnhancedWords)
		fmt.Fprintf(&b, "Words added: %d\n", res.WordsAdded)
		fmt.Fprintf(&b, "Improvement ratio: %.2fx\n", res.Ratio)
		b.WriteString("\nORIGINAL PROMPT:\n")
		b.WriteString(strings.Repeat("-", 20) + "\n")
		b.WriteString(res.Original + "\n")
	}

	return b.String()
}

// JSON renders a result as indented JSON
func JSON(res *enhance.Result) (string, error) {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Patterns lists every pattern in a library, for introspection output
func Patterns(lib *pattern.Library) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Available patterns (%s profile):\n", lib.Profile())
	b.WriteString(strings.Repeat("=", 50) + "\n")

	for _, t := range lib.Types() {
		p := lib.Get(t)
		fmt.Fprintf(&b, "\n%s - %s\n", strings.ToUpper(string(t)), p.Name)
		for _, step := range p.Steps {
			fmt.Fprintf(&b, "  %s\n", step)
		}
	}

	return b.String()
}

// Examples lists a sample prompt per type
func Examples() string {
	examples := enhance.Examples()

	var b strings.Builder
	b.WriteString("Example prompts by type:\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")

	for _, t := range intent.Types {
		fmt.Fprintf(&b, "\n%s:\n", strings.ToUpper(string(t)))
		fmt.Fprintf(&b, "  %q\n", examples[t])
	}

	return b.String()
}

// Write saves rendered output to a file
func Write(path, content string) error {
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return os.WriteFile(path, []byte(content), 0644)
}
