package intent

import (
	"fmt"
	"strings"
)

// Type is the task domain detected for a prompt
type Type string

const (
	TypeMath        Type = "math"
	TypeCoding      Type = "coding"
	TypeAnalysis    Type = "analysis"
	TypeDecision    Type = "decision"
	TypeProblem     Type = "problem"
	TypeCreative    Type = "creative"
	TypeExplanation Type = "explanation"
	TypeGeneral     Type = "general"
)

// Types lists every valid type in listing order. TypeGeneral is last
// because it is the fallback, not a detected domain.
var Types = []Type{
	TypeMath,
	TypeCoding,
	TypeAnalysis,
	TypeDecision,
	TypeProblem,
	TypeCreative,
	TypeExplanation,
	TypeGeneral,
}

// ParseType validates a caller-supplied type string
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range Types {
		if t == valid {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid prompt type %q (valid: %s)", s, joinTypes())
}

func joinTypes() string {
	names := make([]string, len(Types))
	for i, t := range Types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
