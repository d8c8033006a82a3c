package pattern

import (
	"strings"
	"testing"

	"github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/intent"
)

// Every type must have a complete pattern in every profile, so lookup
// stays total.
func TestLibraryIsTotal(t *testing.T) {
	for _, profile := range Profiles {
		lib := NewLibrary(profile)
		for _, typ := range intent.Types {
			p := lib.Get(typ)
			if p.Name == "" {
				t.Errorf("%s/%s: empty name", profile, typ)
			}
			if len(p.Steps) < 3 {
				t.Errorf("%s/%s: only %d steps", profile, typ, len(p.Steps))
			}
			if p.Instruction == "" {
				t.Errorf("%s/%s: empty instruction", profile, typ)
			}
		}
	}
}

func TestApplyReasoning(t *testing.T) {
	lib := NewLibrary(ProfileReasoning)
	p := lib.Get(intent.TypeMath)

	out := p.Apply("Calculate 15% tip")

	if !strings.Contains(out, "Original task: Calculate 15% tip") {
		t.Errorf("missing restated task line:\n%s", out)
	}
	if !strings.Contains(out, "Let's approach this step by step:") {
		t.Errorf("missing step-by-step lead-in:\n%s", out)
	}
	for _, step := range p.Steps {
		if !strings.Contains(out, step) {
			t.Errorf("missing step %q:\n%s", step, out)
		}
	}
	if !strings.HasSuffix(out, p.Instruction) {
		t.Errorf("output does not end with closing instruction:\n%s", out)
	}
}

func TestApplyImprover(t *testing.T) {
	lib := NewLibrary(ProfileImprover)
	p := lib.Get(intent.TypeCoding)

	out := p.Apply("Write a sorting function")

	if !strings.HasPrefix(out, "Write a sorting function") {
		t.Errorf("improver output must start with the original prompt:\n%s", out)
	}
	if !strings.Contains(out, p.Heading+":") {
		t.Errorf("missing %q heading:\n%s", p.Heading, out)
	}
	if !strings.Contains(out, "• "+p.Steps[0]) {
		t.Errorf("missing first bullet:\n%s", out)
	}
	if !strings.HasSuffix(out, p.Instruction) {
		t.Errorf("output does not end with closing instruction:\n%s", out)
	}
}

func TestParseProfile(t *testing.T) {
	tests := []struct {
		input   string
		want    Profile
		wantErr bool
	}{
		{"reasoning", ProfileReasoning, false},
		{"IMPROVER", ProfileImprover, false},
		{"cot", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseProfile(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseProfile(%q) expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseProfile(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseProfile(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLoadLibrariesRejectsIncompleteData(t *testing.T) {
	incomplete := []byte(`
reasoning:
  math:
    name: Math
    steps: ["1. think"]
    instruction: Answer.
improver:
  math:
    name: Math
    heading: Please
    steps: ["show work"]
    instruction: Answer.
`)

	if _, err := loadLibraries(incomplete); err == nil {
		t.Error("expected error for data missing most types, got nil")
	}
}
