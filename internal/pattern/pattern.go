// Package pattern holds the static enhancement templates. Two template
// profiles are supported: "reasoning" wraps the task in numbered
// chain-of-thought steps, "improver" rewrites it with a bulleted
// requirements list. The data lives in patterns.yaml, embedded at build
// time and parsed once at package init.
package pattern

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/intent"
)

//go:embed patterns.yaml
var patternsYAML []byte

// Profile selects a template family
type Profile string

const (
	// ProfileReasoning appends numbered chain-of-thought steps
	ProfileReasoning Profile = "reasoning"
	// ProfileImprover appends a bulleted requirements list
	ProfileImprover Profile = "improver"
)

// Profiles lists the supported profiles in listing order
var Profiles = []Profile{ProfileReasoning, ProfileImprover}

// ParseProfile validates a profile string
func ParseProfile(s string) (Profile, error) {
	p := Profile(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range Profiles {
		if p == valid {
			return p, nil
		}
	}
	return "", fmt.Errorf("invalid profile %q (valid: reasoning, improver)", s)
}

// Pattern is one immutable enhancement template
type Pattern struct {
	Name        string   `yaml:"name"`
	Heading     string   `yaml:"heading,omitempty"`
	Steps       []string `yaml:"steps"`
	Instruction string   `yaml:"instruction"`

	profile Profile
}

// Apply merges the original prompt into the template
func (p Pattern) Apply(prompt string) string {
	var b strings.Builder

	switch p.profile {
	case ProfileImprover:
		b.WriteString(prompt)
		b.WriteString("\n\n")
		b.WriteString(p.Heading)
		b.WriteString(":\n")
		for _, step := range p.Steps {
			b.WriteString("• ")
			b.WriteString(step)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(p.Instruction)

	default: // reasoning
		b.WriteString("Original task: ")
		b.WriteString(prompt)
		b.WriteString("\n\nLet's approach this step by step:\n\n")
		b.WriteString(strings.Join(p.Steps, "\n"))
		b.WriteString("\n\n")
		b.WriteString(p.Instruction)
	}

	return b.String()
}

// Library resolves the Pattern for a prompt type within one profile.
// Lookup is total: the embedded data carries an entry for every type in
// both profiles, verified at load.
type Library struct {
	profile  Profile
	patterns map[intent.Type]Pattern
}

type patternsFile map[Profile]map[intent.Type]Pattern

var libraries map[Profile]*Library

func init() {
	var err error
	libraries, err = loadLibraries(patternsYAML)
	if err != nil {
		panic(fmt.Sprintf("pattern: bad embedded data: %v", err))
	}
}

func loadLibraries(data []byte) (map[Profile]*Library, error) {
	var file patternsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	libs := make(map[Profile]*Library, len(Profiles))
	for _, profile := range Profiles {
		entries, ok := file[profile]
		if !ok {
			return nil, fmt.Errorf("profile %s missing", profile)
		}

		patterns := make(map[intent.Type]Pattern, len(intent.Types))
		for _, t := range intent.Types {
			p, ok := entries[t]
			if !ok {
				return nil, fmt.Errorf("profile %s has no pattern for type %s", profile, t)
			}
			if p.Name == "" || len(p.Steps) == 0 || p.Instruction == "" {
				return nil, fmt.Errorf("profile %s has an incomplete pattern for type %s", profile, t)
			}
			p.profile = profile
			patterns[t] = p
		}

		libs[profile] = &Library{profile: profile, patterns: patterns}
	}

	return libs, nil
}

// NewLibrary returns the library for a profile
func NewLibrary(profile Profile) *Library {
	lib, ok := libraries[profile]
	if !ok {
		lib = libraries[ProfileReasoning]
	}
	return lib
}

// Profile returns the library's template profile
func (l *Library) Profile() Profile {
	return l.profile
}

// Get returns the pattern for a type. The type set is closed and the data
// is validated at load, so lookup cannot miss.
func (l *Library) Get(t intent.Type) Pattern {
	return l.patterns[t]
}

// Types returns the prompt types in listing order
func (l *Library) Types() []intent.Type {
	return intent.Types
}
