// Package rules defines the rule file that declares which versions of each
// SDKMAN candidate must be installed, and compiles its rules into matchers.
package rules

import "sort"

// Ruleset maps candidate names to their version rules.
type Ruleset struct {
	Candidates map[string]Candidate `yaml:"candidates" toml:"candidates"`
}

// Candidate is one installable tool and the ordered rules that select its versions.
type Candidate struct {
	Name     string        `yaml:"-" toml:"-"`
	Versions []VersionRule `yaml:"versions" toml:"versions"`
}

// VersionRule selects at most one version of a candidate.
// Pattern and each Exclude fragment are regular expressions matched anywhere in
// the identifier unless anchored. Constraint is an optional semver range.
type VersionRule struct {
	Pattern    string   `yaml:"pattern" toml:"pattern"`
	Default    bool     `yaml:"default,omitempty" toml:"default,omitempty"`
	Exclude    []string `yaml:"exclude,omitempty" toml:"exclude,omitempty"`
	Constraint string   `yaml:"constraint,omitempty" toml:"constraint,omitempty"`
}

// Names returns the candidate names in lexicographic order.
func (r *Ruleset) Names() []string {
	names := make([]string, 0, len(r.Candidates))
	for name := range r.Candidates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RuleCount returns the number of version rules across all candidates.
func (r *Ruleset) RuleCount() int {
	count := 0
	for _, candidate := range r.Candidates {
		count += len(candidate.Versions)
	}
	return count
}
