package rules

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/conn-castle/sdkpin/internal/messages"
)

// ErrInvalidPattern marks a rule whose pattern, exclude alternation or
// constraint does not compile. It is always fatal for a run.
var ErrInvalidPattern = errors.New("invalid version rule")

// numericPrefix captures the release numbers sdk identifiers start with
// (21.0.2 in 21.0.2-tem).
var numericPrefix = regexp.MustCompile(`^v?\d+(?:\.\d+){0,2}`)

// Matcher is a compiled VersionRule.
type Matcher struct {
	Candidate  string
	Rule       VersionRule
	pattern    *regexp.Regexp
	exclude    *regexp.Regexp
	constraint *semver.Constraints
}

// Compile compiles rule for candidate. Exclude fragments are joined into a
// single alternation.
func Compile(candidate string, rule VersionRule) (*Matcher, error) {
	pattern, err := regexp.Compile(rule.Pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: "+messages.RulesInvalidPatternFmt, ErrInvalidPattern, candidate, rule.Pattern, err)
	}
	m := &Matcher{Candidate: candidate, Rule: rule, pattern: pattern}

	if len(rule.Exclude) > 0 {
		joined := strings.Join(rule.Exclude, "|")
		exclude, err := regexp.Compile(joined)
		if err != nil {
			return nil, fmt.Errorf("%w: "+messages.RulesInvalidPatternFmt, ErrInvalidPattern, candidate, joined, err)
		}
		m.exclude = exclude
	}

	if strings.TrimSpace(rule.Constraint) != "" {
		constraint, err := semver.NewConstraint(rule.Constraint)
		if err != nil {
			return nil, fmt.Errorf("%w: "+messages.RulesInvalidConstraintFmt, ErrInvalidPattern, candidate, rule.Constraint, err)
		}
		m.constraint = constraint
	}
	return m, nil
}

// Match returns the first identifier in available accepted by the rule, keeping
// the order of available.
func (m *Matcher) Match(available []string) (string, bool) {
	for _, version := range available {
		if m.accepts(version) {
			return version, true
		}
	}
	return "", false
}

func (m *Matcher) accepts(version string) bool {
	if !m.pattern.MatchString(version) {
		return false
	}
	if m.exclude != nil && m.exclude.MatchString(version) {
		return false
	}
	if m.constraint != nil && !m.satisfies(version) {
		return false
	}
	return true
}

// satisfies checks the numeric prefix of version against the constraint.
// Identifiers without a numeric prefix never satisfy a constraint.
func (m *Matcher) satisfies(version string) bool {
	prefix := numericPrefix.FindString(version)
	if prefix == "" {
		return false
	}
	parsed, err := semver.NewVersion(prefix)
	if err != nil {
		return false
	}
	return m.constraint.Check(parsed)
}

// Default reports whether a match of this rule should become the default.
func (m *Matcher) Default() bool {
	return m.Rule.Default
}

// CompiledCandidate is a candidate with every rule compiled, in rule order.
type CompiledCandidate struct {
	Name     string
	Matchers []*Matcher
}

// Compile compiles every rule of every candidate, returning candidates in
// lexicographic name order. The first rule that fails to compile aborts.
func (r *Ruleset) Compile() ([]CompiledCandidate, error) {
	names := r.Names()
	compiled := make([]CompiledCandidate, 0, len(names))
	for _, name := range names {
		candidate := CompiledCandidate{Name: name}
		for _, rule := range r.Candidates[name].Versions {
			m, err := Compile(name, rule)
			if err != nil {
				return nil, err
			}
			candidate.Matchers = append(candidate.Matchers, m)
		}
		compiled = append(compiled, candidate)
	}
	return compiled, nil
}

// Select returns the compiled candidates whose names appear in only, keeping
// their order. An empty filter selects everything; unknown names are an error.
func Select(compiled []CompiledCandidate, only []string) ([]CompiledCandidate, error) {
	if len(only) == 0 {
		return compiled, nil
	}
	wanted := make(map[string]bool, len(only))
	for _, name := range only {
		wanted[name] = true
	}
	selected := make([]CompiledCandidate, 0, len(only))
	for _, candidate := range compiled {
		if wanted[candidate.Name] {
			selected = append(selected, candidate)
			delete(wanted, candidate.Name)
		}
	}
	for _, name := range only {
		if wanted[name] {
			return nil, fmt.Errorf(messages.RulesUnknownCandidateFmt, name)
		}
	}
	return selected, nil
}
