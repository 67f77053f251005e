package rules

import (
	"fmt"
	"regexp"

	"github.com/conn-castle/sdkpin/internal/messages"
)

// candidateName restricts names to what sdk accepts; names are interpolated
// into shell commands.
var candidateName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Validate checks the structure of the ruleset. Regular expressions are
// compiled separately by Compile.
func (r *Ruleset) Validate(source string) error {
	if len(r.Candidates) == 0 {
		return fmt.Errorf(messages.RulesNoCandidatesFmt, source)
	}
	for _, name := range r.Names() {
		if !candidateName.MatchString(name) {
			return fmt.Errorf(messages.RulesCandidateNameFmt, source, name)
		}
		for i, rule := range r.Candidates[name].Versions {
			if rule.Pattern == "" {
				return fmt.Errorf(messages.RulesPatternEmptyFmt, source, name, i)
			}
			for j, fragment := range rule.Exclude {
				if fragment == "" {
					return fmt.Errorf(messages.RulesExcludeEmptyFmt, source, name, i, j)
				}
			}
		}
	}
	return nil
}
