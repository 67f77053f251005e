package messages

// Rule file messages for loading and validation.
const (
	// RulesMissingFileFmt formats missing rule file errors.
	RulesMissingFileFmt   = "missing rule file %s: %w"
	RulesExpandPathFmt    = "expand rule file path %s: %w"
	RulesInvalidFileFmt   = "invalid rule file %s: %w"
	RulesUnrecognizedFmt  = "%s: unrecognized rule file keys: %w"
	RulesNoCandidatesFmt  = "%s: candidates must contain at least one entry"
	RulesCandidateNameFmt = "%s: candidate name %q is invalid (letters, digits, '.', '_' and '-' only)"
	RulesPatternEmptyFmt  = "%s: candidates.%s.versions[%d].pattern is required"
	RulesExcludeEmptyFmt  = "%s: candidates.%s.versions[%d].exclude[%d] is empty"
	RulesUnknownFormatFmt = "unsupported rule file format %q"

	// RulesInvalidPatternFmt names the candidate and the offending regex text.
	RulesInvalidPatternFmt    = "invalid regex for %s: %s: %w"
	RulesInvalidConstraintFmt = "invalid constraint for %s: %s: %w"

	RulesUnknownCandidateFmt = "candidate %q is not defined in the rule file"
)
