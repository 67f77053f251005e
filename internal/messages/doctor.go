package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check the SDKMAN environment and the rule file"

	DoctorHealthCheck = "Checking sdkpin environment..."

	DoctorCheckNameSdkman     = "SDKMAN"
	DoctorCheckNameCandidates = "Candidates"
	DoctorCheckNameShell      = "Shell"
	DoctorCheckNameRules      = "Rules"

	DoctorSdkmanDirUnset          = "SDKMAN_DIR is not set"
	DoctorSdkmanDirUnsetRecommend = "Install SDKMAN (https://sdkman.io/install) and source %s/bin/sdkman-init.sh from your shell profile."
	DoctorSdkmanDirMissingFmt     = "SDKMAN_DIR %s does not exist: %v"
	DoctorSdkmanDirNotDirFmt      = "SDKMAN_DIR %s is not a directory"
	DoctorSdkmanDirRecommend      = "Point SDKMAN_DIR at the SDKMAN installation directory."
	DoctorSdkmanDirOKFmt          = "SDKMAN_DIR: %s"

	DoctorCandidatesMissingFmt = "No candidates directory at %s"
	DoctorCandidatesRecommend  = "Nothing is installed yet; sdkpin apply will create it through sdk install."
	DoctorCandidatesFoundFmt   = "%d candidate(s) installed"

	DoctorShellUnset      = "SHELL is not set"
	DoctorShellRecommend  = "Export SHELL pointing at a login shell that sources sdkman-init.sh."
	DoctorShellMissingFmt = "SHELL %s is not usable: %v"
	DoctorShellNotExecFmt = "SHELL %s is not executable"
	DoctorShellOKFmt      = "SHELL: %s"

	DoctorRulesLoadFailedFmt = "Failed to load rules: %v"
	DoctorRulesRecommend     = "Fix the rule file; run sdkpin check for the first error."
	DoctorRulesOKFmt         = "%s: %d candidate(s), %d rule(s)"
	DoctorRulesSkipped       = "No rule file given (pass --file to validate one)"

	DoctorStatusOKLabel   = "[OK]  "
	DoctorStatusWarnLabel = "[WARN]"
	DoctorStatusFailLabel = "[FAIL]"
	DoctorResultLineFmt   = "%s %-10s %s\n"

	DoctorRecommendationPrefix = "       -> "
	DoctorFailureSummary       = "Some checks failed."
	DoctorSuccessSummary       = "All checks passed."
	DoctorFailureError         = "doctor found failing checks"
)
