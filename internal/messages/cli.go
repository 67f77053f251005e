package messages

// CLI messages for user-facing commands and flags.
const (
	// RootUse is the CLI command name.
	RootUse = "sdkpin"
	// RootShort is the short description for the root command.
	RootShort = "Reconcile installed SDKMAN candidate versions against a rule file"

	// RootLong is the long description for the root command.
	RootLong = "sdkpin reads a rule file describing which versions of each SDKMAN candidate\n" +
		"should be installed, compares it with what is installed, and installs,\n" +
		"uninstalls and selects defaults until the two agree."

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	RootFlagFile    = "Rule file (YAML or TOML) describing the required candidate versions"
	RootFlagVerbose = "Log diagnostic details to stderr"
	RootFlagNoColor = "Disable colored output"

	RootFileRequired = "a rule file is required; pass it with --file"

	// ApplyUse is the apply command name.
	ApplyUse   = "apply"
	ApplyShort = "Install, uninstall and select defaults so installed versions match the rules"

	ApplyFlagDryRun      = "Just print out the commands that would be executed"
	ApplyFlagNoUninstall = "Do not uninstall non-required candidate versions"
	ApplyFlagCandidate   = "Only reconcile the named candidate (repeatable)"
	ApplyFlagConfirm     = "Ask before applying each candidate's plan (interactive terminals only)"
	ApplyFlagNoLock      = "Do not take the SDKMAN run lock"

	ApplyConfirmPromptFmt      = "Apply %d action(s) for %s?"
	ApplyConfirmRequiresTTY    = "--confirm requires an interactive terminal"
	ApplyCandidateDeclinedFmt  = "%s: skipped (not confirmed)\n"
	ApplySummaryFmt            = "%d candidate(s), %d action(s), %d failed\n"
	ApplyUnmanagedFmt          = "%s: no rule matched an available version; %d installed version(s) left untouched\n"
	ApplyNothingToDoFmt        = "%s: up to date\n"
	ApplyActionLineFmt         = "%s: "
	ApplyOutcomeErrorDetailFmt = "%s: %s"

	// PlanUse is the plan command name.
	PlanUse   = "plan"
	PlanShort = "Show the actions apply would take without running them"

	PlanFlagNoDiff   = "Do not print the installed/desired diff"
	PlanFlagExitCode = "Exit with status 2 when any candidate needs an install or uninstall"
	PlanHeaderFmt    = "== %s\n"
	PlanNoActions    = "  (no changes)"
	PlanUnmanagedFmt = "  (unmanaged: no rule matched; %d installed version(s) left untouched)\n"
	PlanActionFmt    = "  %s\n"

	// CheckUse is the check command name.
	CheckUse   = "check"
	CheckShort = "Validate the rule file and compile every pattern"

	CheckOKFmt = "rules OK (%d candidate(s), %d rule(s))\n"

	// OutcomeOKLabel is printed after a successful action.
	OutcomeOKLabel          = "OK"
	OutcomeErrorLabel       = "Error"
	OutcomeDryRunLabel      = "DRY-RUN"
	OutcomeNoUninstallLabel = "NO-UNINSTALL"
)
