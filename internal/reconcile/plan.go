// Package reconcile compares the versions a candidate's rules require with the
// versions installed and produces the actions that close the gap.
package reconcile

import (
	"fmt"
	"sort"

	"github.com/conn-castle/sdkpin/internal/rules"
)

// ActionKind is the sdk operation an Action performs.
type ActionKind int

const (
	ActionUninstall ActionKind = iota + 1
	ActionInstall
	ActionSetDefault
)

// String returns the sdk subcommand for the kind.
func (k ActionKind) String() string {
	switch k {
	case ActionUninstall:
		return "uninstall"
	case ActionInstall:
		return "install"
	case ActionSetDefault:
		return "default"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Action is one sdk operation on one version of a candidate.
type Action struct {
	Kind      ActionKind
	Candidate string
	Version   string
}

// Command renders the action as the sdk command line it corresponds to.
func (a Action) Command() string {
	return fmt.Sprintf("sdk %s %s %s", a.Kind, a.Candidate, a.Version)
}

// Resolution is what a candidate's rules resolve to against the available list.
type Resolution struct {
	// Required is sorted and free of duplicates.
	Required []string
	// Default is the match of the last default rule that matched, if any.
	Default    string
	HasDefault bool
	// Matches holds one entry per rule, in rule order.
	Matches []RuleMatch
}

// RuleMatch is the outcome of one rule against the available list.
type RuleMatch struct {
	Rule    rules.VersionRule
	Version string
	Matched bool
}

// Resolve runs every matcher over available, in rule order. Each match joins
// the required set; a match of a default rule replaces any earlier default.
func Resolve(matchers []*rules.Matcher, available []string) Resolution {
	seen := make(map[string]bool)
	var res Resolution
	for _, m := range matchers {
		version, ok := m.Match(available)
		res.Matches = append(res.Matches, RuleMatch{Rule: m.Rule, Version: version, Matched: ok})
		if !ok {
			continue
		}
		if !seen[version] {
			seen[version] = true
			res.Required = append(res.Required, version)
		}
		if m.Default() {
			res.Default = version
			res.HasDefault = true
		}
	}
	sort.Strings(res.Required)
	return res
}

// Plan is the ordered set of actions for one candidate: uninstalls, then
// installs, then at most one default selection.
type Plan struct {
	Candidate  string
	Installed  []string
	Resolution Resolution
	ToRemove   []string
	ToInstall  []string
	Actions    []Action
}

// Unmanaged reports whether no rule resolved to any available version. An
// unmanaged candidate's installed versions are left alone.
func (p Plan) Unmanaged() bool {
	return len(p.Resolution.Required) == 0 && !p.Resolution.HasDefault
}

// Desired returns the versions that will be installed once the plan is applied.
func (p Plan) Desired() []string {
	if p.Unmanaged() {
		return append([]string(nil), p.Installed...)
	}
	return sortedUnique(p.Resolution.Required)
}

// BuildPlan diffs installed against the resolution. Both difference sets are
// sorted so the plan is deterministic.
func BuildPlan(candidate string, installed []string, res Resolution) Plan {
	plan := Plan{
		Candidate:  candidate,
		Installed:  sortedUnique(installed),
		Resolution: res,
	}
	if plan.Unmanaged() {
		return plan
	}

	required := toSet(res.Required)
	current := toSet(plan.Installed)
	for _, version := range plan.Installed {
		if !required[version] {
			plan.ToRemove = append(plan.ToRemove, version)
		}
	}
	for _, version := range res.Required {
		if !current[version] {
			plan.ToInstall = append(plan.ToInstall, version)
		}
	}

	for _, version := range plan.ToRemove {
		plan.Actions = append(plan.Actions, Action{Kind: ActionUninstall, Candidate: candidate, Version: version})
	}
	for _, version := range plan.ToInstall {
		plan.Actions = append(plan.Actions, Action{Kind: ActionInstall, Candidate: candidate, Version: version})
	}
	if res.HasDefault {
		plan.Actions = append(plan.Actions, Action{Kind: ActionSetDefault, Candidate: candidate, Version: res.Default})
	}
	return plan
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func sortedUnique(values []string) []string {
	set := toSet(values)
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
