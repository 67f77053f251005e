package reconcile

import "github.com/conn-castle/sdkpin/internal/messages"

// Outcome classifies what happened to an action.
type Outcome int

const (
	// OutcomeOK means the sdk command ran and succeeded.
	OutcomeOK Outcome = iota
	// OutcomeError means the sdk command ran and failed.
	OutcomeError
	// OutcomeDryRun means the command was only reported.
	OutcomeDryRun
	// OutcomeSkipped means an uninstall was suppressed by no-uninstall mode.
	OutcomeSkipped
)

// Label is the word printed after the command.
func (o Outcome) Label() string {
	switch o {
	case OutcomeOK:
		return messages.OutcomeOKLabel
	case OutcomeDryRun:
		return messages.OutcomeDryRunLabel
	case OutcomeSkipped:
		return messages.OutcomeNoUninstallLabel
	default:
		return messages.OutcomeErrorLabel
	}
}

// Result is the outcome of one action. Detail carries the captured output of a
// failed command.
type Result struct {
	Action  Action
	Outcome Outcome
	Detail  string
}

// Failed reports whether the action ran and failed.
func (r Result) Failed() bool {
	return r.Outcome == OutcomeError
}
