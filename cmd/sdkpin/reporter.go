package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/conn-castle/sdkpin/internal/messages"
	"github.com/conn-castle/sdkpin/internal/reconcile"
)

// applyReporter prints each command as it starts and its outcome label when it finishes.
type applyReporter struct {
	out io.Writer
}

func (r applyReporter) PlanReady(plan reconcile.Plan) {
	switch {
	case plan.Unmanaged():
		_, _ = fmt.Fprintf(r.out, messages.ApplyUnmanagedFmt, plan.Candidate, len(plan.Installed))
	case len(plan.Actions) == 0:
		_, _ = fmt.Fprintf(r.out, messages.ApplyNothingToDoFmt, plan.Candidate)
	}
}

func (r applyReporter) ActionStarted(action reconcile.Action) {
	_, _ = fmt.Fprintf(r.out, messages.ApplyActionLineFmt, action.Command())
}

func (r applyReporter) ActionFinished(result reconcile.Result) {
	label := result.Outcome.Label()
	if result.Failed() && result.Detail != "" {
		label = fmt.Sprintf(messages.ApplyOutcomeErrorDetailFmt, label, result.Detail)
	}
	_, _ = fmt.Fprintln(r.out, colorize(result.Outcome, label))
}

func (r applyReporter) CandidateDeclined(plan reconcile.Plan) {
	_, _ = fmt.Fprintf(r.out, messages.ApplyCandidateDeclinedFmt, plan.Candidate)
}

func colorize(outcome reconcile.Outcome, text string) string {
	switch outcome {
	case reconcile.OutcomeOK:
		return color.GreenString(text)
	case reconcile.OutcomeDryRun:
		return color.YellowString(text)
	case reconcile.OutcomeSkipped:
		return color.CyanString(text)
	default:
		return color.RedString(text)
	}
}

// planReporter prints every plan as soon as it is built.
type planReporter struct {
	out      io.Writer
	showDiff bool
}

func (r planReporter) PlanReady(plan reconcile.Plan) {
	_, _ = fmt.Fprintf(r.out, messages.PlanHeaderFmt, plan.Candidate)
	switch {
	case plan.Unmanaged():
		_, _ = fmt.Fprintf(r.out, messages.PlanUnmanagedFmt, len(plan.Installed))
		return
	case len(plan.Actions) == 0:
		_, _ = fmt.Fprintln(r.out, messages.PlanNoActions)
		return
	}
	for _, action := range plan.Actions {
		_, _ = fmt.Fprintf(r.out, messages.PlanActionFmt, action.Command())
	}
	if !r.showDiff {
		return
	}
	if diff := reconcile.RenderDiff(plan); diff != "" {
		_, _ = fmt.Fprint(r.out, diff)
	}
}

func (planReporter) ActionStarted(reconcile.Action)   {}
func (planReporter) ActionFinished(reconcile.Result)  {}
func (planReporter) CandidateDeclined(reconcile.Plan) {}
