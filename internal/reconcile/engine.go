package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/conn-castle/sdkpin/internal/listing"
	"github.com/conn-castle/sdkpin/internal/messages"
	"github.com/conn-castle/sdkpin/internal/rules"
)

// ErrActionsFailed is returned after a run in which at least one action failed.
// Every candidate has still been processed.
var ErrActionsFailed = errors.New(messages.ReconcileActionsFailed)

// Executor queries and mutates the tool installation. Listing calls are
// complete-or-fail; Perform reports failure through the Result.
type Executor interface {
	ListInstalled(ctx context.Context, candidate string) ([]string, error)
	ListAvailable(ctx context.Context, candidate string) (string, error)
	Perform(ctx context.Context, action Action) Result
}

// Reporter receives progress while the engine runs.
type Reporter interface {
	PlanReady(plan Plan)
	ActionStarted(action Action)
	ActionFinished(result Result)
	CandidateDeclined(plan Plan)
}

// ConfirmFunc is asked before a candidate's actions run. Returning false skips
// the candidate.
type ConfirmFunc func(plan Plan) (bool, error)

// Mode selects whether plans are executed.
type Mode int

const (
	// ModeApply builds each plan and performs its actions.
	ModeApply Mode = iota
	// ModePlan only builds and reports plans.
	ModePlan
)

// Summary counts what a run did.
type Summary struct {
	Plans    []Plan
	Actions  int
	Failed   int
	Declined int
}

// Engine reconciles candidates one at a time.
type Engine struct {
	Executor Executor
	Reporter Reporter
	Confirm  ConfirmFunc
	Logger   *slog.Logger
}

// PlanCandidate queries the executor for candidate and builds its plan.
func (e *Engine) PlanCandidate(ctx context.Context, candidate rules.CompiledCandidate) (Plan, error) {
	if e.Executor == nil {
		return Plan{}, errors.New(messages.ReconcileExecutorRequired)
	}
	log := e.logger().With("candidate", candidate.Name)

	installed, err := e.Executor.ListInstalled(ctx, candidate.Name)
	if err != nil {
		return Plan{}, fmt.Errorf(messages.ReconcileListInstalledFmt, candidate.Name, err)
	}
	raw, err := e.Executor.ListAvailable(ctx, candidate.Name)
	if err != nil {
		return Plan{}, fmt.Errorf(messages.ReconcileListAvailableFmt, candidate.Name, err)
	}
	available := listing.Parse(candidate.Name, raw)
	log.Debug("listing parsed", "installed", len(installed), "available", len(available))

	res := Resolve(candidate.Matchers, available)
	if log.Enabled(ctx, slog.LevelDebug) {
		for _, match := range res.Matches {
			log.Debug("rule evaluated", "pattern", match.Rule.Pattern, "matched", match.Matched, "version", match.Version)
		}
	}
	if res.HasDefault {
		log.Debug("default resolved", "version", res.Default)
	}
	return BuildPlan(candidate.Name, installed, res), nil
}

// Run processes candidates in order. Listing failures abort the run; action
// failures are reported and counted, and ErrActionsFailed is returned once
// every candidate has been handled.
func (e *Engine) Run(ctx context.Context, candidates []rules.CompiledCandidate, mode Mode) (Summary, error) {
	reporter := e.reporter()
	var summary Summary
	for _, candidate := range candidates {
		plan, err := e.PlanCandidate(ctx, candidate)
		if err != nil {
			return summary, err
		}
		summary.Plans = append(summary.Plans, plan)
		reporter.PlanReady(plan)

		if mode != ModeApply || len(plan.Actions) == 0 {
			continue
		}
		if e.Confirm != nil {
			ok, err := e.Confirm(plan)
			if err != nil {
				return summary, fmt.Errorf(messages.ReconcileConfirmFmt, candidate.Name, err)
			}
			if !ok {
				summary.Declined++
				reporter.CandidateDeclined(plan)
				continue
			}
		}

		for _, action := range plan.Actions {
			reporter.ActionStarted(action)
			result := e.Executor.Perform(ctx, action)
			reporter.ActionFinished(result)
			summary.Actions++
			if result.Failed() {
				summary.Failed++
				e.logger().Debug("action failed", "command", action.Command(), "detail", result.Detail)
			}
		}
	}
	if summary.Failed > 0 {
		return summary, ErrActionsFailed
	}
	return summary, nil
}

func (e *Engine) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}

func (e *Engine) reporter() Reporter {
	if e.Reporter != nil {
		return e.Reporter
	}
	return nopReporter{}
}

type nopReporter struct{}

func (nopReporter) PlanReady(Plan)         {}
func (nopReporter) ActionStarted(Action)   {}
func (nopReporter) ActionFinished(Result)  {}
func (nopReporter) CandidateDeclined(Plan) {}
