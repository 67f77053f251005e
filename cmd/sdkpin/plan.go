package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/conn-castle/sdkpin/internal/messages"
	"github.com/conn-castle/sdkpin/internal/reconcile"
	"github.com/conn-castle/sdkpin/internal/sdkman"
)

// planChangesExitCode is returned by plan --exit-code when any candidate needs
// an install or an uninstall. Re-asserting a default does not count.
const planChangesExitCode = 2

type planOptions struct {
	noDiff     bool
	exitCode   bool
	candidates []string
}

func newPlanCmd(root *rootOptions) *cobra.Command {
	opts := &planOptions{}
	cmd := &cobra.Command{
		Use:   messages.PlanUse,
		Short: messages.PlanShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd.Context(), cmd.OutOrStdout(), root, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.noDiff, "no-diff", false, messages.PlanFlagNoDiff)
	cmd.Flags().BoolVar(&opts.exitCode, "exit-code", false, messages.PlanFlagExitCode)
	cmd.Flags().StringArrayVarP(&opts.candidates, "candidate", "c", nil, messages.ApplyFlagCandidate)
	return cmd
}

// runPlan lists every selected candidate and prints its plan without running
// any side-effecting sdk command.
func runPlan(ctx context.Context, out io.Writer, root *rootOptions, opts *planOptions) error {
	_, candidates, err := loadCandidates(root, opts.candidates)
	if err != nil {
		return err
	}
	engine := &reconcile.Engine{
		Executor: sdkman.New(newSystem(), true, false),
		Reporter: planReporter{out: out, showDiff: !opts.noDiff},
		Logger:   slog.Default(),
	}
	summary, err := engine.Run(ctx, candidates, reconcile.ModePlan)
	if err != nil {
		return err
	}
	if !opts.exitCode {
		return nil
	}
	for _, plan := range summary.Plans {
		if len(plan.ToInstall) > 0 || len(plan.ToRemove) > 0 {
			return &SilentExitError{Code: planChangesExitCode}
		}
	}
	return nil
}
