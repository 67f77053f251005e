package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/conn-castle/sdkpin/internal/messages"
	"github.com/conn-castle/sdkpin/internal/reconcile"
	"github.com/conn-castle/sdkpin/internal/sdkman"
)

type applyOptions struct {
	dryRun      bool
	noUninstall bool
	confirm     bool
	noLock      bool
	candidates  []string
}

func newApplyCmd(root *rootOptions) *cobra.Command {
	opts := &applyOptions{}
	cmd := &cobra.Command{
		Use:   messages.ApplyUse,
		Short: messages.ApplyShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd.Context(), cmd.OutOrStdout(), root, opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "d", false, messages.ApplyFlagDryRun)
	cmd.Flags().BoolVarP(&opts.noUninstall, "no-uninstall", "n", false, messages.ApplyFlagNoUninstall)
	cmd.Flags().StringArrayVarP(&opts.candidates, "candidate", "c", nil, messages.ApplyFlagCandidate)
	cmd.Flags().BoolVar(&opts.confirm, "confirm", false, messages.ApplyFlagConfirm)
	cmd.Flags().BoolVar(&opts.noLock, "no-lock", false, messages.ApplyFlagNoLock)
	return cmd
}

// runApply reconciles every selected candidate. Action failures do not stop the
// run; they surface as reconcile.ErrActionsFailed once the summary is printed.
func runApply(ctx context.Context, out io.Writer, root *rootOptions, opts *applyOptions) error {
	_, candidates, err := loadCandidates(root, opts.candidates)
	if err != nil {
		return err
	}
	if opts.confirm && !isInteractive() {
		return errors.New(messages.ApplyConfirmRequiresTTY)
	}

	client := sdkman.New(newSystem(), opts.dryRun, opts.noUninstall)
	engine := &reconcile.Engine{
		Executor: client,
		Reporter: applyReporter{out: out},
		Logger:   slog.Default(),
	}
	if opts.confirm {
		engine.Confirm = func(plan reconcile.Plan) (bool, error) {
			return confirmFunc(fmt.Sprintf(messages.ApplyConfirmPromptFmt, len(plan.Actions), plan.Candidate))
		}
	}

	run := func() error {
		summary, err := engine.Run(ctx, candidates, reconcile.ModeApply)
		if err != nil && !errors.Is(err, reconcile.ErrActionsFailed) {
			return err
		}
		_, _ = fmt.Fprintf(out, messages.ApplySummaryFmt, len(summary.Plans), summary.Actions, summary.Failed)
		return err
	}
	if opts.dryRun || opts.noLock {
		return run()
	}
	path, err := client.LockPath()
	if err != nil {
		return err
	}
	slog.Debug("acquiring run lock", "path", path)
	return withLock(path, run)
}
