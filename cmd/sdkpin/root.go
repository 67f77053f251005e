package main

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/sdkpin/internal/lock"
	"github.com/conn-castle/sdkpin/internal/messages"
	"github.com/conn-castle/sdkpin/internal/rules"
	"github.com/conn-castle/sdkpin/internal/sdkman"
	"github.com/conn-castle/sdkpin/internal/terminal"
)

// Package-level hooks replaced by tests.
var (
	newSystem     = func() sdkman.System { return sdkman.RealSystem{} }
	loadRules     = rules.Load
	isInteractive = terminal.IsInteractive
	confirmFunc   = confirmWithForm
	withLock      = lock.With
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	file    string
	verbose bool
	noColor bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureOutput(cmd.ErrOrStderr(), opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.file, "file", "f", "", messages.RootFlagFile)
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, messages.RootFlagVerbose)
	flags.BoolVar(&opts.noColor, "no-color", false, messages.RootFlagNoColor)

	cmd.AddCommand(
		newApplyCmd(opts),
		newPlanCmd(opts),
		newCheckCmd(opts),
		newDoctorCmd(opts),
	)
	return cmd
}

// configureOutput installs the default slog logger on stderr and applies --no-color.
func configureOutput(stderr io.Writer, opts *rootOptions) {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	if opts.noColor {
		color.NoColor = true
	}
}

// loadCandidates loads the rule file, compiles every rule and applies the
// candidate filter. Any configuration error is returned before anything runs.
func loadCandidates(opts *rootOptions, only []string) (*rules.Ruleset, []rules.CompiledCandidate, error) {
	if strings.TrimSpace(opts.file) == "" {
		return nil, nil, errors.New(messages.RootFileRequired)
	}
	rs, err := loadRules(opts.file)
	if err != nil {
		return nil, nil, err
	}
	compiled, err := rs.Compile()
	if err != nil {
		return nil, nil, err
	}
	selected, err := rules.Select(compiled, only)
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("rules loaded", "file", opts.file, "candidates", len(selected), "rules", rs.RuleCount())
	return rs, selected, nil
}
