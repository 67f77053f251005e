package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/sdkpin/internal/messages"
)

func newCheckCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.CheckUse,
		Short: messages.CheckShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, candidates, err := loadCandidates(root, nil)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.CheckOKFmt, len(candidates), rs.RuleCount())
			return nil
		},
	}
}
