package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datawire/depoch"
)

func newModifyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modify EXPR",
		Short: "Move a date by a phrase such as \"+3 days\" or \"last month\"",
		Example: `  depoch modify "next week"
  depoch modify "2 months ago" --at 2024-03-31T12:00:00Z --layout YYYY-MM-DD`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := timeOption(cmd, "at")
			if err != nil {
				return err
			}
			ep, err := depoch.New(cmd.Context(), append(a.options(), at...)...)
			if err != nil {
				return err
			}
			if err := ep.Modify(args[0]); err != nil {
				return err
			}
			out, err := ep.Format(cmd.Context(), a.cfg.Layout)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().String("at", "", "the date to start from, as RFC 3339 (default now)")
	cmd.Flags().String("layout", "", "template for the result (default from config)")
	return cmd
}
