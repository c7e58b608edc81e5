package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/datawire/depoch"
)

func newFromCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "from TARGET",
		Short: "Describe a date relative to now, such as \"3 days ago\"",
		Example: `  depoch from 2024-03-02T09:00:00Z
  depoch from 2024-03-02T09:00:00Z --ref 2024-01-01T00:00:00Z --lang nl`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := time.Parse(time.RFC3339, args[0])
			if err != nil {
				return errors.Wrap(err, "TARGET")
			}
			target, err := depoch.New(cmd.Context(), append(a.options(), depoch.At(t))...)
			if err != nil {
				return err
			}

			refAt, err := timeOption(cmd, "ref")
			if err != nil {
				return err
			}
			ref, err := depoch.New(cmd.Context(), append(a.options(), refAt...)...)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), target.From(ref))
			return nil
		},
	}
	cmd.Flags().String("ref", "", "the date to describe TARGET from, as RFC 3339 (default now)")
	return cmd
}
