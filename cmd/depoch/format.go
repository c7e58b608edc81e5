package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datawire/depoch"
	"github.com/datawire/depoch/dformat"
)

func newFormatCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format LAYOUT",
		Short: "Render a date through a template",
		Example: `  depoch format "dddd, MMMM Do YYYY [at] HH:mm A"
  depoch format --compact "D, d M Y H:i:s" --at 2024-03-05T14:07:09Z`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.options()
			at, err := timeOption(cmd, "at")
			if err != nil {
				return err
			}
			opts = append(opts, at...)
			if cmd.Flags().Changed("millis") {
				ms, _ := cmd.Flags().GetInt64("millis")
				opts = append(opts, depoch.AtMillis(ms))
			}
			if compact, _ := cmd.Flags().GetBool("compact"); compact {
				opts = append(opts, depoch.UsingFormatter(dformat.Compact))
			}

			ep, err := depoch.New(cmd.Context(), opts...)
			if err != nil {
				return err
			}
			out, err := ep.Format(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().String("at", "", "the date to render, as RFC 3339 (default now)")
	cmd.Flags().Int64("millis", 0, "the date to render, as milliseconds since the Unix epoch")
	cmd.Flags().Bool("compact", false, "read LAYOUT as single-character tokens (\"Y-m-d\")")
	cmd.MarkFlagsMutuallyExclusive("at", "millis")
	return cmd
}
