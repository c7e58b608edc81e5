package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLangsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List the available language packs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, key := range a.registry.Keys() {
				pack, err := a.registry.Lookup(key)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s, %s\n", key, pack.Month(1), pack.Weekday(0))
			}
			return nil
		},
	}
}
