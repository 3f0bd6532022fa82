package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"txtcleaner/internal/numwords"
)

func newNumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "num <digits>",
		Short: "Spell out a non-negative integer in English words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := numwords.Convert(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), words)
			return err
		},
	}
}
