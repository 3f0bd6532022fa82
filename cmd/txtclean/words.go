package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"txtcleaner/internal/customdict"
)

// The words commands always talk to Redis; redis-enabled only decides
// whether clean and serve read the set.
func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Manage custom words that are never corrected",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <word>...",
		Short: "Add custom words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDict(func(dict *customdict.CustomDict) error {
				for _, w := range args {
					if err := dict.Add(cmd.Context(), w); err != nil {
						return fmt.Errorf("add %q: %w", w, err)
					}
				}
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <word>...",
		Short: "Remove custom words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDict(func(dict *customdict.CustomDict) error {
				for _, w := range args {
					if err := dict.Remove(cmd.Context(), w); err != nil {
						return fmt.Errorf("remove %q: %w", w, err)
					}
				}
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List custom words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDict(func(dict *customdict.CustomDict) error {
				words, err := dict.All(cmd.Context())
				if err != nil {
					return fmt.Errorf("list: %w", err)
				}
				slices.Sort(words)
				for _, w := range words {
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), w); err != nil {
						return err
					}
				}
				return nil
			})
		},
	})

	return cmd
}

func withDict(fn func(*customdict.CustomDict) error) error {
	cfg, err := requireConfig()
	if err != nil {
		return err
	}
	client := newRedisClient(cfg.Redis)
	defer client.Close()
	return fn(customdict.New(client, cfg.Redis.Key))
}
