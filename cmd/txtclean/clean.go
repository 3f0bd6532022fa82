package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func newCleanCmd() *cobra.Command {
	var (
		output string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "clean [file]",
		Short: "Clean text read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			p, err := buildPipeline(cfg)
			if err != nil {
				return err
			}
			p, err = withCustomWords(cmd.Context(), cfg, p)
			if err != nil {
				return err
			}

			text, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			res, err := p.Run(text)
			if err != nil {
				return err
			}
			slog.Info("clean complete",
				slog.Int("tokens", res.Stats.Tokens),
				slog.Int("numerals", res.Stats.Numerals),
				slog.Int("corrected", res.Stats.Corrected),
				slog.Int("unresolved", res.Stats.Unresolved),
			)

			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				out = f
			}

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			_, err = fmt.Fprintln(out, res.Text)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the cleaned text to this file instead of stdout")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print tokens, corrections and stats as JSON")

	return cmd
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}
