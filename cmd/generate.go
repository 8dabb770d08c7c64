package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/seqlcs/internal/application"
	"github.com/bnema/seqlcs/internal/config"
	"github.com/spf13/cobra"
)

func newGenerateCmd(app *app) *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "generate <output>",
		Short: "Write random sequences in the format compare reads",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig(cmd, map[string]string{
				config.KeyGenerateCount:     "count",
				config.KeyGenerateMinLength: "min-length",
				config.KeyGenerateMaxLength: "max-length",
				config.KeyGenerateAlphabet:  "alphabet",
			})
			if err != nil {
				return err
			}

			svc, closeService, err := app.newService(cfg)
			if err != nil {
				return err
			}
			defer closeService()

			outputPath := strings.TrimSpace(args[0])
			sequences, err := svc.Generate(cmd.Context(), outputPath, application.GenerateOptions{
				Count:     cfg.Generate.Count,
				MinLength: cfg.Generate.MinLength,
				MaxLength: cfg.Generate.MaxLength,
				Alphabet:  cfg.Generate.Alphabet,
				Seed:      seed,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Generated %d sequences in '%s'\n", len(sequences), outputPath)
			return err
		},
	}

	cmd.Flags().IntP("count", "n", 10, "Number of sequences")
	cmd.Flags().Int("min-length", 5, "Minimum sequence length (inclusive)")
	cmd.Flags().Int("max-length", 30, "Maximum sequence length (exclusive unless equal to --min-length)")
	cmd.Flags().String("alphabet", application.DefaultAlphabet, "Symbols to draw from")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed; 0 picks a fresh one")

	return cmd
}
