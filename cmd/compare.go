package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/seqlcs/internal/adapters/render/summary"
	"github.com/bnema/seqlcs/internal/application"
	"github.com/bnema/seqlcs/internal/config"
	"github.com/bnema/seqlcs/internal/domain"
	"github.com/spf13/cobra"
)

func newCompareCmd(app *app) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "compare <input> <output>",
		Short: "Compute the LCS of every pair of sequences in a file",
		Long: "compare reads \"name = symbols\" records from <input>, computes the longest common " +
			"subsequence of every unordered pair and writes the report to <output>.",
		Args: usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, app, strings.TrimSpace(args[0]), strings.TrimSpace(args[1]), quiet)
		},
	}

	cmd.Flags().StringP("format", "f", "text", "Report format: text, toml, yaml or json")
	cmd.Flags().IntP("workers", "w", 1, "Pairs compared concurrently; 1 is sequential")
	cmd.Flags().String("archive", "", "SQLite database that records the run")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Skip the progress spinner and summary")

	return cmd
}

func runCompare(cmd *cobra.Command, app *app, inputPath, outputPath string, quiet bool) error {
	cfg, err := app.loadConfig(cmd, map[string]string{
		config.KeyReportFormat:   "format",
		config.KeyCompareWorkers: "workers",
		config.KeyArchivePath:    "archive",
	})
	if err != nil {
		return err
	}

	svc, closeService, err := app.newService(cfg)
	if err != nil {
		return err
	}
	defer closeService()

	req := application.RunRequest{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Format:     cfg.Report.Format,
		Workers:    cfg.Compare.Workers,
	}

	var run domain.Run
	work := func(ctx context.Context, progress func(done, total int)) error {
		req.Progress = progress
		var runErr error
		run, runErr = svc.Run(ctx, req)
		return runErr
	}

	if quiet {
		err = work(cmd.Context(), nil)
	} else {
		err = runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), inputPath, work)
	}
	if err != nil {
		return err
	}

	if !quiet {
		rendered, err := app.summaryRenderer(run, summary.RenderOptions{})
		if err != nil {
			return fmt.Errorf("render summary: %w", err)
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), rendered); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Full output in '%s'\n", outputPath)
	return err
}
