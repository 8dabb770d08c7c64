package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/bnema/seqlcs/internal/adapters/report"
	"github.com/bnema/seqlcs/internal/application"
	"github.com/bnema/seqlcs/internal/config"
	"github.com/bnema/seqlcs/internal/domain"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *app) *cobra.Command {
	var runID string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived comparison runs",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.loadConfig(cmd, map[string]string{
				config.KeyArchivePath: "archive",
			})
			if err != nil {
				return err
			}
			if cfg.Archive.Path == "" {
				return usageError(fmt.Errorf("%w: pass --archive or set %s", application.ErrArchiveNotConfigured, config.KeyArchivePath))
			}
			if _, err := os.Stat(cfg.Archive.Path); err != nil {
				return usageError(fmt.Errorf("open archive: %w", err))
			}

			svc, closeService, err := app.newService(cfg)
			if err != nil {
				return err
			}
			defer closeService()

			if runID != "" {
				entries, err := svc.RunEntries(cmd.Context(), domain.RunID(runID))
				if err != nil {
					return err
				}
				return report.WriteText(cmd.OutOrStdout(), entries)
			}

			summaries, err := svc.History(cmd.Context())
			if err != nil {
				return err
			}

			return writeHistory(cmd, summaries)
		},
	}

	cmd.Flags().String("archive", "", "SQLite database written by compare --archive")
	cmd.Flags().StringVar(&runID, "run", "", "Print the comparisons of one archived run")

	return cmd
}

func writeHistory(cmd *cobra.Command, summaries []application.RunSummary) error {
	if len(summaries) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "No archived runs.")
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTARTED\tINPUT\tPAIRS\tOPERATIONS\tELAPSED")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n",
			s.ID, s.StartedAt.Local().Format(time.DateTime), s.InputPath, s.Pairs, s.TotalOperations, s.TotalElapsed)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write history: %w", err)
	}

	return nil
}
