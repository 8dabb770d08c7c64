package cmd

import (
	"github.com/bnema/seqlcs/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var (
		verbose  bool
		logLevel string
		app      *app
	)

	rootCmd := &cobra.Command{
		Use:           "seqlcs",
		Short:         "seqlcs: longest common subsequence of every pair of sequences",
		Long:          "seqlcs reads a file of named symbol sequences, computes the longest common subsequence of every unordered pair and writes a report with per-pair operation counts and timings.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if app == nil {
				return nil
			}
			return app.configureLogging(cmd.ErrOrStderr(), verbose)
		},
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every compared pair (debug level)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")

	v := viper.New()
	if err := v.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	wired, err := wireApp(v)
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}
	app = wired

	rootCmd.AddCommand(
		newVersionCmd(),
		newCompareCmd(app),
		newGenerateCmd(app),
		newHistoryCmd(app),
	)

	return rootCmd
}
