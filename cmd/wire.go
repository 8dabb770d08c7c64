package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/bnema/seqlcs/internal/adapters/archive/sqlite"
	"github.com/bnema/seqlcs/internal/adapters/render/summary"
	"github.com/bnema/seqlcs/internal/adapters/repo/seqfile"
	"github.com/bnema/seqlcs/internal/adapters/report"
	"github.com/bnema/seqlcs/internal/application"
	"github.com/bnema/seqlcs/internal/config"
	"github.com/bnema/seqlcs/internal/domain"
	"github.com/bnema/seqlcs/internal/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	viper           *viper.Viper
	logger          *slog.Logger
	sequences       ports.SequenceRepository
	reports         ports.ReportFormats
	clock           ports.Clock
	openArchive     func(path string) (runArchive, error)
	summaryRenderer func(domain.Run, summary.RenderOptions) (string, error)
}

type runArchive interface {
	ports.RunArchive
	Close() error
}

func wireApp(v *viper.Viper) (*app, error) {
	if err := config.Prepare(v); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	return &app{
		viper:           v,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		sequences:       seqfile.NewRepository(),
		reports:         report.NewFormats(),
		clock:           ports.SystemClock{},
		openArchive:     openSQLiteArchive,
		summaryRenderer: summary.Render,
	}, nil
}

func openSQLiteArchive(path string) (runArchive, error) {
	archive, err := sqlite.Open(path)
	if err != nil {
		return nil, err
	}

	return archive, nil
}

// loadConfig binds the named flags of cmd to their keys and resolves the
// configuration. Binding happens per invocation because several commands
// expose the same key.
func (a *app) loadConfig(cmd *cobra.Command, flags map[string]string) (config.Config, error) {
	for key, name := range flags {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			return config.Config{}, fmt.Errorf("bind flag %q: not defined", name)
		}
		if err := a.viper.BindPFlag(key, flag); err != nil {
			return config.Config{}, fmt.Errorf("bind flag %q: %w", name, err)
		}
	}

	cfg, err := config.Load(a.viper)
	if err != nil {
		return config.Config{}, usageError(err)
	}

	return cfg, nil
}

func (a *app) configureLogging(output io.Writer, verbose bool) error {
	cfg, err := config.Load(a.viper)
	if err != nil {
		return usageError(err)
	}

	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return usageError(err)
	}
	if verbose {
		level = slog.LevelDebug
	}

	a.logger = slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: level}))

	return nil
}

// newService builds a service for one command. The returned close func
// releases the archive when one was opened.
func (a *app) newService(cfg config.Config) (*application.Service, func(), error) {
	opts := []application.ServiceOption{application.WithLogger(a.logger)}
	closeFn := func() {}

	if cfg.Archive.Path != "" {
		archive, err := a.openArchive(cfg.Archive.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: open archive %s: %w", domain.ErrOutputWrite, cfg.Archive.Path, err)
		}
		opts = append(opts, application.WithArchive(archive))
		closeFn = func() {
			if err := archive.Close(); err != nil {
				a.logger.Warn("close archive", "path", cfg.Archive.Path, "error", err)
			}
		}
	}

	return application.NewService(a.sequences, a.reports, a.clock, opts...), closeFn, nil
}
