package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/seqlcs/internal/adapters/report"
	"github.com/bnema/seqlcs/internal/application"
	"github.com/bnema/seqlcs/internal/domain"
	"github.com/spf13/cobra"
)

// Process exit statuses, one per failure class.
const (
	ExitSuccess          = 0
	ExitFailure          = 1
	ExitUsage            = 2
	ExitInputUnreadable  = 3
	ExitMalformedInput   = 4
	ExitOutputWriteError = 5
)

// ExitError carries an explicit exit status through cobra.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func usageError(err error) error {
	if err == nil {
		return nil
	}

	return &ExitError{Code: ExitUsage, Err: err}
}

func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError(fmt.Errorf("%w\nusage: %s", err, cmd.UseLine()))
		}
		return nil
	}
}

// cobra reports these without a typed error.
var usageMessagePrefixes = []string{
	"unknown command",
	"unknown flag",
	"unknown shorthand flag",
	"required flag",
	"invalid argument",
}

// ExitCode maps an error returned by Execute to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, domain.ErrMalformedLine):
		return ExitMalformedInput
	case errors.Is(err, domain.ErrInputUnreadable):
		return ExitInputUnreadable
	case errors.Is(err, domain.ErrOutputWrite):
		return ExitOutputWriteError
	case errors.Is(err, report.ErrUnknownFormat),
		errors.Is(err, application.ErrInvalidGenerateOptions),
		errors.Is(err, application.ErrArchiveNotConfigured),
		errors.Is(err, domain.ErrRunNotFound):
		return ExitUsage
	}

	message := err.Error()
	for _, prefix := range usageMessagePrefixes {
		if strings.HasPrefix(message, prefix) {
			return ExitUsage
		}
	}

	return ExitFailure
}
