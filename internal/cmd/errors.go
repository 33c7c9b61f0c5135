package cmd

import (
	"errors"

	"github.com/opmodel/create-vue/internal/cmdutil"
	oerrors "github.com/opmodel/create-vue/internal/errors"
)

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, oerrors.ErrValidation):
		return ExitValidationError
	case errors.Is(err, oerrors.ErrPrecondition):
		return ExitPreconditionError
	case errors.Is(err, oerrors.ErrCancelled):
		return ExitCancelled
	case errors.Is(err, oerrors.ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}

// NewExitError wraps err with the exit code derived from it. A nil err
// stays nil.
func NewExitError(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return &oerrors.ExitError{Code: ExitCodeFromError(err), Err: err}
}

// reportError prints err once through the logger and returns it as an
// ExitError marked printed.
func reportError(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *oerrors.ExitError
	if !errors.As(NewExitError(err), &exitErr) {
		return err
	}
	if !exitErr.Printed {
		cmdutil.PrintError(exitErr.Err)
		exitErr.Printed = true
	}
	return exitErr
}
