package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	codeValidation     = "LANGLINK_COMMAND_INVALID"
	codeCanceled       = "LANGLINK_COMMAND_CANCELED"
	codeTimeout        = "LANGLINK_COMMAND_TIMEOUT"
	codeContext        = "LANGLINK_COMMAND_CONTEXT"
	codeExecuteFailure = "LANGLINK_COMMAND_FAILED"
)

// wrap leaves errors that already carry a category untouched.
func wrap(err error, build func(error) error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return build(err)
}

func wrapValidationError(err error) error {
	return wrap(err, func(err error) error {
		return goerrors.Wrap(err, goerrors.CategoryValidation, "langlink command rejected").WithTextCode(codeValidation)
	})
}

func wrapContextError(err error) error {
	return wrap(err, func(err error) error {
		switch {
		case errors.Is(err, context.Canceled):
			return goerrors.Wrap(err, goerrors.CategoryCommand, "langlink command cancelled").WithTextCode(codeCanceled)
		case errors.Is(err, context.DeadlineExceeded):
			return goerrors.Wrap(err, goerrors.CategoryCommand, "langlink command timed out").WithTextCode(codeTimeout)
		default:
			return goerrors.Wrap(err, goerrors.CategoryCommand, "langlink command context error").WithTextCode(codeContext)
		}
	})
}

func wrapExecuteError(err error) error {
	return wrap(err, func(err error) error {
		return goerrors.Wrap(err, goerrors.CategoryCommand, "langlink command failed").WithTextCode(codeExecuteFailure)
	})
}
