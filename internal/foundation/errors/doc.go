// Package errors provides the classified error primitives shared by the core and the CLI host.
//
// A ClassifiedError carries a category, a severity, a retry strategy and structured context.
// Errors are built with the fluent ErrorBuilder and usually wrap a package-level sentinel so
// callers can still match them with errors.Is:
//
//	err := errors.WrapError(ErrDestinationCollision, errors.CategoryValidation, msg).
//		Fatal().
//		WithContext("destination", dest).
//		WithContext("sources", sources).
//		Build()
//
// CLIErrorAdapter maps classified errors to process exit codes and user-facing messages.
package errors
