// Package errs provides standardized error types for the delivery tracking service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes one error type per failure kind:
//   - ObjectNotFoundError: a referenced user, recipient or delivery does not exist
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - NotAuthorizedError: the caller's role or identity does not satisfy an operation's gate
//   - ConflictError: a uniqueness or referential-integrity violation
//   - InvalidStateError: a delivery transition attempted from the wrong status
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
//
// Transport adapters classify errors with errors.Is against the sentinels and never
// inspect messages.
package errs
