// Package errs provides standardized error types for the order desk application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value does not fit its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - InvalidStateError: For operations the current state of an aggregate forbids
//   - ConflictError: For writes rejected by a uniqueness rule
//   - UnauthorizedError: For callers that could not be authenticated
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so callers classify with errors.Is
package errs
