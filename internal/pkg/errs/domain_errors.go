package errs

import "errors"

// Sentinel errors shared across usecase layers
var (
	// Validation errors. Business-rule violations surfaced to callers as 400.
	ErrDomainValidation = errors.New("domain validation error")

	// Lookup errors
	ErrPosNotFound    = errors.New("pos not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrReviewNotFound = errors.New("review not found")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
