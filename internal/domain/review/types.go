package review

import "errors"

var (
	ErrEmptyContent   = errors.New("review content cannot be empty")
	ErrContentTooLong = errors.New("review content exceeds maximum length")
)
