package pos

import "errors"

var (
	ErrEmptyName         = errors.New("pos name cannot be empty")
	ErrNameTooLong       = errors.New("pos name exceeds maximum length")
	ErrInvalidKind       = errors.New("invalid pos kind")
	ErrEmptyCampus       = errors.New("campus cannot be empty")
	ErrInvalidAddress    = errors.New("street and house number are required")
	ErrInvalidPostalCode = errors.New("postal code must be five digits")
)
