package floor

import "errors"

var (
	ErrTableNotFound     = errors.New("table_not_found")
	ErrGroupNotFound     = errors.New("group_not_found")
	ErrDuplicateTable    = errors.New("duplicate_table")
	ErrInvalidTableID    = errors.New("invalid_table_id")
	ErrGroupTooLarge     = errors.New("group_too_large")
	ErrInsufficientSpace = errors.New("insufficient_space")
	ErrNoTableAvailable  = errors.New("no_table_available")
)
