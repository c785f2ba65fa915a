package directory

import "errors"

var (
	// ErrInvalidItem is returned when a write names a non-positive item.
	ErrInvalidItem = errors.New("directory: item id must be positive")
	// ErrDatabaseRequired is returned by bun directories built without a database.
	ErrDatabaseRequired = errors.New("directory: bun directory requires a database")
)
