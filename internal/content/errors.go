package content

import (
	"errors"
	"fmt"
)

var (
	ErrContentTypeRequired = errors.New("content: content type does not exist")
	ErrContentTypeExists   = errors.New("content: content type already registered")
	ErrTitleRequired       = errors.New("content: title or slug is required")
	ErrSlugInvalid         = errors.New("content: slug contains invalid characters")
	ErrSlugExists          = errors.New("content: slug already exists")
	ErrItemIDRequired      = errors.New("content: item id required")
	ErrRepositoryRequired  = errors.New("content: repository is required")
	ErrDatabaseRequired    = errors.New("content: bun repository requires a database")
)

// NotFoundError represents missing records from repository lookups.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
