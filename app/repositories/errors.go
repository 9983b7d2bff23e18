package repositories

import (
	"errors"
	"fmt"

	"quillpress/app/models"
	"quillpress/app/store"
)

var (
	// ErrStoreUnavailable is returned when the store has not been connected.
	ErrStoreUnavailable = store.ErrStoreUnavailable

	// ErrInvalidIdentifier is returned when an identifier string cannot be
	// parsed. Callers treat it exactly like a missing record.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	ErrPostNotFound   = errors.New("post not found")
	ErrAuthorNotFound = errors.New("author not found")
)

// IsNotFound reports whether err means the requested record does not exist,
// including identifiers that could never name a record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrInvalidIdentifier) ||
		errors.Is(err, ErrPostNotFound) ||
		errors.Is(err, ErrAuthorNotFound)
}

func parsePostID(s string) (models.PostID, error) {
	id, err := models.ParsePostID(s)
	if err != nil {
		return id, fmt.Errorf("%w: post %q", ErrInvalidIdentifier, s)
	}
	return id, nil
}

func parseAuthorID(s string) (models.AuthorID, error) {
	id, err := models.ParseAuthorID(s)
	if err != nil {
		return id, fmt.Errorf("%w: author %q", ErrInvalidIdentifier, s)
	}
	return id, nil
}
