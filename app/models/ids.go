package models

import (
	"github.com/google/uuid"
)

// PostID identifies a stored post.
type PostID uuid.UUID

// AuthorID identifies a stored author.
type AuthorID uuid.UUID

// CommentID identifies a stored comment.
type CommentID uuid.UUID

// ParsePostID parses the textual form of a post identifier.
func ParsePostID(s string) (PostID, error) {
	id, err := uuid.Parse(s)
	return PostID(id), err
}

// ParseAuthorID parses the textual form of an author identifier.
func ParseAuthorID(s string) (AuthorID, error) {
	id, err := uuid.Parse(s)
	return AuthorID(id), err
}

// ParseCommentID parses the textual form of a comment identifier.
func ParseCommentID(s string) (CommentID, error) {
	id, err := uuid.Parse(s)
	return CommentID(id), err
}

func (id PostID) String() string    { return uuid.UUID(id).String() }
func (id AuthorID) String() string  { return uuid.UUID(id).String() }
func (id CommentID) String() string { return uuid.UUID(id).String() }

func (id PostID) MarshalText() ([]byte, error)    { return uuid.UUID(id).MarshalText() }
func (id AuthorID) MarshalText() ([]byte, error)  { return uuid.UUID(id).MarshalText() }
func (id CommentID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *PostID) UnmarshalText(b []byte) error    { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *AuthorID) UnmarshalText(b []byte) error  { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *CommentID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }
