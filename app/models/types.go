package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	return v
}

// Author writes posts. Authors are managed outside the blog itself and are
// only ever read when a post is created.
type Author struct {
	ID    AuthorID `json:"_id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
}

// AuthorSnapshot is the copy of an author embedded in a post at creation time.
type AuthorSnapshot struct {
	ID    AuthorID `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
}

// Post is a stored blog post.
type Post struct {
	ID      PostID         `json:"_id"`
	Title   string         `json:"title"`
	Summary string         `json:"summary"`
	Body    string         `json:"body"`
	Date    time.Time      `json:"date"`
	Author  AuthorSnapshot `json:"author"`
}

// Comment is a reader comment. PostID is a plain reference; nothing keeps it
// pointing at an existing post.
type Comment struct {
	ID     CommentID `json:"_id"`
	PostID PostID    `json:"postId"`
	Title  string    `json:"title"`
	Text   string    `json:"text"`
}

// Snapshot captures the author fields a post embeds.
func (a *Author) Snapshot() AuthorSnapshot {
	return AuthorSnapshot{ID: a.ID, Name: a.Name, Email: a.Email}
}
