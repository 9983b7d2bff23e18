package repositories

import "quillpress/app/models"

const (
	PostsCollection    = "posts"
	AuthorsCollection  = "authors"
	CommentsCollection = "comments"
)

// PostRepository defines the interface for post data access. Identifiers are
// accepted in their textual form and parsed by the repository.
type PostRepository interface {
	ListAuthors() ([]*models.Author, error)
	ListPostSummaries() ([]*models.PostSummaryView, error)
	CreatePost(authorID, title, summary, body string) (models.PostID, error)
	GetPostByID(id string) (*models.PostDetailView, error)
	GetPostForEdit(id string) (*models.PostEditView, error)
	UpdatePost(id, title, summary, body string) error
	DeletePost(id string) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	ListCommentsForPost(postID string) ([]*models.CommentView, error)
	CreateComment(postID, title, text string) error
}

// AuthorRepository manages the author records posts are attributed to.
type AuthorRepository interface {
	Create(name, email string) (models.AuthorID, error)
	List() ([]*models.Author, error)
	Update(id, name, email string) error
}
