package repositories

import (
	"quillpress/app/models"
	"quillpress/app/store"
)

// BadgerCommentRepository implements CommentRepository on the document store
type BadgerCommentRepository struct {
	store *store.Store
}

// NewBadgerCommentRepository creates a new BadgerCommentRepository
func NewBadgerCommentRepository(st *store.Store) *BadgerCommentRepository {
	return &BadgerCommentRepository{store: st}
}

// ListCommentsForPost returns the comments referencing postID in the order
// they were written. A post without comments yields an empty slice.
func (r *BadgerCommentRepository) ListCommentsForPost(postID string) ([]*models.CommentView, error) {
	pid, err := parsePostID(postID)
	if err != nil {
		return nil, err
	}
	return store.FindAll[*models.CommentView](
		r.store.Collection(CommentsCollection),
		store.Filter{"postId": pid.String()},
		store.Include("title", "text"),
	)
}

// CreateComment stores a comment for postID. The post is not looked up.
func (r *BadgerCommentRepository) CreateComment(postID, title, text string) error {
	pid, err := parsePostID(postID)
	if err != nil {
		return err
	}
	_, err = r.store.Collection(CommentsCollection).InsertOne(models.Comment{
		PostID: pid,
		Title:  title,
		Text:   text,
	})
	return err
}
