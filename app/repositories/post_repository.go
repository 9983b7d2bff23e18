package repositories

import (
	"errors"
	"time"

	"quillpress/app/models"
	"quillpress/app/store"

	"github.com/sirupsen/logrus"
)

// BadgerPostRepository implements PostRepository on the document store
type BadgerPostRepository struct {
	store    *store.Store
	logger   logrus.FieldLogger
	location *time.Location
	now      func() time.Time
}

// NewBadgerPostRepository creates a new BadgerPostRepository. A nil logger
// falls back to the logrus standard logger.
func NewBadgerPostRepository(st *store.Store, logger logrus.FieldLogger) *BadgerPostRepository {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &BadgerPostRepository{
		store:    st,
		logger:   logger,
		location: time.Local,
		now:      time.Now,
	}
}

// WithLocation sets the time zone used for human readable dates.
func (r *BadgerPostRepository) WithLocation(loc *time.Location) *BadgerPostRepository {
	if loc != nil {
		r.location = loc
	}
	return r
}

// WithClock replaces the source of creation timestamps.
func (r *BadgerPostRepository) WithClock(now func() time.Time) *BadgerPostRepository {
	if now != nil {
		r.now = now
	}
	return r
}

func (r *BadgerPostRepository) posts() *store.Collection {
	return r.store.Collection(PostsCollection)
}

// ListAuthors returns every author in insertion order
func (r *BadgerPostRepository) ListAuthors() ([]*models.Author, error) {
	return listAuthors(r.store)
}

// ListPostSummaries returns every post projected to its listing fields
func (r *BadgerPostRepository) ListPostSummaries() ([]*models.PostSummaryView, error) {
	return store.FindAll[*models.PostSummaryView](
		r.posts(),
		store.Filter{},
		store.Include("title", "summary", "author.name"),
	)
}

// CreatePost stores a new post attributed to the given author. The author's
// current name and email are copied into the post.
func (r *BadgerPostRepository) CreatePost(authorID, title, summary, body string) (models.PostID, error) {
	aid, err := parseAuthorID(authorID)
	if err != nil {
		return models.PostID{}, err
	}

	var author models.Author
	err = r.store.Collection(AuthorsCollection).FindOne(store.ByID(aid), store.Projection{}, &author)
	if errors.Is(err, store.ErrNoDocuments) {
		return models.PostID{}, ErrAuthorNotFound
	}
	if err != nil {
		return models.PostID{}, err
	}

	post := models.Post{
		Title:   title,
		Summary: summary,
		Body:    body,
		Date:    r.now().UTC().Truncate(time.Millisecond),
		Author:  author.Snapshot(),
	}
	id, err := r.posts().InsertOne(post)
	if err != nil {
		return models.PostID{}, err
	}
	return models.PostID(id), nil
}

// GetPostByID returns the detail view of a post
func (r *BadgerPostRepository) GetPostByID(id string) (*models.PostDetailView, error) {
	pid, err := parsePostID(id)
	if err != nil {
		return nil, err
	}

	var post models.Post
	err = r.posts().FindOne(store.ByID(pid), store.Exclude("summary"), &post)
	if errors.Is(err, store.ErrNoDocuments) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}

	view := &models.PostDetailView{
		ID:     post.ID,
		Title:  post.Title,
		Body:   post.Body,
		Author: post.Author,
	}
	view.SetDate(post.Date, r.location)
	return view, nil
}

// GetPostForEdit returns the editable fields of a post
func (r *BadgerPostRepository) GetPostForEdit(id string) (*models.PostEditView, error) {
	pid, err := parsePostID(id)
	if err != nil {
		return nil, err
	}

	var view models.PostEditView
	err = r.posts().FindOne(store.ByID(pid), store.Include("title", "summary", "body"), &view)
	if errors.Is(err, store.ErrNoDocuments) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// UpdatePost overwrites the title, summary and body of a post. Updating a
// post that does not exist succeeds without effect.
func (r *BadgerPostRepository) UpdatePost(id, title, summary, body string) error {
	pid, err := parsePostID(id)
	if err != nil {
		return err
	}

	result, err := r.posts().UpdateOne(store.ByID(pid), map[string]any{
		"title":   title,
		"summary": summary,
		"body":    body,
	})
	if err != nil {
		return err
	}
	if result.Matched == 0 {
		r.logger.WithField("post_id", pid.String()).Warn("update matched no post")
	}
	return nil
}

// DeletePost removes a post. Its comments are left in place. Deleting a
// post that does not exist succeeds without effect.
func (r *BadgerPostRepository) DeletePost(id string) error {
	pid, err := parsePostID(id)
	if err != nil {
		return err
	}

	result, err := r.posts().DeleteOne(store.ByID(pid))
	if err != nil {
		return err
	}
	if result.Deleted == 0 {
		r.logger.WithField("post_id", pid.String()).Warn("delete matched no post")
	}
	return nil
}
