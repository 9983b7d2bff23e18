package mock

import (
	"sync"
	"time"

	"quillpress/app/models"
	"quillpress/app/repositories"

	"github.com/google/uuid"
)

// PostRepository is an in-memory repositories.PostRepository. Authors are
// shared with an AuthorRepository so created posts can snapshot them.
type PostRepository struct {
	authors *AuthorRepository
	posts   map[models.PostID]*models.Post
	order   []models.PostID
	mutex   sync.RWMutex

	// Err, when set, is returned by every operation.
	Err error
}

type CommentRepository struct {
	comments []*models.Comment
	mutex    sync.RWMutex

	Err error
}

type AuthorRepository struct {
	authors map[models.AuthorID]*models.Author
	order   []models.AuthorID
	mutex   sync.RWMutex
}

func NewPostRepository(authors *AuthorRepository) *PostRepository {
	return &PostRepository{
		authors: authors,
		posts:   make(map[models.PostID]*models.Post),
	}
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{}
}

func NewAuthorRepository() *AuthorRepository {
	return &AuthorRepository{
		authors: make(map[models.AuthorID]*models.Author),
	}
}

// PostRepository implementation
func (m *PostRepository) ListAuthors() ([]*models.Author, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.authors.List()
}

func (m *PostRepository) ListPostSummaries() ([]*models.PostSummaryView, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}

	summaries := []*models.PostSummaryView{}
	for _, id := range m.order {
		post := m.posts[id]
		summary := &models.PostSummaryView{ID: post.ID, Title: post.Title, Summary: post.Summary}
		summary.Author.Name = post.Author.Name
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (m *PostRepository) CreatePost(authorID, title, summary, body string) (models.PostID, error) {
	if m.Err != nil {
		return models.PostID{}, m.Err
	}
	aid, err := models.ParseAuthorID(authorID)
	if err != nil {
		return models.PostID{}, repositories.ErrInvalidIdentifier
	}
	author, ok := m.authors.get(aid)
	if !ok {
		return models.PostID{}, repositories.ErrAuthorNotFound
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	id := models.PostID(uuid.New())
	m.posts[id] = &models.Post{
		ID:      id,
		Title:   title,
		Summary: summary,
		Body:    body,
		Date:    time.Now().UTC(),
		Author:  author.Snapshot(),
	}
	m.order = append(m.order, id)
	return id, nil
}

func (m *PostRepository) GetPostByID(id string) (*models.PostDetailView, error) {
	post, err := m.find(id)
	if err != nil {
		return nil, err
	}
	view := &models.PostDetailView{ID: post.ID, Title: post.Title, Body: post.Body, Author: post.Author}
	view.SetDate(post.Date, time.UTC)
	return view, nil
}

func (m *PostRepository) GetPostForEdit(id string) (*models.PostEditView, error) {
	post, err := m.find(id)
	if err != nil {
		return nil, err
	}
	return &models.PostEditView{ID: post.ID, Title: post.Title, Summary: post.Summary, Body: post.Body}, nil
}

func (m *PostRepository) UpdatePost(id, title, summary, body string) error {
	if m.Err != nil {
		return m.Err
	}
	pid, err := models.ParsePostID(id)
	if err != nil {
		return repositories.ErrInvalidIdentifier
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	if post, exists := m.posts[pid]; exists {
		post.Title = title
		post.Summary = summary
		post.Body = body
	}
	return nil
}

func (m *PostRepository) DeletePost(id string) error {
	if m.Err != nil {
		return m.Err
	}
	pid, err := models.ParsePostID(id)
	if err != nil {
		return repositories.ErrInvalidIdentifier
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[pid]; !exists {
		return nil
	}
	delete(m.posts, pid)
	for i, existing := range m.order {
		if existing == pid {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *PostRepository) find(id string) (*models.Post, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	pid, err := models.ParsePostID(id)
	if err != nil {
		return nil, repositories.ErrInvalidIdentifier
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[pid]
	if !exists {
		return nil, repositories.ErrPostNotFound
	}
	copied := *post
	return &copied, nil
}

// CommentRepository implementation
func (m *CommentRepository) ListCommentsForPost(postID string) ([]*models.CommentView, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	pid, err := models.ParsePostID(postID)
	if err != nil {
		return nil, repositories.ErrInvalidIdentifier
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()

	views := []*models.CommentView{}
	for _, comment := range m.comments {
		if comment.PostID == pid {
			views = append(views, &models.CommentView{Title: comment.Title, Text: comment.Text})
		}
	}
	return views, nil
}

func (m *CommentRepository) CreateComment(postID, title, text string) error {
	if m.Err != nil {
		return m.Err
	}
	pid, err := models.ParsePostID(postID)
	if err != nil {
		return repositories.ErrInvalidIdentifier
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.comments = append(m.comments, &models.Comment{
		ID:     models.CommentID(uuid.New()),
		PostID: pid,
		Title:  title,
		Text:   text,
	})
	return nil
}

// AuthorRepository implementation
func (m *AuthorRepository) Create(name, email string) (models.AuthorID, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	id := models.AuthorID(uuid.New())
	m.authors[id] = &models.Author{ID: id, Name: name, Email: email}
	m.order = append(m.order, id)
	return id, nil
}

func (m *AuthorRepository) List() ([]*models.Author, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	authors := []*models.Author{}
	for _, id := range m.order {
		copied := *m.authors[id]
		authors = append(authors, &copied)
	}
	return authors, nil
}

func (m *AuthorRepository) Update(id, name, email string) error {
	aid, err := models.ParseAuthorID(id)
	if err != nil {
		return repositories.ErrInvalidIdentifier
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	author, exists := m.authors[aid]
	if !exists {
		return repositories.ErrAuthorNotFound
	}
	author.Name = name
	author.Email = email
	return nil
}

func (m *AuthorRepository) get(id models.AuthorID) (models.Author, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	author, exists := m.authors[id]
	if !exists {
		return models.Author{}, false
	}
	return *author, true
}
