package repositories

import (
	"quillpress/app/models"
	"quillpress/app/store"
)

// BadgerAuthorRepository implements AuthorRepository on the document store
type BadgerAuthorRepository struct {
	store *store.Store
}

// NewBadgerAuthorRepository creates a new BadgerAuthorRepository
func NewBadgerAuthorRepository(st *store.Store) *BadgerAuthorRepository {
	return &BadgerAuthorRepository{store: st}
}

// Create stores a new author
func (r *BadgerAuthorRepository) Create(name, email string) (models.AuthorID, error) {
	id, err := r.store.Collection(AuthorsCollection).InsertOne(models.Author{
		Name:  name,
		Email: email,
	})
	if err != nil {
		return models.AuthorID{}, err
	}
	return models.AuthorID(id), nil
}

// List returns every author in insertion order
func (r *BadgerAuthorRepository) List() ([]*models.Author, error) {
	return listAuthors(r.store)
}

// Update changes an author's name and email. Posts keep the snapshot taken
// when they were written.
func (r *BadgerAuthorRepository) Update(id, name, email string) error {
	aid, err := parseAuthorID(id)
	if err != nil {
		return err
	}
	result, err := r.store.Collection(AuthorsCollection).UpdateOne(store.ByID(aid), map[string]any{
		"name":  name,
		"email": email,
	})
	if err != nil {
		return err
	}
	if result.Matched == 0 {
		return ErrAuthorNotFound
	}
	return nil
}

func listAuthors(st *store.Store) ([]*models.Author, error) {
	return store.FindAll[*models.Author](st.Collection(AuthorsCollection), store.Filter{}, store.Projection{})
}
