package routes

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"quillpress/app/models"
	"quillpress/app/repositories"
	"quillpress/app/store"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *store.Store {
	st, err := store.Open(store.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func setupTestRouter(t *testing.T, st *store.Store) *mux.Router {
	logger, _ := test.NewNullLogger()
	router, err := SetupMVCRoutes(st, Options{Logger: logger, Location: time.UTC})
	require.NoError(t, err)
	return router
}

func createTestAuthor(t *testing.T, st *store.Store, name string) models.AuthorID {
	id, err := repositories.NewBadgerAuthorRepository(st).Create(name, strings.ToLower(name)+"@example.com")
	require.NoError(t, err)
	return id
}

func createTestPost(t *testing.T, st *store.Store, author models.AuthorID, title string) models.PostID {
	logger, _ := test.NewNullLogger()
	id, err := repositories.NewBadgerPostRepository(st, logger).
		CreatePost(author.String(), title, title+" summary", title+" body")
	require.NoError(t, err)
	return id
}

func postForm(router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
	return w
}
