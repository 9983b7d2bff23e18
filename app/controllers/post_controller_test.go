package controllers

import (
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"quillpress/app/repositories"
	"quillpress/app/repositories/mock"
	"quillpress/app/views"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestPostController(t *testing.T) (*PostController, *mock.PostRepository, *mock.AuthorRepository, *test.Hook) {
	authors := mock.NewAuthorRepository()
	postRepo := mock.NewPostRepository(authors)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	controller := NewPostController(postRepo, views.MustLoad(), logger)
	return controller, postRepo, authors, hook
}

func setupRouter(controller *PostController) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/", controller.Root).Methods("GET")
	router.HandleFunc("/new-post", controller.New).Methods("GET")
	router.HandleFunc("/posts", controller.Create).Methods("POST")
	router.HandleFunc("/posts", controller.Index).Methods("GET")
	router.HandleFunc("/posts/{id}", controller.Show).Methods("GET")
	router.HandleFunc("/posts/{id}/edit", controller.Edit).Methods("GET")
	router.HandleFunc("/posts/{id}/edit", controller.Update).Methods("POST")
	router.HandleFunc("/posts/{id}/delete", controller.Delete).Methods("POST")

	return router
}

func submit(router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func fetch(router http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestPostController(t *testing.T) {
	controller, postRepo, authors, hook := setupTestPostController(t)
	router := setupRouter(controller)

	authorID, err := authors.Create("Jane", "jane@example.com")
	require.NoError(t, err)

	t.Run("create post", func(t *testing.T) {
		w := submit(router, "/posts", url.Values{
			"author":  {authorID.String()},
			"title":   {"Test Post"},
			"summary": {"A summary"},
			"content": {"This is a test post content"},
		})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/posts", w.Header().Get("Location"))

		posts, err := postRepo.ListPostSummaries()
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "Test Post", posts[0].Title)
		assert.Equal(t, "Jane", posts[0].Author.Name)

		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, "post created", hook.LastEntry().Message)
	})

	t.Run("create post with malformed author", func(t *testing.T) {
		w := submit(router, "/posts", url.Values{
			"author":  {"not-an-id"},
			"title":   {"T"},
			"summary": {"S"},
			"content": {"B"},
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("index", func(t *testing.T) {
		w := fetch(router, "/posts")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Test Post")
		assert.Contains(t, w.Body.String(), "A summary")
	})

	t.Run("get post", func(t *testing.T) {
		id, err := postRepo.CreatePost(authorID.String(), "Shown", "Hidden summary", "Visible body")
		require.NoError(t, err)

		w := fetch(router, "/posts/"+id.String())
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Visible body")
		assert.NotContains(t, w.Body.String(), "Hidden summary")
	})

	t.Run("not found page", func(t *testing.T) {
		hook.Reset()
		w := fetch(router, "/posts/bogus")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "We could not find this resource!")

		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
	})

	t.Run("update post", func(t *testing.T) {
		id, err := postRepo.CreatePost(authorID.String(), "Before", "Before summary", "Before body")
		require.NoError(t, err)

		w := submit(router, "/posts/"+id.String()+"/edit", url.Values{
			"title":   {"Updated Title"},
			"summary": {"Updated summary"},
			"content": {"Updated content"},
		})
		assert.Equal(t, http.StatusSeeOther, w.Code)

		edit, err := postRepo.GetPostForEdit(id.String())
		require.NoError(t, err)
		assert.Equal(t, "Updated Title", edit.Title)
		assert.Equal(t, "Updated summary", edit.Summary)
		assert.Equal(t, "Updated content", edit.Body)
	})

	t.Run("edit form", func(t *testing.T) {
		id, err := postRepo.CreatePost(authorID.String(), "Editable", "Editable summary", "Editable body")
		require.NoError(t, err)

		w := fetch(router, "/posts/"+id.String()+"/edit")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `action="/posts/`+id.String()+`/edit"`)
	})

	t.Run("delete post", func(t *testing.T) {
		id, err := postRepo.CreatePost(authorID.String(), "Doomed", "S", "B")
		require.NoError(t, err)

		w := submit(router, "/posts/"+id.String()+"/delete", nil)
		assert.Equal(t, http.StatusSeeOther, w.Code)

		_, err = postRepo.GetPostByID(id.String())
		assert.ErrorIs(t, err, repositories.ErrPostNotFound)
	})

	t.Run("delete unknown post", func(t *testing.T) {
		w := submit(router, "/posts/"+uuid.NewString()+"/delete", nil)
		assert.Equal(t, http.StatusSeeOther, w.Code)
	})
}

func TestPostControllerErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"store unavailable", repositories.ErrStoreUnavailable, http.StatusServiceUnavailable, "temporarily unavailable"},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError, "Something went wrong!"},
		{"wrapped not found", repositories.ErrPostNotFound, http.StatusNotFound, "We could not find this resource!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, postRepo, _, _ := setupTestPostController(t)
			router := setupRouter(controller)
			postRepo.Err = tt.err

			for _, path := range []string{"/posts", "/new-post", "/posts/" + uuid.NewString()} {
				w := fetch(router, path)
				assert.Equal(t, tt.status, w.Code, path)
				assert.Contains(t, w.Body.String(), tt.body, path)
			}
		})
	}
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFor(repositories.ErrInvalidIdentifier))
	assert.Equal(t, http.StatusNotFound, statusFor(repositories.ErrAuthorNotFound))
	assert.Equal(t, http.StatusServiceUnavailable, statusFor(repositories.ErrStoreUnavailable))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("boom")))
}

func TestRenderMissingTemplate(t *testing.T) {
	logger, hook := test.NewNullLogger()
	controller := NewPostController(mock.NewPostRepository(mock.NewAuthorRepository()), map[string]*template.Template{}, logger)

	w := fetch(setupRouter(controller), "/posts")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "template not loaded", hook.LastEntry().Message)
	assert.Equal(t, "posts-list", hook.LastEntry().Data["template"])
}
