package controllers

import (
	"html/template"
	"net/http"

	"quillpress/app/models"
	"quillpress/app/repositories"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	base
	posts repositories.PostRepository
}

// NewPostController creates a new PostController
func NewPostController(posts repositories.PostRepository, templates map[string]*template.Template, logger logrus.FieldLogger) *PostController {
	return &PostController{
		base:  newBase(templates, logger),
		posts: posts,
	}
}

type postFormPage struct {
	Authors []*models.Author
	Form    models.PostForm
	Errors  map[string]string
}

type postEditPage struct {
	Post   *models.PostEditView
	Errors map[string]string
}

// Root sends visitors to the post list
func (pc *PostController) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/posts", http.StatusFound)
}

// Index lists post summaries
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.posts.ListPostSummaries()
	if err != nil {
		pc.renderError(w, r, err)
		return
	}
	pc.render(w, r, "posts-list", http.StatusOK, struct {
		Posts []*models.PostSummaryView
	}{Posts: posts})
}

// New displays the form for creating a new post
func (pc *PostController) New(w http.ResponseWriter, r *http.Request) {
	authors, err := pc.posts.ListAuthors()
	if err != nil {
		pc.renderError(w, r, err)
		return
	}
	pc.render(w, r, "create-post", http.StatusOK, postFormPage{Authors: authors})
}

// Create handles the create post form
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		pc.sendError(w, r, "Failed to parse form", http.StatusBadRequest)
		return
	}
	form := models.PostForm{
		Author:  r.PostFormValue("author"),
		Title:   r.PostFormValue("title"),
		Summary: r.PostFormValue("summary"),
		Content: r.PostFormValue("content"),
	}

	if err := form.ValidateNew(); err != nil {
		authors, lerr := pc.posts.ListAuthors()
		if lerr != nil {
			pc.renderError(w, r, lerr)
			return
		}
		pc.render(w, r, "create-post", http.StatusBadRequest, postFormPage{
			Authors: authors,
			Form:    form,
			Errors:  models.ValidationDetails(err),
		})
		return
	}

	id, err := pc.posts.CreatePost(form.Author, form.Title, form.Summary, form.Content)
	if err != nil {
		pc.renderError(w, r, err)
		return
	}
	pc.logger.WithField("post_id", id.String()).Info("post created")
	http.Redirect(w, r, "/posts", http.StatusSeeOther)
}

// Show displays a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	post, err := pc.posts.GetPostByID(mux.Vars(r)["id"])
	if err != nil {
		pc.renderError(w, r, err)
		return
	}
	pc.render(w, r, "post-detail", http.StatusOK, struct {
		Post *models.PostDetailView
	}{Post: post})
}

// Edit displays the edit form of a post
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	post, err := pc.posts.GetPostForEdit(mux.Vars(r)["id"])
	if err != nil {
		pc.renderError(w, r, err)
		return
	}
	pc.render(w, r, "update-post", http.StatusOK, postEditPage{Post: post})
}

// Update handles the edit post form
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	pid, err := models.ParsePostID(id)
	if err != nil {
		pc.renderError(w, r, repositories.ErrInvalidIdentifier)
		return
	}

	if err := r.ParseForm(); err != nil {
		pc.sendError(w, r, "Failed to parse form", http.StatusBadRequest)
		return
	}
	form := models.PostForm{
		Title:   r.PostFormValue("title"),
		Summary: r.PostFormValue("summary"),
		Content: r.PostFormValue("content"),
	}

	if err := form.Validate(); err != nil {
		pc.render(w, r, "update-post", http.StatusBadRequest, postEditPage{
			Post: &models.PostEditView{
				ID:      pid,
				Title:   form.Title,
				Summary: form.Summary,
				Body:    form.Content,
			},
			Errors: models.ValidationDetails(err),
		})
		return
	}

	if err := pc.posts.UpdatePost(id, form.Title, form.Summary, form.Content); err != nil {
		pc.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/posts", http.StatusSeeOther)
}

// Delete removes a post
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := pc.posts.DeletePost(id); err != nil {
		pc.renderError(w, r, err)
		return
	}
	pc.logger.WithField("post_id", id).Info("post deleted")
	http.Redirect(w, r, "/posts", http.StatusSeeOther)
}

// NotFound renders the 404 page for unmatched paths
func (pc *PostController) NotFound(w http.ResponseWriter, r *http.Request) {
	pc.render(w, r, "404", http.StatusNotFound, nil)
}
