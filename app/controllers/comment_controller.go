package controllers

import (
	"encoding/json"
	"net/http"

	"quillpress/app/models"
	"quillpress/app/repositories"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// maxCommentBytes caps a JSON comment body.
const maxCommentBytes = 16 << 10

// CommentController serves the JSON comment API of a post
type CommentController struct {
	base
	comments repositories.CommentRepository
}

// NewCommentController creates a new CommentController
func NewCommentController(comments repositories.CommentRepository, logger logrus.FieldLogger) *CommentController {
	return &CommentController{
		base:     newBase(nil, logger),
		comments: comments,
	}
}

// Index returns the comments of a post as a JSON array
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	comments, err := cc.comments.ListCommentsForPost(mux.Vars(r)["id"])
	if err != nil {
		cc.sendRepositoryError(w, jsonRequest(r), err, "Post not found")
		return
	}
	cc.sendJSON(w, http.StatusOK, comments)
}

// Create stores a comment. JSON requests get 201 with the location of the
// comment list; form posts are redirected back to the post.
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	var form models.CommentForm
	if isJSONBody(r) {
		body := http.MaxBytesReader(w, r.Body, maxCommentBytes)
		if err := json.NewDecoder(body).Decode(&form); err != nil {
			cc.sendError(w, r, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			cc.sendError(w, r, "Failed to parse form", http.StatusBadRequest)
			return
		}
		form.Title = r.PostFormValue("title")
		form.Text = r.PostFormValue("text")
	}

	if err := form.Validate(); err != nil {
		if wantsJSON(r) {
			cc.sendJSON(w, http.StatusBadRequest, map[string]any{
				"error":   "Invalid comment",
				"details": models.ValidationDetails(err),
			})
			return
		}
		cc.sendError(w, r, "Invalid comment", http.StatusBadRequest)
		return
	}

	if err := cc.comments.CreateComment(postID, form.Title, form.Text); err != nil {
		cc.sendRepositoryError(w, r, err, "Post not found")
		return
	}

	if wantsJSON(r) {
		location := "/posts/" + postID + "/comments"
		w.Header().Set("Location", location)
		cc.sendJSON(w, http.StatusCreated, map[string]string{"location": location})
		return
	}
	http.Redirect(w, r, "/posts/"+postID, http.StatusSeeOther)
}

// jsonRequest marks r as an API request so errors are answered in JSON.
func jsonRequest(r *http.Request) *http.Request {
	if wantsJSON(r) {
		return r
	}
	r = r.Clone(r.Context())
	r.Header.Set("Accept", "application/json")
	return r
}
