package routes

import (
	"html/template"
	"net/http"
	"time"

	"quillpress/app/controllers"
	"quillpress/app/middleware"
	"quillpress/app/repositories"
	"quillpress/app/static"
	"quillpress/app/store"
	"quillpress/app/views"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Options carries the collaborators the router is built from. Zero values
// fall back to the embedded templates, the logrus standard logger, local
// time and a fresh metrics registry.
type Options struct {
	Logger    logrus.FieldLogger
	Location  *time.Location
	Templates map[string]*template.Template
	Registry  *prometheus.Registry
}

// SetupMVCRoutes builds the blog router on top of a connected store.
func SetupMVCRoutes(st *store.Store, opts Options) (*mux.Router, error) {
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.Templates == nil {
		templates, err := views.Load()
		if err != nil {
			return nil, err
		}
		opts.Templates = templates
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}

	postRepo := repositories.NewBadgerPostRepository(st, opts.Logger).WithLocation(opts.Location)
	commentRepo := repositories.NewBadgerCommentRepository(st)

	postController := controllers.NewPostController(postRepo, opts.Templates, opts.Logger)
	commentController := controllers.NewCommentController(commentRepo, opts.Logger)
	metrics := middleware.NewMetrics(opts.Registry)

	router := mux.NewRouter()
	router.Use(middleware.Logger(opts.Logger))
	router.Use(middleware.Recoverer(opts.Logger))
	router.Use(metrics.Middleware())

	RegisterRoutes(router, postController, commentController)
	router.Handle("/metrics", metrics.Handler()).Methods("GET")
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", static.Handler()))
	router.NotFoundHandler = http.HandlerFunc(postController.NotFound)

	return router, nil
}

// RegisterRoutes mounts the post pages and the comment API on router.
func RegisterRoutes(router *mux.Router, pc *controllers.PostController, cc *controllers.CommentController) {
	router.HandleFunc("/", pc.Root).Methods("GET")
	router.HandleFunc("/new-post", pc.New).Methods("GET")

	// Registered on the root router so a method mismatch answers 405 instead of
	// falling through a subrouter to the not-found page.
	router.HandleFunc("/posts", pc.Index).Methods("GET")
	router.HandleFunc("/posts", pc.Create).Methods("POST")
	router.HandleFunc("/posts/{id}", pc.Show).Methods("GET")
	router.HandleFunc("/posts/{id}/edit", pc.Edit).Methods("GET")
	router.HandleFunc("/posts/{id}/edit", pc.Update).Methods("POST")
	router.HandleFunc("/posts/{id}/delete", pc.Delete).Methods("POST")

	router.HandleFunc("/posts/{id}/comments", cc.Index).Methods("GET")
	router.HandleFunc("/posts/{id}/comments", cc.Create).Methods("POST")
}

// NewServer wraps router in an http.Server with conservative timeouts.
func NewServer(addr string, router http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
