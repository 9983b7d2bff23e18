package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"quillpress/app/repositories"

	"github.com/sirupsen/logrus"
)

// base holds what every controller needs to answer a request.
type base struct {
	templates map[string]*template.Template
	logger    logrus.FieldLogger
}

func newBase(templates map[string]*template.Template, logger logrus.FieldLogger) base {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return base{templates: templates, logger: logger}
}

// statusFor maps repository errors onto HTTP status codes. Malformed
// identifiers are reported exactly like missing records.
func statusFor(err error) int {
	switch {
	case repositories.IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, repositories.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// render executes a page into a buffer first so a failing template never
// leaves a half written response.
func (b *base) render(w http.ResponseWriter, r *http.Request, page string, status int, data any) {
	tmpl, ok := b.templates[page]
	if !ok {
		b.logger.WithField("template", page).Error("template not loaded")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		b.logger.WithError(err).WithField("template", page).Error("template error")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// renderError answers a page request that failed with err.
func (b *base) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	entry := b.logger.WithError(err).WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"status": status,
	})

	switch status {
	case http.StatusNotFound:
		entry.Debug("resource not found")
		b.render(w, r, "404", status, nil)
	case http.StatusServiceUnavailable:
		entry.Error("store unavailable")
		b.render(w, r, "500", status, "The blog is temporarily unavailable. Please try again later.")
	default:
		entry.Error("request failed")
		b.render(w, r, "500", status, nil)
	}
}

func (b *base) sendJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		b.logger.WithError(err).Error("failed to encode response")
	}
}

func (b *base) sendError(w http.ResponseWriter, r *http.Request, message string, status int) {
	if wantsJSON(r) {
		b.sendJSON(w, status, map[string]string{"error": message})
		return
	}
	http.Error(w, message, status)
}

// sendRepositoryError answers an API request that failed with err.
func (b *base) sendRepositoryError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	status := statusFor(err)
	switch status {
	case http.StatusNotFound:
		b.sendError(w, r, notFound, status)
	case http.StatusServiceUnavailable:
		b.logger.WithError(err).WithField("path", r.URL.Path).Error("store unavailable")
		b.sendError(w, r, "Service unavailable", status)
	default:
		b.logger.WithError(err).WithField("path", r.URL.Path).Error("request failed")
		b.sendError(w, r, "Internal server error", status)
	}
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json") || isJSONBody(r)
}

func isJSONBody(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}
