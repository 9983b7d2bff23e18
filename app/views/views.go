package views

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Pages lists every page template. Each is parsed together with layout.html
// and rendered through its "layout" template.
var Pages = []string{
	"posts-list",
	"post-detail",
	"create-post",
	"update-post",
	"404",
	"500",
}

// Load parses all page templates.
func Load() (map[string]*template.Template, error) {
	templates := make(map[string]*template.Template, len(Pages))
	for _, page := range Pages {
		tmpl, err := template.ParseFS(files, "layout.html", page+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		templates[page] = tmpl
	}
	return templates, nil
}

// MustLoad is Load that panics on error.
func MustLoad() map[string]*template.Template {
	templates, err := Load()
	if err != nil {
		panic(err)
	}
	return templates
}
