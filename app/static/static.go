package static

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed scripts styles
var files embed.FS

// FS exposes the bundled browser assets.
func FS() fs.FS {
	return files
}

// Handler serves the bundled assets. Mount it behind http.StripPrefix.
func Handler() http.Handler {
	return http.FileServer(http.FS(files))
}
