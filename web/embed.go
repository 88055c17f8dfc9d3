// Package web holds the HTML templates and static assets, embedded into the
// binary.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// FuncMap holds the helpers the templates use.
var FuncMap = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}

// Templates parses every page and partial. Each page is named after its
// file, e.g. "home.html".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap).ParseFS(templateFS, "templates/*.html")
}

// Static returns the assets served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
