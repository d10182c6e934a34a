// Package web holds the HTML served by the front end.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses the embedded page templates. The form page is named
// "index.html".
func Templates() *template.Template {
	return template.Must(template.ParseFS(files, "templates/*.html"))
}
