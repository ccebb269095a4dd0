// Package web holds the server-rendered recipe pages.
package web

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var files embed.FS

// Page template names.
const (
	RecipePage = "recipe.html"
	ModifyPage = "modify.html"
)

// Templates parses the embedded pages. Templates are named after their file.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"lines": lines,
	}).ParseFS(files, "templates/*.html")
}

// lines splits multi-line recipe text into its non-blank lines.
func lines(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
