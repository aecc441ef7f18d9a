package posters

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
)

//go:embed templates/posters.html.tmpl
var templates embed.FS

var pageTemplate = template.Must(template.ParseFS(templates, "templates/posters.html.tmpl"))

// Page holds everything the posters template needs. Sessions render in
// slice order; the first one starts out as the active mobile tab.
type Page struct {
	EventName    string
	EventDate    string
	Venue        string
	CanonicalURL string
	Sessions     []Session
}

// Render writes the posters page as HTML. Titles and author lists are
// escaped by the template engine, so raw CSV values are safe to pass in.
func Render(w io.Writer, page *Page) error {
	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("rendering posters page: %w", err)
	}
	return nil
}

// WriteFile renders the posters page to path, creating parent directories
// as needed.
func WriteFile(path string, page *Page) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Render(f, page); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
