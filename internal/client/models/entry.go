// Package models defines the diary pages the CLI works with.
package models

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/picdiary/internal/imagex"
)

// Entry is one numbered diary page as returned by the server.
type Entry struct {
	Number    int
	Title     string
	Body      string
	Date      string
	CreatedAt time.Time
	// ImageURI is a data:image/png;base64 URI or empty.
	ImageURI string
}

// HasImage reports whether the page carries an illustration.
func (e *Entry) HasImage() bool {
	return e.ImageURI != ""
}

// Page is the result of navigating to a page number.
type Page struct {
	Entry      *Entry
	Redirected bool
	PostCount  int
}

// FileStem is the base name used for exported files, e.g. "0007-2024-05-11".
func (e *Entry) FileStem() string {
	return fmt.Sprintf("%04d-%s", e.Number, e.Date)
}

// Markdown renders the page. imageFile is embedded as a picture link when
// not empty.
func (e *Entry) Markdown(imageFile string) string {
	var b strings.Builder
	title := e.Title
	if title == "" {
		title = "Untitled"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "_%s, page %d_\n\n", e.Date, e.Number)
	if imageFile != "" {
		fmt.Fprintf(&b, "![%s](%s)\n\n", title, imageFile)
	}
	b.WriteString(strings.TrimSpace(e.Body))
	b.WriteString("\n")
	return b.String()
}

// Export writes the page into dir as <stem>.md plus <stem>.png when the page
// has a picture. It returns the path of the markdown file.
func (e *Entry) Export(dir string) (string, error) {
	stem := e.FileStem()

	imageFile := ""
	if e.HasImage() {
		png, err := imagex.FromDataURI(e.ImageURI)
		if err != nil {
			return "", fmt.Errorf("decode image of page %d: %w", e.Number, err)
		}
		imageFile = stem + ".png"
		if err := os.WriteFile(filepath.Join(dir, imageFile), png, 0o600); err != nil {
			return "", fmt.Errorf("write image: %w", err)
		}
	}

	mdPath := filepath.Join(dir, stem+".md")
	if err := os.WriteFile(mdPath, []byte(e.Markdown(imageFile)), 0o600); err != nil {
		return "", fmt.Errorf("write page: %w", err)
	}
	return mdPath, nil
}
