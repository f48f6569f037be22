package board

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/ribgsilva/note-widget/business/v1/note"
)

//go:embed templates/page.gohtml
var templates embed.FS

var page = template.Must(template.ParseFS(templates, "templates/page.gohtml"))

// Page is the data of the widget document
type Page struct {
	Title           string
	Priorities      []string
	DefaultPriority string
	// Form holds the values shown in the form, empty after a reset
	Form  note.Values
	Alert string
	Cards []template.HTML
}

// RenderPage writes the whole document: form, alert dialog and the note list
func RenderPage(w io.Writer, p Page) error {
	if err := page.Execute(w, p); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}
