package note

import (
	"fmt"
	"html/template"
	"strings"
)

const cardFormat = `<div class="note">
    <h3>%s</h3>
    <p>%s</p>
    <span class="priority-label %s">%s</span>
</div>`

// Class is the style class of the priority label
func (n Note) Class() string {
	return strings.ToLower(n.Priority)
}

// Card renders the note block. Fields are already sanitized, so they go in verbatim.
func Card(n Note) template.HTML {
	return template.HTML(fmt.Sprintf(cardFormat, n.Title, n.Content, n.Class(), n.Priority))
}
