package note

import "strings"

// New validates the form values and builds a note from them.
// Title and content are trimmed before sanitizing, priority is taken as is and
// falls back to defaultPriority when empty.
func New(v Values, defaultPriority string) (Note, error) {
	title := Sanitize(strings.TrimSpace(v.Title))
	content := Sanitize(strings.TrimSpace(v.Content))
	if title == "" || content == "" {
		return Note{}, ErrRequiredField
	}

	priority := v.Priority
	if priority == "" {
		priority = defaultPriority
	}

	return Note{
		Title:    title,
		Content:  content,
		Priority: Sanitize(priority),
	}, nil
}
