package note

import (
	"encoding/json"
	"errors"
)

// RequiredMessage is shown to the user when a submission is rejected
const RequiredMessage = "Title and content are required."

// ErrRequiredField is returned when title or content is empty after trimming
var ErrRequiredField = errors.New("title and content are required")

// Values are the raw field values of the note form
type Values struct {
	Title    string `json:"title" yaml:"title" example:"Buy milk"`
	Content  string `json:"content" yaml:"content" example:"2% fat"`
	Priority string `json:"priority" yaml:"priority" example:"Medium"`
}

// Note holds sanitized markup, safe to embed as html
type Note struct {
	Title    string `json:"title" example:"Buy milk"`
	Content  string `json:"content" example:"2% fat"`
	Priority string `json:"priority" example:"Medium"`
}

type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}
