package widget

import (
	"errors"
	"sync"

	"github.com/ribgsilva/note-widget/business/v1/note"
	"go.uber.org/zap"
)

// Form is where a submission comes from
type Form interface {
	Values() note.Values
	// Alert reports a rejected submission to whoever filled the form
	Alert(message string)
	// Reset clears the fields back to their defaults
	Reset()
}

// List receives the accepted notes
type List interface {
	RenderNote(n note.Note)
}

// Widget handles note submissions. It is the only writer of its list.
type Widget struct {
	log             *zap.SugaredLogger
	list            List
	defaultPriority string
	mu              sync.Mutex
}

func New(log *zap.SugaredLogger, list List, defaultPriority string) *Widget {
	return &Widget{
		log:             log,
		list:            list,
		defaultPriority: defaultPriority,
	}
}

// Submit reads the form, appends the note to the list and resets the form.
// A rejected submission alerts the form and leaves the list and the form untouched.
func (w *Widget) Submit(f Form) (note.Note, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	n, err := note.New(f.Values(), w.defaultPriority)
	if err != nil {
		if errors.Is(err, note.ErrRequiredField) {
			f.Alert(note.RequiredMessage)
		}
		w.log.Debugw("submit", "status", "rejected", "ERROR", err)
		return note.Note{}, err
	}

	w.list.RenderNote(n)
	f.Reset()
	w.log.Debugw("submit", "status", "accepted", "priority", n.Priority)
	return n, nil
}
