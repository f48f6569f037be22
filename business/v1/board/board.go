package board

import (
	"html/template"
	"sync"

	"github.com/ribgsilva/note-widget/business/v1/note"
)

type entry struct {
	note note.Note
	card template.HTML
}

// Board is the append only list of rendered notes, kept in submission order
type Board struct {
	mu      sync.RWMutex
	entries []entry
}

func New() *Board {
	return &Board{}
}

// RenderNote renders the note card and appends it as the last one
func (b *Board) RenderNote(n note.Note) {
	e := entry{note: n, card: note.Card(n)}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = append(b.entries, e)
}

func (b *Board) Notes() []note.Note {
	b.mu.RLock()
	defer b.mu.RUnlock()

	notes := make([]note.Note, len(b.entries))
	for i, e := range b.entries {
		notes[i] = e.note
	}
	return notes
}

func (b *Board) Cards() []template.HTML {
	b.mu.RLock()
	defer b.mu.RUnlock()

	cards := make([]template.HTML, len(b.entries))
	for i, e := range b.entries {
		cards[i] = e.card
	}
	return cards
}

func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}
