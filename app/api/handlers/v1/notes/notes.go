package notes

import (
	"github.com/ribgsilva/note-widget/business/v1/board"
	"github.com/ribgsilva/note-widget/business/v1/widget"
)

// Handlers serves the json api of the widget
type Handlers struct {
	Widget *widget.Widget
	Board  *board.Board
}
