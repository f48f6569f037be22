package page

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-widget/business/v1/board"
	"github.com/ribgsilva/note-widget/business/v1/note"
	"github.com/ribgsilva/note-widget/business/v1/widget"
	"github.com/ribgsilva/note-widget/sys"
)

// Handlers serves the html document of the widget
type Handlers struct {
	Widget *widget.Widget
	Board  *board.Board
}

func (h Handlers) render(ctx *gin.Context, status int, form note.Values, alert string) {
	ctx.Header("Content-Type", "text/html; charset=utf-8")
	ctx.Status(status)

	err := board.RenderPage(ctx.Writer, board.Page{
		Title:           sys.Configs.Widget.Title,
		Priorities:      sys.Configs.Widget.Priorities,
		DefaultPriority: sys.Configs.Widget.DefaultPriority,
		Form:            form,
		Alert:           alert,
		Cards:           h.Board.Cards(),
	})
	if err != nil {
		sys.R.Log.Errorw("page", "ERROR", err)
		_ = ctx.Error(err)
	}
}
