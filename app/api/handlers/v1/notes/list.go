package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-widget/platform/web/handler"
	"net/http"
)

// List godoc
// @Summary List notes
// @Description List the notes of the board in submission order. Fields are sanitized markup.
// @Tags Note
// @Produce json
// @Success 200 {array} note.Note
// @Router /v1/notes [get]
func (h Handlers) List(_ *gin.Context) handler.Result {
	return handler.Result{
		Status: http.StatusOK,
		Body:   h.Board.Notes(),
	}
}
