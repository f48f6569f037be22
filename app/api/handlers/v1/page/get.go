package page

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-widget/business/v1/note"
	"net/http"
)

// Get renders the form and every note on the board
func (h Handlers) Get(ctx *gin.Context) {
	h.render(ctx, http.StatusOK, note.Values{}, "")
}
