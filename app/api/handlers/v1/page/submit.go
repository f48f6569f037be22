package page

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-widget/business/v1/note"
	"github.com/ribgsilva/note-widget/business/v1/widget"
	"net/http"
)

// Submit handles the form post. An accepted note redirects back to the page,
// which shows an empty form. A rejected one renders the page again with the
// alert open and the typed values still in the form.
func (h Handlers) Submit(ctx *gin.Context) {
	form := widget.NewSubmission(note.Values{
		Title:    ctx.PostForm("title"),
		Content:  ctx.PostForm("content"),
		Priority: ctx.PostForm("priority"),
	})

	if _, err := h.Widget.Submit(form); err != nil {
		h.render(ctx, http.StatusUnprocessableEntity, form.Values(), form.Message)
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/")
}
