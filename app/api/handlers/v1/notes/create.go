package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-widget/business/v1/note"
	"github.com/ribgsilva/note-widget/business/v1/widget"
	"github.com/ribgsilva/note-widget/platform/web/handler"
	"net/http"
)

// Create godoc
// @Summary Add a note
// @Description Sanitize the note and append it to the board
// @Tags Note
// @Accept json
// @Produce json
// @Param note body note.Values true "Note to add"
// @Success 201 {object} note.Note
// @Failure 400 {object} handler.Error
// @Router /v1/notes [post]
func (h Handlers) Create(ctx *gin.Context) handler.Result {
	var values note.Values
	if err := ctx.ShouldBindJSON(&values); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid body: " + err.Error()},
		}
	}

	form := widget.NewSubmission(values)
	created, err := h.Widget.Submit(form)
	if err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: form.Message},
		}
	}

	return handler.Result{
		Status: http.StatusCreated,
		Body:   created,
	}
}
