package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-widget/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/note-widget/app/api/handlers/v1/notes"
	"github.com/ribgsilva/note-widget/app/api/handlers/v1/page"
	"github.com/ribgsilva/note-widget/business/v1/board"
	"github.com/ribgsilva/note-widget/business/v1/widget"
	"github.com/ribgsilva/note-widget/platform/web/handler"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))
}

func MapApi(r *gin.Engine, w *widget.Widget, b *board.Board) {
	p := page.Handlers{Widget: w, Board: b}
	r.GET("/", p.Get)
	r.POST("/", p.Submit)

	n := notes.Handlers{Widget: w, Board: b}
	r.GET("/v1/notes", handler.Wrapper(n.List))
	r.POST("/v1/notes", handler.Wrapper(n.Create))
}
