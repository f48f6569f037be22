package handler

import "github.com/gin-gonic/gin"

// Result is what an api handler answers, Body is rendered as json
type Result struct {
	Status int
	Body   any
}

// Error is the json body of a failed request
type Error struct {
	Message string `json:"message" example:"Title and content are required."`
}

// Wrapper adapts a handler returning a Result into a gin.HandlerFunc
func Wrapper(h func(ctx *gin.Context) Result) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := h(ctx)
		if r.Body == nil {
			ctx.Status(r.Status)
			return
		}
		ctx.JSON(r.Status, r.Body)
	}
}
