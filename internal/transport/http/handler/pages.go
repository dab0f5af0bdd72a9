package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"miniblog/internal/transport/http/middleware"
)

// PagesHandler serves the static article pages.
type PagesHandler struct{}

func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

func (h *PagesHandler) Article1(c *gin.Context) {
	c.HTML(http.StatusOK, "article1.html", gin.H{
		"Username": middleware.CurrentUsername(c),
	})
}

func (h *PagesHandler) Article2(c *gin.Context) {
	c.HTML(http.StatusOK, "article2.html", gin.H{
		"Username": middleware.CurrentUsername(c),
	})
}
