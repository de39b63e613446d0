package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Home(c *gin.Context) {
	h.render(c, http.StatusOK, "index.html", nil)
}

func (h *Handler) About(c *gin.Context) {
	h.render(c, http.StatusOK, "about.html", nil)
}
