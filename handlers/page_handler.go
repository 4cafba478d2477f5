package handlers

import (
	"net/http"

	"formforge/models"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the three screens; all data loading happens client-side
// against the JSON API.
type PageHandler struct {
	readOnly bool
}

func NewPageHandler(readOnly bool) *PageHandler {
	return &PageHandler{readOnly: readOnly}
}

func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"ReadOnly": h.readOnly,
	})
}

func (h *PageHandler) NewForm(c *gin.Context) {
	c.HTML(http.StatusOK, "builder.html", gin.H{
		"FormID":        "",
		"QuestionTypes": models.QuestionTypes,
	})
}

func (h *PageHandler) EditForm(c *gin.Context) {
	c.HTML(http.StatusOK, "builder.html", gin.H{
		"FormID":        c.Param("formId"),
		"QuestionTypes": models.QuestionTypes,
	})
}

func (h *PageHandler) FillForm(c *gin.Context) {
	c.HTML(http.StatusOK, "view.html", gin.H{
		"FormID":   c.Param("formId"),
		"ReadOnly": h.readOnly,
	})
}
