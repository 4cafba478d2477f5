package handlers

import (
	"net/http"

	"formforge/config"
	"formforge/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FormHandler struct {
	formService *services.FormService
	readOnly    bool
}

func NewFormHandler(formService *services.FormService, readOnly bool) *FormHandler {
	return &FormHandler{
		formService: formService,
		readOnly:    readOnly,
	}
}

type formIDRequest struct {
	FormID string `json:"formId"`
}

// respond emits the uniform envelope. Logical failures ride in the result with
// HTTP 200; only unexpected faults get the generic message plus an error field.
func (h *FormHandler) respond(c *gin.Context, result *services.Result, err error) {
	if err != nil {
		config.Log.Error("form handler: operation failed",
			zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": services.MsgInternalError,
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *FormHandler) blockWhenReadOnly(c *gin.Context) bool {
	if !h.readOnly {
		return false
	}
	c.JSON(http.StatusOK, gin.H{"success": false, "message": services.MsgReadOnly})
	return true
}

func (h *FormHandler) ListForms(c *gin.Context) {
	result, err := h.formService.ListForms()
	h.respond(c, result, err)
}

func (h *FormHandler) GetForm(c *gin.Context) {
	var req formIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond(c, nil, err)
		return
	}

	result, err := h.formService.GetFormForEdit(req.FormID)
	h.respond(c, result, err)
}

func (h *FormHandler) CreateForm(c *gin.Context) {
	var req services.SaveFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond(c, nil, err)
		return
	}

	req.UpdateOnly = false
	result, err := h.formService.SaveForm(&req)
	h.respond(c, result, err)
}

func (h *FormHandler) UpdateForm(c *gin.Context) {
	var req services.SaveFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond(c, nil, err)
		return
	}

	req.UpdateOnly = true
	result, err := h.formService.SaveForm(&req)
	h.respond(c, result, err)
}

func (h *FormHandler) SubmitQuestions(c *gin.Context) {
	if h.blockWhenReadOnly(c) {
		return
	}

	var req services.SubmitQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond(c, nil, err)
		return
	}

	result, err := h.formService.SubmitQuestions(&req)
	h.respond(c, result, err)
}

func (h *FormHandler) DeleteForm(c *gin.Context) {
	if h.blockWhenReadOnly(c) {
		return
	}

	var req formIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond(c, nil, err)
		return
	}

	result, err := h.formService.DeleteForm(req.FormID)
	h.respond(c, result, err)
}
