package routes

import (
	"net/http"

	"formforge/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	formHandler *handlers.FormHandler,
	pageHandler *handlers.PageHandler,
) {
	// API routes
	api := router.Group("/api")
	{
		forms := api.Group("/forms")
		{
			forms.POST("/list", formHandler.ListForms)
			forms.POST("/get", formHandler.GetForm)
			forms.POST("/create", formHandler.CreateForm)
			forms.POST("/update", formHandler.UpdateForm)
			forms.POST("/delete", formHandler.DeleteForm)
		}

		api.POST("/questions/submit", formHandler.SubmitQuestions)
	}

	// UI pages
	router.GET("/", pageHandler.Home)
	router.GET("/form", pageHandler.NewForm)
	router.GET("/form/:formId", pageHandler.FillForm)
	router.GET("/form/:formId/edit", pageHandler.EditForm)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
