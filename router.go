package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tristan-mcinnis/AI-Spreadsheets/contracts"
)

const ApiVersion = "v1"

func SetupRouter(controller contracts.ApiController) *gin.Engine {
	router := gin.New()
	router.Use(corsMiddleware())

	apiRouterGroup := router.Group("/api/" + ApiVersion)
	apiRouterGroup.GET("/models", controller.ModelsAction)
	apiRouterGroup.POST("/generate", controller.GenerateAction)

	apiRouterGroup.GET("/sheets/:sheet_id", controller.GetSheetAction)
	apiRouterGroup.POST("/sheets/:sheet_id", controller.SaveSheetAction)
	apiRouterGroup.POST("/sheets/:sheet_id/cells", controller.UpdateCellAction)
	apiRouterGroup.POST("/sheets/:sheet_id/process", controller.ProcessSheetAction)
	apiRouterGroup.POST("/sheets/:sheet_id/process/:row/:col", controller.ProcessCellAction)
	apiRouterGroup.GET("/sheets/:sheet_id/export", controller.ExportSheetAction)
	apiRouterGroup.POST("/sheets/:sheet_id/import", controller.ImportSheetAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	return router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "*")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
