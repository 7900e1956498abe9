package contracts

import "github.com/gin-gonic/gin"

type ApiController interface {
	GetSheetAction(c *gin.Context)
	SaveSheetAction(c *gin.Context)
	UpdateCellAction(c *gin.Context)
	ProcessSheetAction(c *gin.Context)
	ProcessCellAction(c *gin.Context)
	GenerateAction(c *gin.Context)
	ModelsAction(c *gin.Context)
	ExportSheetAction(c *gin.Context)
	ImportSheetAction(c *gin.Context)
}
