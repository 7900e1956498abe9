package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tristan-mcinnis/AI-Spreadsheets/contracts"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ApiController struct {
	SheetRepository contracts.SheetRepository
	SheetProcessor  contracts.SheetProcessor
	Backend         contracts.ExecutionBackend
	XlsxCodec       contracts.XlsxCodec

	// CredentialErr is the setup-level failure reported by processing and
	// generation endpoints; the core never checks credentials itself.
	CredentialErr error
}

type SheetEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required"`
}

type CellEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required"`
	Row     int    `uri:"row"`
	Col     int    `uri:"col"`
}

type SaveSheetRequest struct {
	Data [][]any `json:"data" binding:"required"`
}

type UpdateCellRequest struct {
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Value string `json:"value"`
}

type GenerateRequest struct {
	Text   string `json:"text" binding:"required"`
	Model  string `json:"model"`
	Prompt string `json:"prompt" binding:"required"`
}

type ModelInfo struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var AvailableModels = []ModelInfo{
	{
		Id:          "gpt-4o",
		Name:        "GPT-4o",
		Description: "Most capable OpenAI model with vision and advanced reasoning",
	},
}

func NewApiController(
	sheetRepository contracts.SheetRepository, sheetProcessor contracts.SheetProcessor,
	backend contracts.ExecutionBackend, xlsxCodec contracts.XlsxCodec, credentialErr error,
) *ApiController {
	return &ApiController{
		SheetRepository: sheetRepository,
		SheetProcessor:  sheetProcessor,
		Backend:         backend,
		XlsxCodec:       xlsxCodec,
		CredentialErr:   credentialErr,
	}
}

func (api *ApiController) GetSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}

	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grid, err := api.SheetRepository.GetSheet(params.SheetId)

	if errors.Is(err, contracts.SheetNotFoundError) {
		// unknown sheets read as an empty default-sized grid
		c.JSON(http.StatusOK, gin.H{"data": contracts.NewEmptyGrid(contracts.DefaultRowCount, contracts.DefaultColCount)})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, gin.H{"data": grid})
	}
}

func (api *ApiController) SaveSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}
	request := SaveSheetRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err = api.SheetRepository.SaveSheet(params.SheetId, contracts.NewGrid(request.Data)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sheet saved successfully"})
}

func (api *ApiController) UpdateCellAction(c *gin.Context) {
	params := SheetEndpointParams{}
	request := UpdateCellRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err = api.SheetRepository.SetCell(params.SheetId, request.Row, request.Col, request.Value)

	if errors.Is(err, contracts.CellAddressError) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "Cell updated successfully"})
	}
}

func (api *ApiController) ProcessSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}

	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if api.CredentialErr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": api.CredentialErr.Error()})
		return
	}

	grid, err := api.SheetRepository.GetSheet(params.SheetId)
	if errors.Is(err, contracts.SheetNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	processed := api.SheetProcessor.ProcessSheet(grid)

	if err = api.SheetRepository.SaveSheet(params.SheetId, processed); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": processed, "message": "HF functions processed successfully"})
}

func (api *ApiController) ProcessCellAction(c *gin.Context) {
	params := CellEndpointParams{}

	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if api.CredentialErr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": api.CredentialErr.Error()})
		return
	}

	grid, err := api.SheetRepository.GetSheet(params.SheetId)
	if errors.Is(err, contracts.SheetNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result := api.SheetProcessor.ProcessCell(params.Row, params.Col, grid)

	// write the result back only when the address exists in the stored grid
	if _, ok := grid.At(params.Row, params.Col); ok {
		if _, err = api.SheetRepository.SetCell(params.SheetId, params.Row, params.Col, result); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"result": result, "message": "Cell processed successfully"})
}

func (api *ApiController) GenerateAction(c *gin.Context) {
	request := GenerateRequest{}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if api.CredentialErr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": api.CredentialErr.Error()})
		return
	}

	result, err := api.Backend.Generate(request.Text, request.Prompt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

func (api *ApiController) ModelsAction(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"models": AvailableModels})
}

func (api *ApiController) ExportSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}

	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grid, err := api.SheetRepository.GetSheet(params.SheetId)
	if errors.Is(err, contracts.SheetNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	data, err := api.XlsxCodec.Export(grid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+params.SheetId+`.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (api *ApiController) ImportSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}

	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grid, err := api.XlsxCodec.Import(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if err = api.SheetRepository.SaveSheet(params.SheetId, grid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sheet saved successfully"})
}
