package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Shaan2522/bajajfinserv-api/internal/infrastructure/config"
	"github.com/Shaan2522/bajajfinserv-api/internal/usecase"
)

// ClassifyRequest represents the /bfhl request body. Data stays raw so a
// missing field, a null and a non-array value can be told apart.
type ClassifyRequest struct {
	Data json.RawMessage `json:"data"`
}

// OperationCodeResponse is the body of GET /bfhl
type OperationCodeResponse struct {
	OperationCode int `json:"operation_code"`
}

// ClassifyHandler handles classification HTTP requests
type ClassifyHandler struct {
	classifyUC usecase.ClassifyUsecase
	operator   config.OperatorConfig
}

// NewClassifyHandler creates a new classify handler
func NewClassifyHandler(classifyUC usecase.ClassifyUsecase, operator config.OperatorConfig) *ClassifyHandler {
	return &ClassifyHandler{
		classifyUC: classifyUC,
		operator:   operator,
	}
}

// Classify handles POST /bfhl
func (h *ClassifyHandler) Classify(c *gin.Context) {
	if !strings.HasPrefix(c.ContentType(), "application/json") {
		respondClassifyError(c, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondClassifyError(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	if len(req.Data) == 0 {
		respondClassifyError(c, http.StatusBadRequest, "Missing 'data' field in request body")
		return
	}

	var items []interface{}
	if err := json.Unmarshal(req.Data, &items); err != nil {
		respondClassifyError(c, http.StatusBadRequest, "'data' must be an array")
		return
	}
	if items == nil {
		respondClassifyError(c, http.StatusBadRequest, "'data' cannot be null")
		return
	}

	tokens := make([]string, len(items))
	for i, item := range items {
		tokens[i] = TokenText(item)
	}

	out, err := h.classifyUC.Classify(c.Request.Context(), tokens)
	if err != nil {
		errResp := MapUsecaseError(err)
		respondClassifyError(c, errResp.StatusCode, errResp.Message)
		return
	}

	c.JSON(http.StatusOK, ClassifyResponse{
		IsSuccess:         true,
		UserID:            h.operator.UserID,
		Email:             h.operator.Email,
		RollNumber:        h.operator.RollNumber,
		EvenNumbers:       out.EvenNumbers,
		OddNumbers:        out.OddNumbers,
		Alphabets:         out.Alphabets,
		SpecialCharacters: out.SpecialCharacters,
		Sum:               out.Sum,
		ConcatString:      out.ConcatString,
	})
}

// OperationCode handles GET /bfhl
func (h *ClassifyHandler) OperationCode(c *gin.Context) {
	c.JSON(http.StatusOK, OperationCodeResponse{OperationCode: 1})
}

// Home handles GET /
func (h *ClassifyHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "BFHL API is running",
		"version": "1.0.0",
		"endpoints": gin.H{
			"POST /bfhl": "Main endpoint for data processing",
			"GET /bfhl":  "Returns operation code",
		},
		"status": "healthy",
	})
}
