package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Response represents the standard API response structure
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Meta    *MetaInfo   `json:"meta"`
}

// ErrorInfo represents error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id"`
}

// ClassifyResponse is the flat wire format of the /bfhl endpoint. Field order
// matters to legacy consumers, so it is kept as a fixed struct rather than
// going through the standard envelope.
type ClassifyResponse struct {
	IsSuccess         bool     `json:"is_success"`
	UserID            string   `json:"user_id"`
	Email             string   `json:"email"`
	RollNumber        string   `json:"roll_number"`
	EvenNumbers       []string `json:"even_numbers"`
	OddNumbers        []string `json:"odd_numbers"`
	Alphabets         []string `json:"alphabets"`
	SpecialCharacters []string `json:"special_characters"`
	Sum               string   `json:"sum"`
	ConcatString      string   `json:"concat_string"`
}

// ClassifyErrorResponse is the flat error form of the /bfhl endpoint
type ClassifyErrorResponse struct {
	IsSuccess  bool   `json:"is_success"`
	Error      string `json:"error"`
	StatusCode int    `json:"status_code"`
}

func newMeta(c *gin.Context) *MetaInfo {
	requestID := c.GetString("request_id")
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return &MetaInfo{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RequestID: requestID,
	}
}

func respondSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Response{
		Success: true,
		Data:    data,
		Meta:    newMeta(c),
	})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
		Meta: newMeta(c),
	})
}

func respondClassifyError(c *gin.Context, status int, message string) {
	c.JSON(status, ClassifyErrorResponse{
		IsSuccess:  false,
		Error:      message,
		StatusCode: status,
	})
}
