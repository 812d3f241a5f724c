package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shaan2522/bajajfinserv-api/internal/usecase"
)

// SubmissionHandler handles submission history HTTP requests
type SubmissionHandler struct {
	classifyUC usecase.ClassifyUsecase
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(classifyUC usecase.ClassifyUsecase) *SubmissionHandler {
	return &SubmissionHandler{classifyUC: classifyUC}
}

// ListSubmissions handles GET /api/v1/submissions
func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	p := ParsePagination(c)

	out, err := h.classifyUC.ListSubmissions(c.Request.Context(), p.Limit, p.Offset)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, out)
}

// GetSubmission handles GET /api/v1/submissions/:id
func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	id, err := ExtractUUIDParam(c, "id")
	if err != nil {
		HandleInvalidUUID(c, "submission id")
		return
	}

	out, err := h.classifyUC.GetSubmission(c.Request.Context(), id)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, out)
}

// DeleteSubmission handles DELETE /api/v1/submissions/:id
func (h *SubmissionHandler) DeleteSubmission(c *gin.Context) {
	id, err := ExtractUUIDParam(c, "id")
	if err != nil {
		HandleInvalidUUID(c, "submission id")
		return
	}

	if err := h.classifyUC.DeleteSubmission(c.Request.Context(), id); err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{
		"submission_id": id,
		"deleted":       true,
	})
}
