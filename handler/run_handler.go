package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Harshilmalhotra/bfhl-internal-hack/service"
	"github.com/Harshilmalhotra/bfhl-internal-hack/types"
)

// DocumentRunner runs the question-answering pipeline for one document.
type DocumentRunner interface {
	Run(ctx context.Context, documentURL string, questions []string, progress service.ProgressFunc) ([]string, error)
	CacheSize() int
}

type RunHandler struct {
	docService DocumentRunner
}

func NewRunHandler(docService DocumentRunner) *RunHandler {
	return &RunHandler{docService: docService}
}

// HandleRun serves POST /api/v1/hackrx/run.
func (h *RunHandler) HandleRun(c *gin.Context) {
	var req types.RunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Status: "error",
			Error:  "Invalid request body",
		})
		return
	}
	if req.Documents == "" || len(req.Questions) == 0 {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Status: "error",
			Error:  "documents URL and at least one question are required",
		})
		return
	}

	answers, err := h.docService.Run(c.Request.Context(), req.Documents, req.Questions, nil)
	if err != nil {
		c.JSON(statusForError(err), types.ErrorResponse{
			Status: "error",
			Error:  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.RunResponse{Answers: answers})
}

// statusForError maps pipeline failures onto HTTP codes: client-visible input
// problems (bad URL, unreadable document) are 400, everything else 500.
func statusForError(err error) int {
	var downloadErr *types.DownloadError
	var extractionErr *types.ExtractionError
	if errors.As(err, &downloadErr) || errors.As(err, &extractionErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
