package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Harshilmalhotra/bfhl-internal-hack/types"
)

const ServiceVersion = "4.0.0"

type HealthHandler struct {
	docService DocumentRunner
}

func NewHealthHandler(docService DocumentRunner) *HealthHandler {
	return &HealthHandler{docService: docService}
}

func (h *HealthHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{
		Status:    "healthy",
		Version:   ServiceVersion,
		CacheSize: h.docService.CacheSize(),
	})
}

func (h *HealthHandler) HandleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, types.ServiceInfoResponse{
		Message: "Document Intelligence API",
		Version: ServiceVersion,
		Features: []string{
			"pdf_extraction",
			"chunked_answering",
			"response_cache",
			"websocket_streaming",
		},
	})
}
