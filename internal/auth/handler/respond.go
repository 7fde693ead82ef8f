package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bbeualll199/uso-auth/internal/apperr"
	"github.com/bbeualll199/uso-auth/internal/logger"
)

// respondError maps any pipeline error onto the error taxonomy and writes
// the JSON response. Unexpected errors are logged with full detail but
// returned as an opaque server_error.
func respondError(c *gin.Context, err error) {
	e := apperr.From(err)

	if e.Code == apperr.CodeServerError {
		logger.Error("request failed", map[string]any{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		})
	}

	body := gin.H{"error": e.Code}
	if e.Detail != "" {
		body["detail"] = e.Detail
	}
	c.AbortWithStatusJSON(e.Status, body)
}
