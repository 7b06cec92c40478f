package http_api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/core-coin/tokenforge/internal/models"
)

// statusFor maps application errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrValidationFailed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrWalletNotConnected), errors.Is(err, models.ErrSubmissionInFlight):
		return http.StatusConflict
	case errors.Is(err, models.ErrProviderUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, models.ErrConnectionRejected), errors.Is(err, models.ErrRequestFailed):
		return http.StatusBadGateway
	case errors.Is(err, models.ErrInvalidImage):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrItemNotFound), errors.Is(err, models.ErrPreviewNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (s *HTTPServer) writeError(c *gin.Context, err error) {
	status := statusFor(err)
	body := gin.H{
		"success": false,
		"error":   err.Error(),
	}

	var verr *models.ValidationError
	if errors.As(err, &verr) {
		body["error"] = models.ErrValidationFailed.Error()
		body["errors"] = verr.Fields
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error("Request failed", "path", c.FullPath(), "status", status, "error", err)
	} else {
		s.logger.Debug("Request rejected", "path", c.FullPath(), "status", status, "error", err)
	}
	c.JSON(status, body)
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   msg,
	})
}
