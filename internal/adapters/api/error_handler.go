package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/ports"
	errorspkg "weatherdash.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleError handles different types of application errors
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	statusCode, message := errorStatus(err)

	if statusCode >= http.StatusInternalServerError {
		s.logger.Error("Request failed",
			ports.F("path", c.Request.URL.Path),
			ports.F("request_id", c.GetString(requestIDKey)),
			ports.F("error", err))
	}

	c.AbortWithStatusJSON(statusCode, ErrorResponse{Error: message})
}

func errorStatus(err error) (int, string) {
	var appErr *errorspkg.AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError, "Internal server error"
	}

	switch appErr.Type {
	case errorspkg.ValidationError:
		return http.StatusBadRequest, appErr.Message
	case errorspkg.NotFoundError:
		return http.StatusNotFound, appErr.Message
	case errorspkg.UpstreamAuthError:
		return http.StatusInternalServerError, appErr.Message
	case errorspkg.ExternalAPIError:
		return http.StatusInternalServerError, "Failed to fetch weather data"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
