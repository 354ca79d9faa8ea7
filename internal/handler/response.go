package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"candor/internal/service"
	"candor/internal/service/ai"
)

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// writeServiceError maps pipeline errors onto the response surface.
// Upstream detail carries only provider-supplied text, never configuration
// values.
func writeServiceError(c echo.Context, err error) error {
	var upstream *ai.UpstreamError
	switch {
	case errors.Is(err, service.ErrPhraseRequired):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "phrase is required"})
	case errors.Is(err, service.ErrRateLimited):
		return c.JSON(http.StatusTooManyRequests, errorResponse{Error: "too many requests, slow down"})
	case errors.Is(err, service.ErrConfigMissing):
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "missing required configuration"})
	case errors.Is(err, service.ErrEmptyCompletion):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "translation failed", Detail: err.Error()})
	case errors.As(err, &upstream):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "translation failed", Detail: upstream.Detail})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error", Detail: err.Error()})
	}
}

// Error returns a JSON error response with the given status and message
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}
