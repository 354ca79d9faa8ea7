package http

import (
	"errors"
	nethttp "net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"candor/internal/handler"
)

func NewRouter(translateHandler *handler.TranslateHandler, allowedOrigin string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errorHandler
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(RequestLoggerMiddleware())

	if allowedOrigin == "" {
		allowedOrigin = "*"
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{allowedOrigin},
		AllowMethods: []string{nethttp.MethodPost, nethttp.MethodGet, nethttp.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
	}))

	api := e.Group("/api")
	translateHandler.RegisterRoutes(api)

	return e
}

// errorHandler keeps the error body shape uniform: {"error": ...} for
// routing-level failures (405, 404) and a generic message for anything the
// recover middleware caught. Stack traces and internals stay in the logs.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := nethttp.StatusInternalServerError
	message := "internal error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		} else {
			message = nethttp.StatusText(status)
		}
	} else {
		c.Logger().Error(err)
	}

	_ = handler.Error(c, status, message)
}
