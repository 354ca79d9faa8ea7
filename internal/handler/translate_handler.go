package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"candor/internal/config"
	"candor/internal/service"
)

type TranslateHandler struct {
	service service.TranslateService
	cfg     config.Config
}

// Request/Response types

type translateRequest struct {
	Phrase string `json:"phrase"`
}

type translateResponse struct {
	Translation string               `json:"translation"`
	Model       string               `json:"model"`
	Store       service.StoreOutcome `json:"store"`
}

type historyRecord struct {
	ID          string    `json:"id"`
	Phrase      string    `json:"phrase"`
	Translation string    `json:"translation"`
	Model       string    `json:"model"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"createdAt"`
}

type historyResponse struct {
	Records []historyRecord `json:"records"`
}

func NewTranslateHandler(svc service.TranslateService, cfg config.Config) *TranslateHandler {
	return &TranslateHandler{service: svc, cfg: cfg}
}

func (h *TranslateHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/translate", h.Translate)
	g.GET("/translate", h.Diagnostics)
	g.GET("/history", h.History)
}

// Translate runs one phrase through the pipeline and returns the
// translation with the advisory store outcome.
func (h *TranslateHandler) Translate(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	result, err := h.service.Translate(c.Request().Context(), c.RealIP(), req.Phrase)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, translateResponse{
		Translation: result.Translation,
		Model:       result.Model,
		Store:       result.Store,
	})
}

// Diagnostics reports which required settings are present, masked. Only
// reachable with the debug query flag on a debug-enabled deployment; the
// flag gates visibility, it is not a secret.
func (h *TranslateHandler) Diagnostics(c echo.Context) error {
	debug := c.QueryParam("debug")
	if !h.cfg.Debug || (debug != "1" && debug != "true") {
		return Error(c, http.StatusMethodNotAllowed, "method not allowed")
	}

	missing := map[string]bool{}
	for _, name := range h.cfg.MissingRequired() {
		missing[name] = true
	}
	settings := map[string]bool{}
	for _, name := range []string{
		config.EnvProviderAPIKey,
		config.EnvAirtableToken,
		config.EnvAirtableBase,
		config.EnvAirtableTable,
	} {
		settings[name] = !missing[name]
	}

	return c.JSON(http.StatusOK, map[string]any{
		"app":      config.AppName,
		"version":  config.AppVersion,
		"provider": h.cfg.Provider,
		"model":    h.cfg.Model,
		"tone":     h.cfg.Tone,
		"settings": settings,
		"rateLimit": map[string]any{
			"limit":         h.cfg.RateLimit,
			"windowSeconds": int(h.cfg.RateWindow.Seconds()),
		},
		"notes": []string{
			"settings are reported by presence only, values are never echoed",
			"rate limiting is per process instance, not global",
		},
	})
}

// History returns the most recent journal records, newest first.
func (h *TranslateHandler) History(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Error(c, http.StatusBadRequest, "invalid limit")
		}
		limit = n
	}

	records, err := h.service.History(c.Request().Context(), limit)
	if err != nil {
		return writeServiceError(c, err)
	}

	resp := historyResponse{Records: make([]historyRecord, 0, len(records))}
	for _, rec := range records {
		resp.Records = append(resp.Records, historyRecord{
			ID:          strconv.FormatInt(rec.ID, 10),
			Phrase:      rec.Phrase,
			Translation: rec.Translation,
			Model:       rec.Model,
			Source:      rec.Source,
			CreatedAt:   rec.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, resp)
}
