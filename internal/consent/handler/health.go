package handler

import (
	"context"
	"net/http"
	"time"

	"consentadmin/internal/consent/repository"

	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	Store repository.Store
}

func NewHealthHandler(store repository.Store) *HealthHandler {
	return &HealthHandler{Store: store}
}

// HealthCheck pings the store with a short deadline.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := h.Store.Ping(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
