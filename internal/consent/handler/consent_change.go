package handler

import (
	"net/http"

	"consentadmin/internal/consent/model"
	"consentadmin/internal/consent/service"

	"github.com/labstack/echo/v4"
)

type ConsentChangeHandler struct {
	*ResourceHandler[model.ConsentChange, model.ConsentChangePatch, *model.ConsentChange]
	Changes *service.ConsentChangeService
}

func NewConsentChangeHandler(s *service.ConsentChangeService) *ConsentChangeHandler {
	return &ConsentChangeHandler{
		ResourceHandler: NewResourceHandler(s.Resource),
		Changes:         s,
	}
}

// Insights handles GET /consent-changes/insights
func (h *ConsentChangeHandler) Insights(c echo.Context) error {
	insights, err := h.Changes.Insights(c.Request().Context())
	if err != nil {
		return fail(c, err, h.label())
	}
	return c.JSON(http.StatusOK, insights)
}
