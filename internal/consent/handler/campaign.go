package handler

import (
	"net/http"

	"consentadmin/internal/consent/model"
	"consentadmin/internal/consent/service"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
)

type CampaignHandler struct {
	*ResourceHandler[model.Campaign, model.CampaignPatch, *model.Campaign]
}

func NewCampaignHandler(s *service.Resource[model.Campaign, model.CampaignPatch, *model.Campaign]) *CampaignHandler {
	return &CampaignHandler{ResourceHandler: NewResourceHandler(s)}
}

// Schedule handles POST /campaigns/:id/schedule
func (h *CampaignHandler) Schedule(c echo.Context) error {
	id := c.Param("id")
	if _, err := service.ParseID(id); err != nil {
		return fail(c, err, h.label())
	}

	var req model.ScheduleCampaignReq
	if err := c.Bind(&req); err != nil {
		return fail(c, err, h.label())
	}
	if err := req.Validate(); err != nil {
		return fail(c, err, h.label())
	}

	if err := h.Service.Patch(c.Request().Context(), id, bson.M{"schedule_time": req.ScheduleTime.UTC()}); err != nil {
		return fail(c, err, h.label())
	}
	return c.JSON(http.StatusOK, model.Success)
}
