package handler

import (
	"net/http"

	"consentadmin/internal/consent/model"
	"consentadmin/internal/consent/service"

	"github.com/labstack/echo/v4"
)

type WorkerNodeHandler struct {
	*ResourceHandler[model.WorkerNode, model.WorkerNodePatch, *model.WorkerNode]
}

func NewWorkerNodeHandler(s *service.Resource[model.WorkerNode, model.WorkerNodePatch, *model.WorkerNode]) *WorkerNodeHandler {
	return &WorkerNodeHandler{ResourceHandler: NewResourceHandler(s)}
}

// Stats handles GET /worker-nodes/:id/stats
func (h *WorkerNodeHandler) Stats(c echo.Context) error {
	node, err := h.Service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err, h.label())
	}

	stats := node.Stats
	if stats == nil {
		stats = map[string]interface{}{}
	}
	return c.JSON(http.StatusOK, model.WorkerNodeStats{NodeID: node.ID.Hex(), Stats: stats})
}
