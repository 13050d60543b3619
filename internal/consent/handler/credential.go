package handler

import (
	"net/http"

	"consentadmin/internal/consent/model"
	"consentadmin/internal/consent/service"

	"github.com/labstack/echo/v4"
)

type CredentialHandler struct {
	*ResourceHandler[model.Credential, model.CredentialPatch, *model.Credential]
	Credentials *service.CredentialService
}

func NewCredentialHandler(s *service.CredentialService) *CredentialHandler {
	return &CredentialHandler{
		ResourceHandler: NewResourceHandler(s.Resource),
		Credentials:     s,
	}
}

// Rotate handles PUT /credentials/:id/rotate
func (h *CredentialHandler) Rotate(c echo.Context) error {
	id := c.Param("id")
	if _, err := service.ParseID(id); err != nil {
		return fail(c, err, h.label())
	}

	var req model.RotateCredentialReq
	if err := c.Bind(&req); err != nil {
		return fail(c, err, h.label())
	}

	if err := h.Credentials.Rotate(c.Request().Context(), id, req); err != nil {
		return fail(c, err, h.label())
	}
	return c.JSON(http.StatusOK, model.Success)
}

// Attach handles POST /credentials/:id/attach
func (h *CredentialHandler) Attach(c echo.Context) error {
	id := c.Param("id")
	if _, err := service.ParseID(id); err != nil {
		return fail(c, err, h.label())
	}

	var req model.AttachCredentialReq
	if err := c.Bind(&req); err != nil {
		return fail(c, err, h.label())
	}

	if err := h.Credentials.Attach(c.Request().Context(), id, req); err != nil {
		return fail(c, err, h.label())
	}
	return c.JSON(http.StatusOK, model.Success)
}

// Encrypt handles POST /credentials/encrypt
func (h *CredentialHandler) Encrypt(c echo.Context) error {
	var req model.EncryptReq
	if err := c.Bind(&req); err != nil {
		return fail(c, err, h.label())
	}

	resp, err := h.Credentials.Encrypt(req)
	if err != nil {
		return fail(c, err, h.label())
	}
	return c.JSON(http.StatusOK, resp)
}
