package handler

import (
	"errors"
	"net/http"

	"consentadmin/internal/consent/model"
	"consentadmin/internal/consent/service"
	"consentadmin/internal/consent/util"

	"github.com/labstack/echo/v4"
)

// Helper to map errors to HTTP status and body. label names the entity
// in messages, e.g. "Invalid App ID" or "App not found".
func httpError(err error, label string) (int, model.ErrorResponse) {
	var code string
	var msg string
	var status int

	var detail *model.ErrorDetail
	var httpErr *echo.HTTPError

	switch {
	case errors.Is(err, service.ErrInvalidID):
		status = http.StatusBadRequest
		code = model.CodeInvalidID
		msg = "Invalid " + label + " ID"
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
		code = model.CodeNotFound
		msg = label + " not found"
	case errors.Is(err, service.ErrInvalidStatus), errors.Is(err, service.ErrBadRequest):
		status = http.StatusBadRequest
		code = model.CodeBadRequest
		msg = err.Error()
	case errors.Is(err, service.ErrNotImplemented):
		status = http.StatusNotImplemented
		code = model.CodeNotImplemented
		msg = err.Error()
	case errors.As(err, &detail):
		status = http.StatusBadRequest
		code = detail.Code
		msg = detail.Message
	case errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError:
		status = http.StatusBadRequest
		code = model.CodeBadRequest
		msg = "Invalid body"
	default:
		status = http.StatusInternalServerError
		code = model.CodeInternal
		msg = err.Error()
	}

	return status, model.ErrorResponse{
		Error: model.ErrorDetail{Code: code, Message: msg},
	}
}

// fail writes the error response, tagged with the request id.
func fail(c echo.Context, err error, label string) error {
	code, body := httpError(err, label)
	body.Error.RequestID = c.Response().Header().Get(echo.HeaderXRequestID)
	if code >= http.StatusInternalServerError && code != http.StatusNotImplemented {
		util.GetLogger().Error("request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"request_id", body.Error.RequestID,
			"error", err,
		)
	}
	return c.JSON(code, body)
}
