package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"

	"consentadmin/internal/consent/model"
	"consentadmin/internal/consent/service"

	"github.com/invopop/jsonschema"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResourceHandler exposes one lifecycle manager over HTTP.
type ResourceHandler[T any, P any, PT model.DocumentPtr[T]] struct {
	Service *service.Resource[T, P, PT]
}

func NewResourceHandler[T any, P any, PT model.DocumentPtr[T]](s *service.Resource[T, P, PT]) *ResourceHandler[T, P, PT] {
	return &ResourceHandler[T, P, PT]{Service: s}
}

func (h *ResourceHandler[T, P, PT]) label() string {
	return h.Service.Entity.Label
}

func (h *ResourceHandler[T, P, PT]) Create(c echo.Context) error {
	doc := new(T)
	if err := c.Bind(doc); err != nil {
		return fail(c, err, h.label())
	}

	id, err := h.Service.Create(c.Request().Context(), doc)
	if err != nil {
		return fail(c, err, h.label())
	}
	return c.JSON(http.StatusOK, model.CreatedResponse{ID: id})
}

// BulkCreate inserts a JSON array of records in one store call.
func (h *ResourceHandler[T, P, PT]) BulkCreate(c echo.Context) error {
	var docs []*T
	if err := c.Echo().JSONSerializer.Deserialize(c, &docs); err != nil {
		return fail(c, fmt.Errorf("%w: body must be a JSON array of records", service.ErrBadRequest), h.label())
	}

	ids, err := h.Service.CreateMany(c.Request().Context(), docs)
	if err != nil {
		return fail(c, err, h.label())
	}
	return c.JSON(http.StatusOK, model.BulkCreatedResponse{InsertedIDs: ids})
}

func (h *ResourceHandler[T, P, PT]) Get(c echo.Context) error {
	doc, err := h.Service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err, h.label())
	}
	return c.JSON(http.StatusOK, doc)
}

func (h *ResourceHandler[T, P, PT]) List(c echo.Context) error {
	docs, err := h.Service.List(c.Request().Context())
	if err != nil {
		return fail(c, err, h.label())
	}
	return c.JSON(http.StatusOK, docs)
}

func (h *ResourceHandler[T, P, PT]) Update(c echo.Context) error {
	id := c.Param("id")
	if _, err := service.ParseID(id); err != nil {
		return fail(c, err, h.label())
	}

	body, err := readBody(c)
	if err != nil {
		return fail(c, err, h.label())
	}
	patch := new(P)
	if err := c.Bind(patch); err != nil {
		return fail(c, err, h.label())
	}

	// Bind cannot tell an explicit null from an absent key.
	var nulls []string
	if len(bytes.TrimSpace(body)) > 0 {
		nulls, err = model.NullFields(patch, body)
		if err != nil {
			return fail(c, fmt.Errorf("%w: %v", service.ErrBadRequest, err), h.label())
		}
	}

	if err := h.Service.Update(c.Request().Context(), id, patch, nulls...); err != nil {
		return fail(c, err, h.label())
	}
	return c.JSON(http.StatusOK, model.Success)
}

// Transition returns the handler for one status action. The optional
// explanation comes from the JSON body or the query string.
func (h *ResourceHandler[T, P, PT]) Transition(action string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req model.TransitionReq
		if err := c.Bind(&req); err != nil {
			return fail(c, err, h.label())
		}
		if req.Explanation == "" {
			req.Explanation = c.QueryParam("explanation")
		}

		if err := h.Service.TransitionWith(c.Request().Context(), c.Param("id"), action, req); err != nil {
			return fail(c, err, h.label())
		}
		return c.JSON(http.StatusOK, model.Success)
	}
}

// Categorize takes {"categories": [...]} or a bare JSON array.
func (h *ResourceHandler[T, P, PT]) Categorize(c echo.Context) error {
	id := c.Param("id")
	if _, err := service.ParseID(id); err != nil {
		return fail(c, err, h.label())
	}

	body, err := readBody(c)
	if err != nil {
		return fail(c, err, h.label())
	}
	var req model.CategorizeReq
	body = bytes.TrimSpace(body)
	if len(body) > 0 && body[0] == '[' {
		err = json.Unmarshal(body, &req.Categories)
	} else {
		err = json.Unmarshal(body, &req)
	}
	if err != nil {
		return fail(c, fmt.Errorf("%w: body must be a list of categories", service.ErrBadRequest), h.label())
	}

	if err := h.Service.Categorize(c.Request().Context(), id, req); err != nil {
		return fail(c, err, h.label())
	}
	return c.JSON(http.StatusOK, model.Success)
}

func (h *ResourceHandler[T, P, PT]) Delete(c echo.Context) error {
	if err := h.Service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return fail(c, err, h.label())
	}
	return c.JSON(http.StatusOK, model.Success)
}

func (h *ResourceHandler[T, P, PT]) Duplicate(c echo.Context) error {
	id, err := h.Service.Duplicate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err, h.label())
	}
	return c.JSON(http.StatusOK, model.CreatedResponse{ID: id})
}

// Search binds the query parameters into a fresh request from newReq.
func (h *ResourceHandler[T, P, PT]) Search(newReq func() model.SearchRequest) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := newReq()
		if err := c.Bind(req); err != nil {
			return fail(c, err, h.label())
		}
		if err := req.Validate(); err != nil {
			return fail(c, err, h.label())
		}

		filter, err := req.Filter()
		if err != nil {
			return fail(c, err, h.label())
		}

		docs, err := h.Service.Search(c.Request().Context(), filter)
		if err != nil {
			return fail(c, err, h.label())
		}
		return c.JSON(http.StatusOK, docs)
	}
}

func (h *ResourceHandler[T, P, PT]) Dashboard(c echo.Context) error {
	summary, err := h.Service.Summary(c.Request().Context())
	if err != nil {
		return fail(c, err, h.label())
	}
	return c.JSON(http.StatusOK, summary)
}

func (h *ResourceHandler[T, P, PT]) StatusDashboard(c echo.Context) error {
	counts, err := h.Service.StatusCounts(c.Request().Context())
	if err != nil {
		return fail(c, err, h.label())
	}
	return c.JSON(http.StatusOK, counts)
}

// Template returns the JSON schema of the record type.
func (h *ResourceHandler[T, P, PT]) Template(c echo.Context) error {
	return c.JSON(http.StatusOK, RecordSchema(new(T)))
}

// Placeholder answers 501 for endpoints whose computation is not
// defined yet. Item placeholders still reject malformed ids.
func (h *ResourceHandler[T, P, PT]) Placeholder(name string, item bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		if item {
			if _, err := service.ParseID(c.Param("id")); err != nil {
				return fail(c, err, h.label())
			}
		}
		return fail(c, fmt.Errorf("%s %s is %w", h.label(), name, service.ErrNotImplemented), h.label())
	}
}

// readBody drains the request body and puts it back for Bind.
func readBody(c echo.Context) ([]byte, error) {
	req := c.Request()
	if req.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable body", service.ErrBadRequest)
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}

var objectIDType = reflect.TypeOf(primitive.ObjectID{})

// RecordSchema reflects v into a JSON schema with ObjectIDs as hex strings.
func RecordSchema(v interface{}) *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t == objectIDType {
				return &jsonschema.Schema{Type: "string", Pattern: "^[0-9a-f]{24}$"}
			}
			return nil
		},
	}
	return r.Reflect(v)
}
