package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"consentadmin/internal/consent/model"
	"consentadmin/internal/consent/registry"
	"consentadmin/internal/consent/repository"
	"consentadmin/internal/consent/secret"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func SetupServer(t *testing.T) (*echo.Echo, *registry.Registry) {
	t.Helper()
	reg, err := registry.Load()
	require.NoError(t, err)
	key, err := secret.GenerateKey()
	require.NoError(t, err)

	e := echo.New()
	RegisterRoutes(e, Deps{
		Registry:  reg,
		Store:     repository.NewMemoryStore(),
		Cipher:    secret.NewSecretBox(key),
		ListLimit: 100,
	})
	return e, reg
}

func PerformRequest(e *echo.Echo, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var bodyReader *strings.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		bodyReader = strings.NewReader(string(b))
	} else {
		bodyReader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func createdID(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp model.CreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.ID, 24)
	return resp.ID
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

// TestCollectionPointLifecycle walks one record through create, publish
// and a delete of an id that was never stored.
func TestCollectionPointLifecycle(t *testing.T) {
	e, _ := SetupServer(t)
	apiPath := "/api/v1/collection-points"

	id := createdID(t, PerformRequest(e, http.MethodPost, apiPath, map[string]interface{}{
		"name":        "Website Form",
		"description": "signup",
		"purposes":    []string{"marketing"},
	}, nil))

	rec := PerformRequest(e, http.MethodGet, apiPath+"/"+id, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cp model.CollectionPoint
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cp))
	assert.Equal(t, model.StatusDraft, cp.Status)
	assert.Equal(t, "Website Form", cp.Name)

	rec = PerformRequest(e, http.MethodPut, apiPath+"/"+id+"/publish", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success"}`, rec.Body.String())

	rec = PerformRequest(e, http.MethodGet, apiPath+"/"+id, nil, nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cp))
	assert.Equal(t, model.StatusPublished, cp.Status)

	rec = PerformRequest(e, http.MethodDelete, apiPath+"/"+primitive.NewObjectID().Hex(), nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Collection point not found", errorBody(t, rec).Message)

	t.Run("duplicate keeps fields under a new id", func(t *testing.T) {
		dupID := createdID(t, PerformRequest(e, http.MethodPost, apiPath+"/"+id+"/duplicate", nil, nil))
		assert.NotEqual(t, id, dupID)

		rec := PerformRequest(e, http.MethodGet, apiPath+"/"+dupID, nil, nil)
		var dup model.CollectionPoint
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dup))
		assert.Equal(t, "Website Form", dup.Name)
		assert.Equal(t, model.StatusPublished, dup.Status)
	})

	t.Run("partial update keeps omitted fields", func(t *testing.T) {
		rec := PerformRequest(e, http.MethodPut, apiPath+"/"+id, map[string]interface{}{"description": ""}, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = PerformRequest(e, http.MethodGet, apiPath+"/"+id, nil, nil)
		var got model.CollectionPoint
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "Website Form", got.Name)
		assert.Empty(t, got.Description)
		assert.Equal(t, []string{"marketing"}, got.Purposes)
	})

	t.Run("request id is echoed in errors", func(t *testing.T) {
		rec := PerformRequest(e, http.MethodGet, apiPath+"/nope", nil, map[string]string{echo.HeaderXRequestID: "req-42"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		detail := errorBody(t, rec)
		assert.Equal(t, model.CodeInvalidID, detail.Code)
		assert.Equal(t, "req-42", detail.RequestID)
	})

	t.Run("item placeholder returns 501", func(t *testing.T) {
		rec := PerformRequest(e, http.MethodGet, apiPath+"/"+id+"/analytics", nil, nil)
		assert.Equal(t, http.StatusNotImplemented, rec.Code)
		assert.Equal(t, model.CodeNotImplemented, errorBody(t, rec).Code)
	})

	t.Run("collection placeholder returns 501", func(t *testing.T) {
		rec := PerformRequest(e, http.MethodPost, apiPath+"/import", nil, nil)
		assert.Equal(t, http.StatusNotImplemented, rec.Code)
	})
}

func TestEveryEntityIsMounted(t *testing.T) {
	e, reg := SetupServer(t)

	for _, entity := range reg.All() {
		t.Run(entity.Name, func(t *testing.T) {
			rec := PerformRequest(e, http.MethodGet, "/api/v1/"+entity.Path, nil, nil)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `[]`, rec.Body.String())

			rec = PerformRequest(e, http.MethodGet, "/api/v1/"+entity.Path+"/123", nil, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Invalid "+entity.Label+" ID", errorBody(t, rec).Message)

			body := map[string]string{"explanation": "checked"}
			for _, action := range entity.Actions() {
				for _, method := range []string{http.MethodPut, http.MethodPost} {
					rec = PerformRequest(e, method, "/api/v1/"+entity.Path+"/"+primitive.NewObjectID().Hex()+"/"+action, body, nil)
					assert.Equal(t, http.StatusNotFound, rec.Code, method+" "+action)
				}
			}
		})
	}
}

func TestDeleteNotDeclared(t *testing.T) {
	e, _ := SetupServer(t)

	id := createdID(t, PerformRequest(e, http.MethodPost, "/api/v1/apps", map[string]interface{}{"name": "Mobile"}, nil))
	rec := PerformRequest(e, http.MethodDelete, "/api/v1/apps/"+id, nil, nil)
	assert.Contains(t, []int{http.StatusNotFound, http.StatusMethodNotAllowed}, rec.Code)

	rec = PerformRequest(e, http.MethodGet, "/api/v1/apps/"+id, nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestConsents(t *testing.T) {
	e, _ := SetupServer(t)
	apiPath := "/api/v1/consents"

	id := createdID(t, PerformRequest(e, http.MethodPost, apiPath, map[string]interface{}{
		"data_principal_id": "dp-1",
		"consent_type":      "marketing",
		"purposes":          []string{"newsletter"},
	}, nil))

	rec := PerformRequest(e, http.MethodPost, apiPath+"/bulk", []map[string]interface{}{
		{"data_principal_id": "dp-2", "consent_type": "analytics", "timestamp": "2020-01-01T00:00:00Z"},
		{"data_principal_id": "dp-3", "consent_type": "marketing", "status": "revoked"},
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var bulk model.BulkCreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bulk))
	assert.Len(t, bulk.InsertedIDs, 2)

	t.Run("timestamp defaults to creation time", func(t *testing.T) {
		rec := PerformRequest(e, http.MethodGet, apiPath+"/"+id, nil, nil)
		var c model.Consent
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
		assert.Equal(t, model.StatusGranted, c.Status)
		assert.False(t, c.Timestamp.IsZero())
		assert.True(t, c.Timestamp.Equal(c.CreatedAt))
	})

	t.Run("search by type", func(t *testing.T) {
		rec := PerformRequest(e, http.MethodGet, apiPath+"/search?type=marketing", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var found []model.Consent
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &found))
		assert.Len(t, found, 2)
	})

	t.Run("search by type and status", func(t *testing.T) {
		rec := PerformRequest(e, http.MethodGet, apiPath+"/search?type=marketing&status=revoked", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var found []model.Consent
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &found))
		require.Len(t, found, 1)
		assert.Equal(t, "dp-3", found[0].DataPrincipalID)
	})

	t.Run("search by date", func(t *testing.T) {
		rec := PerformRequest(e, http.MethodGet, apiPath+"/search?date=2021-06-01", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var found []model.Consent
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &found))
		assert.Len(t, found, 2)
	})

	t.Run("malformed date", func(t *testing.T) {
		rec := PerformRequest(e, http.MethodGet, apiPath+"/search?date=yesterday", nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("revoke", func(t *testing.T) {
		rec := PerformRequest(e, http.MethodPut, apiPath+"/"+id+"/revoke", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = PerformRequest(e, http.MethodGet, apiPath+"/"+id, nil, nil)
		var c model.Consent
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
		assert.Equal(t, model.StatusRevoked, c.Status)
	})
}

func TestDataElementTextSearch(t *testing.T) {
	e, _ := SetupServer(t)
	apiPath := "/api/v1/data-elements"

	createdID(t, PerformRequest(e, http.MethodPost, apiPath, map[string]interface{}{"name": "Email Address", "category": "contact"}, nil))
	createdID(t, PerformRequest(e, http.MethodPost, apiPath, map[string]interface{}{"name": "Phone", "description": "mobile (primary)"}, nil))

	rec := PerformRequest(e, http.MethodGet, apiPath+"/search?q=email", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var found []model.DataElement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &found))
	require.Len(t, found, 1)
	assert.Equal(t, "Email Address", found[0].Name)

	rec = PerformRequest(e, http.MethodGet, apiPath+"/search?q=(PRIMARY)", nil, nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &found))
	require.Len(t, found, 1)
	assert.Equal(t, "Phone", found[0].Name)
}

func TestConsentChangeInsights(t *testing.T) {
	e, _ := SetupServer(t)
	apiPath := "/api/v1/consent-changes"

	for _, ct := range []string{"grant", "revoke", "grant"} {
		createdID(t, PerformRequest(e, http.MethodPost, apiPath, map[string]interface{}{
			"consent_id":  "c-1",
			"change_type": ct,
		}, nil))
	}

	rec := PerformRequest(e, http.MethodGet, apiPath+"/insights", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"total_changes": 3,
		"changes_by_type": [{"type":"grant","count":2},{"type":"revoke","count":1}]
	}`, rec.Body.String())

	rec = PerformRequest(e, http.MethodGet, apiPath+"/search?change_type=revoke&consent_id=c-1", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var found []model.ConsentChange
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &found))
	assert.Len(t, found, 1)
}

func TestCredentials(t *testing.T) {
	e, _ := SetupServer(t)
	apiPath := "/api/v1/credentials"

	id := createdID(t, PerformRequest(e, http.MethodPost, apiPath, map[string]interface{}{
		"name":     "warehouse",
		"username": "etl",
		"password": "hunter2",
	}, nil))

	rec := PerformRequest(e, http.MethodPut, apiPath+"/"+id+"/rotate", map[string]string{"password": "s3cret"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = PerformRequest(e, http.MethodPost, apiPath+"/"+id+"/attach", map[string]string{"service": "postgres"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = PerformRequest(e, http.MethodGet, apiPath+"/"+id, nil, nil)
	var cred model.Credential
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cred))
	assert.Equal(t, "s3cret", cred.Password)
	assert.Equal(t, "postgres", cred.Service)
	assert.Equal(t, model.StatusActive, cred.Status)

	rec = PerformRequest(e, http.MethodPut, apiPath+"/"+id+"/remove", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = PerformRequest(e, http.MethodPost, apiPath+"/encrypt", map[string]string{"password": "plain"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var enc model.EncryptResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &enc))
	assert.NotEmpty(t, enc.EncryptedPassword)
	assert.NotEqual(t, "plain", enc.EncryptedPassword)

	rec = PerformRequest(e, http.MethodPut, apiPath+"/"+id+"/rotate", map[string]string{}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCampaignSchedule(t *testing.T) {
	e, _ := SetupServer(t)
	apiPath := "/api/v1/campaigns"

	id := createdID(t, PerformRequest(e, http.MethodPost, apiPath, map[string]interface{}{"name": "Spring"}, nil))

	rec := PerformRequest(e, http.MethodPost, apiPath+"/"+id+"/schedule", map[string]string{"schedule_time": "2030-04-01T09:00:00Z"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = PerformRequest(e, http.MethodGet, apiPath+"/"+id, nil, nil)
	var c model.Campaign
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	require.NotNil(t, c.ScheduleTime)
	assert.Equal(t, "2030-04-01T09:00:00Z", c.ScheduleTime.UTC().Format("2006-01-02T15:04:05Z07:00"))

	rec = PerformRequest(e, http.MethodPost, apiPath+"/"+primitive.NewObjectID().Hex()+"/schedule", map[string]string{"schedule_time": "2030-04-01T09:00:00Z"}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth(t *testing.T) {
	e, _ := SetupServer(t)

	rec := PerformRequest(e, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
