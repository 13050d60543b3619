package router

import (
	"fmt"

	"consentadmin/internal/consent/handler"
	"consentadmin/internal/consent/model"
	"consentadmin/internal/consent/registry"
	"consentadmin/internal/consent/repository"
	"consentadmin/internal/consent/secret"
	"consentadmin/internal/consent/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Deps are created once in main and shared by every resource.
type Deps struct {
	Registry  *registry.Registry
	Store     repository.Store
	Cipher    secret.Cipher
	ListLimit int64
}

func RegisterRoutes(e *echo.Echo, deps Deps) {
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	// Health Check
	e.GET("/health", handler.NewHealthHandler(deps.Store).HealthCheck)

	v1 := e.Group("/api/v1")
	v1.Use(handler.RequestIDMiddleware)

	reg := deps.Registry
	store := deps.Store
	limit := deps.ListLimit

	// Consent collection
	mount(v1, handler.NewResourceHandler(
		service.NewResource[model.App, model.AppPatch](reg.MustGet(model.EntityApp), store, limit)), nil)

	campaigns := handler.NewCampaignHandler(
		service.NewResource[model.Campaign, model.CampaignPatch](reg.MustGet(model.EntityCampaign), store, limit))
	mount(v1, campaigns.ResourceHandler, nil).POST("/:id/schedule", campaigns.Schedule)

	mount(v1, handler.NewResourceHandler(
		service.NewResource[model.CollectionPoint, model.CollectionPointPatch](reg.MustGet(model.EntityCollectionPoint), store, limit)), nil)

	mount(v1, handler.NewResourceHandler(
		service.NewResource[model.Persona, model.PersonaPatch](reg.MustGet(model.EntityPersona), store, limit)), nil)

	mount(v1, handler.NewResourceHandler(
		service.NewResource[model.DataPrincipal, model.DataPrincipalPatch](reg.MustGet(model.EntityDataPrincipal), store, limit)), nil)

	consents := service.NewResource[model.Consent, model.ConsentPatch](reg.MustGet(model.EntityConsent), store, limit)
	consents.Hooks.BeforeInsert = defaultConsentTimestamp
	mount(v1, handler.NewResourceHandler(consents), func() model.SearchRequest { return &model.ConsentSearchReq{} })

	changes := handler.NewConsentChangeHandler(
		service.NewConsentChangeService(reg.MustGet(model.EntityConsentChange), store, limit))
	mount(v1, changes.ResourceHandler, func() model.SearchRequest { return &model.ConsentChangeSearchReq{} }).
		GET("/insights", changes.Insights)

	mount(v1, handler.NewResourceHandler(
		service.NewResource[model.ProgressiveConsentRule, model.ProgressiveConsentRulePatch](reg.MustGet(model.EntityProgressiveConsentRule), store, limit)), nil)

	mount(v1, handler.NewResourceHandler(
		service.NewResource[model.ReconsentRule, model.ReconsentRulePatch](reg.MustGet(model.EntityReconsentRule), store, limit)), nil)

	// Notices
	mount(v1, handler.NewResourceHandler(
		service.NewResource[model.ModelNotice, model.ModelNoticePatch](reg.MustGet(model.EntityModelNotice), store, limit)), nil)

	mount(v1, handler.NewResourceHandler(
		service.NewResource[model.Workflow, model.WorkflowPatch](reg.MustGet(model.EntityWorkflow), store, limit)), nil)

	// Discovery
	nodes := handler.NewWorkerNodeHandler(
		service.NewResource[model.WorkerNode, model.WorkerNodePatch](reg.MustGet(model.EntityWorkerNode), store, limit))
	mount(v1, nodes.ResourceHandler, nil).GET("/:id/stats", nodes.Stats)

	mount(v1, handler.NewResourceHandler(
		service.NewResource[model.ScanProfile, model.ScanProfilePatch](reg.MustGet(model.EntityScanProfile), store, limit)), nil)

	mount(v1, handler.NewResourceHandler(
		service.NewResource[model.DataSource, model.DataSourcePatch](reg.MustGet(model.EntityDataSource), store, limit)),
		func() model.SearchRequest { return &model.DataSourceSearchReq{} })

	creds := handler.NewCredentialHandler(
		service.NewCredentialService(reg.MustGet(model.EntityCredential), store, limit, deps.Cipher))
	credRoutes := mount(v1, creds.ResourceHandler, nil)
	credRoutes.POST("/encrypt", creds.Encrypt)
	credRoutes.PUT("/:id/rotate", creds.Rotate)
	credRoutes.POST("/:id/attach", creds.Attach)

	mount(v1, handler.NewResourceHandler(
		service.NewResource[model.Classifier, model.ClassifierPatch](reg.MustGet(model.EntityClassifier), store, limit)), nil)

	mount(v1, handler.NewResourceHandler(
		service.NewResource[model.DataElement, model.DataElementPatch](reg.MustGet(model.EntityDataElement), store, limit)),
		func() model.SearchRequest { return &model.DataElementSearchReq{} })

	mount(v1, handler.NewResourceHandler(
		service.NewResource[model.DataCatalogue, model.DataCataloguePatch](reg.MustGet(model.EntityDataCatalogue), store, limit)),
		func() model.SearchRequest { return &model.DataCatalogueSearchReq{} })

	// Breach management
	mount(v1, handler.NewResourceHandler(
		service.NewResource[model.BreachIncident, model.BreachIncidentPatch](reg.MustGet(model.EntityBreachIncident), store, limit)), nil)

	mount(v1, handler.NewResourceHandler(
		service.NewResource[model.BreachNotificationArtifact, model.BreachNotificationArtifactPatch](reg.MustGet(model.EntityBreachNotificationArtifact), store, limit)), nil)

	mount(v1, handler.NewResourceHandler(
		service.NewResource[model.BreachNotification, model.BreachNotificationPatch](reg.MustGet(model.EntityBreachNotification), store, limit)), nil)

	mount(v1, handler.NewResourceHandler(
		service.NewResource[model.BreachInvestigation, model.BreachInvestigationPatch](reg.MustGet(model.EntityBreachInvestigation), store, limit)), nil)

	// Data principal requests
	mount(v1, handler.NewResourceHandler(
		service.NewResource[model.DataUpdateRequest, model.DataUpdateRequestPatch](reg.MustGet(model.EntityDataUpdateRequest), store, limit)), nil)

	mount(v1, handler.NewResourceHandler(
		service.NewResource[model.DataDeletionRequest, model.DataDeletionRequestPatch](reg.MustGet(model.EntityDataDeletionRequest), store, limit)), nil)

	mount(v1, handler.NewResourceHandler(
		service.NewResource[model.DPARRequest, model.DPARRequestPatch](reg.MustGet(model.EntityDPARRequest), store, limit)), nil)
}

// mount registers the routes an entity declares and returns its group so
// callers can add entity specific routes.
func mount[T any, P any, PT model.DocumentPtr[T]](g *echo.Group, h *handler.ResourceHandler[T, P, PT], search func() model.SearchRequest) *echo.Group {
	e := h.Service.Entity
	rg := g.Group("/" + e.Path)

	if e.Supports(model.OpSearch) {
		if search == nil {
			panic(fmt.Sprintf("entity %s declares search without a search request", e.Name))
		}
		rg.GET("/search", h.Search(search))
	}
	if e.Supports(model.OpBulkCreate) {
		rg.POST("/bulk", h.BulkCreate)
	}
	if e.Supports(model.OpDashboard) {
		rg.GET("/dashboard", h.Dashboard)
	}
	if e.Supports(model.OpStatusDashboard) {
		rg.GET("/status-dashboard", h.StatusDashboard)
	}
	if e.Supports(model.OpTemplate) {
		rg.GET("/template", h.Template)
	}
	if e.Supports(model.OpCreate) {
		rg.POST("", h.Create)
	}
	if e.Supports(model.OpList) {
		rg.GET("", h.List)
	}
	if e.Supports(model.OpGet) {
		rg.GET("/:id", h.Get)
	}
	if e.Supports(model.OpUpdate) {
		rg.PUT("/:id", h.Update)
	}
	if e.Supports(model.OpDelete) {
		rg.DELETE("/:id", h.Delete)
	}
	if e.Supports(model.OpDuplicate) {
		rg.POST("/:id/duplicate", h.Duplicate)
	}
	if e.Supports(model.OpCategorize) {
		rg.POST("/:id/categorize", h.Categorize)
	}
	// Status actions answer both methods; older clients POST them.
	for _, action := range e.Actions() {
		rg.PUT("/:id/"+action, h.Transition(action))
		rg.POST("/:id/"+action, h.Transition(action))
	}
	for _, p := range e.Placeholders {
		path := "/" + p.Name
		if p.Item {
			path = "/:id" + path
		}
		rg.Add(p.Method, path, h.Placeholder(p.Name, p.Item))
	}
	return rg
}

func defaultConsentTimestamp(doc *model.Consent) error {
	if doc.Timestamp.IsZero() {
		doc.Timestamp = doc.CreatedAt
	}
	return nil
}
