package model

// Entities
const (
	EntityApp                        = "app"
	EntityCampaign                   = "campaign"
	EntityCollectionPoint            = "collection_point"
	EntityPersona                    = "persona"
	EntityDataPrincipal              = "data_principal"
	EntityModelNotice                = "model_notice"
	EntityWorkflow                   = "workflow"
	EntityWorkerNode                 = "worker_node"
	EntityScanProfile                = "scan_profile"
	EntityDataSource                 = "data_source"
	EntityCredential                 = "credential"
	EntityClassifier                 = "classifier"
	EntityDataElement                = "data_element"
	EntityBreachIncident             = "breach_incident"
	EntityConsent                    = "consent"
	EntityConsentChange              = "consent_change"
	EntityProgressiveConsentRule     = "progressive_consent_rule"
	EntityReconsentRule              = "reconsent_rule"
	EntityDataCatalogue              = "data_catalogue"
	EntityBreachNotificationArtifact = "breach_notification_artifact"
	EntityBreachNotification         = "breach_notification"
	EntityBreachInvestigation        = "breach_investigation"
	EntityDataUpdateRequest          = "data_update_request"
	EntityDataDeletionRequest        = "data_deletion_request"
	EntityDPARRequest                = "dpar_request"
)

// Status literals. External callers match on these strings.
const (
	StatusDraft         = "draft"
	StatusPublished     = "published"
	StatusUnpublished   = "unpublished"
	StatusActive        = "active"
	StatusInactive      = "inactive"
	StatusArchived      = "archived"
	StatusReported      = "reported"
	StatusInvestigating = "investigating"
	StatusContained     = "contained"
	StatusResolved      = "resolved"
	StatusGranted       = "granted"
	StatusRevoked       = "revoked"
	StatusExpired       = "expired"
	StatusPending       = "pending"
	StatusApproved      = "approved"
	StatusRejected      = "rejected"
	StatusCancelled     = "cancelled"
)

// Operations an entity may declare in the registry. Dashboard counts the
// active status; status_dashboard counts every status.
const (
	OpCreate          = "create"
	OpGet             = "get"
	OpList            = "list"
	OpUpdate          = "update"
	OpDelete          = "delete"
	OpDuplicate       = "duplicate"
	OpBulkCreate      = "bulk_create"
	OpSearch          = "search"
	OpDashboard       = "dashboard"
	OpTemplate        = "template"
	OpCategorize      = "categorize"
	OpStatusDashboard = "status_dashboard"
)

// Placeholder endpoints. They answer 501 until real computations exist.
const (
	PlaceholderInsights  = "insights"
	PlaceholderAnalytics = "analytics"
	PlaceholderValidate  = "validate"
	PlaceholderLogs      = "logs"
	PlaceholderAudit     = "audit"
	PlaceholderExport    = "export"
	PlaceholderImport    = "import"
)

// Breach severities
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)
