package model

// ErrorResponse for consistent error handling
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (e *ErrorDetail) Error() string {
	return e.Message
}

// Error codes
const (
	CodeBadRequest     = "bad_request"
	CodeInvalidID      = "invalid_id"
	CodeNotFound       = "not_found"
	CodeNotImplemented = "not_implemented"
	CodeInternal       = "internal_error"
)

type CreatedResponse struct {
	ID string `json:"id"`
}

type BulkCreatedResponse struct {
	InsertedIDs []string `json:"inserted_ids"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

var Success = StatusResponse{Status: "success"}

// StatusSummary backs the dashboard endpoints.
type StatusSummary struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}

// StatusCounts backs the per-status dashboards.
type StatusCounts struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
}

// TransitionReq is the optional body of a status action. Actions that
// reject a request require the explanation.
type TransitionReq struct {
	Explanation string `json:"explanation" query:"explanation" validate:"max=2000"`
}

// CategorizeReq replaces a record's categories.
type CategorizeReq struct {
	Categories []string `json:"categories" validate:"required,dive,required,max=100"`
}

func (r *CategorizeReq) Validate() error {
	return ValidateRecord(r)
}
