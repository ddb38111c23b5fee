package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldUserAgent  = "user_agent"
	FieldError      = "error"
	FieldOperation  = "operation"

	FieldContributionID = "contribution_id"
	FieldChannel        = "channel"
	FieldPayerLabel     = "payer_label"
	FieldAmount         = "amount"
	FieldWeekOrdinal    = "week_ordinal"
	FieldVoteOption     = "vote_option"
	FieldSheetsRef      = "sheets_ref"
)

// Components defines standard component names
const (
	ComponentApp          = "app"
	ComponentHTTP         = "http"
	ComponentContribution = "contribution"
	ComponentStorage      = "storage"
	ComponentAMQP         = "amqp"
	ComponentWorker       = "worker"
	ComponentSheets       = "sheets"
	ComponentCampaign     = "campaign"
)

// Operations defines standard operation names
const (
	OpCreate     = "create"
	OpUpdate     = "update"
	OpDelete     = "delete"
	OpList       = "list"
	OpAggregate  = "aggregate"
	OpClassify   = "classify"
	OpSync       = "sync"
	OpExport     = "export"
	OpReclassify = "reclassify"
)
