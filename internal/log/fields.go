package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldQuery      = "query"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldResource   = "resource"
	FieldUserID     = "user_id"
	FieldForce      = "force"
	FieldCount      = "count"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentCLI     = "cli"
	ComponentAPI     = "api"
	ComponentStore   = "store"
	ComponentSession = "session"
)

// Operations defines standard operation names
const (
	OpLoad       = "load"
	OpInvalidate = "invalidate"
	OpCreate     = "create"
	OpUpdate     = "update"
	OpDelete     = "delete"
	OpList       = "list"
	OpLogin      = "login"
	OpLogout     = "logout"
	OpActivate   = "activate"
	OpDeactivate = "deactivate"
	OpClear      = "clear"
)
